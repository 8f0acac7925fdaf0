package diag

import (
	"fmt"
	"io"
	"sync"

	"mlc/internal/source"
)

// Consumer receives every non-suppressed diagnostic. Implementations render,
// collect, or forward; they must not call back into the Manager.
type Consumer interface {
	Handle(d *Diagnostic, info Info)
}

// ConsumerFunc adapts a function to the Consumer interface.
type ConsumerFunc func(d *Diagnostic, info Info)

func (f ConsumerFunc) Handle(d *Diagnostic, info Info) { f(d, info) }

// Stats counts reported diagnostics by level.
type Stats struct {
	Notes    uint64
	Warnings uint64
	Errors   uint64
	Fatals   uint64
	Total    uint64
}

// HasErrors reports whether any error or fatal diagnostic was seen.
func (s Stats) HasErrors() bool { return s.Errors > 0 || s.Fatals > 0 }

// HasWarnings reports whether any warning was seen.
func (s Stats) HasWarnings() bool { return s.Warnings > 0 }

// Manager fans reported diagnostics out to consumers, applies suppression and
// promotion policy, and tracks counts against the error budget. Safe for
// concurrent use.
type Manager struct {
	mu        sync.Mutex
	consumers []Consumer

	suppressWarnings bool
	suppressNotes    bool
	warningsAsErrors bool
	maxErrors        uint64 // 0 — без лимита
	limitNotified    bool

	stats Stats
}

// NewManager creates a manager with no consumers configured.
func NewManager() *Manager {
	return &Manager{}
}

// AddConsumer registers a consumer for subsequent reports.
func (m *Manager) AddConsumer(c Consumer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.consumers = append(m.consumers, c)
}

// ClearConsumers removes every registered consumer.
func (m *Manager) ClearConsumers() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.consumers = nil
}

// SetSuppressWarnings toggles dropping of warnings.
func (m *Manager) SetSuppressWarnings(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppressWarnings = v
}

// SetSuppressNotes toggles dropping of notes.
func (m *Manager) SetSuppressNotes(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppressNotes = v
}

// SetWarningsAsErrors promotes warnings to errors.
func (m *Manager) SetWarningsAsErrors(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warningsAsErrors = v
}

// SetMaxErrors caps the number of errors before ShouldContinue turns false.
// 0 removes the cap.
func (m *Manager) SetMaxErrors(n uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxErrors = n
}

// Report emits the diagnostic identified by id at loc with message args.
// Implements Reporter.
func (m *Manager) Report(id ID, loc source.Loc, args ...string) {
	d := New(id, loc)
	d.Args = args
	m.ReportDiag(d)
}

// ReportDiag emits a fully built diagnostic.
func (m *Manager) ReportDiag(d *Diagnostic) {
	info := GetInfo(d.ID)

	m.mu.Lock()
	if m.suppressed(info) {
		m.mu.Unlock()
		return
	}
	if m.warningsAsErrors && info.Level == Warning {
		info.Level = Error
		d.Promoted = true
	}
	m.bump(info.Level)
	// Когда бюджет ошибок исчерпан, один раз сообщаем об остановке.
	var limit *Diagnostic
	if info.Level == Error && m.maxErrors > 0 && m.stats.Errors >= m.maxErrors && !m.limitNotified {
		m.limitNotified = true
		limit = New(TooManyErrors, d.Loc)
		m.bump(Fatal)
	}
	consumers := m.consumers
	m.mu.Unlock()

	for _, c := range consumers {
		c.Handle(d, info)
	}
	if limit != nil {
		for _, c := range consumers {
			c.Handle(limit, GetInfo(TooManyErrors))
		}
	}
}

// suppressed decides whether the diagnostic is dropped. Caller holds mu.
func (m *Manager) suppressed(info Info) bool {
	switch info.Level {
	case Note:
		return m.suppressNotes
	case Warning:
		return m.suppressWarnings && !m.warningsAsErrors
	default:
		return false
	}
}

// bump updates counters. Caller holds mu.
func (m *Manager) bump(level Level) {
	m.stats.Total++
	switch level {
	case Note:
		m.stats.Notes++
	case Warning:
		m.stats.Warnings++
	case Error:
		m.stats.Errors++
	case Fatal:
		m.stats.Fatals++
	}
}

// ShouldContinue reports whether compilation may keep going: no fatal seen
// and the error budget not exhausted.
func (m *Manager) ShouldContinue() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stats.Fatals > 0 {
		return false
	}
	return m.maxErrors == 0 || m.stats.Errors < m.maxErrors
}

// HasErrors reports whether any error or fatal diagnostic was reported.
func (m *Manager) HasErrors() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats.HasErrors()
}

// HasWarnings reports whether any warning was reported.
func (m *Manager) HasWarnings() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats.HasWarnings()
}

// Stats returns a counter snapshot.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Reset zeroes all counters. Consumers and policy stay.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = Stats{}
	m.limitNotified = false
}

// Suppress turns off notes and warnings and returns a restore function.
// Типичный вызов: defer mgr.Suppress()().
func (m *Manager) Suppress() func() {
	m.mu.Lock()
	oldWarnings, oldNotes := m.suppressWarnings, m.suppressNotes
	m.suppressWarnings = true
	m.suppressNotes = true
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		m.suppressWarnings, m.suppressNotes = oldWarnings, oldNotes
		m.mu.Unlock()
	}
}

// PrintStats writes a summary of reported diagnostics.
func (m *Manager) PrintStats(w io.Writer) {
	s := m.Stats()
	fmt.Fprintf(w, "diagnostics: %d total (%d errors, %d warnings, %d notes",
		s.Total, s.Errors, s.Warnings, s.Notes)
	if s.Fatals > 0 {
		fmt.Fprintf(w, ", %d fatal", s.Fatals)
	}
	fmt.Fprintln(w, ")")
}
