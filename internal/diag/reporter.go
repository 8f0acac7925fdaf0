package diag

import "mlc/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз.
// Лексер и другие фазы зависят только от него, не от всего Manager.
// Реализации: Manager, BagReporter, NopReporter.
type Reporter interface {
	// Report emits the diagnostic identified by id at loc with message args.
	Report(id ID, loc source.Loc, args ...string)
	// ShouldContinue reports whether the producer may keep going or has hit
	// the error budget.
	ShouldContinue() bool
}

// NopReporter drops every diagnostic and never stops the producer.
type NopReporter struct{}

func (NopReporter) Report(ID, source.Loc, ...string) {}

func (NopReporter) ShouldContinue() bool { return true }

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(id ID, loc source.Loc, args ...string) {
	if r.Bag == nil {
		return
	}
	d := New(id, loc)
	d.Args = args
	r.Bag.Add(d)
}

func (r BagReporter) ShouldContinue() bool {
	return r.Bag == nil || !r.Bag.Full()
}
