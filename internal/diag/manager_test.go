package diag

import (
	"strings"
	"testing"
)

func TestManagerCounts(t *testing.T) {
	m := NewManager()
	m.Report(UnexpectedValue, 1, "valid character", "$")
	m.Report(InvalidEscapeSequence, 2, "q")
	m.Report(UnterminatedStringLiteral, 3)

	s := m.Stats()
	if s.Errors != 2 || s.Warnings != 1 || s.Total != 3 {
		t.Fatalf("stats = %+v", s)
	}
	if !m.HasErrors() || !m.HasWarnings() {
		t.Fatal("HasErrors/HasWarnings wrong")
	}
}

func TestManagerConsumers(t *testing.T) {
	m := NewManager()
	var got []*Diagnostic
	m.AddConsumer(ConsumerFunc(func(d *Diagnostic, info Info) {
		got = append(got, d)
	}))

	m.Report(UnterminatedBlockComment, 10)
	if len(got) != 1 || got[0].ID != UnterminatedBlockComment || got[0].Loc != 10 {
		t.Fatalf("consumer got %v", got)
	}

	m.ClearConsumers()
	m.Report(UnterminatedBlockComment, 11)
	if len(got) != 1 {
		t.Fatal("consumer called after ClearConsumers")
	}
}

func TestManagerMaxErrors(t *testing.T) {
	m := NewManager()
	m.SetMaxErrors(3)
	for range 2 {
		m.Report(UnexpectedValue, 1, "x", "y")
		if !m.ShouldContinue() {
			t.Fatal("stopped before the budget")
		}
	}
	m.Report(UnexpectedValue, 1, "x", "y")
	if m.ShouldContinue() {
		t.Fatal("budget of 3 errors not enforced")
	}
	// Warnings не тратят бюджет.
	m2 := NewManager()
	m2.SetMaxErrors(1)
	m2.Report(InvalidEscapeSequence, 1, "q")
	if !m2.ShouldContinue() {
		t.Fatal("warning consumed the error budget")
	}
}

func TestManagerErrorBudgetNotice(t *testing.T) {
	m := NewManager()
	m.SetMaxErrors(2)
	var got []ID
	m.AddConsumer(ConsumerFunc(func(d *Diagnostic, info Info) {
		got = append(got, d.ID)
	}))

	m.Report(UnexpectedValue, 1, "x", "y")
	m.Report(UnexpectedValue, 2, "x", "y")
	m.Report(UnexpectedValue, 3, "x", "y")

	want := []ID{UnexpectedValue, UnexpectedValue, TooManyErrors, UnexpectedValue}
	if len(got) != len(want) {
		t.Fatalf("consumer saw %v", got)
	}
	for i, id := range want {
		if got[i] != id {
			t.Fatalf("consumer saw %v, want %v", got, want)
		}
	}
	s := m.Stats()
	if s.Fatals != 1 {
		t.Errorf("fatals = %d, notice must be reported exactly once", s.Fatals)
	}
	if m.ShouldContinue() {
		t.Error("budget exhausted, ShouldContinue must be false")
	}
}

func TestPromotionSurvivesInDiagnostic(t *testing.T) {
	m := NewManager()
	var got *Diagnostic
	m.AddConsumer(ConsumerFunc(func(d *Diagnostic, _ Info) { got = d }))
	m.SetWarningsAsErrors(true)
	m.Report(InvalidEscapeSequence, 1, "q")

	if got == nil || !got.Promoted {
		t.Fatal("promotion not recorded on the diagnostic")
	}
	if got.Level() != Error || got.Info().Level != Error {
		t.Errorf("Level = %v, promoted warning must render as error", got.Level())
	}
}

func TestManagerFatalStops(t *testing.T) {
	m := NewManager()
	m.Report(FileNotFound, 0, "a.ml", "no such file")
	if m.ShouldContinue() {
		t.Fatal("fatal diagnostic must stop compilation")
	}
}

func TestManagerSuppression(t *testing.T) {
	m := NewManager()
	var count int
	m.AddConsumer(ConsumerFunc(func(*Diagnostic, Info) { count++ }))

	m.SetSuppressWarnings(true)
	m.Report(InvalidEscapeSequence, 1, "q")
	if count != 0 {
		t.Fatal("suppressed warning reached consumer")
	}
	if m.Stats().Total != 0 {
		t.Fatal("suppressed warning counted")
	}

	restore := m.Suppress()
	m.Report(InvalidEscapeSequence, 1, "q")
	restore()
	m.SetSuppressWarnings(false)
	m.Report(InvalidEscapeSequence, 1, "q")
	if count != 1 {
		t.Fatalf("consumer calls = %d, want 1", count)
	}
}

func TestWarningsAsErrors(t *testing.T) {
	m := NewManager()
	var level Level
	m.AddConsumer(ConsumerFunc(func(d *Diagnostic, info Info) { level = info.Level }))
	m.SetWarningsAsErrors(true)
	m.Report(InvalidEscapeSequence, 1, "q")

	if level != Error {
		t.Fatalf("promoted level = %v", level)
	}
	s := m.Stats()
	if s.Errors != 1 || s.Warnings != 0 {
		t.Fatalf("stats = %+v", s)
	}
	// Подавление предупреждений не должно съедать promoted ошибки.
	m.SetSuppressWarnings(true)
	m.Report(InvalidEscapeSequence, 1, "q")
	if m.Stats().Errors != 2 {
		t.Fatal("promoted warning was suppressed")
	}
}

func TestFormatMessage(t *testing.T) {
	cases := []struct {
		template string
		args     []string
		want     string
	}{
		{"no placeholders", nil, "no placeholders"},
		{"expected %0, got '%1'", []string{"digit", "x"}, "expected digit, got 'x'"},
		{"%0%1", []string{"a", "b"}, "ab"},
		{"missing %2 arg", []string{"a"}, "missing %2 arg"},
		{"100%", []string{"a"}, "100%"},
	}
	for _, tc := range cases {
		if got := FormatMessage(tc.template, tc.args); got != tc.want {
			t.Errorf("FormatMessage(%q, %v) = %q, want %q", tc.template, tc.args, got, tc.want)
		}
	}
}

func TestDiagnosticMessage(t *testing.T) {
	d := New(UnexpectedValue, 5).AddArg("valid character").AddArg("$")
	if got := d.Message(); got != "expected valid character, got '$'" {
		t.Fatalf("Message = %q", got)
	}
	if d.Level() != Error {
		t.Fatalf("Level = %v", d.Level())
	}
}

func TestIDString(t *testing.T) {
	if got := UnexpectedValue.String(); !strings.HasPrefix(got, "LEX") {
		t.Errorf("lexical ID rendered as %q", got)
	}
	if got := FileNotFound.String(); !strings.HasPrefix(got, "SYS") {
		t.Errorf("system ID rendered as %q", got)
	}
}

func TestBagLimitAndSort(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New(UnexpectedValue, 30)) || !b.Add(New(UnterminatedStringLiteral, 10)) {
		t.Fatal("adds under the limit must succeed")
	}
	if b.Add(New(UnexpectedValue, 40)) {
		t.Fatal("add over the limit must fail")
	}
	if !b.Full() {
		t.Fatal("bag must report Full")
	}
	b.Sort()
	if b.Items()[0].Loc != 10 {
		t.Fatal("sort by location failed")
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(New(UnexpectedValue, 7).AddArg("x"))
	b.Add(New(UnexpectedValue, 7).AddArg("x"))
	b.Add(New(UnexpectedValue, 7).AddArg("y"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("after dedup Len = %d", b.Len())
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(1)
	r := BagReporter{Bag: b}
	if !r.ShouldContinue() {
		t.Fatal("empty bag must allow continuing")
	}
	r.Report(UnterminatedStringLiteral, 3)
	if r.ShouldContinue() {
		t.Fatal("full bag must stop the producer")
	}
	if b.Len() != 1 || !b.HasErrors() {
		t.Fatalf("bag state: len=%d", b.Len())
	}
}
