package source

import "testing"

func TestResolverMatchesManager(t *testing.T) {
	m := NewManager(nil)
	id := addFile(t, m, "a.ml", "fn main() {\n    let x = 1;\n}\n")
	f := m.File(id)
	r := m.NewResolver()

	for off := uint32(0); off <= f.Size(); off++ {
		loc := f.Base + Loc(off)
		want, _ := m.Position(loc)
		got, ok := r.Position(loc)
		if !ok || got != want {
			t.Fatalf("offset %d: resolver %v, manager %v", off, got, want)
		}
	}
}

func TestResolverSameLineFastPath(t *testing.T) {
	m := NewManager(nil)
	id := addFile(t, m, "a.ml", "abcdefgh\nijk")
	base := m.StartOfFile(id)
	r := m.NewResolver()

	// Прогреваем кеш строкой 1, затем ходим внутри неё.
	before := m.Stats().Searches
	for off := uint32(0); off < 8; off++ {
		lc, ok := r.Position(base + Loc(off))
		if !ok || lc.Line != 1 || lc.Col != off+1 {
			t.Fatalf("offset %d: %v ok=%v", off, lc, ok)
		}
	}
	// Повторные запросы в той же строке не должны искать файл заново.
	if after := m.Stats().Searches; after > before+1 {
		t.Fatalf("searches went %d -> %d within one line", before, after)
	}
}

func TestResolverCrossesFiles(t *testing.T) {
	m := NewManager(nil)
	a := addFile(t, m, "a.ml", "one\ntwo")
	b := addFile(t, m, "b.ml", "three")
	r := m.NewResolver()

	if got := r.FileIDFor(m.StartOfFile(a)); got != a {
		t.Fatalf("FileIDFor(a) = %d", got)
	}
	if got := r.FileIDFor(m.StartOfFile(b)); got != b {
		t.Fatalf("FileIDFor(b) = %d", got)
	}
	// Возврат в первый файл после смены обязан сбросить кеш строки.
	lc, ok := r.Position(m.StartOfFile(a) + 4)
	if !ok || lc != (LineCol{2, 1}) {
		t.Fatalf("back to a: %v ok=%v", lc, ok)
	}
}

func TestResolverInvalidLoc(t *testing.T) {
	m := NewManager(nil)
	addFile(t, m, "a.ml", "x")
	r := m.NewResolver()
	if _, ok := r.Position(NoLoc); ok {
		t.Fatal("Position(NoLoc) must fail")
	}
	if r.Line(Loc(500)) != 0 {
		t.Fatal("Line of out-of-range loc must be 0")
	}
}

func TestSpanBasics(t *testing.T) {
	s := SpanOf(Loc(10), 5)
	if s.Len() != 5 || s.Empty() {
		t.Fatalf("SpanOf: %v len=%d", s, s.Len())
	}
	if !s.Contains(10) || !s.Contains(14) || s.Contains(15) {
		t.Fatal("Contains boundaries wrong")
	}
	merged := s.Cover(SpanOf(Loc(3), 2))
	if merged.Start != 3 || merged.End != 15 {
		t.Fatalf("Cover = %v", merged)
	}
	if !(Span{Start: 7, End: 7}).Empty() {
		t.Fatal("zero-length span must be empty")
	}
}
