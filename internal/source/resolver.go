package source

// Resolver answers position queries against a Manager through goroutine-local
// caches: the file containing the last query and the bounds of the line it
// landed on. Lexers and formatters walk locations in order, so most queries
// stay within one line and never touch the shared registry.
//
// A Resolver must not be shared between goroutines; create one per worker
// with Manager.NewResolver.
type Resolver struct {
	m *Manager

	file *File

	// Граница кешированной строки в локальных оффсетах файла.
	line      uint32 // 1-based, 0 если кеш пуст
	lineStart uint32
	lineEnd   uint32 // оффсет начала следующей строки либо size+1
}

// NewResolver creates a resolver bound to the manager.
func (m *Manager) NewResolver() *Resolver {
	return &Resolver{m: m}
}

// ClearCache drops the cached file and line bounds. Needed after the manager
// registers files whose content shadows an already-cached path.
func (r *Resolver) ClearCache() {
	r.file = nil
	r.line = 0
	r.lineStart = 0
	r.lineEnd = 0
}

// FileFor returns the file containing loc, nil when loc is invalid.
func (r *Resolver) FileFor(loc Loc) *File {
	if r.file != nil && r.file.Contains(loc) {
		return r.file
	}
	id := r.m.FileIDFor(loc)
	if !id.IsValid() {
		return nil
	}
	r.file = r.m.File(id)
	r.line = 0
	return r.file
}

// FileIDFor returns the ID of the file containing loc.
func (r *Resolver) FileIDFor(loc Loc) FileID {
	f := r.FileFor(loc)
	if f == nil {
		return NoFileID
	}
	return f.ID
}

// Position converts a global location into 1-based line and column.
func (r *Resolver) Position(loc Loc) (LineCol, bool) {
	f := r.FileFor(loc)
	if f == nil {
		return LineCol{}, false
	}
	off := uint32(loc - f.Base)

	if r.line != 0 && off >= r.lineStart && off < r.lineEnd {
		return LineCol{Line: r.line, Col: off - r.lineStart + 1}, true
	}

	starts := f.LineStarts()
	idx := lineForOffset(starts, off)
	r.line = uint32(idx) + 1
	r.lineStart = starts[idx]
	if idx+1 < len(starts) {
		r.lineEnd = starts[idx+1]
	} else {
		r.lineEnd = f.Size() + 1
	}
	return LineCol{Line: r.line, Col: off - r.lineStart + 1}, true
}

// Line returns the 1-based line number for loc, 0 if invalid.
func (r *Resolver) Line(loc Loc) uint32 {
	lc, ok := r.Position(loc)
	if !ok {
		return 0
	}
	return lc.Line
}

// Column returns the 1-based column number for loc, 0 if invalid.
func (r *Resolver) Column(loc Loc) uint32 {
	lc, ok := r.Position(loc)
	if !ok {
		return 0
	}
	return lc.Col
}

// Resolve converts a span into start and end positions.
func (r *Resolver) Resolve(span Span) (start, end LineCol) {
	start, _ = r.Position(span.Start)
	if span.Empty() {
		return start, start
	}
	end, _ = r.Position(span.End)
	return start, end
}
