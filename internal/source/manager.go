package source

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"fortio.org/safecast"
)

// File captures metadata and content for a single registered file. Content is
// immutable after registration; the line table is built lazily on first
// position query.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Base    Loc // global location of the first byte
	Hash    [32]byte
	Flags   FileFlags

	lineOnce sync.Once
	lines    []uint32
}

// Size returns the content length in bytes.
func (f *File) Size() uint32 {
	size, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file size overflow: %w", err))
	}
	return size
}

// Span returns the half-open global range covering the content.
func (f *File) Span() Span {
	return Span{Start: f.Base, End: f.Base + Loc(f.Size())}
}

// Contains reports whether loc falls inside the file. The end-of-file
// location (one past the last byte) belongs to the file.
func (f *File) Contains(loc Loc) bool {
	return loc >= f.Base && loc <= f.Base+Loc(f.Size())
}

// LineStarts returns the lazily built table of line start offsets.
func (f *File) LineStarts() []uint32 {
	f.lineOnce.Do(func() {
		f.lines = buildLineStarts(f.Content)
	})
	return f.lines
}

// LineCount returns the number of lines. A trailing newline opens a final
// empty line, matching what editors display.
func (f *File) LineCount() uint32 {
	return uint32(len(f.LineStarts()))
}

// Position converts a file-local byte offset into 1-based line and column.
func (f *File) Position(off uint32) LineCol {
	starts := f.LineStarts()
	line := lineForOffset(starts, off)
	return LineCol{
		Line: uint32(line) + 1,
		Col:  off - starts[line] + 1,
	}
}

// GetLine возвращает строку с заданным номером (1-based) из файла.
// Если строка не существует, возвращает пустую строку.
func (f *File) GetLine(lineNum uint32) string {
	starts := f.LineStarts()
	if lineNum == 0 || lineNum > uint32(len(starts)) {
		return ""
	}
	start := starts[lineNum-1]
	end := f.Size()
	if lineNum < uint32(len(starts)) {
		end = starts[lineNum] - 1 // без завершающего \n
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath форматирует путь к файлу в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := filepath.Rel(baseDir, f.Path); err == nil {
			return filepath.ToSlash(rel)
		}
		return f.Path

	case "basename":
		return filepath.Base(f.Path)

	case "auto":
		// Короткие и относительные пути показываем как есть.
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.Base(f.Path)

	default:
		return f.Path
	}
}

// ManagerStats counts location queries and registered content.
type ManagerStats struct {
	FileCount  int
	TotalBytes uint64
	Searches   uint64 // FileIDFor calls that consulted the registry
	CacheHits  uint64 // calls answered by the last-file slot
}

// Manager owns the registry of source files and the global location space.
// Every file occupies the disjoint range [Base, Base+Size]; ranges are spaced
// by size+1 so the end-of-file location of one file never collides with the
// first byte of the next. Safe for concurrent use once registration races are
// resolved under the write lock.
type Manager struct {
	mu     sync.RWMutex
	loader Loader
	files  []*File           // индекс i -> FileID(i+1)
	byPath map[string]FileID // путь -> последняя регистрация
	next   Loc               // первый свободный глобальный оффсет, старт с 1

	lastFile  atomic.Uint32 // FileID последнего успешного поиска
	searches  atomic.Uint64
	cacheHits atomic.Uint64
}

// ErrSourceTooLarge reports that a file does not fit the remaining 32-bit
// location space.
var ErrSourceTooLarge = errors.New("source: location space exhausted")

// NewManager creates an empty manager that loads disk files through loader.
// A nil loader is fine for purely virtual use.
func NewManager(loader Loader) *Manager {
	return &Manager{
		loader: loader,
		byPath: make(map[string]FileID),
		next:   1,
	}
}

// CreateFileID loads a file through the Loader and registers it. Repeated
// calls for the same path return the existing ID without reloading.
func (m *Manager) CreateFileID(path string) (FileID, error) {
	m.mu.RLock()
	id, ok := m.byPath[normalizePath(path)]
	m.mu.RUnlock()
	if ok {
		return id, nil
	}

	if m.loader == nil {
		return NoFileID, fmt.Errorf("source: no loader configured for %q", path)
	}
	h, err := m.loader.Load(path)
	if err != nil {
		return NoFileID, err
	}
	return m.register(h.Path, h.Data, h.Flags)
}

// AddVirtual registers in-memory content (stdin, tests, generated code) under
// the given name.
func (m *Manager) AddVirtual(name string, content []byte) (FileID, error) {
	return m.register(name, content, FileVirtual)
}

func (m *Manager) register(path string, content []byte, flags FileFlags) (FileID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	normalized := normalizePath(path)
	if id, ok := m.byPath[normalized]; ok {
		return id, nil
	}

	size := uint64(len(content))
	// +1 резервирует EOF-позицию между файлами.
	if uint64(m.next)+size+1 > math.MaxUint32 {
		return NoFileID, fmt.Errorf("source: registering %q (%d bytes): %w", path, size, ErrSourceTooLarge)
	}

	lenFiles, err := safecast.Conv[uint32](len(m.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	id := FileID(lenFiles + 1)
	f := &File{
		ID:      id,
		Path:    normalized,
		Content: content,
		Base:    m.next,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
	m.files = append(m.files, f)
	m.byPath[normalized] = id
	m.next += Loc(size) + 1
	return id, nil
}

// File returns the registered file or nil for an invalid ID.
func (m *Manager) File(id FileID) *File {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !id.IsValid() || int(id) > len(m.files) {
		return nil
	}
	return m.files[id-1]
}

// FileByPath returns the file registered under path, if any.
func (m *Manager) FileByPath(path string) (*File, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byPath[normalizePath(path)]
	if !ok {
		return nil, false
	}
	return m.files[id-1], true
}

// FileCount returns the number of registered files.
func (m *Manager) FileCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.files)
}

// StartOfFile returns the global location of the file's first byte.
func (m *Manager) StartOfFile(id FileID) Loc {
	f := m.File(id)
	if f == nil {
		return NoLoc
	}
	return f.Base
}

// EndOfFile returns the location one past the file's last byte.
func (m *Manager) EndOfFile(id FileID) Loc {
	f := m.File(id)
	if f == nil {
		return NoLoc
	}
	return f.Base + Loc(f.Size())
}

// FileIDFor maps a global location to the file containing it, NoFileID for
// invalid or out-of-range locations. A one-slot cache short-circuits the
// common case of repeated queries into the same file.
func (m *Manager) FileIDFor(loc Loc) FileID {
	if !loc.IsValid() {
		return NoFileID
	}

	if cached := FileID(m.lastFile.Load()); cached.IsValid() {
		if f := m.File(cached); f != nil && f.Contains(loc) {
			m.cacheHits.Add(1)
			return cached
		}
	}
	m.searches.Add(1)

	m.mu.RLock()
	defer m.mu.RUnlock()
	// Последний файл с Base <= loc.
	lo, hi := 0, len(m.files)-1
	for lo < hi {
		mid := (lo + hi + 1) >> 1
		if m.files[mid].Base <= loc {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if len(m.files) == 0 || !m.files[lo].Contains(loc) {
		return NoFileID
	}
	id := m.files[lo].ID
	m.lastFile.Store(uint32(id))
	return id
}

// Decompose splits a global location into its file and file-local offset.
func (m *Manager) Decompose(loc Loc) (FileID, uint32) {
	id := m.FileIDFor(loc)
	if !id.IsValid() {
		return NoFileID, 0
	}
	f := m.File(id)
	return id, uint32(loc - f.Base)
}

// Position converts a global location into 1-based line and column.
func (m *Manager) Position(loc Loc) (LineCol, bool) {
	id, off := m.Decompose(loc)
	if !id.IsValid() {
		return LineCol{}, false
	}
	return m.File(id).Position(off), true
}

// Line returns the 1-based line number for loc, 0 if loc is invalid.
func (m *Manager) Line(loc Loc) uint32 {
	lc, ok := m.Position(loc)
	if !ok {
		return 0
	}
	return lc.Line
}

// Column returns the 1-based column number for loc, 0 if loc is invalid.
func (m *Manager) Column(loc Loc) uint32 {
	lc, ok := m.Position(loc)
	if !ok {
		return 0
	}
	return lc.Col
}

// Resolve converts a span into start and end line/column positions.
func (m *Manager) Resolve(span Span) (start, end LineCol) {
	start, _ = m.Position(span.Start)
	if span.Empty() {
		return start, start
	}
	// End указывает за последний байт; позицию берём по нему же.
	end, _ = m.Position(span.End)
	return start, end
}

// Text returns the bytes the span covers. Spans that are empty, invalid, or
// that cross a file boundary yield nil.
func (m *Manager) Text(span Span) []byte {
	if span.Empty() {
		return nil
	}
	id := m.FileIDFor(span.Start)
	if !id.IsValid() {
		return nil
	}
	f := m.File(id)
	if span.End > f.Base+Loc(f.Size()) {
		return nil
	}
	lo := uint32(span.Start - f.Base)
	hi := uint32(span.End - f.Base)
	return f.Content[lo:hi]
}

// SpanLength returns the byte length of the span, 0 when Text would be nil.
func (m *Manager) SpanLength(span Span) uint32 {
	return uint32(len(m.Text(span)))
}

// Stats returns a query and registry snapshot.
func (m *Manager) Stats() ManagerStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total uint64
	for _, f := range m.files {
		total += uint64(len(f.Content))
	}
	return ManagerStats{
		FileCount:  len(m.files),
		TotalBytes: total,
		Searches:   m.searches.Load(),
		CacheHits:  m.cacheHits.Load(),
	}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
