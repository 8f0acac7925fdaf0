// Package fileman loads and caches source file contents from disk. It is the
// standard Loader behind a source.Manager: reads go through an in-memory
// cache keyed by cleaned path, validated against file size and mtime so a
// file edited between compilations is re-read.
package fileman

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"mlc/internal/source"
)

const defaultMaxCached = 256

type entry struct {
	handle  source.FileHandle
	size    int64
	modTime int64 // unix nanos
	used    uint64
}

// Stats counts loader traffic.
type Stats struct {
	Loads     uint64 // disk reads
	CacheHits uint64
	BytesRead uint64
	Evictions uint64
}

// Manager implements source.Loader over the OS filesystem.
type Manager struct {
	mu        sync.Mutex
	cache     map[string]*entry
	maxCached int
	clock     uint64
	stats     Stats
}

// New creates a manager with the default cache capacity.
func New() *Manager {
	return &Manager{
		cache:     make(map[string]*entry),
		maxCached: defaultMaxCached,
	}
}

// SetMaxCached changes the cache capacity. Values below 1 disable caching.
func (m *Manager) SetMaxCached(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxCached = n
}

// Load reads the file at path, normalizing a UTF-8 BOM and CRLF line endings.
// Cached content is reused while the file's size and mtime are unchanged.
func (m *Manager) Load(path string) (source.FileHandle, error) {
	clean := filepath.Clean(path)

	info, err := os.Stat(clean)
	if err != nil {
		return source.FileHandle{}, fmt.Errorf("fileman: stat %q: %w", path, err)
	}
	if info.IsDir() {
		return source.FileHandle{}, fmt.Errorf("fileman: %q is a directory", path)
	}

	m.mu.Lock()
	if e, ok := m.cache[clean]; ok && e.size == info.Size() && e.modTime == info.ModTime().UnixNano() {
		m.stats.CacheHits++
		m.clock++
		e.used = m.clock
		h := e.handle
		m.mu.Unlock()
		return h, nil
	}
	m.mu.Unlock()

	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(clean)
	if err != nil {
		return source.FileHandle{}, fmt.Errorf("fileman: read %q: %w", path, err)
	}

	var flags source.FileFlags
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= source.FileHadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= source.FileNormalizedCRLF
	}

	h := source.FileHandle{Path: clean, Data: content, Flags: flags}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Loads++
	m.stats.BytesRead += uint64(len(content))
	m.clock++
	if m.maxCached > 0 {
		if len(m.cache) >= m.maxCached {
			m.evictOldest()
		}
		m.cache[clean] = &entry{
			handle:  h,
			size:    info.Size(),
			modTime: info.ModTime().UnixNano(),
			used:    m.clock,
		}
	}
	return h, nil
}

// evictOldest drops the least recently used entry. Caller holds mu.
func (m *Manager) evictOldest() {
	var victim string
	var oldest uint64
	first := true
	for path, e := range m.cache {
		if first || e.used < oldest {
			victim, oldest = path, e.used
			first = false
		}
	}
	if !first {
		delete(m.cache, victim)
		m.stats.Evictions++
	}
}

// FileExists reports whether path names an existing regular file.
func (m *Manager) FileExists(path string) bool {
	info, err := os.Stat(filepath.Clean(path))
	return err == nil && !info.IsDir()
}

// FileSize returns the on-disk size of path without reading or caching it.
func (m *Manager) FileSize(path string) (int64, error) {
	info, err := os.Stat(filepath.Clean(path))
	if err != nil {
		return 0, fmt.Errorf("fileman: stat %q: %w", path, err)
	}
	return info.Size(), nil
}

// FileModTime returns the modification time of path without reading it.
func (m *Manager) FileModTime(path string) (time.Time, error) {
	info, err := os.Stat(filepath.Clean(path))
	if err != nil {
		return time.Time{}, fmt.Errorf("fileman: stat %q: %w", path, err)
	}
	return info.ModTime(), nil
}

// Invalidate drops the cached content for path, if any.
func (m *Manager) Invalidate(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cache, filepath.Clean(path))
}

// ClearCache drops every cached file.
func (m *Manager) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string]*entry)
}

// Stats returns a traffic snapshot.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// CachedCount returns the number of files held in the cache.
func (m *Manager) CachedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг, были ли замены.
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: нет \r - возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false
	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}
