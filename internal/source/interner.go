package source

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"unsafe"

	"fortio.org/safecast"

	"mlc/internal/arena"
)

// StringID is a stable handle to an interned string. Equal strings always get
// equal IDs, so identifier comparison is a uint32 compare.
type StringID uint32

// NoStringID зарезервирован за пустой строкой.
const NoStringID StringID = 0

// InternStats counts interner traffic.
type InternStats struct {
	Count      int     // unique strings, including the empty string
	Hits       uint64  // lookups that found an existing entry
	Misses     uint64  // lookups that stored a new entry
	Collisions uint64  // write-path lookups that lost the insert race
	Bytes      uint64  // payload bytes held in the arena, terminators included
	AvgLength  float64 // average length of a stored string, in bytes
}

// Interner deduplicates strings and stores their bytes in an arena. Safe for
// concurrent use: the read path takes only an RLock, inserts re-check under
// the write lock.
type Interner struct {
	mu       sync.RWMutex
	arena    *arena.Arena
	ownArena bool
	byID     []string            // индекс -> строка (byID[0] = "" для NoStringID)
	index    map[string]StringID // строка -> ID
	hits     atomic.Uint64
	misses   atomic.Uint64
	bytes    uint64 // guarded by mu
	sumLen   uint64 // guarded by mu
	races    atomic.Uint64
}

// NewInterner creates an interner backed by its own arena.
func NewInterner() *Interner {
	in := NewInternerWith(arena.NewDefault())
	in.ownArena = true
	return in
}

// NewInternerWith creates an interner that stores string bytes in the given
// arena. The caller keeps ownership of the arena.
func NewInternerWith(a *arena.Arena) *Interner {
	return &Interner{
		arena: a,
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the ID for s, storing it on first sight. The empty string
// never touches the lock.
func (in *Interner) Intern(s string) StringID {
	if s == "" {
		return NoStringID
	}

	in.mu.RLock()
	id, ok := in.index[s]
	in.mu.RUnlock()
	if ok {
		in.hits.Add(1)
		return id
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	// Другой поток мог вставить строку между RUnlock и Lock.
	if id, ok := in.index[s]; ok {
		in.hits.Add(1)
		in.races.Add(1)
		return id
	}

	stored := in.store(s)
	idx, err := safecast.Conv[uint32](len(in.byID))
	if err != nil {
		panic(fmt.Errorf("interner overflow: %w", err))
	}
	id = StringID(idx)
	in.byID = append(in.byID, stored)
	in.index[stored] = id
	in.bytes += uint64(len(stored)) + 1
	in.sumLen += uint64(len(stored))
	in.misses.Add(1)
	return id
}

// InternBytes вставляет байты и возвращает ID строки.
func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

// store copies s into the arena and returns a string view over the copy.
// Arena bytes are write-once, so the view never observes a mutation.
// Строки больше лимита арены живут в обычной куче.
func (in *Interner) store(s string) string {
	if len(s)+1 > arena.MaxAllocationSize {
		return strings.Clone(s)
	}
	b := in.arena.AllocString(s)
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Lookup возвращает строку по ID.
// Если ID не валиден, возвращает пустую строку и false.
func (in *Interner) Lookup(id StringID) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup возвращает строку по ID. Паникует на невалидном ID.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic(fmt.Errorf("invalid string ID %d", id))
	}
	return s
}

// Has проверяет, валиден ли ID.
func (in *Interner) Has(id StringID) bool {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return int(id) < len(in.byID)
}

// Contains reports whether s has already been interned, without interning it.
func (in *Interner) Contains(s string) bool {
	in.mu.RLock()
	defer in.mu.RUnlock()
	_, ok := in.index[s]
	return ok
}

// Len возвращает количество строк, включая NoStringID. Не меньше 1.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.byID)
}

// Snapshot возвращает копию всех строк.
func (in *Interner) Snapshot() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return slices.Clone(in.byID)
}

// Stats returns a traffic snapshot. AvgLength is computed over the stored
// strings, the empty string excluded.
func (in *Interner) Stats() InternStats {
	in.mu.RLock()
	defer in.mu.RUnlock()
	s := InternStats{
		Count:      len(in.byID),
		Hits:       in.hits.Load(),
		Misses:     in.misses.Load(),
		Collisions: in.races.Load(),
		Bytes:      in.bytes,
	}
	if stored := len(in.byID) - 1; stored > 0 {
		s.AvgLength = float64(in.sumLen) / float64(stored)
	}
	return s
}

// Clear drops every interned string and resets the counters. IDs handed out
// before Clear are invalid afterwards. The backing arena is released only
// when the interner owns it.
func (in *Interner) Clear() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.ownArena {
		in.arena.Clear()
	}
	in.byID = []string{""}
	in.index = map[string]StringID{"": NoStringID}
	in.bytes = 0
	in.sumLen = 0
	in.hits.Store(0)
	in.misses.Store(0)
	in.races.Store(0)
}
