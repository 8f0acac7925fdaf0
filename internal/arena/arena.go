package arena

import (
	"fmt"
	"strings"
)

const (
	// DefaultChunkSize is the size of a freshly grown chunk when no larger
	// request forces a bigger one.
	DefaultChunkSize = 1 << 20 // 1 MiB
	// DefaultAlignment is the minimum alignment applied to every allocation.
	DefaultAlignment = 8
	// MaxAllocationSize is the largest single allocation the arena accepts.
	MaxAllocationSize = 512 * 1024
	// minChunkSize — нижняя граница размера чанка.
	minChunkSize = 1024
	// maxChunkSize caps chunk growth for oversized requests.
	maxChunkSize = 100 * 1024 * 1024
)

// Stats captures allocation accounting for an Arena.
type Stats struct {
	Allocated  uint64 // bytes reserved in chunks
	Requested  uint64 // bytes asked for by callers
	Wasted     uint64 // alignment padding
	AllocCount uint64
	ChunkCount uint64
	Current    uint64 // bytes in use right now
	Peak       uint64
}

// FragmentationRatio reports wasted/requested bytes, 0 if nothing was requested.
func (s Stats) FragmentationRatio() float64 {
	if s.Requested == 0 {
		return 0
	}
	return float64(s.Wasted) / float64(s.Requested)
}

// Efficiency reports requested/allocated bytes, 0 if nothing was allocated.
func (s Stats) Efficiency() float64 {
	if s.Allocated == 0 {
		return 0
	}
	return float64(s.Requested) / float64(s.Allocated)
}

// chunk — непрерывный буфер с курсором занятых байт.
type chunk struct {
	buf  []byte
	used int
}

// alloc places size bytes at the next alignment boundary past the cursor.
// Возвращает nil, если не влезает.
func (c *chunk) alloc(size, alignment int) []byte {
	aligned := (c.used + alignment - 1) &^ (alignment - 1)
	if aligned+size > len(c.buf) {
		return nil
	}
	c.used = aligned + size
	return c.buf[aligned:c.used:c.used]
}

func (c *chunk) remaining() int { return len(c.buf) - c.used }

// Arena is a bump allocator over a growing list of chunks. Allocations are
// never moved or individually freed; Reset discards everything, Clear keeps
// chunk memory but logically invalidates every previous allocation.
//
// Not safe for concurrent use; callers that share an arena must serialize.
type Arena struct {
	chunks    []*chunk
	chunkSize int
	stats     Stats
}

// New creates an arena with the given chunk size (raised to the minimum) and
// one pre-allocated chunk.
func New(chunkSize int) *Arena {
	if chunkSize < minChunkSize {
		chunkSize = minChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(0)
	return a
}

// NewDefault creates an arena with DefaultChunkSize chunks.
func NewDefault() *Arena { return New(DefaultChunkSize) }

// Alloc returns a slice of exactly size bytes placed at the requested
// alignment, or nil when size is 0, exceeds MaxAllocationSize, or no chunk can
// hold it. Alignment must be a power of two; values below DefaultAlignment are
// raised to it.
func (a *Arena) Alloc(size, alignment int) []byte {
	if size <= 0 || size > MaxAllocationSize {
		return nil
	}
	if alignment < DefaultAlignment {
		alignment = DefaultAlignment
	}

	last := a.chunks[len(a.chunks)-1]
	before := last.used
	if b := last.alloc(size, alignment); b != nil {
		a.note(size, last.used-before)
		return b
	}

	// Новый чанк гарантирует размещение с учётом худшего паддинга.
	a.grow(size + alignment - 1)
	last = a.chunks[len(a.chunks)-1]
	before = last.used
	b := last.alloc(size, alignment)
	if b == nil {
		// Request exceeded the chunk cap.
		return nil
	}
	a.note(size, last.used-before)
	return b
}

// AllocBytes allocates size bytes at the default alignment.
func (a *Arena) AllocBytes(size int) []byte { return a.Alloc(size, DefaultAlignment) }

// AllocString copies s into the arena with a trailing NUL byte and returns the
// stored bytes without the terminator. Unlike Alloc this is the typed
// convenience layer: it panics on allocation failure, since handing out an
// invalid string home is never safe.
func (a *Arena) AllocString(s string) []byte {
	b := a.AllocBytes(len(s) + 1)
	if b == nil {
		panic(fmt.Errorf("arena: string allocation of %d bytes failed", len(s)+1))
	}
	copy(b, s)
	b[len(s)] = 0
	return b[:len(s):len(s)]
}

// Reset discards all chunks and starts over with one fresh chunk.
func (a *Arena) Reset() {
	a.chunks = nil
	a.stats = Stats{}
	a.grow(0)
}

// Clear zeroes every chunk cursor without releasing memory. All previously
// returned allocations are invalid after this; callers must guarantee nothing
// still references them.
func (a *Arena) Clear() {
	for _, c := range a.chunks {
		c.used = 0
	}
	a.stats.Current = 0
	a.stats.AllocCount = 0
}

// SetChunkSize changes the size used for future chunks.
func (a *Arena) SetChunkSize(size int) {
	if size < minChunkSize {
		size = minChunkSize
	}
	a.chunkSize = size
}

// ChunkSize returns the configured chunk size.
func (a *Arena) ChunkSize() int { return a.chunkSize }

// TotalAllocated returns the number of bytes reserved across all chunks.
func (a *Arena) TotalAllocated() uint64 {
	var total uint64
	for _, c := range a.chunks {
		total += uint64(len(c.buf))
	}
	return total
}

// TotalUsed returns the number of bytes handed out (including padding).
func (a *Arena) TotalUsed() uint64 {
	var total uint64
	for _, c := range a.chunks {
		total += uint64(c.used)
	}
	return total
}

// Stats returns a snapshot with Current and Peak refreshed.
func (a *Arena) Stats() Stats {
	s := a.stats
	s.Current = a.TotalUsed()
	if s.Current > s.Peak {
		s.Peak = s.Current
	}
	a.stats.Peak = s.Peak
	return s
}

// StatsString returns a multi-line debug dump of the arena state.
func (a *Arena) StatsString() string {
	s := a.Stats()
	var sb strings.Builder
	fmt.Fprintf(&sb, "arena statistics:\n")
	fmt.Fprintf(&sb, "  allocated:     %d bytes\n", s.Allocated)
	fmt.Fprintf(&sb, "  requested:     %d bytes\n", s.Requested)
	fmt.Fprintf(&sb, "  current usage: %d bytes\n", s.Current)
	fmt.Fprintf(&sb, "  peak usage:    %d bytes\n", s.Peak)
	fmt.Fprintf(&sb, "  allocations:   %d\n", s.AllocCount)
	fmt.Fprintf(&sb, "  chunks:        %d\n", s.ChunkCount)
	fmt.Fprintf(&sb, "  wasted:        %d bytes\n", s.Wasted)
	fmt.Fprintf(&sb, "  fragmentation: %.2f%%\n", s.FragmentationRatio()*100)
	fmt.Fprintf(&sb, "  efficiency:    %.2f%%\n", s.Efficiency()*100)
	for i, c := range a.chunks {
		util := 0.0
		if len(c.buf) > 0 {
			util = float64(c.used) / float64(len(c.buf)) * 100
		}
		fmt.Fprintf(&sb, "  chunk %d: %d/%d bytes (%.1f%% used)\n", i, c.used, len(c.buf), util)
	}
	return sb.String()
}

// grow appends a chunk of max(minSize, chunkSize) bytes, capped at maxChunkSize.
func (a *Arena) grow(minSize int) {
	size := a.chunkSize
	if minSize > size {
		size = minSize
	}
	if size > maxChunkSize {
		size = maxChunkSize
	}
	a.chunks = append(a.chunks, &chunk{buf: make([]byte, size)})
	a.stats.ChunkCount++
	a.stats.Allocated += uint64(size)
}

func (a *Arena) note(requested, consumed int) {
	a.stats.AllocCount++
	a.stats.Requested += uint64(requested)
	if consumed > requested {
		a.stats.Wasted += uint64(consumed - requested)
	}
	a.stats.Current += uint64(consumed)
	if a.stats.Current > a.stats.Peak {
		a.stats.Peak = a.stats.Current
	}
}
