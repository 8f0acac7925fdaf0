package arena

import (
	"bytes"
	"testing"
)

func TestAllocReturnsExactSize(t *testing.T) {
	a := NewDefault()
	for _, size := range []int{1, 7, 8, 63, 64, 4096} {
		b := a.AllocBytes(size)
		if b == nil {
			t.Fatalf("AllocBytes(%d) returned nil", size)
		}
		if len(b) != size {
			t.Fatalf("AllocBytes(%d) returned %d bytes", size, len(b))
		}
	}
}

func TestAllocRejectsBadSizes(t *testing.T) {
	a := NewDefault()
	if b := a.AllocBytes(0); b != nil {
		t.Fatalf("expected nil for zero-size allocation, got %d bytes", len(b))
	}
	if b := a.AllocBytes(-1); b != nil {
		t.Fatalf("expected nil for negative allocation, got %d bytes", len(b))
	}
	if b := a.AllocBytes(MaxAllocationSize + 1); b != nil {
		t.Fatalf("expected nil for oversized allocation, got %d bytes", len(b))
	}
	if b := a.AllocBytes(MaxAllocationSize); b == nil {
		t.Fatalf("allocation at the max size must succeed")
	}
}

func TestAllocationsDoNotOverlap(t *testing.T) {
	a := New(minChunkSize)
	var all [][]byte
	for i := range 200 {
		b := a.AllocBytes(37)
		if b == nil {
			t.Fatalf("allocation %d failed", i)
		}
		for j := range b {
			b[j] = byte(i)
		}
		all = append(all, b)
	}
	for i, b := range all {
		for j := range b {
			if b[j] != byte(i) {
				t.Fatalf("allocation %d byte %d clobbered: got %d", i, j, b[j])
			}
		}
	}
}

func TestUsedNeverExceedsAllocated(t *testing.T) {
	a := New(minChunkSize)
	sizes := []int{1, 100, 1000, minChunkSize, 13, 77, 2048}
	for _, size := range sizes {
		if b := a.AllocBytes(size); b == nil {
			t.Fatalf("AllocBytes(%d) failed", size)
		}
		if used, alloc := a.TotalUsed(), a.TotalAllocated(); used > alloc {
			t.Fatalf("used %d exceeds allocated %d after size %d", used, alloc, size)
		}
	}
}

func TestAlignment(t *testing.T) {
	a := NewDefault()
	for _, alignment := range []int{8, 16, 64} {
		// Misalign the cursor first.
		a.AllocBytes(3)
		b := a.Alloc(16, alignment)
		if b == nil {
			t.Fatalf("Alloc(16, %d) failed", alignment)
		}
	}
	s := a.Stats()
	if s.Wasted == 0 {
		t.Fatal("expected alignment padding to be accounted as wasted")
	}
}

func TestAllocString(t *testing.T) {
	a := NewDefault()
	stored := a.AllocString("hello")
	if !bytes.Equal(stored, []byte("hello")) {
		t.Fatalf("stored %q", stored)
	}
	// The terminator sits one past the returned slice.
	if got := stored[:6][5]; got != 0 {
		t.Fatalf("expected NUL terminator, got %d", got)
	}
	empty := a.AllocString("")
	if len(empty) != 0 {
		t.Fatalf("empty string stored as %d bytes", len(empty))
	}
}

func TestClearKeepsChunks(t *testing.T) {
	a := New(minChunkSize)
	for range 50 {
		a.AllocBytes(100)
	}
	chunksBefore := a.Stats().ChunkCount
	a.Clear()
	s := a.Stats()
	if s.Current != 0 {
		t.Fatalf("current usage %d after Clear", s.Current)
	}
	if s.ChunkCount != chunksBefore {
		t.Fatalf("Clear changed chunk count: %d -> %d", chunksBefore, s.ChunkCount)
	}
	if b := a.AllocBytes(64); b == nil {
		t.Fatal("allocation after Clear failed")
	}
}

func TestResetDropsEverything(t *testing.T) {
	a := New(minChunkSize)
	for range 50 {
		a.AllocBytes(100)
	}
	a.Reset()
	s := a.Stats()
	if s.ChunkCount != 1 {
		t.Fatalf("expected a single chunk after Reset, got %d", s.ChunkCount)
	}
	if s.AllocCount != 0 || s.Requested != 0 {
		t.Fatalf("stats not reset: %+v", s)
	}
}

func TestStatsAccounting(t *testing.T) {
	a := NewDefault()
	a.AllocBytes(100)
	a.AllocBytes(200)
	s := a.Stats()
	if s.AllocCount != 2 {
		t.Fatalf("AllocCount = %d", s.AllocCount)
	}
	if s.Requested != 300 {
		t.Fatalf("Requested = %d", s.Requested)
	}
	if s.Peak < s.Current {
		t.Fatalf("peak %d below current %d", s.Peak, s.Current)
	}
	if eff := s.Efficiency(); eff <= 0 || eff > 1 {
		t.Fatalf("efficiency out of range: %f", eff)
	}
}

func TestLargeAllocationGrowsChunk(t *testing.T) {
	a := New(minChunkSize)
	b := a.AllocBytes(MaxAllocationSize)
	if b == nil {
		t.Fatal("max-size allocation in a small-chunk arena failed")
	}
	if a.Stats().ChunkCount < 2 {
		t.Fatal("expected an extra chunk for the oversized request")
	}
}
