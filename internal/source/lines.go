package source

import (
	"encoding/binary"
	"math/bits"
)

const (
	newlineBytes = 0x0a0a0a0a0a0a0a0a
	lowBytes     = 0x0101010101010101
	highBytes    = 0x8080808080808080
)

// buildLineStarts returns the file-local offsets where each line begins. The
// first entry is always 0; every '\n' contributes the offset just past it.
// Words are scanned eight bytes at a time, the tail byte by byte.
func buildLineStarts(content []byte) []uint32 {
	starts := make([]uint32, 1, len(content)/32+2)
	starts[0] = 0

	i := 0
	for ; i+8 <= len(content); i += 8 {
		w := binary.LittleEndian.Uint64(content[i:])
		// Нулевые байты в x помечаются старшим битом.
		x := w ^ newlineBytes
		m := (x - lowBytes) &^ x & highBytes
		for m != 0 {
			// Позиция байта с переводом строки внутри слова.
			pos := bits.TrailingZeros64(m) >> 3
			starts = append(starts, uint32(i+pos)+1)
			m &= m - 1
		}
	}
	for ; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return starts
}

// buildLineStartsScalar is the byte-at-a-time reference used by tests to
// check the word-scanning path.
func buildLineStartsScalar(content []byte) []uint32 {
	starts := []uint32{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return starts
}

// lineForOffset returns the 0-based index of the line containing off: the
// largest i with starts[i] <= off.
func lineForOffset(starts []uint32, off uint32) int {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) >> 1
		if starts[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
