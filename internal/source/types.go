package source

import "fmt"

type (
	// Loc is a byte position in the global location space shared by every
	// registered file. 0 is never a valid location.
	Loc uint32
	// FileID identifies a registered file. IDs start at 1; 0 is invalid.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// NoLoc is the invalid location.
	NoLoc Loc = 0
	// NoFileID is the invalid file ID.
	NoFileID FileID = 0
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// IsValid reports whether the location refers to registered content.
func (l Loc) IsValid() bool { return l != NoLoc }

// WithOffset returns the location n bytes further in. The caller guarantees
// the result stays within the file the location came from.
func (l Loc) WithOffset(n uint32) Loc { return l + Loc(n) }

// Before reports whether l precedes other in source order. Files occupy
// disjoint ranges, so the raw offsets order across files too.
func (l Loc) Before(other Loc) bool { return l < other }

func (l Loc) String() string { return fmt.Sprintf("loc(%d)", uint32(l)) }

// IsValid reports whether the ID was produced by a Manager.
func (id FileID) IsValid() bool { return id != NoFileID }

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}
