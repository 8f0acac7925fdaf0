package diag

// Level defines the importance of a diagnostic.
type Level uint8

const (
	// Note is for secondary, informational diagnostics.
	Note Level = iota
	// Warning is for suspicious but non-fatal findings.
	Warning
	// Error is for findings that make the compilation fail.
	Error
	// Fatal is for findings after which compilation cannot proceed at all.
	Fatal
)

func (l Level) String() string {
	switch l {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal error"
	}
	return "unknown"
}

// Category groups diagnostics by the compiler stage that produces them.
type Category uint8

const (
	// CatSystem covers file IO, memory, and environment problems.
	CatSystem Category = iota
	// CatLexical covers tokenization issues.
	CatLexical
	// CatSyntax covers parsing issues.
	CatSyntax
	// CatSemantic covers name resolution and checking issues.
	CatSemantic
	// CatType covers type system issues.
	CatType
)

func (c Category) String() string {
	switch c {
	case CatSystem:
		return "system"
	case CatLexical:
		return "lexical"
	case CatSyntax:
		return "syntax"
	case CatSemantic:
		return "semantic"
	case CatType:
		return "type"
	}
	return "unknown"
}
