package token

import (
	"fmt"

	"mlc/internal/source"
)

// Flags carries extra per-token metadata.
type Flags uint8

const (
	// FlagAtStartOfLine marks the first token on its line.
	FlagAtStartOfLine Flags = 1 << iota
	// FlagHasLeadingSpace marks a token preceded by whitespace.
	FlagHasLeadingSpace
	// FlagNeedsCleaning marks literal text that still contains escapes.
	FlagNeedsCleaning
	// FlagIsKeyword marks identifiers recognized as keywords.
	FlagIsKeyword
)

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool { return f&flag == flag }

// Token is a single lexed token. Loc points into the global location space of
// a source.Manager; Text is an interner handle, NoStringID for tokens whose
// spelling is fixed by their kind.
type Token struct {
	Kind   Kind
	Flags  Flags
	Loc    source.Loc
	Length uint32
	Text   source.StringID
}

// New creates a token without interned text.
func New(kind Kind, loc source.Loc, length uint32) Token {
	return Token{Kind: kind, Loc: loc, Length: length}
}

// Span returns the half-open source range the token covers.
func (t Token) Span() source.Span {
	return source.SpanOf(t.Loc, t.Length)
}

// AddFlag sets the given flag bits.
func (t *Token) AddFlag(flag Flags) { t.Flags |= flag }

// RemoveFlag clears the given flag bits.
func (t *Token) RemoveFlag(flag Flags) { t.Flags &^= flag }

// AtStartOfLine reports whether the token is the first on its line.
func (t Token) AtStartOfLine() bool { return t.Flags.Has(FlagAtStartOfLine) }

// HasLeadingSpace reports whether whitespace precedes the token.
func (t Token) HasLeadingSpace() bool { return t.Flags.Has(FlagHasLeadingSpace) }

// NeedsCleaning reports whether the literal text still contains escapes.
func (t Token) NeedsCleaning() bool { return t.Flags.Has(FlagNeedsCleaning) }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsLiteral reports whether the token is a numeric, boolean, string, or
// character literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsOperator reports whether the token is an operator.
func (t Token) IsOperator() bool { return t.Kind.IsOperator() }

// IsPunctuation reports whether the token is punctuation.
func (t Token) IsPunctuation() bool { return t.Kind.IsPunctuation() }

// IsIdentOrKeyword reports whether the token began as an identifier.
func (t Token) IsIdentOrKeyword() bool {
	return t.Kind == Ident || t.Kind.IsKeyword()
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind Kind) bool { return t.Kind == kind }

// IsOneOf reports whether the token has any of the given kinds.
func (t Token) IsOneOf(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsNot reports whether the token differs from the given kind.
func (t Token) IsNot(kind Kind) bool { return t.Kind != kind }

func (t Token) String() string {
	if t.Text != source.NoStringID {
		return fmt.Sprintf("%s@%d+%d(#%d)", t.Kind, uint32(t.Loc), t.Length, uint32(t.Text))
	}
	return fmt.Sprintf("%s@%d+%d", t.Kind, uint32(t.Loc), t.Length)
}
