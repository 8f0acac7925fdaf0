// Package token defines lexical token kinds, flags, and per-kind metadata for
// the ml compiler.
// Invariants:
//   - Token.Loc and Token.Length address bytes in a source.Manager; the raw
//     spelling is always recoverable from the manager, never stored here.
//   - Token.Text is an interner handle, set only for identifiers and literals.
//   - Comments, whitespace, and newlines have token kinds of their own; the
//     lexer decides whether to emit or skip them.
//   - Built-in type names (int, float64, ...) are identifiers. They are
//     recognized by the semantic layer, not the lexer.
package token
