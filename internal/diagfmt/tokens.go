package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"mlc/internal/source"
	"mlc/internal/token"
)

// TokenOutput — плоское представление токена для сериализации.
type TokenOutput struct {
	Kind      string `json:"kind" msgpack:"kind"`
	Text      string `json:"text,omitempty" msgpack:"text,omitempty"`
	Offset    uint32 `json:"offset" msgpack:"offset"`
	Length    uint32 `json:"length" msgpack:"length"`
	StartLine uint32 `json:"start_line,omitempty" msgpack:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty" msgpack:"start_col,omitempty"`
	Flags     string `json:"flags,omitempty" msgpack:"flags,omitempty"`
}

// tokenText возвращает текст токена: интернированный для идентификаторов и
// литералов, фиксированный по Kind для остальных.
func tokenText(tok token.Token, interner *source.Interner) string {
	if tok.Text != source.NoStringID {
		if s, ok := interner.Lookup(tok.Text); ok {
			return s
		}
	}
	return tok.Kind.Spelling()
}

func tokenFlags(tok token.Token) string {
	var parts []string
	if tok.AtStartOfLine() {
		parts = append(parts, "bol")
	}
	if tok.HasLeadingSpace() {
		parts = append(parts, "space")
	}
	if tok.NeedsCleaning() {
		parts = append(parts, "clean")
	}
	if tok.Flags.Has(token.FlagIsKeyword) {
		parts = append(parts, "kw")
	}
	return strings.Join(parts, ",")
}

func makeTokenOutputs(tokens []token.Token, m *source.Manager, interner *source.Interner) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		item := TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tokenText(tok, interner),
			Length: tok.Length,
			Flags:  tokenFlags(tok),
		}
		if m != nil && tok.Loc.IsValid() {
			_, item.Offset = m.Decompose(tok.Loc)
			if pos, ok := m.Position(tok.Loc); ok {
				item.StartLine = pos.Line
				item.StartCol = pos.Col
			}
		}
		out = append(out, item)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, m *source.Manager, interner *source.Interner) error {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%4d: %-15s", i+1, tok.Kind.String())

		if text := tokenText(tok, interner); text != "" {
			fmt.Fprintf(w, " %q", text)
		}

		if m != nil && tok.Loc.IsValid() {
			start, end := m.Resolve(tok.Span())
			fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		}

		if flags := tokenFlags(tok); flags != "" {
			fmt.Fprintf(w, " [%s]", flags)
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, m *source.Manager, interner *source.Interner) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(makeTokenOutputs(tokens, m, interner))
}

// FormatTokensMsgpack выводит токены в msgpack: компактный формат для
// машинного потребления и кэшей.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, m *source.Manager, interner *source.Interner) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(makeTokenOutputs(tokens, m, interner))
}
