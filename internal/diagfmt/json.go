package diagfmt

import (
	"encoding/json"
	"io"

	"mlc/internal/diag"
	"mlc/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File   string `json:"file"`
	Offset uint32 `json:"offset"`
	Line   uint32 `json:"line,omitempty"`
	Col    uint32 `json:"col,omitempty"`
}

// FixItJSON представляет предложение по исправлению для JSON
type FixItJSON struct {
	Start       uint32 `json:"start"`
	End         uint32 `json:"end"`
	Replacement string `json:"replacement"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Level    string       `json:"level"`
	Code     string       `json:"code"`
	Category string       `json:"category"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	FixIts   []FixItJSON  `json:"fixits,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Truncated   bool             `json:"truncated,omitempty"`
}

// JSON сериализует диагностики из bag. Max в opts обрезает только вывод,
// Count остаётся полным.
func JSON(w io.Writer, bag *diag.Bag, m *source.Manager, opts JSONOpts) error {
	items := bag.Items()
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(items)),
		Count:       len(items),
	}

	for _, d := range items {
		if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
			out.Truncated = true
			break
		}
		info := d.Info()
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Level:    info.Level.String(),
			Code:     d.ID.String(),
			Category: categoryName(info.Category),
			Message:  d.Message(),
			Location: makeLocation(d.Loc, m, opts),
			FixIts:   makeFixIts(d.FixIts, m),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func makeLocation(loc source.Loc, m *source.Manager, opts JSONOpts) LocationJSON {
	out := LocationJSON{File: "<unknown>"}
	if m == nil || !loc.IsValid() {
		return out
	}
	id := m.FileIDFor(loc)
	if !id.IsValid() {
		return out
	}
	f := m.File(id)
	out.File = f.FormatPath(opts.PathMode.formatArg(), opts.BaseDir)
	_, out.Offset = m.Decompose(loc)

	if opts.IncludePositions {
		if pos, ok := m.Position(loc); ok {
			out.Line = pos.Line
			out.Col = pos.Col
		}
	}
	return out
}

func makeFixIts(fixes []diag.FixIt, m *source.Manager) []FixItJSON {
	if len(fixes) == 0 {
		return nil
	}
	out := make([]FixItJSON, 0, len(fixes))
	for _, fix := range fixes {
		var start, end uint32
		if m != nil {
			_, start = m.Decompose(fix.Span.Start)
			_, end = m.Decompose(fix.Span.End)
		}
		out = append(out, FixItJSON{
			Start:       start,
			End:         end,
			Replacement: fix.Replacement,
		})
	}
	return out
}

func categoryName(c diag.Category) string {
	switch c {
	case diag.CatLexical:
		return "lexical"
	case diag.CatSyntax:
		return "syntax"
	case diag.CatSemantic:
		return "semantic"
	case diag.CatType:
		return "type"
	default:
		return "system"
	}
}
