package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mlc/internal/diag"
	"mlc/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	<path>:<line>:<col>: <level>: <message> [<CODE>]
//	<строка исходника>
//	        ^~~~
//
// Идёт по bag.Items(); для стабильного вывода зовите bag.Sort() заранее.
func Pretty(w io.Writer, bag *diag.Bag, m *source.Manager, opts PrettyOpts) {
	for _, d := range bag.Items() {
		PrettyOne(w, d, m, opts)
	}
}

// PrettyOne печатает одну диагностику.
func PrettyOne(w io.Writer, d *diag.Diagnostic, m *source.Manager, opts PrettyOpts) {
	info := d.Info()

	header := headerPrefix(d.Loc, m, opts)
	levelText := info.Level.String()
	if opts.Color {
		levelText = levelColor(info.Level).Sprint(levelText)
	}

	fmt.Fprintf(w, "%s%s: %s [%s]\n", header, levelText, d.Message(), d.ID)

	if opts.ShowSource {
		printSourceLine(w, d, m, opts)
	}

	if opts.ShowFixIts {
		for _, fix := range d.FixIts {
			fmt.Fprintf(w, "  fix: replace with %q\n", fix.Replacement)
		}
	}
}

// headerPrefix возвращает "path:line:col: " или пустую строку для
// диагностик без локации.
func headerPrefix(loc source.Loc, m *source.Manager, opts PrettyOpts) string {
	if m == nil || !loc.IsValid() {
		return ""
	}
	id := m.FileIDFor(loc)
	if !id.IsValid() {
		return ""
	}
	f := m.File(id)
	pos, ok := m.Position(loc)
	if !ok {
		return f.FormatPath(opts.PathMode.formatArg(), opts.BaseDir) + ": "
	}
	return fmt.Sprintf("%s:%d:%d: ",
		f.FormatPath(opts.PathMode.formatArg(), opts.BaseDir), pos.Line, pos.Col)
}

func printSourceLine(w io.Writer, d *diag.Diagnostic, m *source.Manager, opts PrettyOpts) {
	if m == nil || !d.Loc.IsValid() {
		return
	}
	id := m.FileIDFor(d.Loc)
	if !id.IsValid() {
		return
	}
	f := m.File(id)
	pos, ok := m.Position(d.Loc)
	if !ok {
		return
	}

	line := f.GetLine(pos.Line)
	fmt.Fprintf(w, "%s\n", line)

	// Каретка под колонкой, подчёркивание до конца первого Range на строке.
	col := int(pos.Col)
	if col < 1 || col > len(line)+1 {
		return
	}
	pad := caretPadding(line[:col-1])

	width := 1
	for _, r := range d.Ranges {
		if r.Start == d.Loc {
			width = runewidth.StringWidth(string(m.Text(r)))
			break
		}
	}
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "%s%s\n", pad, marker)
}

// caretPadding строит отступ той же визуальной ширины, что и префикс
// строки. Табы сохраняются, чтобы каретка совпала с терминальными
// табуляциями.
func caretPadding(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
	}
	return b.String()
}

func levelColor(l diag.Level) *color.Color {
	switch l {
	case diag.Note:
		return color.New(color.FgCyan, color.Bold)
	case diag.Warning:
		return color.New(color.FgYellow, color.Bold)
	case diag.Fatal:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
