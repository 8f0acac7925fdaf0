package diag

import (
	"mlc/internal/source"
)

// FixIt suggests a textual replacement for a source range.
type FixIt struct {
	Span        source.Span
	Replacement string
}

// Diagnostic is a single reported finding: a definition ID plus the location,
// message arguments, and optional highlights collected at the report site.
type Diagnostic struct {
	ID     ID
	Loc    source.Loc
	Args   []string
	Ranges []source.Span
	FixIts []FixIt

	// Promoted помечает warning, повышенный до error политикой менеджера.
	Promoted bool
}

// New creates a diagnostic at the given location.
func New(id ID, loc source.Loc) *Diagnostic {
	return &Diagnostic{ID: id, Loc: loc}
}

// AddArg appends a message argument for %N substitution.
func (d *Diagnostic) AddArg(arg string) *Diagnostic {
	d.Args = append(d.Args, arg)
	return d
}

// AddRange appends a source range to highlight.
func (d *Diagnostic) AddRange(span source.Span) *Diagnostic {
	d.Ranges = append(d.Ranges, span)
	return d
}

// AddFixIt appends a fix-it hint.
func (d *Diagnostic) AddFixIt(span source.Span, replacement string) *Diagnostic {
	d.FixIts = append(d.FixIts, FixIt{Span: span, Replacement: replacement})
	return d
}

// Info returns the definition of the diagnostic with promotion applied.
func (d *Diagnostic) Info() Info {
	info := GetInfo(d.ID)
	if d.Promoted && info.Level == Warning {
		info.Level = Error
	}
	return info
}

// Message returns the detailed message with arguments substituted.
func (d *Diagnostic) Message() string {
	return FormatMessage(d.Info().Detail, d.Args)
}

// Level returns the effective severity from the definition table.
func (d *Diagnostic) Level() Level {
	return d.Info().Level
}
