package diag

import "flc/internal/source"

// Note provides auxiliary context for a diagnostic message: a secondary span
// plus a short explanation (e.g. "first defined here").
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic captures a single issue produced by one of the pipeline phases.
//
// The shape is deliberately flat and serialisable: {code, name, message,
// primary span, label, help}, plus optional secondary notes for diagnostics
// that need to point at more than one location (e.g. a cyclic import chain).
// There is no rendering or fix-suggestion machinery here; phases only ever
// emit this record, they never format it.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Name     string // stable machine name, e.g. "UnterminatedString"
	Message  string
	Primary  source.Span
	Label    string // short annotation shown at the primary span
	Help     string // optional longer-form remediation hint
	Notes    []Note
}

// WithNote appends a secondary span/message to the diagnostic.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
