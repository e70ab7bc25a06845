package diag

import "flc/internal/source"

func New(sev Severity, code Code, name string, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Name:     name,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, name string, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, name, primary, msg)
}

// WithLabel sets the short annotation shown at the primary span.
func (d Diagnostic) WithLabel(label string) Diagnostic {
	d.Label = label
	return d
}

// WithHelp sets the optional longer-form remediation hint.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}
