package diag

import "flc/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз.
// Реализации: BagReporter (кладёт в Bag), DedupReporter (fan-in фильтр).
type Reporter interface {
	Report(code Code, name string, sev Severity, primary source.Span, msg, label, help string)
}

// ReportBuilder accumulates diagnostic details before emitting to Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to Reporter.
func NewReportBuilder(r Reporter, sev Severity, code Code, name string, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag:     New(sev, code, name, primary, msg),
	}
}

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, code Code, name string, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, name, primary, msg)
}

// ReportWarning is a shortcut for SevWarning diagnostics.
func ReportWarning(r Reporter, code Code, name string, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, name, primary, msg)
}

// WithNote appends a note to diagnostic.
func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithNote(sp, msg)
	return b
}

// WithLabel sets the short annotation shown at the primary span.
func (b *ReportBuilder) WithLabel(label string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithLabel(label)
	return b
}

// WithHelp sets the optional longer-form remediation hint.
func (b *ReportBuilder) WithHelp(help string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithHelp(help)
	return b
}

// Emit sends diagnostic to underlying reporter exactly once. Notes are not
// forwarded: Reporter.Report takes none.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag.Code, b.diag.Name, b.diag.Severity, b.diag.Primary, b.diag.Message, b.diag.Label, b.diag.Help)
	}
	b.emitted = true
}

// Diagnostic returns accumulated diagnostic without emitting.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, name string, sev Severity, primary source.Span, msg, label, help string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(&Diagnostic{
		Severity: sev, Code: code, Name: name, Message: msg,
		Primary: primary, Label: label, Help: help,
	})
}
