package lexer

import (
	"flc/internal/diag"
	"flc/internal/source"
)

// Options configures a Lexer instance.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) reportLex(code diag.Code, name string, sev diag.Severity, sp source.Span, msg, label, help string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, name, sev, sp, msg, label, help)
	}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.reportLex(code, code.Name(), diag.SevError, sp, msg, "", "")
}
