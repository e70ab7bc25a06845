// Package diag defines the diagnostic model shared by every pipeline phase:
// lexer, scanner, import resolver, and lowerer.
//
// # Purpose
//
//   - Provide a deterministic, serialisable record that captures findings
//     produced by a phase: {code, name, message, primary span, label, help}.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or rendering.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration — rendering
// diagnostics for a human is explicitly out of scope for the core; phases
// only ever emit Diagnostic values.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity — tri-level enum (Info, Warning, Error), severity.go.
//   - Code — compact numeric identifier partitioned by phase, codes.go.
//   - Name — the code's stable machine name (Code.Name()).
//   - Message — human oriented text.
//   - Primary — the canonical source.Span pointing at the issue.
//   - Label — short annotation shown at the primary span.
//   - Help — optional longer-form remediation hint.
//   - Notes — optional secondary spans/messages (e.g. a cyclic import chain).
//
// # Emitting diagnostics
//
// Phases emit through a diag.Reporter to stay decoupled from storage. Use
// ReportError/ReportWarning via NewReportBuilder, chain WithNote/WithLabel/
// WithHelp, then call Emit. Reporter.Report has no notes parameter, so Emit
// does not forward notes; they stay on the builder's Diagnostic().
// diag.BagReporter collects diagnostics into a Bag,
// which supports sorting, deduplication and filtering for tests.
package diag
