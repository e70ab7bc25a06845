package scan

import (
	"fmt"

	"flc/internal/diag"
	"flc/internal/source"
	"flc/internal/vfs"
)

// ErrorKind tags the shape of an Error.
type ErrorKind uint8

const (
	InvalidErrorKind ErrorKind = iota
	// InternalError: a scanner invariant was violated (missing vfs node,
	// missing cached AST for a file that should have one).
	InternalError
	// InvalidNodeType: a node appeared where the scanner did not expect it
	// (e.g. a non-item kind in an item list).
	InvalidNodeType
	// FileParsingFailed: a file node has no cached AST to scan.
	FileParsingFailed
	// ScopeCreationFailed: the Scope Store rejected a new scope or item
	// (typically a duplicate name).
	ScopeCreationFailed
)

var errorCodes = map[ErrorKind]diag.Code{
	InternalError:       diag.CodeScanInternalError,
	InvalidNodeType:      diag.CodeScanInvalidNodeType,
	FileParsingFailed:    diag.CodeScanFileParsingFailed,
	ScopeCreationFailed:  diag.CodeScanScopeCreationFailed,
}

// Error is the error type the scanner returns.
type Error struct {
	Kind ErrorKind
	File vfs.NodeID
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("scan: %s", e.Msg)
	}
	return fmt.Sprintf("scan: %s", errorCodes[e.Kind].Name())
}

// Diagnostic renders e as a diag.Diagnostic.
func (e *Error) Diagnostic() diag.Diagnostic {
	code := errorCodes[e.Kind]
	msg := e.Msg
	if msg == "" {
		msg = code.Name()
	}
	return diag.NewError(code, code.Name(), e.Span, msg)
}
