package resolve

import (
	"fmt"

	"flc/internal/diag"
	"flc/internal/scope"
	"flc/internal/source"
)

// ErrorKind tags the shape of an Error.
type ErrorKind uint8

const (
	InvalidErrorKind ErrorKind = iota
	// InternalError: a resolver invariant was violated (missing ast node,
	// unknown scope id).
	InternalError
	// BareIdentifierImport: a `use` target resolved to a bare Id with no
	// path at all, which names nothing importable.
	BareIdentifierImport
	// UnresolvedIdentifier: a path segment did not resolve to any item in
	// its scope.
	UnresolvedIdentifier
	// ModuleNotFound: a path segment resolved to an item with no scope of
	// its own, but the path continues past it.
	ModuleNotFound
	// CyclicImport: resolving a scope's imports required resolving a scope
	// that is already mid-resolution.
	CyclicImport
)

var errorCodes = map[ErrorKind]diag.Code{
	InternalError:         diag.CodeScanInternalError,
	BareIdentifierImport:  diag.CodeScanInvalidNodeType,
	UnresolvedIdentifier:  diag.CodeScanUnresolvedIdentifier,
	ModuleNotFound:        diag.CodeScanModuleNotFound,
	CyclicImport:          diag.CodeScanCyclicImport,
}

// Error is the error type the import resolver returns.
type Error struct {
	Kind  ErrorKind
	Scope scope.ID
	Span  source.Span
	Msg   string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("resolve: %s", e.Msg)
	}
	return fmt.Sprintf("resolve: %s", errorCodes[e.Kind].Name())
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
