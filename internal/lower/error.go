package lower

import (
	"fmt"

	"flc/internal/diag"
	"flc/internal/source"
)

// ErrorKind tags the shape of an Error.
type ErrorKind uint8

const (
	InvalidErrorKind ErrorKind = iota
	// InternalError: a lowerer invariant was violated (missing ast node,
	// missing cached file, missing scope).
	InternalError
	// UnresolvedIdentifier: an Id expression did not resolve in its
	// lexical scope chain.
	UnresolvedIdentifier
	// LiteralError: a literal's source spelling could not be parsed into
	// its HIR representation (malformed int/real/char text).
	LiteralError
	// UnsupportedItem: an AST node kind appeared somewhere the lowerer has
	// no handler for.
	UnsupportedItem
)

var errorCodes = map[ErrorKind]diag.Code{
	InternalError:         diag.CodeLowerInternalError,
	UnresolvedIdentifier:  diag.CodeLowerUnresolvedIdentifier,
	LiteralError:          diag.CodeLowerLiteralError,
	UnsupportedItem:       diag.CodeLowerUnsupportedItem,
}

// Error is the error type the lowerer returns.
type Error struct {
	Kind ErrorKind
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("lower: %s", e.Msg)
	}
	return fmt.Sprintf("lower: %s", errorCodes[e.Kind].Name())
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
