package colorconv

import "errors"

// Errors returned by [Parse] and [Named]. Conversions themselves never fail.
var (
	// ErrSyntax reports a malformed color expression.
	ErrSyntax = errors.New("colorconv: invalid color syntax")

	// ErrUnknownModel reports a functional form such as "lab(...)" whose
	// model has no conversion.
	ErrUnknownModel = errors.New("colorconv: unknown color model")

	// ErrUnknownName reports a color keyword that is not in the SVG 1.1 table.
	ErrUnknownName = errors.New("colorconv: unknown color name")

	// ErrOutOfRange reports a component outside its nominal range when
	// strict range checking is enabled.
	ErrOutOfRange = errors.New("colorconv: component out of range")
)
