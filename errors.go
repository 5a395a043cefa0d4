package seedpaint

import "errors"

// Sentinel errors. Every failure returned by this package wraps one of these,
// so callers branch with errors.Is.
var (
	// ErrOutOfRange reports a settings write outside the declared [Min, Max].
	ErrOutOfRange = errors.New("seedpaint: value out of range")
	// ErrOffStep reports a settings write that is not Min plus a whole
	// number of Steps.
	ErrOffStep = errors.New("seedpaint: value not on step")
	// ErrUnknownParam reports a read or write of an undeclared parameter.
	ErrUnknownParam = errors.New("seedpaint: unknown parameter")
	// ErrBadDeclaration reports an invalid parameter declaration.
	ErrBadDeclaration = errors.New("seedpaint: bad parameter declaration")
	// ErrInvalidRange reports an RNG draw with min > max or a non-finite bound.
	ErrInvalidRange = errors.New("seedpaint: invalid range")
	// ErrLifecycle reports a lifecycle call made in a state that forbids it.
	ErrLifecycle = errors.New("seedpaint: lifecycle violation")
)
