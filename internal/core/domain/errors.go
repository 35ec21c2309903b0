package domain

import "go.trai.ch/zerr"

var (
	// ErrTypeMismatch is returned when a livecheck setter receives an argument of the wrong shape.
	ErrTypeMismatch = zerr.New("type mismatch")

	// ErrInvalidRegex is returned when a livecheck pattern fails to compile.
	ErrInvalidRegex = zerr.New("invalid regex")

	// ErrUnknownStrategy is returned when a strategy name is not in the strategy registry.
	ErrUnknownStrategy = zerr.New("unknown strategy")

	// ErrVariantNotDefined is returned when a package definition does not declare the requested build variant.
	ErrVariantNotDefined = zerr.New("build variant not defined")

	// ErrFinalized is returned when a livecheck block is modified after it has been finalized.
	ErrFinalized = zerr.New("livecheck is finalized")

	// ErrUnknownField is returned when a livecheck block contains a key that maps to no setter.
	ErrUnknownField = zerr.New("unknown livecheck field")

	// ErrNoDefinitions is returned when no package definition files were given.
	ErrNoDefinitions = zerr.New("no package definitions specified")
)

// typeMismatch wraps ErrTypeMismatch with a message and the offending field so
// that errors.Is keeps matching after metadata is attached.
func typeMismatch(field, message string) error {
	return zerr.With(zerr.Wrap(ErrTypeMismatch, message), "field", field)
}
