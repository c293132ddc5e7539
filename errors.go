package decor

import "errors"

// Sentinel errors for decorator configuration.
var (
	// ErrUnknownRule is returned when a string-driven rule descriptor names
	// a rule kind this package does not implement. Unknown rules surface as
	// configuration errors rather than being silently skipped.
	ErrUnknownRule = errors.New("decor: unknown validation rule")

	// ErrInvalidRule is returned when a rule descriptor is recognized but
	// its argument is malformed (e.g. a non-numeric length bound).
	ErrInvalidRule = errors.New("decor: invalid validation rule")
)

// IsUnknownRule checks if err reports an unrecognized rule kind.
func IsUnknownRule(err error) bool {
	return errors.Is(err, ErrUnknownRule)
}

// IsInvalidRule checks if err reports a malformed rule descriptor.
func IsInvalidRule(err error) bool {
	return errors.Is(err, ErrInvalidRule)
}
