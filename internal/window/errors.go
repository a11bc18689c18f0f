package window

import "fmt"

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Configuration errors. These are sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidLength indicates a viewport dimension with no numeric magnitude.
	ErrInvalidLength = constError("invalid length")

	// ErrNonPositiveItemSize indicates an item width or height that is zero or negative.
	ErrNonPositiveItemSize = constError("item size must be greater than zero")

	// ErrNegativeBuffer indicates a negative buffer count.
	ErrNegativeBuffer = constError("buffer must not be negative")
)

// ConfigError reports which sizing field was rejected and why.
// Configuration errors are fatal at setup and never retried.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
