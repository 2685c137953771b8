package raster

import "fmt"

// DecodeError reports an image that could not be decoded. It is not
// recoverable; callers should surface it as a user-facing message.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("raster: decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidParameterError reports a parameter that violates an invariant.
// It names the offending field so callers can correct the input.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("raster: invalid parameter %s: %s", e.Field, e.Reason)
}
