package shadow

import "fmt"

// InvalidParameterError reports a parameter that violates a geometry
// invariant. It names the offending field; callers are expected to correct
// the input and retry rather than clamp silently.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("shadow: invalid parameter %s: %s", e.Field, e.Reason)
}
