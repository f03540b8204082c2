package physics

import "fmt"

// InvalidInputError reports an input parameter outside its physically
// meaningful range.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// NumericalInstabilityError reports an integration failure: a non-finite
// state value, or a flight that never returns to the ground plane within
// the maximum flight time. Usually caused by a corrupted calibration.
type NumericalInstabilityError struct {
	TimeSec float64
	Reason  string
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("integration unstable at t=%.4fs: %s", e.TimeSec, e.Reason)
}
