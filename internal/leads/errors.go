package leads

import "errors"

var (
	// ErrMissingFields is returned when any required form field is empty
	ErrMissingFields = errors.New("required fields missing: industry, problem, message, contact")
)
