package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil value.
	ErrNilConfig = errors.New("config: nil config")
	// ErrNotStructPointer is returned when Load receives anything other than
	// a non-nil pointer to a struct.
	ErrNotStructPointer = errors.New("config: expected non-nil pointer to struct")
	// ErrParseFailed is returned when environment parsing fails, e.g. a
	// required variable is missing or a value cannot be converted.
	ErrParseFailed = errors.New("config: failed to parse environment")
)
