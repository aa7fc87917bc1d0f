package transpose

import "errors"

var (
	// ErrInvalidSemitones is returned for a negative semitone count.
	ErrInvalidSemitones = errors.New("semitones can not be negative")

	// ErrNullArgument is returned when a required chord, note or list is nil.
	ErrNullArgument = errors.New("argument can not be nil")
)
