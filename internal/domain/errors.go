package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when an accident file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidState is returned when a state code never occurs in the loaded file.
	ErrInvalidState = errors.New("invalid STATE number")

	// ErrMalformed is returned when a file is missing required columns or has
	// unparseable values in them.
	ErrMalformed = errors.New("malformed accident file")
)

// InvalidStateError names the state code that was not found.
type InvalidStateError struct {
	State int
	Year  int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid STATE number: %d", e.State)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }
