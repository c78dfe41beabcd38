package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrDeclined is returned when the user answers no to an overwrite.
	ErrDeclined = errors.New("prompt: overwrite declined")
)
