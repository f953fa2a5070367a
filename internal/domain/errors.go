package domain

import (
	"errors"
	"fmt"
)

// InputError is returned when the shape of a calculation request is invalid.
// Nothing is computed when one is returned.
type InputError struct {
	Reason string
}

func (e InputError) Error() string {
	return "invalid portfolio input: " + e.Reason
}

func IsInputError(err error) bool {
	var inputErr InputError
	return errors.As(err, &inputErr)
}

func NewInputError(format string, args ...any) InputError {
	return InputError{
		Reason: fmt.Sprintf(format, args...),
	}
}
