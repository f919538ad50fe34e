package types

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every construction failure
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError represents a rejected construction parameter
type ArgumentError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ArgumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid argument %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Message)
}

// Is makes every ArgumentError match ErrInvalidArgument
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func (e *ArgumentError) Unwrap() error {
	return e.Cause
}
