package codec

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion is returned when a document carries a format version this package cannot read
var ErrUnsupportedVersion = errors.New("unsupported format version")

// EncodeError represents a resume that cannot be written in the document format
type EncodeError struct {
	Message string
	Cause   error
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("encode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// DecodeError represents a document that cannot be turned back into a resume
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
