package pdf

import (
	"errors"
	"fmt"
)

var (
	ErrNoFiles   = errors.New("file list is empty or missing")
	ErrNoContent = errors.New("no text or images were found on the PDF pages")
)

// ValidationError reports a request that can not be served as sent.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InternalError wraps any failure while decoding input or driving the
// PDF libraries. It is terminal for the request.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func validationError(err error) error {
	return &ValidationError{Err: err}
}

func internalError(op string, err error) error {
	var internalErr *InternalError
	if errors.As(err, &internalErr) {
		return err
	}
	return &InternalError{Op: op, Err: err}
}

// recoverError converts a panic raised inside a PDF library into an error.
func recoverError(op string, err *error) {
	if r := recover(); r != nil {
		*err = &InternalError{Op: op, Err: fmt.Errorf("%v", r)}
	}
}
