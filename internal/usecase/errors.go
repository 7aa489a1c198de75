package usecase

import (
	"errors"
	"fmt"
)

// Every expected service failure wraps one of these sentinels so the handler
// layer can map it to an HTTP status with errors.Is. Anything else is a
// server fault.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

type serviceError struct {
	kind error
	msg  string
}

func (e *serviceError) Error() string { return e.msg }
func (e *serviceError) Unwrap() error { return e.kind }

func invalidf(format string, args ...any) error {
	return &serviceError{kind: ErrInvalidInput, msg: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) error {
	return &serviceError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func forbiddenf(format string, args ...any) error {
	return &serviceError{kind: ErrForbidden, msg: fmt.Sprintf(format, args...)}
}
