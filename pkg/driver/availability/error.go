// Package availability carries the errors for cameras that are known but
// not currently usable.
package availability

import (
	"errors"
)

var (
	ErrNoDevice = NewError("no camera detected")
	ErrBusy     = NewError("camera is claimed by another process")
	ErrGone     = NewError("camera was disconnected")
)

type errorString struct {
	s string
}

func NewError(text string) error {
	return &errorString{text}
}

// IsError reports whether err is an availability error, as opposed to a
// camera library error.
func IsError(err error) bool {
	var target *errorString
	return errors.As(err, &target)
}

func (e *errorString) Error() string {
	return e.s
}
