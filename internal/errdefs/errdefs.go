// Package errdefs defines the errors surfaced to the user. None of them is
// retried: they all describe conditions the user has to fix.
package errdefs

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotFoundError is returned when an identifier does not resolve to a
// container.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such container: %s", e.ID)
}

// NotFound marks the error for github.com/containerd/errdefs.IsNotFound.
func (e *NotFoundError) NotFound() {}

// RuntimeUnavailableError is returned when the container engine cannot be
// reached.
type RuntimeUnavailableError struct {
	Err error
}

func (e *RuntimeUnavailableError) Error() string {
	return fmt.Sprintf("cannot connect to the container runtime: %s", e.Err)
}

func (e *RuntimeUnavailableError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a merge target is not a valid Compose file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse Compose file %q: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError is returned when a file cannot be read or written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if err, or any error it wraps, is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsRuntimeUnavailable returns true if err, or any error it wraps, is a
// RuntimeUnavailableError
func IsRuntimeUnavailable(err error) bool {
	var target *RuntimeUnavailableError
	return errors.As(err, &target)
}

// IsParse returns true if err, or any error it wraps, is a ParseError
func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsIO returns true if err, or any error it wraps, is an IOError
func IsIO(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}
