package application

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for common conditions
var (
	ErrInvalidValue = errors.New("invalid value")
	ErrOutOfRange   = errors.New("out of range")
	ErrNotFound     = errors.New("not found")
)

// ValueError represents malformed input: a bad axis name, a body name
// without a numeric suffix, or an unreadable numeric record
type ValueError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// RangeError represents a number outside its allowed bounds
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d not in [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NotFoundError represents a missing expected file or directory
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || target == fs.ErrNotExist
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
