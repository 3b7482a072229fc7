package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrInput            = errors.New("input error")
	ErrOutput           = errors.New("output error")
	ErrInvalidOverrides = errors.New("invalid overrides")
	ErrMissingKeys      = errors.New("missing translation keys")
)

// Error ties a domain error kind to the file it concerns.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// InputError reports a file that is missing, unreadable or undecodable.
func InputError(path string, err error) error {
	return &Error{Kind: ErrInput, Path: path, Err: err}
}

// OutputError reports a file that could not be written.
func OutputError(path string, err error) error {
	return &Error{Kind: ErrOutput, Path: path, Err: err}
}

// OverridesError reports an overrides file that parsed but is unusable.
func OverridesError(path string, err error) error {
	return &Error{Kind: ErrInvalidOverrides, Path: path, Err: err}
}

// Code returns a stable code for a domain error, or "" for anything else.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInput):
		return "input_error"
	case errors.Is(err, ErrOutput):
		return "output_error"
	case errors.Is(err, ErrInvalidOverrides):
		return "invalid_overrides"
	case errors.Is(err, ErrMissingKeys):
		return "missing_keys"
	default:
		return ""
	}
}
