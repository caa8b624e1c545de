package decode

import (
	"errors"
	"fmt"
)

// Kind classifies a decoding failure
type Kind int

const (
	// MissingField means a required key was absent from the payload
	MissingField Kind = iota + 1
	// InvalidValue means a key was present but its value could not be used
	InvalidValue
	// UnrecognizedShape means the JSON value had none of the accepted layouts
	UnrecognizedShape
)

// Sentinels for errors.Is matching against *Error
var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidValue      = errors.New("invalid value")
	ErrUnrecognizedShape = errors.New("unrecognized shape")
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case InvalidValue:
		return "invalid value"
	case UnrecognizedShape:
		return "unrecognized shape"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case MissingField:
		return ErrMissingField
	case InvalidValue:
		return ErrInvalidValue
	case UnrecognizedShape:
		return ErrUnrecognizedShape
	default:
		return nil
	}
}

// Error is returned when an upstream payload cannot be turned into a model
type Error struct {
	Kind  Kind
	Field string
	Value string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Field != "" {
		msg += fmt.Sprintf(" %q", e.Field)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "decode: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMissingField) and friends match on Kind
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Missing builds a MissingField error for key
func Missing(key string) *Error {
	return &Error{Kind: MissingField, Field: key}
}

// Invalid builds an InvalidValue error carrying the offending value
func Invalid(field, value string, err error) *Error {
	return &Error{Kind: InvalidValue, Field: field, Value: value, Err: err}
}

// Unrecognized builds an UnrecognizedShape error
func Unrecognized(field string, err error) *Error {
	return &Error{Kind: UnrecognizedShape, Field: field, Err: err}
}

// Wrap converts a json package error into an *Error, prefixing the field path.
// Errors that already are *Error get the field prefixed and pass through.
func Wrap(field string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		if field == "" {
			return de
		}
		out := *de
		if out.Field == "" {
			out.Field = field
		} else {
			out.Field = field + "." + out.Field
		}
		return &out
	}
	return &Error{Kind: InvalidValue, Field: field, Err: err}
}
