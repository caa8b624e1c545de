package edsm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-edsm/pkg/edsm/decode"

	"github.com/go-playground/validator/v10"
)

// DecodeError is returned when a response body does not fit the models
type DecodeError = decode.Error

var (
	// ErrInvalidInput matches every *ValidationError
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownSystem is returned when EDSM answers a single-system lookup with an
	// empty body, which is how it reports a name it does not know
	ErrUnknownSystem = errors.New("unknown system")
)

// TransportError wraps connection, timeout and body read failures
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("edsm %s: request to %s failed: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline rather than a refused or
// broken connection
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// RemoteError is returned for any non-2xx reply. The body is never decoded.
type RemoteError struct {
	Op         string
	URL        string
	StatusCode int
	Status     string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("edsm %s: %s returned %s", e.Op, e.URL, e.Status)
}

// ValidationError is returned before any request is sent when the caller's
// input breaks a rule
type ValidationError struct {
	Op    string
	Field string
	Rule  string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("edsm %s: %s fails %q (got %v)", e.Op, e.Field, e.Rule, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidInput
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// newValidationError reports the first failed rule from a validator error
func newValidationError(op string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Op: op, Err: err}
	}
	fe := verrs[0]
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return &ValidationError{
		Op:    op,
		Field: strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
		Rule:  rule,
		Value: fe.Value(),
		Err:   err,
	}
}
