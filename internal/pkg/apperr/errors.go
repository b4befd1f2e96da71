// Package apperr defines the error taxonomy shared by the order service and
// the API gateway. Every failure that crosses a process boundary is
// classified into one of the sentinel kinds below; callers test with
// errors.Is and never compare messages.
package apperr

import (
	"errors"
	"strings"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInternal        = errors.New("internal error")
)

// ErrOrderNotFound is returned both when an order does not exist and when
// the caller is not allowed to see it.
var ErrOrderNotFound = &NotFoundError{Resource: "order"}

// Kind is the coarse classification used to pick transport status codes.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// KindOf classifies err. Anything that does not wrap a known sentinel is
// internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	default:
		return KindInternal
	}
}

// ValidationError carries every problem found in a request.
type ValidationError struct {
	Problems []string
}

// Invalid builds a ValidationError from one or more problems.
func Invalid(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError names the missing resource without echoing its identifier.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError reports an operation that is inconsistent with current state.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// ForbiddenError reports an authenticated caller lacking a required role.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// Problems returns the validation problems carried by err, if any.
func Problems(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Problems
	}
	return nil
}

// PublicMessage is the text safe to show to a client for err. Internal
// errors never leak their detail.
func PublicMessage(err error) string {
	switch KindOf(err) {
	case KindValidation:
		return "Invalid request data"
	case KindNotFound:
		var nf *NotFoundError
		if errors.As(err, &nf) && nf.Resource != "" {
			return strings.ToUpper(nf.Resource[:1]) + nf.Resource[1:] + " not found"
		}
		return "Resource not found"
	case KindForbidden:
		var fe *ForbiddenError
		if errors.As(err, &fe) && fe.Reason != "" {
			return fe.Reason
		}
		return "Access denied"
	case KindConflict:
		var ce *ConflictError
		if errors.As(err, &ce) && ce.Reason != "" {
			return ce.Reason
		}
		return "Request conflicts with the current state"
	case KindUnauthenticated:
		return "Authentication required"
	default:
		return "An error occurred while processing the request"
	}
}
