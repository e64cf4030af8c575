package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindBadRequest   ErrorKind = "BAD_REQUEST"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindConflict     ErrorKind = "CONFLICT"
	KindInternal     ErrorKind = "INTERNAL"
)

// Error is the error type returned by all services. The HTTP layer maps
// Kind to a status code; Message is safe to show to the caller.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func BadRequestf(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Unauthorizedf(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err, or KindInternal for errors that did not
// originate from a service.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
