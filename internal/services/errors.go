package services

import (
	"errors"
	"fmt"

	"bookclub/internal/repositories"
)

// Error kinds. Match with errors.Is; handlers turn them into HTTP statuses.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Error carries a client-safe message next to its kind and the underlying cause.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Is(target error) bool { return e.Kind == target }
func (e *Error) Unwrap() error        { return e.Cause }

func newError(kind error, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// PublicMessage returns the message safe to show to API clients.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}

// fromRepository classifies a repository error. notFound is the message used for ErrNotFound.
func fromRepository(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return newError(ErrNotFound, err, "%s", notFound)
	case errors.Is(err, repositories.ErrDuplicateKey):
		return newError(ErrConflict, err, "Resource already exists")
	case errors.Is(err, repositories.ErrForeignKey):
		return newError(ErrNotFound, err, "Referenced resource not found")
	case errors.Is(err, repositories.ErrCheckViolation):
		return newError(ErrBadRequest, err, "Value out of range")
	default:
		return newError(ErrServiceUnavailable, err, "Datastore unavailable, try again later")
	}
}
