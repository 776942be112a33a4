package domain

import (
	"errors"
	"strings"
)

// Kind is the stable discriminant of a failure, used by transports to pick a
// status code without inspecting messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindInvalidCredentials
	KindPermissionDenied
	KindNotFound
	KindInvalidID
	KindSystem
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindPermissionDenied:
		return "permission_denied"
	case KindNotFound:
		return "not_found"
	case KindInvalidID:
		return "invalid_id"
	case KindSystem:
		return "system"
	default:
		return "unknown"
	}
}

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrSystem             = errors.New("system failure")
)

// ValidationError carries every rule violation of one request, in rule order.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// SystemError is an infrastructure failure. Message is safe to show to
// users; Err is the cause and is only logged.
type SystemError struct {
	Message string
	Err     error
}

func (e *SystemError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *SystemError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSystem}
	}
	return []error{ErrSystem, e.Err}
}

// Error is a single-message failure of a given kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindInvalidCredentials:
		return ErrInvalidCredentials
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindNotFound:
		return ErrNotFound
	case KindInvalidID:
		return ErrInvalidID
	case KindValidation:
		return ErrValidation
	case KindSystem:
		return ErrSystem
	}
	return nil
}

func InvalidCredentials(msg string) error { return &Error{Kind: KindInvalidCredentials, Message: msg} }
func PermissionDenied(msg string) error   { return &Error{Kind: KindPermissionDenied, Message: msg} }
func NotFound(msg string) error           { return &Error{Kind: KindNotFound, Message: msg} }
func InvalidID(msg string) error          { return &Error{Kind: KindInvalidID, Message: msg} }

// Validation builds a ValidationError, or returns nil when reasons is empty.
func Validation(reasons ...string) error {
	if len(reasons) == 0 {
		return nil
	}
	return &ValidationError{Reasons: reasons}
}

// System wraps cause with a user-facing message.
func System(msg string, cause error) error {
	return &SystemError{Message: msg, Err: cause}
}

// KindOf classifies err. Errors outside the taxonomy are KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrSystem):
		return KindSystem
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidID):
		return KindInvalidID
	default:
		return KindUnknown
	}
}

// Reasons returns the user-facing messages of err. Causes of system errors
// and errors outside the taxonomy are never included.
func Reasons(err error) []string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reasons
	}
	var serr *SystemError
	if errors.As(err, &serr) {
		return []string{serr.Message}
	}
	var derr *Error
	if errors.As(err, &derr) {
		return []string{derr.Message}
	}
	return nil
}
