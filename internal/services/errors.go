package services

import (
	"errors"
	"fmt"
)

// Error variables
var (
	// ErrInvalidArgument marks malformed or out-of-range input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks a missing singular resource.
	ErrNotFound = errors.New("not found")
	// ErrStoreFailure marks an unexpected error from a store.
	ErrStoreFailure = errors.New("store failure")
	// ErrAlreadyExists marks a create that collides with an existing resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden marks an authenticated caller without the required role.
	ErrForbidden = errors.New("forbidden")

	ErrUserAlreadyExists  = errors.New("User already exists")
	ErrUserDoesNotExist   = errors.New("User not found.")
	ErrInvalidCredentials = errors.New("Password didn't match.")
	ErrInvalidOTP         = errors.New("Invalid or expired OTP")
)

// Error is a categorised error carrying a client-facing message.
// errors.Is matches it against its Kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func storeError(context string, err error) error {
	return &Error{Kind: ErrStoreFailure, Msg: fmt.Sprintf("%s: %v", context, err)}
}

func invalidArgument(format string, args ...any) error {
	return &Error{Kind: ErrInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func alreadyExists(format string, args ...any) error {
	return &Error{Kind: ErrAlreadyExists, Msg: fmt.Sprintf(format, args...)}
}

func forbidden(format string, args ...any) error {
	return &Error{Kind: ErrForbidden, Msg: fmt.Sprintf(format, args...)}
}
