// Package autherr is the user-facing error taxonomy of the identity and
// profile backends.
//
// Every failure that leaves the session layer is an *Error carrying a Code.
// Message turns any error into one human-readable sentence: known codes use
// a fixed lookup, everything else falls back to a generic template that
// includes the raw detail. Raw backend text never reaches the user through
// a known code.
//
// Matching works with errors.Is against the exported sentinels, which
// compare by Code only:
//
//	if errors.Is(err, autherr.ErrRequiresRecentLogin) {
//	    // ask for the password again
//	}
package autherr

import (
	"context"
	"errors"
	"fmt"
)

// Code identifies a failure class.
type Code string

const (
	CodeInvalidCredentials     Code = "invalid-credentials"
	CodeEmailAlreadyInUse      Code = "email-already-in-use"
	CodeWeakPassword           Code = "weak-password"
	CodeUserNotFound           Code = "user-not-found"
	CodeRequiresRecentLogin    Code = "requires-recent-login"
	CodeTooManyRequests        Code = "too-many-requests"
	CodeNetworkUnavailable     Code = "network-unavailable"
	CodeNotAuthenticated       Code = "not-authenticated"
	CodeUnsupportedProvider    Code = "unsupported-provider"
	CodeCredentialAlreadyInUse Code = "credential-already-in-use"
	CodePopupClosedByUser      Code = "popup-closed-by-user"
	CodeInvalidArgument        Code = "invalid-argument"
	CodePermissionDenied       Code = "permission-denied"
	CodeExpiredActionCode      Code = "expired-action-code"
	CodeServiceUnavailable     Code = "service-unavailable"
	CodeUnknown                Code = "unknown"
)

// Error is a classified failure. Detail is diagnostic text and is only shown
// to the user for CodeUnknown.
type Error struct {
	Code   Code
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Detail, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrInvalidCredentials     = &Error{Code: CodeInvalidCredentials}
	ErrEmailAlreadyInUse      = &Error{Code: CodeEmailAlreadyInUse}
	ErrWeakPassword           = &Error{Code: CodeWeakPassword}
	ErrUserNotFound           = &Error{Code: CodeUserNotFound}
	ErrRequiresRecentLogin    = &Error{Code: CodeRequiresRecentLogin}
	ErrTooManyRequests        = &Error{Code: CodeTooManyRequests}
	ErrNetworkUnavailable     = &Error{Code: CodeNetworkUnavailable}
	ErrNotAuthenticated       = &Error{Code: CodeNotAuthenticated}
	ErrUnsupportedProvider    = &Error{Code: CodeUnsupportedProvider}
	ErrCredentialAlreadyInUse = &Error{Code: CodeCredentialAlreadyInUse}
	ErrPopupClosedByUser      = &Error{Code: CodePopupClosedByUser}
	ErrInvalidArgument        = &Error{Code: CodeInvalidArgument}
	ErrPermissionDenied       = &Error{Code: CodePermissionDenied}
	ErrExpiredActionCode      = &Error{Code: CodeExpiredActionCode}
	ErrServiceUnavailable     = &Error{Code: CodeServiceUnavailable}
	ErrUnknown                = &Error{Code: CodeUnknown}
)

// New returns an *Error with the given code and detail.
func New(code Code, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

// Wrap classifies err under code. A nil err yields nil.
func Wrap(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Err: err}
}

// CodeOf classifies err. Already classified errors keep their code, context
// cancellation and deadlines count as network problems, and everything else
// is CodeUnknown. CodeOf(nil) is "".
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CodeNetworkUnavailable
	}
	return CodeUnknown
}

// Classify returns err as an *Error, classifying it with CodeOf when needed.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeOf(err), Err: err}
}
