package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced by the gateway, validators and shaper.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindConnectivity
	KindTimeout
	KindAuthentication
	KindRequest
	KindShape
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "ValidationFailure"
	case KindConnectivity:
		return "ConnectivityError"
	case KindTimeout:
		return "TimeoutError"
	case KindAuthentication:
		return "AuthenticationError"
	case KindRequest:
		return "RequestError"
	case KindShape:
		return "ShapeError"
	default:
		return "Error"
	}
}

// Error is the typed failure carried through the client. StatusCode is set for
// HTTP-level failures only.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Code       string
	Message    string
	Path       string
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind; a non-empty Code on the target
// must match too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Code == "" || t.Code == e.Code)
}

// Sentinels for errors.Is.
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrConnectivity   = &Error{Kind: KindConnectivity}
	ErrTimeout        = &Error{Kind: KindTimeout}
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrRequest        = &Error{Kind: KindRequest}
	ErrShape          = &Error{Kind: KindShape}
)

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func NewValidationError(code, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

func NewShapeError(format string, args ...any) *Error {
	return &Error{Kind: KindShape, Code: "SHAPE_ERROR", Message: fmt.Sprintf(format, args...)}
}
