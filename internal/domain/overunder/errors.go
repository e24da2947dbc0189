package overunder

import (
	crerr "github.com/cockroachdb/errors"
)

// Kind tags a failed over/under lookup.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindHTTP       Kind = "HttpError"
	KindNetwork    Kind = "NetworkError"
	KindDecode     Kind = "DecodeError"
)

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrHTTP       = &Error{Kind: KindHTTP}
	ErrNetwork    = &Error{Kind: KindNetwork}
	ErrDecode     = &Error{Kind: KindDecode}
)

// MsgExactlyOneIdentifier is returned when a query names neither or both
// of player_name and player_id.
const MsgExactlyOneIdentifier = "Provide exactly one of player_id or player_name"

const msgRequestFailed = "Request failed"

// Error is the single failure type of a lookup. StatusCode is zero when no
// HTTP response was received.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	cause      error
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewHTTPError(statusCode int, message string) *Error {
	if message == "" {
		message = msgRequestFailed
	}
	return &Error{Kind: KindHTTP, Message: message, StatusCode: statusCode}
}

func NewNetworkError(cause error) *Error {
	message := "Network error occurred"
	if cause != nil && cause.Error() != "" {
		message = cause.Error()
	}
	return &Error{Kind: KindNetwork, Message: message, cause: cause}
}

func NewDecodeError(statusCode int, message string, cause error) *Error {
	return &Error{Kind: KindDecode, Message: message, StatusCode: statusCode, cause: cause}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is matches the kind sentinels. Errors carrying a message only match themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Message != "" {
		return e == t
	}
	return e.Kind == t.Kind
}

func (e *Error) HasStatusCode() bool {
	return e != nil && e.StatusCode != 0
}

// AsError finds the *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var target *Error
	if crerr.As(err, &target) && target != nil {
		return target, true
	}
	return nil, false
}

// KindOf reports the kind of err, or "" when err is not a lookup failure.
func KindOf(err error) Kind {
	if target, ok := AsError(err); ok {
		return target.Kind
	}
	return ""
}
