package domain

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when no access token was supplied at
// startup, or the --fb-token flag had no value.
var ErrMissingCredential = errors.New("missing credential")

// TransportError describes a Graph call that produced no usable JSON: the
// request could not be sent, timed out, or the platform answered with a
// status and body that carry no error object.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PlatformError is the "error" object of a Graph API response body.
type PlatformError struct {
	Message    string `json:"message"`
	Type       string `json:"type"`
	Code       int    `json:"code"`
	Subcode    int    `json:"error_subcode"`
	UserTitle  string `json:"error_user_title"`
	UserMsg    string `json:"error_user_msg"`
	FBTraceID  string `json:"fbtrace_id"`
	StatusCode int    `json:"-"`
}

func (e *PlatformError) Error() string {
	if e.Message == "" {
		return "Unknown error"
	}
	return e.Message
}

// Error kinds reported in logs and the invocation audit.
const (
	KindMissingCredential = "missing_credential"
	KindTransport         = "transport"
	KindPlatform          = "platform"
	KindInvalidArguments  = "invalid_arguments"
	KindInternal          = "internal"
)

// ErrInvalidArguments marks a tool call that lacks a required argument or
// carries one of the wrong type.
var ErrInvalidArguments = errors.New("invalid arguments")

// ErrorKind classifies err into one of the Kind constants. A nil error has
// an empty kind.
func ErrorKind(err error) string {
	var (
		platformErr  *PlatformError
		transportErr *TransportError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return KindMissingCredential
	case errors.Is(err, ErrInvalidArguments):
		return KindInvalidArguments
	case errors.As(err, &platformErr):
		return KindPlatform
	case errors.As(err, &transportErr):
		return KindTransport
	default:
		return KindInternal
	}
}

// Cause returns the message best suited for a tool caller: the platform's
// own message when the Graph API rejected the request, the transport
// description when the call failed, otherwise the error text itself.
func Cause(err error) string {
	var (
		platformErr  *PlatformError
		transportErr *TransportError
	)
	switch {
	case errors.As(err, &platformErr):
		return platformErr.Error()
	case errors.As(err, &transportErr):
		return transportErr.Error()
	default:
		return err.Error()
	}
}
