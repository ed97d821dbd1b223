package marketo

import (
	"errors"
	"fmt"
	"strings"
)

// Kind distinguishes which half of the client produced an error.
type Kind int

const (
	// KindAuth marks failures during the OAuth2 token exchange: a non-200
	// from the identity endpoint, or a transport/parse failure while
	// authenticating.
	KindAuth Kind = iota + 1

	// KindRequest marks failures during an authenticated REST call: a
	// non-2xx response, an unsupported method, or a transport/decode
	// failure while dispatching.
	KindRequest
)

// String returns a human-readable label for the error kind.
func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "authentication failed"
	case KindRequest:
		return "request failed"
	default:
		return "error"
	}
}

// Error is the single error type surfaced by this client. Every failure,
// whether from the identity exchange or a REST call, is reported as an
// *Error; the client never retries or recovers internally.
//
// StatusCode is the HTTP status when the failure came from a response; it
// is zero for pure transport, encode or decode failures. Err holds the
// wrapped cause, if any, and is reachable via errors.Unwrap / errors.As.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("marketo: ")
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsAuthError reports whether err is (or wraps) a client error of the
// authentication kind.
func IsAuthError(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindAuth
}

// IsRequestError reports whether err is (or wraps) a client error of the
// request kind.
func IsRequestError(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindRequest
}

// wrapErr wraps cause into an *Error of the given kind, unless cause
// already is a client error, in which case it is propagated unchanged.
// Causes are wrapped exactly once, at the boundary that first saw them.
func wrapErr(kind Kind, message string, cause error) error {
	var ce *Error
	if errors.As(cause, &ce) {
		return cause
	}
	return &Error{Kind: kind, Message: message, Err: cause}
}
