package transmission

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ArgumentError indicates that caller-supplied arguments violate a method
// precondition. It is returned before any network traffic happens.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

// ProtocolError indicates that the daemon processed the request but reported
// a failure. Message carries the daemon's result string verbatim.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("rpc failure: %s", e.Message)
}

// SessionError indicates that the session handshake could not be completed:
// the daemon rejected the session ID and did not hand out a usable
// replacement. Recovery requires caller intervention.
type SessionError struct {
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session error: %s", e.Message)
}

// TransportError indicates an HTTP-layer failure: an unexpected status code,
// or a network-level error such as a refused connection or a timeout.
type TransportError struct {
	Status int // HTTP status code, 0 for network-level failures
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport error: %d %s", e.Status, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("transport error: %s (%v)", e.Reason, e.Err)
	}
	return fmt.Sprintf("transport error: %s", e.Reason)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline or cancellation.
func (e *TransportError) Timeout() bool {
	if e.Err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(e.Err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// classifyNetworkErr wraps a network-level failure into a TransportError with
// a reason a human can act on. Mirrors the status branch: transport problems
// always surface as TransportError, never as a bare library error.
func classifyNetworkErr(err error) *TransportError {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &TransportError{
			Reason: fmt.Sprintf("failed to resolve hostname %s", dnsErr.Name),
			Err:    err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return &TransportError{Reason: "connection timed out", Err: err}
		}
		return &TransportError{Reason: "network operation failed", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return &TransportError{Reason: "request timed out", Err: err}
		}
	}

	return &TransportError{Reason: "request failed", Err: err}
}

// IsRetryable returns true for errors that may clear up on their own:
// transport-level failures other than client mistakes. Protocol, session and
// argument errors always require a change on the caller's side.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		return false
	}

	switch transportErr.Status {
	case 0:
		// Network-level failure, worth another attempt.
		return true
	case 401, 403:
		return false
	default:
		return transportErr.Status >= 500
	}
}
