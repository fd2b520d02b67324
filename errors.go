package registro

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// Error type discriminators carried by ClientError.Type.
const (
	// ErrorTypeValidation marks invalid client configuration detected at
	// construction time.
	ErrorTypeValidation = "Validation"

	// ErrorTypeInvalidOptions marks caller misuse of per-call options,
	// detected before any I/O.
	ErrorTypeInvalidOptions = "InvalidOptions"

	// ErrorTypeTransport marks connection, timeout or malformed-response
	// failures below the HTTP status line.
	ErrorTypeTransport = "Transport"

	// ErrorTypeAPI marks a non-2xx HTTP response from the server.
	ErrorTypeAPI = "API"

	// ErrorTypeDecode marks a response body that does not match the
	// expected record shape.
	ErrorTypeDecode = "Decode"
)

// Sentinel errors for common failure scenarios
var (
	// ErrConsistencyConflict is returned when AllowStale and
	// RequireConsistent are both set on the same QueryOptions.
	ErrConsistencyConflict = errors.New("registro: allow stale and require consistent are mutually exclusive")
)

// ClientError represents a classified failure from the client. Type is one
// of the ErrorType* constants; the remaining fields carry request context
// for diagnostics.
type ClientError struct {
	Type       string
	Message    string
	Cause      error
	RequestID  string
	Method     string
	URL        string
	Endpoint   string
	StatusCode int
	Timestamp  time.Time
	Duration   time.Duration
}

// Error implements error interface.
func (e *ClientError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ClientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *ClientError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*ClientError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *ClientError) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Error Type: %s\n", e.Type)
	info += fmt.Sprintf("Message: %s\n", e.Message)
	if e.RequestID != "" {
		info += fmt.Sprintf("Request ID: %s\n", e.RequestID)
	}
	if e.Method != "" {
		info += fmt.Sprintf("Method: %s\n", e.Method)
	}
	if e.URL != "" {
		info += fmt.Sprintf("URL: %s\n", e.URL)
	}
	if e.Endpoint != "" {
		info += fmt.Sprintf("Endpoint: %s\n", e.Endpoint)
	}
	if e.StatusCode > 0 {
		info += fmt.Sprintf("Status Code: %d\n", e.StatusCode)
	}
	if !e.Timestamp.IsZero() {
		info += fmt.Sprintf("Timestamp: %s\n", e.Timestamp.Format(time.RFC3339))
	}
	if e.Duration > 0 {
		info += fmt.Sprintf("Duration: %v\n", e.Duration)
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}

// IsNoChange reports whether err is the expected steady state of a blocking
// query: a timeout-shaped transport failure meaning the server held the
// connection for the full wait budget without the data changing. Callers
// building a watch loop should re-issue the call with the same index when
// this returns true, and surface all other errors.
func IsNoChange(err error) bool {
	var clientErr *ClientError
	if !errors.As(err, &clientErr) || clientErr.Type != ErrorTypeTransport {
		return false
	}
	if errors.Is(clientErr.Cause, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(clientErr.Cause, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

// IsServerError reports whether err is an API error with a 5xx status.
// Whether such failures are worth retrying depends on the endpoint's
// idempotency, so the decision is left to the caller.
func IsServerError(err error) bool {
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		return false
	}
	return clientErr.Type == ErrorTypeAPI && clientErr.StatusCode >= 500
}
