package registro

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestClientErrorFormatting(t *testing.T) {
	err := &ClientError{
		Type:       ErrorTypeAPI,
		Message:    "rate limit exceeded",
		RequestID:  "req-1",
		StatusCode: 429,
	}

	msg := err.Error()
	if !strings.Contains(msg, ErrorTypeAPI) {
		t.Errorf("Expected type in message, got %q", msg)
	}
	if !strings.Contains(msg, "req-1") {
		t.Errorf("Expected request ID in message, got %q", msg)
	}
	if !strings.Contains(msg, "429") {
		t.Errorf("Expected status code in message, got %q", msg)
	}
}

func TestClientErrorNil(t *testing.T) {
	var err *ClientError
	if err.Error() != "<nil>" {
		t.Errorf("Expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("Expected nil unwrap")
	}
}

func TestClientErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := &ClientError{Type: ErrorTypeTransport, Message: "request could not complete", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the cause")
	}
}

func TestClientErrorIsComparesTypes(t *testing.T) {
	err := &ClientError{Type: ErrorTypeDecode, Message: "bad shape"}
	target := &ClientError{Type: ErrorTypeDecode}

	if !errors.Is(err, target) {
		t.Error("Expected errors matching on type")
	}

	other := &ClientError{Type: ErrorTypeAPI}
	if errors.Is(err, other) {
		t.Error("Expected mismatch on different type")
	}
}

func TestIsNoChangeClassification(t *testing.T) {
	timeoutErr := &ClientError{
		Type:  ErrorTypeTransport,
		Cause: context.DeadlineExceeded,
	}
	if !IsNoChange(timeoutErr) {
		t.Error("Expected IsNoChange=true for deadline exceeded transport error")
	}

	apiErr := &ClientError{Type: ErrorTypeAPI, StatusCode: 500}
	if IsNoChange(apiErr) {
		t.Error("Expected IsNoChange=false for API error")
	}

	plainTransport := &ClientError{Type: ErrorTypeTransport, Cause: fmt.Errorf("connection refused")}
	if IsNoChange(plainTransport) {
		t.Error("Expected IsNoChange=false for non-timeout transport error")
	}

	if IsNoChange(nil) {
		t.Error("Expected IsNoChange=false for nil")
	}
}

func TestIsServerError(t *testing.T) {
	if !IsServerError(&ClientError{Type: ErrorTypeAPI, StatusCode: 503}) {
		t.Error("Expected IsServerError=true for 503")
	}
	if IsServerError(&ClientError{Type: ErrorTypeAPI, StatusCode: 404}) {
		t.Error("Expected IsServerError=false for 404")
	}
	if IsServerError(&ClientError{Type: ErrorTypeTransport}) {
		t.Error("Expected IsServerError=false for transport error")
	}
}

func TestDebugInfo(t *testing.T) {
	err := &ClientError{
		Type:       ErrorTypeAPI,
		Message:    "no leader elected",
		Method:     "GET",
		URL:        "http://127.0.0.1:8500/v1/catalog/nodes",
		Endpoint:   "/v1/catalog/nodes",
		StatusCode: 500,
		Timestamp:  time.Now(),
		Duration:   25 * time.Millisecond,
	}

	info := err.DebugInfo()
	for _, want := range []string{"Error Type", "Message", "Method", "URL", "Endpoint", "Status Code", "Duration"} {
		if !strings.Contains(info, want) {
			t.Errorf("Expected %q in debug info, got:\n%s", want, info)
		}
	}
}
