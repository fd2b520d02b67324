package registro

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestSimpleLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := &SimpleLogger{logger: log.New(&buf, "", 0)}

	logger.Debug("starting request", "method", "GET")
	logger.Warn("transport failure", "error", "connection refused")

	out := buf.String()
	if !strings.Contains(out, "DEBUG starting request method=GET") {
		t.Errorf("Expected debug line with key/values, got:\n%s", out)
	}
	if !strings.Contains(out, "WARN transport failure error=connection refused") {
		t.Errorf("Expected warn line with key/values, got:\n%s", out)
	}
}

func TestDefaultDebugConfig(t *testing.T) {
	config := DefaultDebugConfig()

	if config.Enabled {
		t.Error("Expected debug disabled by default")
	}
	if !config.LogRequests || !config.LogResponses || !config.LogWatch {
		t.Error("Expected all log areas enabled by default")
	}
	if config.RequestIDGen == nil {
		t.Fatal("Expected a default request ID generator")
	}

	first := config.RequestIDGen()
	second := config.RequestIDGen()
	if first == second {
		t.Errorf("Expected unique request IDs, got %q twice", first)
	}
}
