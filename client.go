package registro

import (
	"net/http"
	"strings"
	"time"
)

// Client is a typed Consul HTTP API client. All connection settings are
// fixed at construction and shared read-only by every call, so a single
// Client is safe for concurrent use. The client holds no mutable state
// between calls: blocking-query watches are driven entirely by callers
// re-issuing reads with the previous response's index.
type Client struct {
	httpClient *http.Client
	address    string
	scheme     string
	datacenter string
	token      string
	waitTime   time.Duration
	metrics    *MetricsCollector
	debug      *DebugConfig
	logger     Logger

	validationError error
}

// New constructs a Client using the provided functional options. A best
// effort validation is performed; call IsValid / ValidationError for errors.
func New(options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		address:    "127.0.0.1:8500",
		scheme:     "http",
		datacenter: "",
		token:      "",
		waitTime:   10 * time.Second,
		metrics:    nil,
		debug:      DefaultDebugConfig(),
		logger:     nil,
	}

	for _, option := range options {
		option(client)
	}

	if err := client.ValidateConfiguration(); err != nil {
		client.validationError = err
	}

	return client
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}

// Address returns the configured server address (host:port).
func (c *Client) Address() string {
	return c.address
}

// Datacenter returns the client's default datacenter, if any.
func (c *Client) Datacenter() string {
	return c.datacenter
}

// parseAddress splits an optional scheme prefix off an address string.
func parseAddress(address string) (scheme, host string, ok bool) {
	switch {
	case strings.HasPrefix(address, "http://"):
		return "http", strings.TrimPrefix(address, "http://"), true
	case strings.HasPrefix(address, "https://"):
		return "https", strings.TrimPrefix(address, "https://"), true
	default:
		return "", address, false
	}
}
