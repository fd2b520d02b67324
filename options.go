package registro

import (
	"fmt"
	"net/http"
	"time"
)

// Option represents a configuration option
type Option func(*Client)

// WithAddress sets the server address as host:port. A http:// or https://
// prefix, when present, also sets the scheme.
func WithAddress(address string) Option {
	return func(c *Client) {
		if scheme, host, ok := parseAddress(address); ok {
			c.scheme = scheme
			c.address = host
			return
		}
		c.address = address
	}
}

// WithScheme sets the URI scheme (http or https).
func WithScheme(scheme string) Option {
	return func(c *Client) {
		c.scheme = scheme
	}
}

// WithDatacenter sets the default datacenter for all calls. Per-call
// options can still override it.
func WithDatacenter(dc string) Option {
	return func(c *Client) {
		c.datacenter = dc
	}
}

// WithToken sets the default auth token for all calls. Per-call options
// can still override it.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the HTTP timeout bounding every call, blocking or not.
// It must exceed the blocking wait time or long polls will never complete
// server-side.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.httpClient != nil {
			c.httpClient.Timeout = d
		}
	}
}

// WithWaitTime sets the default wait budget for blocking queries when the
// per-call QueryOptions leave WaitTime zero.
func WithWaitTime(d time.Duration) Option {
	return func(c *Client) {
		c.waitTime = d
	}
}

// WithHTTPClient sets a custom HTTP client (TLS, proxies, pooling).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithMetrics enables Prometheus metrics collection
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithDebug enables debug logging with default configuration
func WithDebug() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
	}
}

// WithDebugConfig sets custom debug configuration
func WithDebugConfig(config *DebugConfig) Option {
	return func(c *Client) {
		c.debug = config
	}
}

// WithLogger sets a custom logger for debug output
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger
func WithSimpleLogger() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
		c.logger = NewSimpleLogger()
	}
}

// WithRequestIDGenerator sets a custom function for generating request IDs
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.RequestIDGen = gen
	}
}

// ValidateConfiguration validates the client configuration and returns an error if invalid
func (c *Client) ValidateConfiguration() error {
	var errors []string

	errors = append(errors, c.validateConnectionConfig()...)
	errors = append(errors, c.validateTimingConfig()...)
	errors = append(errors, c.validateDebugConfig()...)

	if len(errors) > 0 {
		return &ClientError{
			Type:    ErrorTypeValidation,
			Message: "configuration validation failed",
			Cause:   fmt.Errorf("validation errors: %v", errors),
		}
	}

	return nil
}

// validateConnectionConfig validates address, scheme and HTTP client settings
func (c *Client) validateConnectionConfig() []string {
	var errors []string

	if c.address == "" {
		errors = append(errors, "address must not be empty")
	}

	if c.scheme != "http" && c.scheme != "https" {
		errors = append(errors, fmt.Sprintf("scheme must be http or https, got %q", c.scheme))
	}

	if c.httpClient == nil {
		errors = append(errors, "HTTP client cannot be nil")
	}

	return errors
}

// validateTimingConfig validates timeout and wait time settings
func (c *Client) validateTimingConfig() []string {
	var errors []string

	if c.httpClient != nil && c.httpClient.Timeout < 0 {
		errors = append(errors, "timeout must be non-negative")
	}

	if c.waitTime < 0 {
		errors = append(errors, "waitTime must be non-negative")
	}

	if c.httpClient != nil && c.httpClient.Timeout > 0 && c.waitTime >= c.httpClient.Timeout {
		errors = append(errors, "waitTime must be shorter than the HTTP timeout or blocking queries will always time out client-side")
	}

	return errors
}

// validateDebugConfig validates debug configuration
func (c *Client) validateDebugConfig() []string {
	var errors []string

	if c.debug != nil && c.debug.Enabled {
		if c.debug.RequestIDGen == nil {
			errors = append(errors, "debug RequestIDGen must be set when debug is enabled")
		}
		if c.logger == nil {
			errors = append(errors, "logger must be set when debug is enabled")
		}
	}

	return errors
}
