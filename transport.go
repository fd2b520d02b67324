package registro

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Get performs one read call against path and decodes the 2xx response body
// into T. Blocking behavior is controlled entirely by q.WaitIndex; the call
// itself is always a single HTTP round trip. An unchanged-index response is
// a legitimate return: callers wanting to keep watching re-issue the call
// with the returned meta.LastIndex.
func Get[T any](ctx context.Context, c *Client, path string, params map[string]string, q *QueryOptions) (T, *QueryMeta, error) {
	var out T

	if c.validationError != nil {
		return out, nil, c.validationError
	}

	r := c.newRequest(http.MethodGet, path, params)
	if err := r.setQueryOptions(c, q); err != nil {
		return out, nil, err
	}

	blocking := q != nil && q.WaitIndex > 0
	if blocking {
		c.metrics.RecordBlockingQueryStart(path)
		defer c.metrics.RecordBlockingQueryEnd(path)
	}

	resp, body, elapsed, err := c.roundTrip(ctx, r)
	if err != nil {
		return out, nil, err
	}

	meta, err := parseQueryMeta(c, r, resp, elapsed)
	if err != nil {
		return out, nil, err
	}

	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			c.metrics.RecordError(ErrorTypeDecode, r.method, path)
			return out, nil, &ClientError{
				Type:       ErrorTypeDecode,
				Message:    "response body does not match expected shape",
				Cause:      err,
				Method:     r.method,
				URL:        r.url.String(),
				Endpoint:   path,
				StatusCode: resp.StatusCode,
				Timestamp:  time.Now(),
				Duration:   elapsed,
			}
		}
	}

	return out, meta, nil
}

// Put performs one write call against path. body is JSON encoded when
// non-nil; T decodes the response (use struct{} for write-only endpoints
// with empty responses). Writes are never retried here: idempotency varies
// by endpoint, so retry policy belongs to the caller.
func Put[T any](ctx context.Context, c *Client, path string, body interface{}, params map[string]string, w *WriteOptions) (T, *WriteMeta, error) {
	var out T

	if c.validationError != nil {
		return out, nil, c.validationError
	}

	r := c.newRequest(http.MethodPut, path, params)
	r.setWriteOptions(w)
	if err := r.setJSONBody(body); err != nil {
		return out, nil, err
	}

	resp, respBody, elapsed, err := c.roundTrip(ctx, r)
	if err != nil {
		return out, nil, err
	}

	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &out); err != nil {
			c.metrics.RecordError(ErrorTypeDecode, r.method, path)
			return out, nil, &ClientError{
				Type:       ErrorTypeDecode,
				Message:    "response body does not match expected shape",
				Cause:      err,
				Method:     r.method,
				URL:        r.url.String(),
				Endpoint:   path,
				StatusCode: resp.StatusCode,
				Timestamp:  time.Now(),
				Duration:   elapsed,
			}
		}
	}

	return out, &WriteMeta{RequestTime: elapsed}, nil
}

// roundTrip executes exactly one HTTP call and classifies the outcome.
// A nil error means a 2xx response; body is fully read and the response
// body closed either way.
func (c *Client) roundTrip(ctx context.Context, r *request) (*http.Response, []byte, time.Duration, error) {
	var requestID string
	if c.debug != nil && c.debug.Enabled && c.debug.RequestIDGen != nil {
		requestID = c.debug.RequestIDGen()
	}

	req, err := r.toHTTP(ctx)
	if err != nil {
		return nil, nil, 0, &ClientError{
			Type:      ErrorTypeInvalidOptions,
			Message:   "request cannot be constructed",
			Cause:     err,
			Method:    r.method,
			Endpoint:  r.url.Path,
			Timestamp: time.Now(),
		}
	}

	endpoint := r.url.Path

	if c.debug != nil && c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Starting request", "requestID", requestID, "method", req.Method, "url", req.URL.String())
	}

	c.metrics.RecordRequestStart(req.Method, endpoint)
	defer c.metrics.RecordRequestEnd(req.Method, endpoint)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.RecordRequest(req.Method, endpoint, 0, elapsed)
		c.metrics.RecordError(ErrorTypeTransport, req.Method, endpoint)

		if c.debug != nil && c.debug.Enabled && c.debug.LogResponses && c.logger != nil {
			c.logger.Warn("Transport failure", "requestID", requestID, "method", req.Method, "url", req.URL.String(), "error", err.Error())
		}

		return nil, nil, elapsed, &ClientError{
			Type:      ErrorTypeTransport,
			Message:   "request could not complete",
			Cause:     err,
			RequestID: requestID,
			Method:    req.Method,
			URL:       req.URL.String(),
			Endpoint:  endpoint,
			Timestamp: time.Now(),
			Duration:  elapsed,
		}
	}
	defer resp.Body.Close()

	c.metrics.RecordRequest(req.Method, endpoint, resp.StatusCode, elapsed)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordError(ErrorTypeTransport, req.Method, endpoint)
		return nil, nil, elapsed, &ClientError{
			Type:       ErrorTypeTransport,
			Message:    "response body could not be read",
			Cause:      err,
			RequestID:  requestID,
			Method:     req.Method,
			URL:        req.URL.String(),
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Timestamp:  time.Now(),
			Duration:   elapsed,
		}
	}

	if c.debug != nil && c.debug.Enabled && c.debug.LogResponses && c.logger != nil {
		c.logger.Debug("Response received", "requestID", requestID, "status", resp.StatusCode, "bytes", len(body), "duration", elapsed)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.RecordError(ErrorTypeAPI, req.Method, endpoint)
		return nil, nil, elapsed, &ClientError{
			Type:       ErrorTypeAPI,
			Message:    strings.TrimSpace(string(body)),
			RequestID:  requestID,
			Method:     req.Method,
			URL:        req.URL.String(),
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Timestamp:  time.Now(),
			Duration:   elapsed,
		}
	}

	return resp, body, elapsed, nil
}

// parseQueryMeta extracts read metadata from response headers. A malformed
// index header means the response itself is broken, so it classifies with
// the other transport-level failures rather than as a body-shape mismatch.
func parseQueryMeta(c *Client, r *request, resp *http.Response, elapsed time.Duration) (*QueryMeta, error) {
	meta := &QueryMeta{RequestTime: elapsed}

	if raw := resp.Header.Get("X-Consul-Index"); raw != "" {
		index, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.metrics.RecordError(ErrorTypeTransport, r.method, r.url.Path)
			return nil, &ClientError{
				Type:       ErrorTypeTransport,
				Message:    fmt.Sprintf("malformed X-Consul-Index header %q", raw),
				Cause:      err,
				Method:     r.method,
				URL:        r.url.String(),
				Endpoint:   r.url.Path,
				StatusCode: resp.StatusCode,
				Timestamp:  time.Now(),
				Duration:   elapsed,
			}
		}
		meta.LastIndex = index
	}

	if raw := resp.Header.Get("X-Consul-Knownleader"); raw != "" {
		meta.KnownLeader = raw == "true"
	}

	if raw := resp.Header.Get("X-Consul-Lastcontact"); raw != "" {
		ms, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			meta.LastContact = time.Duration(ms) * time.Millisecond
		}
	}

	return meta, nil
}
