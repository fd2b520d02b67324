package registro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// request is the assembled description of a single HTTP call: URL, query
// string, headers and body. Building one performs no I/O, so option merging
// and validation are testable in isolation.
type request struct {
	method string
	url    *url.URL
	params url.Values
	header http.Header
	body   io.Reader
}

// newRequest seeds a request with the client's connection settings. params
// supplied by the endpoint are applied before option-derived keys, so
// protocol semantics always win on collision.
func (c *Client) newRequest(method, path string, params map[string]string) *request {
	r := &request{
		method: method,
		url: &url.URL{
			Scheme: c.scheme,
			Host:   c.address,
			Path:   path,
		},
		params: make(url.Values),
		header: make(http.Header),
	}
	r.header.Set("User-Agent", userAgent())
	for k, v := range params {
		r.params.Set(k, v)
	}
	if c.datacenter != "" {
		r.params.Set("dc", c.datacenter)
	}
	if c.token != "" {
		r.header.Set("X-Consul-Token", c.token)
	}
	return r
}

// setQueryOptions folds QueryOptions into the query string and headers.
// Returns an InvalidOptions error when both consistency modes are set; in
// that case no request must be issued.
func (r *request) setQueryOptions(c *Client, q *QueryOptions) error {
	if q == nil {
		return nil
	}
	if q.AllowStale && q.RequireConsistent {
		return &ClientError{
			Type:      ErrorTypeInvalidOptions,
			Message:   "conflicting consistency modes",
			Cause:     ErrConsistencyConflict,
			Method:    r.method,
			Endpoint:  r.url.Path,
			Timestamp: time.Now(),
		}
	}
	if q.Datacenter != "" {
		r.params.Set("dc", q.Datacenter)
	}
	if q.AllowStale {
		r.params.Set("stale", "")
	}
	if q.RequireConsistent {
		r.params.Set("consistent", "")
	}
	if q.WaitIndex > 0 {
		r.params.Set("index", strconv.FormatUint(q.WaitIndex, 10))
		wait := q.WaitTime
		if wait == 0 {
			wait = c.waitTime
		}
		if wait > 0 {
			r.params.Set("wait", durToMsec(wait))
		}
	}
	if q.Token != "" {
		r.header.Set("X-Consul-Token", q.Token)
	}
	return nil
}

// setWriteOptions folds WriteOptions into the query string and headers.
func (r *request) setWriteOptions(q *WriteOptions) {
	if q == nil {
		return
	}
	if q.Datacenter != "" {
		r.params.Set("dc", q.Datacenter)
	}
	if q.Token != "" {
		r.header.Set("X-Consul-Token", q.Token)
	}
}

// setJSONBody marshals body into the request. A nil body leaves the request
// body empty.
func (r *request) setJSONBody(body interface{}) error {
	if body == nil {
		return nil
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return &ClientError{
			Type:      ErrorTypeInvalidOptions,
			Message:   "request body cannot be encoded",
			Cause:     err,
			Method:    r.method,
			Endpoint:  r.url.Path,
			Timestamp: time.Now(),
		}
	}
	r.body = bytes.NewReader(buf)
	r.header.Set("Content-Type", "application/json")
	return nil
}

// toHTTP finalizes the request for the wire.
func (r *request) toHTTP(ctx context.Context) (*http.Request, error) {
	r.url.RawQuery = r.params.Encode()
	req, err := http.NewRequestWithContext(ctx, r.method, r.url.String(), r.body)
	if err != nil {
		return nil, err
	}
	for k, vs := range r.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// durToMsec encodes a duration the way the server's wait parser expects.
func durToMsec(d time.Duration) string {
	return fmt.Sprintf("%dms", d/time.Millisecond)
}
