// Package registro provides a typed client for the Consul HTTP API with
// first-class support for the blocking-query protocol:
//
//   - Generic read/write transport (Get / Put) shared by every endpoint
//   - Blocking queries via index/wait parameters and QueryMeta chaining
//   - Consistency mode selection (default, stale, consistent)
//   - Structured error classification (transport, API, decode, options)
//   - Agent, catalog, health and status endpoint surfaces
//   - Watch plans that turn blocking queries into update channels
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - One HTTP round trip per call; the core never retries or loops
//   - Safe concurrent use of a single *Client instance
//   - Extensibility via user supplied *http.Client, logger and metrics
//
// Typical usage:
//
//	client := registro.New(
//	    registro.WithAddress("127.0.0.1:8500"),
//	    registro.WithDatacenter("dc1"),
//	    registro.WithMetrics(),
//	)
//	nodes, meta, err := client.Nodes(ctx, nil)
//
// A blocking query is a plain read whose QueryOptions carry the index of the
// previous response; the server holds the connection open until the data
// changes past that index or its wait budget elapses. The client never loops
// internally – re-issue the call with meta.LastIndex (or use a watch Plan)
// to keep watching. A timeout on a blocking call means "no change", not
// failure; see IsNoChange.
//
// The library avoids opinionated logging: provide a Logger (e.g. via
// WithSimpleLogger) + enable debug flags selectively (WithDebug /
// WithDebugConfig) for insight without noise.
package registro
