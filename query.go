package registro

import "time"

// QueryOptions customize a single read call. A zero value (or nil pointer)
// means the default consistency mode, no blocking and the client's own
// datacenter and token. Options are consumed per call and never retained.
type QueryOptions struct {
	// Datacenter overrides the client's datacenter for this call.
	Datacenter string

	// AllowStale permits any server (not just the leader) to service the
	// read, trading consistency for lower latency. Mutually exclusive
	// with RequireConsistent.
	AllowStale bool

	// RequireConsistent forces a strongly consistent, leader-verified
	// read at the cost of an extra round trip between servers. Mutually
	// exclusive with AllowStale.
	RequireConsistent bool

	// WaitIndex turns the read into a blocking query when non-zero: the
	// server holds the response until its data changes past this index
	// or the wait budget elapses. Chain it from the previous response's
	// QueryMeta.LastIndex.
	WaitIndex uint64

	// WaitTime bounds how long the server may hold a blocking query.
	// Zero means the client default (see WithWaitTime).
	WaitTime time.Duration

	// Token overrides the client's token for this call.
	Token string
}

// WriteOptions customize a single write call.
type WriteOptions struct {
	// Datacenter overrides the client's datacenter for this call.
	Datacenter string

	// Token overrides the client's token for this call.
	Token string
}

// QueryMeta is out-of-band metadata returned with every read. It is derived
// from response headers and never mutated after construction.
type QueryMeta struct {
	// LastIndex is the store's modification index for the queried data.
	// Feed it into the next call's WaitIndex to watch for changes.
	LastIndex uint64

	// KnownLeader reports whether the answering server knew a leader.
	KnownLeader bool

	// LastContact is how long ago the answering server heard from the
	// leader; a large value on a stale read signals outdated data.
	LastContact time.Duration

	// RequestTime is the client-measured duration of the round trip.
	RequestTime time.Duration
}

// WriteMeta is out-of-band metadata returned with every write.
type WriteMeta struct {
	// RequestTime is the client-measured duration of the round trip.
	RequestTime time.Duration
}
