package registro

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// WatchFunc is any blocking-capable read the watch layer can drive: it
// receives the query options for one attempt (WaitIndex pre-set by the
// plan) and returns the decoded value with its metadata. Endpoint methods
// curry naturally into this shape.
type WatchFunc[T any] func(ctx context.Context, q *QueryOptions) (T, *QueryMeta, error)

// Plan turns a blocking query into a channel of updates. It owns the
// re-issue loop the core deliberately lacks: each iteration chains the
// previous response's index into the next request's WaitIndex, delivers the
// value when the index advances, treats blocking timeouts as "no change"
// and backs off on real errors. One plan holds at most one connection; two
// plans watching the same resource each hold their own.
type Plan[T any] struct {
	client   *Client
	endpoint string
	fn       WatchFunc[T]
	opts     QueryOptions
	updates  chan T

	// newBackOff is swappable in tests.
	newBackOff func() backoff.BackOff

	// pollInterval paces re-polls against endpoints that report no
	// store index and therefore cannot block server-side.
	pollInterval time.Duration

	lastIndex uint64
}

// Watch builds a plan for fn. endpoint labels metrics and logs; opts seeds
// the datacenter/token/consistency settings of every attempt (WaitIndex is
// managed by the plan and overwritten each iteration).
func Watch[T any](c *Client, endpoint string, fn WatchFunc[T], opts *QueryOptions) *Plan[T] {
	p := &Plan[T]{
		client:   c,
		endpoint: endpoint,
		fn:       fn,
		updates:  make(chan T, 1),
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.MaxElapsedTime = 0
			return bo
		},
		pollInterval: time.Second,
	}
	if opts != nil {
		p.opts = *opts
	}
	return p
}

// Updates returns the channel update values are delivered on. It is closed
// when Run exits.
func (p *Plan[T]) Updates() <-chan T {
	return p.updates
}

// Run drives the blocking-query loop until ctx is done. The first
// iteration is a plain read whose result is always delivered; afterwards
// values are delivered only when the store's index advances. Returns the
// ctx error on cancellation.
func (p *Plan[T]) Run(ctx context.Context) error {
	defer close(p.updates)

	c := p.client
	bo := p.newBackOff()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		q := p.opts
		q.WaitIndex = p.lastIndex

		val, meta, err := p.fn(ctx, &q)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if IsNoChange(err) {
				// Expected steady state of a long poll: re-issue
				// with the same index immediately.
				bo.Reset()
				continue
			}

			c.metrics.RecordWatchRestart(p.endpoint)
			wait := bo.NextBackOff()

			if c.debug != nil && c.debug.Enabled && c.debug.LogWatch && c.logger != nil {
				c.logger.Warn("Watch error, backing off", "endpoint", p.endpoint, "backoff", wait, "error", err.Error())
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			continue
		}

		bo.Reset()

		index := meta.LastIndex
		noIndex := index == 0
		if noIndex {
			// The endpoint reports no store index, so the next
			// read cannot block server-side. Treat it as index 1
			// before the regression check or the reset below would
			// re-deliver the same value every iteration.
			index = 1
		}

		if index < p.lastIndex {
			// Index went backwards: the store was restarted or
			// snapshotted. Reset and re-read from scratch.
			if c.debug != nil && c.debug.Enabled && c.debug.LogWatch && c.logger != nil {
				c.logger.Info("Watch index regressed, resetting", "endpoint", p.endpoint, "index", index)
			}
			p.lastIndex = 0
			continue
		}

		changed := index > p.lastIndex || p.lastIndex == 0
		p.lastIndex = index

		if changed {
			select {
			case p.updates <- val:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if noIndex {
			// Without server-side blocking the loop would spin;
			// pace the next poll.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.pollInterval):
			}
		}
	}
}
