package registro

import "context"

// Leader returns the Raft leader's address as host:port.
func (c *Client) Leader(ctx context.Context) (string, error) {
	out, _, err := Get[string](ctx, c, "/v1/status/leader", nil, nil)
	return out, err
}

// Peers returns the addresses of the Raft peers.
func (c *Client) Peers(ctx context.Context) ([]string, error) {
	out, _, err := Get[[]string](ctx, c, "/v1/status/peers", nil, nil)
	return out, err
}
