package registro

import "context"

// AgentCheck is a health check registered with the local agent. Missing
// JSON fields decode to zero values.
type AgentCheck struct {
	Node        string
	CheckID     string
	Name        string
	Status      string
	Notes       string
	Output      string
	ServiceID   string
	ServiceName string
}

// AgentMember is a cluster member as seen by the local serf agent.
type AgentMember struct {
	Name        string
	Addr        string
	Port        uint16
	Tags        map[string]string
	Status      int
	ProtocolMin uint8
	ProtocolMax uint8
	ProtocolCur uint8
	DelegateMin uint8
	DelegateMax uint8
	DelegateCur uint8
}

// AgentService is a service registered with the local agent.
type AgentService struct {
	ID                string
	Service           string
	Tags              []string
	Port              uint16
	Address           string
	EnableTagOverride bool
	CreateIndex       uint64
	ModifyIndex       uint64
}

// Checks lists health checks registered with the local agent, keyed by
// check ID.
func (c *Client) Checks(ctx context.Context) (map[string]AgentCheck, error) {
	out, _, err := Get[map[string]AgentCheck](ctx, c, "/v1/agent/checks", nil, nil)
	return out, err
}

// Members lists cluster members known to the agent. With wan set, the list
// covers the WAN gossip pool instead of the LAN one.
func (c *Client) Members(ctx context.Context, wan bool) ([]AgentMember, error) {
	params := map[string]string{}
	if wan {
		params["wan"] = "1"
	}
	out, _, err := Get[[]AgentMember](ctx, c, "/v1/agent/members", params, nil)
	return out, err
}

// Reload triggers a reload of the agent's configuration files.
func (c *Client) Reload(ctx context.Context) (*WriteMeta, error) {
	_, meta, err := Put[struct{}](ctx, c, "/v1/agent/reload", nil, nil, nil)
	return meta, err
}

// MaintenanceMode places the agent into (or out of) maintenance mode. An
// optional reason is recorded on the resulting critical check.
func (c *Client) MaintenanceMode(ctx context.Context, enable bool, reason string) (*WriteMeta, error) {
	params := map[string]string{"enabled": "false"}
	if enable {
		params["enabled"] = "true"
	}
	if reason != "" {
		params["reason"] = reason
	}
	_, meta, err := Put[struct{}](ctx, c, "/v1/agent/maintenance", nil, params, nil)
	return meta, err
}

// Join asks the agent to join the cluster member at address.
func (c *Client) Join(ctx context.Context, address string, wan bool) (*WriteMeta, error) {
	params := map[string]string{}
	if wan {
		params["wan"] = "true"
	}
	_, meta, err := Put[struct{}](ctx, c, "/v1/agent/join/"+address, nil, params, nil)
	return meta, err
}

// Leave triggers a graceful leave and shutdown of the agent.
func (c *Client) Leave(ctx context.Context) (*WriteMeta, error) {
	_, meta, err := Put[struct{}](ctx, c, "/v1/agent/leave", nil, nil, nil)
	return meta, err
}

// ForceLeave instructs the agent to treat node as left, forcing its
// eviction from the cluster.
func (c *Client) ForceLeave(ctx context.Context, node string) (*WriteMeta, error) {
	_, meta, err := Put[struct{}](ctx, c, "/v1/agent/force-leave/"+node, nil, nil, nil)
	return meta, err
}
