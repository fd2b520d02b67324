package registro

import "context"

// Health check states understood by the health endpoints.
const (
	HealthAny      = "any"
	HealthPassing  = "passing"
	HealthWarning  = "warning"
	HealthCritical = "critical"
)

// HealthCheck is a check as reported by the health endpoints, carrying the
// catalog indexes the agent-local view omits.
type HealthCheck struct {
	Node        string
	CheckID     string
	Name        string
	Status      string
	Notes       string
	Output      string
	ServiceID   string
	ServiceName string
	ServiceTags []string
	CreateIndex uint64
	ModifyIndex uint64
}

// ServiceEntry bundles a service instance with its node and the checks
// that apply to it.
type ServiceEntry struct {
	Node    *Node
	Service *AgentService
	Checks  []HealthCheck
}

// HealthNode lists the checks registered on a node. Supports blocking
// queries via q.WaitIndex.
func (c *Client) HealthNode(ctx context.Context, node string, q *QueryOptions) ([]HealthCheck, *QueryMeta, error) {
	return Get[[]HealthCheck](ctx, c, "/v1/health/node/"+node, nil, q)
}

// HealthChecks lists the checks associated with a service. Supports
// blocking queries via q.WaitIndex.
func (c *Client) HealthChecks(ctx context.Context, service string, q *QueryOptions) ([]HealthCheck, *QueryMeta, error) {
	return Get[[]HealthCheck](ctx, c, "/v1/health/checks/"+service, nil, q)
}

// HealthService lists the instances of a service with their nodes and
// checks. With passingOnly set, instances with any non-passing check are
// filtered server-side. Supports blocking queries via q.WaitIndex.
func (c *Client) HealthService(ctx context.Context, service, tag string, passingOnly bool, q *QueryOptions) ([]ServiceEntry, *QueryMeta, error) {
	params := map[string]string{}
	if tag != "" {
		params["tag"] = tag
	}
	if passingOnly {
		params["passing"] = "1"
	}
	return Get[[]ServiceEntry](ctx, c, "/v1/health/service/"+service, params, q)
}

// HealthState lists all checks in a given state (use HealthAny for every
// check). Supports blocking queries via q.WaitIndex.
func (c *Client) HealthState(ctx context.Context, state string, q *QueryOptions) ([]HealthCheck, *QueryMeta, error) {
	return Get[[]HealthCheck](ctx, c, "/v1/health/state/"+state, nil, q)
}
