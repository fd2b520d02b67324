package registro

import "context"

// Weights configures how a service instance is weighted during DNS and
// health-aware load balancing.
type Weights struct {
	Passing uint32
	Warning uint32
}

// Node is a member of the catalog.
type Node struct {
	ID              string
	Node            string
	Address         string
	Datacenter      string
	TaggedAddresses map[string]string
	Meta            map[string]string
	CreateIndex     uint64
	ModifyIndex     uint64
}

// CatalogService is a flattened node+service record as returned by the
// catalog service listing.
type CatalogService struct {
	ID                       string
	Node                     string
	Address                  string
	Datacenter               string
	TaggedAddresses          map[string]string
	NodeMeta                 map[string]string
	ServiceID                string
	ServiceName              string
	ServiceAddress           string
	ServiceTags              []string
	ServiceMeta              map[string]string
	ServicePort              uint32
	ServiceWeights           Weights
	ServiceEnableTagOverride bool
	CreateIndex              uint64
	ModifyIndex              uint64
}

// CatalogNode is a node together with the services it runs.
type CatalogNode struct {
	Node     *Node
	Services map[string]AgentService
}

// CatalogRegistration describes an entity to register directly with the
// catalog, bypassing the local agent's anti-entropy.
type CatalogRegistration struct {
	ID              string
	Node            string
	Address         string
	TaggedAddresses map[string]string
	NodeMeta        map[string]string
	Datacenter      string
	Service         *AgentService
	Check           *AgentCheck
	SkipNodeUpdate  bool
}

// CatalogDeregistration describes an entity to remove from the catalog.
// Leaving ServiceID and CheckID empty removes the whole node.
type CatalogDeregistration struct {
	Node       string
	Address    string
	Datacenter string
	ServiceID  string
	CheckID    string
}

// Register writes an entity directly into the catalog.
func (c *Client) Register(ctx context.Context, reg *CatalogRegistration, w *WriteOptions) (*WriteMeta, error) {
	_, meta, err := Put[struct{}](ctx, c, "/v1/catalog/register", reg, nil, w)
	return meta, err
}

// Deregister removes an entity from the catalog.
func (c *Client) Deregister(ctx context.Context, dereg *CatalogDeregistration, w *WriteOptions) (*WriteMeta, error) {
	_, meta, err := Put[struct{}](ctx, c, "/v1/catalog/deregister", dereg, nil, w)
	return meta, err
}

// Datacenters lists known datacenters, sorted by estimated round trip time.
func (c *Client) Datacenters(ctx context.Context) ([]string, error) {
	out, _, err := Get[[]string](ctx, c, "/v1/catalog/datacenters", nil, nil)
	return out, err
}

// Nodes lists catalog nodes. Supports blocking queries via q.WaitIndex.
func (c *Client) Nodes(ctx context.Context, q *QueryOptions) ([]Node, *QueryMeta, error) {
	return Get[[]Node](ctx, c, "/v1/catalog/nodes", nil, q)
}

// Services lists catalog services mapped to their tags. Supports blocking
// queries via q.WaitIndex.
func (c *Client) Services(ctx context.Context, q *QueryOptions) (map[string][]string, *QueryMeta, error) {
	return Get[map[string][]string](ctx, c, "/v1/catalog/services", nil, q)
}

// NodeInfo returns a single node and the services it runs.
func (c *Client) NodeInfo(ctx context.Context, node string, q *QueryOptions) (*CatalogNode, *QueryMeta, error) {
	return Get[*CatalogNode](ctx, c, "/v1/catalog/node/"+node, nil, q)
}

// Service lists the instances of a service, optionally filtered by tag.
// Supports blocking queries via q.WaitIndex.
func (c *Client) Service(ctx context.Context, service, tag string, q *QueryOptions) ([]CatalogService, *QueryMeta, error) {
	params := map[string]string{}
	if tag != "" {
		params["tag"] = tag
	}
	return Get[[]CatalogService](ctx, c, "/v1/catalog/service/"+service, params, q)
}
