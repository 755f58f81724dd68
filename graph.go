// Package neograph provides value-semantic graph types for Neo4j query
// results: nodes, relationships and paths with well-defined identity,
// equality and hashing contracts, hydrated from the compact structures the
// server sends over the wire. It complements go-neopersist, which covers the
// struct-mapping CRUD side; this package covers the graph-value side.
package neograph

// Graph is a registry of hydrated entities keyed by their server identity.
// Its lifetime is scoped to a single result: population is driven by
// whatever consumes the result stream (see GraphLoader), and the container
// itself stays a thin pair of lookup maps. A Graph is not safe for
// concurrent population; once populated it may be shared read-only.
type Graph struct {
	nodes         map[int64]*Node
	relationships map[int64]*Relationship
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:         make(map[int64]*Node),
		relationships: make(map[int64]*Relationship),
	}
}

// AddNode registers a node under its identity, replacing any previous node
// with the same identity. Nodes without an identity are ignored.
func (g *Graph) AddNode(n *Node) {
	if id, ok := n.Identity(); ok {
		g.nodes[id] = n
	}
}

// AddRelationship registers a relationship under its identity, replacing any
// previous relationship with the same identity. Relationships without an
// identity are ignored.
func (g *Graph) AddRelationship(r *Relationship) {
	if id, ok := r.Identity(); ok {
		g.relationships[id] = r
	}
}

// Node returns the node registered under the given identity, or ErrNotFound.
func (g *Graph) Node(id int64) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return n, nil
}

// Relationship returns the relationship registered under the given identity,
// or ErrNotFound.
func (g *Graph) Relationship(id int64) (*Relationship, error) {
	r, ok := g.relationships[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// RelationshipCount returns the number of registered relationships.
func (g *Graph) RelationshipCount() int {
	return len(g.relationships)
}
