package neograph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"
)

// FromDriverNode converts a node returned by the official driver into a
// value-semantic Node.
func FromDriverNode(n neo4j.Node) *Node {
	return HydrateNode(n.Id, n.Labels, n.Props)
}

// FromDriverRelationship converts a relationship returned by the official
// driver into a bound, value-semantic Relationship.
func FromDriverRelationship(r neo4j.Relationship) *Relationship {
	return HydrateRelationship(r.Id, r.StartId, r.EndId, r.Type, r.Props)
}

// FromDriverPath converts a path returned by the official driver, whose
// nodes and relationships are already in traversal order with endpoints
// resolved, into a value-semantic Path.
func FromDriverPath(p neo4j.Path) (*Path, error) {
	if len(p.Nodes) != len(p.Relationships)+1 {
		return nil, fmt.Errorf("%w: %d nodes for %d relationships", ErrMalformedPath, len(p.Nodes), len(p.Relationships))
	}
	nodes := make([]*Node, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = FromDriverNode(n)
	}
	rels := make([]*Relationship, len(p.Relationships))
	for i, r := range p.Relationships {
		rels[i] = FromDriverRelationship(r)
	}
	return &Path{nodes: nodes, relationships: rels}, nil
}

// GraphLoader populates Graph containers from query results. It is the
// external collaborator that drives Graph population: the Graph itself stays
// a thin registry, while the loader walks result records, converts every
// graph element it finds and de-duplicates by identity.
type GraphLoader struct {
	runner QueryRunner
}

// NewGraphLoader creates a GraphLoader on top of any QueryRunner.
func NewGraphLoader(runner QueryRunner) *GraphLoader {
	return &GraphLoader{runner: runner}
}

// Load executes a graph query defined by a gocypher.QueryBuilder and
// collects every node, relationship and path it returns into a fresh Graph.
//
// The caller defines the shape of the graph to retrieve, including a RETURN
// clause listing the elements to collect (for example `RETURN u, r, p`).
// Elements appearing in multiple result rows are registered once, keyed by
// their server identity; paths additionally contribute their constituent
// nodes and relationships.
//
// Parameters:
//   - ctx: The context for the query execution.
//   - qb: A configured gocypher.QueryBuilder describing the graph to retrieve.
//
// Returns:
//   - The populated Graph.
//   - ErrNotFound if the query succeeds but returns zero records.
//   - Any error from query building or execution.
func (l *GraphLoader) Load(ctx context.Context, qb *gocypher.QueryBuilder) (*Graph, error) {
	query, params, err := qb.Build()
	if err != nil {
		return nil, fmt.Errorf("could not build query: %w", err)
	}

	result, err := l.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}

	graph := NewGraph()
	for _, record := range result.Records {
		for _, value := range record.Values {
			if err := l.collect(graph, value); err != nil {
				return nil, err
			}
		}
	}
	return graph, nil
}

func (l *GraphLoader) collect(graph *Graph, value interface{}) error {
	switch v := value.(type) {
	case neo4j.Node:
		graph.AddNode(FromDriverNode(v))
	case neo4j.Relationship:
		graph.AddRelationship(FromDriverRelationship(v))
	case neo4j.Path:
		path, err := FromDriverPath(v)
		if err != nil {
			return err
		}
		for _, n := range path.Nodes() {
			graph.AddNode(n)
		}
		for _, r := range path.Relationships() {
			graph.AddRelationship(r)
		}
	}
	// Scalar values in the record are not graph elements; skip them.
	return nil
}
