package neograph

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Path is an ordered walk through the graph: an alternating sequence of
// nodes and relationships with one more node than relationships. Paths are
// immutable once hydrated.
type Path struct {
	nodes         []*Node
	relationships []*Relationship
}

// HydratePath reconstructs a full ordered walk from the compact wire
// encoding: a de-duplicated node list, a de-duplicated list of unbound
// relationships and a signed index sequence.
//
// The sequence holds (relationship selector, node index) pairs. The node
// index points directly into nodes; re-visited nodes are encoded by reusing
// the same index, so self-loops are legal. The magnitude of the selector,
// minus one, points into rels, and its sign carries the traversal direction:
// positive means the relationship is traversed as recorded, negative means
// it is traversed against its recorded direction. Each relationship in rels
// is selected exactly once across the sequence and has its endpoints
// resolved in place, so every element of rels must be exclusively owned by
// this call until it returns.
//
// An empty node list, an odd-length sequence, a zero selector or an index
// outside either list indicates a corrupt payload: HydratePath returns an
// error wrapping ErrMalformedPath and no partial Path.
func HydratePath(nodes []*Node, rels []*Relationship, sequence []int) (*Path, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: empty node list", ErrMalformedPath)
	}
	if len(sequence)%2 != 0 {
		return nil, fmt.Errorf("%w: odd sequence length %d", ErrMalformedPath, len(sequence))
	}

	lastNode := nodes[0]
	pathNodes := make([]*Node, 0, len(sequence)/2+1)
	pathRels := make([]*Relationship, 0, len(sequence)/2)
	pathNodes = append(pathNodes, lastNode)

	for i := 0; i < len(sequence); i += 2 {
		selector, nodeIndex := sequence[i], sequence[i+1]
		if selector == 0 {
			return nil, fmt.Errorf("%w: zero relationship selector at offset %d", ErrMalformedPath, i)
		}
		if nodeIndex < 0 || nodeIndex >= len(nodes) {
			return nil, fmt.Errorf("%w: node index %d outside list of %d", ErrMalformedPath, nodeIndex, len(nodes))
		}
		nextNode := nodes[nodeIndex]

		relIndex := selector
		if relIndex < 0 {
			relIndex = -relIndex
		}
		relIndex--
		if relIndex >= len(rels) {
			return nil, fmt.Errorf("%w: relationship selector %d outside list of %d", ErrMalformedPath, selector, len(rels))
		}
		rel := rels[relIndex]

		if selector > 0 {
			rel.bindEndpoints(lastNode.id, nextNode.id)
		} else {
			rel.bindEndpoints(nextNode.id, lastNode.id)
		}

		pathRels = append(pathRels, rel)
		pathNodes = append(pathNodes, nextNode)
		lastNode = nextNode
	}

	return &Path{nodes: pathNodes, relationships: pathRels}, nil
}

// Start returns the first node of the walk.
func (p *Path) Start() *Node {
	return p.nodes[0]
}

// End returns the last node of the walk.
func (p *Path) End() *Node {
	return p.nodes[len(p.nodes)-1]
}

// Len returns the number of relationships in the walk.
func (p *Path) Len() int {
	return len(p.relationships)
}

// Nodes returns the nodes in traversal order. The slice is shared, not
// copied; callers must treat it as read-only.
func (p *Path) Nodes() []*Node {
	return p.nodes
}

// Relationships returns the relationships in traversal order. The slice is
// shared, not copied; callers must treat it as read-only.
func (p *Path) Relationships() []*Relationship {
	return p.relationships
}

// Equal reports whether other is a Path with an equal start node and the
// same relationships in the same order. Intermediate nodes are not compared
// directly; they are pinned down by the relationships' own endpoint
// identities.
func (p *Path) Equal(other interface{}) bool {
	o, ok := other.(*Path)
	if !ok {
		return false
	}
	if !p.Start().Equal(o.Start()) || len(p.relationships) != len(o.relationships) {
		return false
	}
	for i, rel := range p.relationships {
		if !rel.Equal(o.relationships[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash chaining the start node's hash with each
// relationship's hash in traversal order, so that reorderings of the same
// relationships hash differently.
func (p *Path) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], p.Start().Hash())
	h.Write(buf[:])
	for _, rel := range p.relationships {
		binary.BigEndian.PutUint64(buf[:], rel.Hash())
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (p *Path) String() string {
	return fmt.Sprintf("<Path start=%s end=%s size=%d>",
		formatIdentity(&p.Start().entity), formatIdentity(&p.End().entity), p.Len())
}
