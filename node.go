package neograph

import (
	"fmt"
	"sort"
	"strings"
)

// LabelSet is an unordered, de-duplicated set of node labels.
// Iteration order is unspecified; use Contains for membership tests.
type LabelSet map[string]struct{}

// NewLabelSet builds a LabelSet from a slice of labels, discarding duplicates.
func NewLabelSet(labels []string) LabelSet {
	set := make(LabelSet, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

// Contains reports whether the set includes the given label.
func (s LabelSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Len returns the number of distinct labels.
func (s LabelSet) Len() int {
	return len(s)
}

// Values returns the labels as a sorted slice. Sorting is a convenience for
// display and tests; it implies nothing about how the server ordered them.
func (s LabelSet) Values() []string {
	values := make([]string, 0, len(s))
	for l := range s {
		values = append(values, l)
	}
	sort.Strings(values)
	return values
}

// Node is a self-contained graph node: a server identity, a label set and a
// property map. Nodes are immutable once hydrated and safe to share across
// goroutines.
type Node struct {
	entity
	labels LabelSet
}

// NewNode creates a Node without a server identity. Nodes received from a
// query result are built with HydrateNode instead.
func NewNode(labels []string, props map[string]interface{}) *Node {
	return &Node{
		entity: newEntity(props, nil),
		labels: NewLabelSet(labels),
	}
}

// HydrateNode builds a Node from its decoded wire fields: the server id, the
// label list and the property map. Properties with nil values are dropped.
func HydrateNode(id int64, labels []string, props map[string]interface{}) *Node {
	n := NewNode(labels, props)
	n.id = id
	n.idSet = true
	return n
}

// Labels returns the node's label set.
func (n *Node) Labels() LabelSet {
	return n.labels
}

func (n *Node) String() string {
	return fmt.Sprintf("<Node id=%s labels=[%s] props=%d>",
		formatIdentity(&n.entity), strings.Join(n.labels.Values(), " "), n.Len())
}

func formatIdentity(e *entity) string {
	if id, ok := e.Identity(); ok {
		return fmt.Sprintf("%d", id)
	}
	return "?"
}
