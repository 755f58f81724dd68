package neograph

import (
	"fmt"
	"reflect"
)

// Wire tags for the graph structure types, as assigned by the Bolt protocol.
const (
	TagNode                byte = 'N'
	TagRelationship        byte = 'R'
	TagUnboundRelationship byte = 'r'
	TagPath                byte = 'P'
)

// HydrationFunc turns the decoded field list of a tagged wire structure into
// a hydrated graph value. The transport layer has already decoded the fields
// into primitive Go values (integers, strings, slices, maps, and nested
// graph values for paths); a HydrationFunc only validates their shape and
// assembles the result.
type HydrationFunc func(fields []interface{}) (interface{}, error)

// DehydrationFunc is the outbound counterpart of HydrationFunc: it would
// turn a value into the field list of a tagged wire structure. No
// DehydrationFunc exists for any graph type.
type DehydrationFunc func(value interface{}) (tag byte, fields []interface{}, err error)

// Registry is the fixed dispatch table between wire tags and graph types.
// Build it once at session initialization and share it freely: it is
// immutable after construction and therefore safe for any number of
// concurrent callers.
type Registry struct {
	hydrators   map[byte]HydrationFunc
	dehydrators map[reflect.Type]DehydrationFunc
}

// NewRegistry builds the dispatch table for the four graph structure types.
func NewRegistry() *Registry {
	return &Registry{
		hydrators: map[byte]HydrationFunc{
			TagNode:                hydrateNodeFields,
			TagRelationship:        hydrateRelationshipFields,
			TagUnboundRelationship: hydrateUnboundRelationshipFields,
			TagPath:                hydratePathFields,
		},
		// Deliberately empty: the server accepts no graph fragment as a
		// query parameter, so there is nothing to register here.
		dehydrators: map[reflect.Type]DehydrationFunc{},
	}
}

// Hydrator returns the hydration function for a wire tag, if one exists.
func (r *Registry) Hydrator(tag byte) (HydrationFunc, bool) {
	fn, ok := r.hydrators[tag]
	return fn, ok
}

// Hydrate dispatches a decoded wire structure to the hydration function for
// its tag. It returns ErrUnknownTag for tags outside the table.
func (r *Registry) Hydrate(tag byte, fields []interface{}) (interface{}, error) {
	fn, ok := r.hydrators[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	return fn(fields)
}

// Dehydrator returns the dehydration function for a value's type. For graph
// types there is none; the second return is always false today.
func (r *Registry) Dehydrator(value interface{}) (DehydrationFunc, bool) {
	fn, ok := r.dehydrators[reflect.TypeOf(value)]
	return fn, ok
}

// Dehydrate encodes a value for outbound use as a query parameter. Because
// the dehydration table is empty, it fails for every graph value; the
// encoding layer must surface this to the caller rather than dropping the
// value.
func (r *Registry) Dehydrate(value interface{}) (byte, []interface{}, error) {
	fn, ok := r.Dehydrator(value)
	if !ok {
		return 0, nil, fmt.Errorf("%w: %T", ErrUnsupportedParameter, value)
	}
	return fn(value)
}

func hydrateNodeFields(fields []interface{}) (interface{}, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("hydrating node: expected 3 fields, got %d", len(fields))
	}
	id, err := fieldInt64(fields[0], "id")
	if err != nil {
		return nil, fmt.Errorf("hydrating node: %w", err)
	}
	labels, err := fieldStrings(fields[1], "labels")
	if err != nil {
		return nil, fmt.Errorf("hydrating node: %w", err)
	}
	props, err := fieldProps(fields[2], "properties")
	if err != nil {
		return nil, fmt.Errorf("hydrating node: %w", err)
	}
	return HydrateNode(id, labels, props), nil
}

func hydrateRelationshipFields(fields []interface{}) (interface{}, error) {
	if len(fields) != 5 {
		return nil, fmt.Errorf("hydrating relationship: expected 5 fields, got %d", len(fields))
	}
	id, err := fieldInt64(fields[0], "id")
	if err != nil {
		return nil, fmt.Errorf("hydrating relationship: %w", err)
	}
	start, err := fieldInt64(fields[1], "start")
	if err != nil {
		return nil, fmt.Errorf("hydrating relationship: %w", err)
	}
	end, err := fieldInt64(fields[2], "end")
	if err != nil {
		return nil, fmt.Errorf("hydrating relationship: %w", err)
	}
	relType, err := fieldString(fields[3], "type")
	if err != nil {
		return nil, fmt.Errorf("hydrating relationship: %w", err)
	}
	props, err := fieldProps(fields[4], "properties")
	if err != nil {
		return nil, fmt.Errorf("hydrating relationship: %w", err)
	}
	return HydrateRelationship(id, start, end, relType, props), nil
}

func hydrateUnboundRelationshipFields(fields []interface{}) (interface{}, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("hydrating unbound relationship: expected 3 fields, got %d", len(fields))
	}
	id, err := fieldInt64(fields[0], "id")
	if err != nil {
		return nil, fmt.Errorf("hydrating unbound relationship: %w", err)
	}
	relType, err := fieldString(fields[1], "type")
	if err != nil {
		return nil, fmt.Errorf("hydrating unbound relationship: %w", err)
	}
	props, err := fieldProps(fields[2], "properties")
	if err != nil {
		return nil, fmt.Errorf("hydrating unbound relationship: %w", err)
	}
	return HydrateUnboundRelationship(id, relType, props), nil
}

func hydratePathFields(fields []interface{}) (interface{}, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("hydrating path: expected 3 fields, got %d", len(fields))
	}
	rawNodes, err := fieldList(fields[0], "nodes")
	if err != nil {
		return nil, fmt.Errorf("hydrating path: %w", err)
	}
	nodes := make([]*Node, len(rawNodes))
	for i, v := range rawNodes {
		n, ok := v.(*Node)
		if !ok {
			return nil, fmt.Errorf("hydrating path: nodes[%d] is %T, not a node", i, v)
		}
		nodes[i] = n
	}
	rawRels, err := fieldList(fields[1], "relationships")
	if err != nil {
		return nil, fmt.Errorf("hydrating path: %w", err)
	}
	rels := make([]*Relationship, len(rawRels))
	for i, v := range rawRels {
		r, ok := v.(*Relationship)
		if !ok {
			return nil, fmt.Errorf("hydrating path: relationships[%d] is %T, not a relationship", i, v)
		}
		rels[i] = r
	}
	rawSeq, err := fieldList(fields[2], "sequence")
	if err != nil {
		return nil, fmt.Errorf("hydrating path: %w", err)
	}
	sequence := make([]int, len(rawSeq))
	for i, v := range rawSeq {
		n, err := fieldInt64(v, fmt.Sprintf("sequence[%d]", i))
		if err != nil {
			return nil, fmt.Errorf("hydrating path: %w", err)
		}
		sequence[i] = int(n)
	}
	return HydratePath(nodes, rels, sequence)
}

func fieldInt64(v interface{}, name string) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("field %s is %T, not an integer", name, v)
	}
}

func fieldString(v interface{}, name string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s is %T, not a string", name, v)
	}
	return s, nil
}

func fieldList(v interface{}, name string) ([]interface{}, error) {
	l, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field %s is %T, not a list", name, v)
	}
	return l, nil
}

func fieldStrings(v interface{}, name string) ([]string, error) {
	switch l := v.(type) {
	case []string:
		return l, nil
	case []interface{}:
		out := make([]string, len(l))
		for i, item := range l {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("field %s[%d] is %T, not a string", name, i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("field %s is %T, not a string list", name, v)
	}
}

func fieldProps(v interface{}, name string) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("field %s is %T, not a map", name, v)
	}
	return m, nil
}
