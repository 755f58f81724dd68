package neograph

import "fmt"

// Relationship is a self-contained graph relationship: a server identity, a
// type, a property map and, once bound, the identities of its two endpoint
// nodes.
//
// A relationship exists in one of two states. A bound relationship, as
// returned directly by a query, knows both endpoints from the moment it is
// created. An unbound relationship carries only its identity, type and
// properties; it exists solely as raw material for path hydration, which
// resolves its endpoints in place. Because of that in-place resolution, an
// unbound relationship handed to HydratePath is exclusively owned by that
// call and must not be aliased elsewhere until the call returns. Once bound,
// a relationship is immutable and safe to share across goroutines.
type Relationship struct {
	entity
	relType string
	start   int64
	end     int64
	bound   bool
}

// HydrateRelationship builds a bound Relationship from its decoded wire
// fields: the server id, the endpoint node ids, the type and the property
// map. Properties with nil values are dropped.
func HydrateRelationship(id, start, end int64, relType string, props map[string]interface{}) *Relationship {
	return &Relationship{
		entity:  hydratedEntity(id, props),
		relType: relType,
		start:   start,
		end:     end,
		bound:   true,
	}
}

// HydrateUnboundRelationship builds a Relationship whose endpoints are left
// unresolved. See the Relationship ownership contract.
func HydrateUnboundRelationship(id int64, relType string, props map[string]interface{}) *Relationship {
	return &Relationship{
		entity:  hydratedEntity(id, props),
		relType: relType,
	}
}

func hydratedEntity(id int64, props map[string]interface{}) entity {
	e := newEntity(props, nil)
	e.id = id
	e.idSet = true
	return e
}

// Type returns the relationship type.
func (r *Relationship) Type() string {
	return r.relType
}

// StartID returns the identity of the start node. Zero until bound.
func (r *Relationship) StartID() int64 {
	return r.start
}

// EndID returns the identity of the end node. Zero until bound.
func (r *Relationship) EndID() int64 {
	return r.end
}

// Bound reports whether the endpoints have been resolved.
func (r *Relationship) Bound() bool {
	return r.bound
}

// Nodes returns the (start, end) endpoint identity pair.
func (r *Relationship) Nodes() (int64, int64) {
	return r.start, r.end
}

// bindEndpoints resolves the endpoints of an unbound relationship during
// path hydration.
func (r *Relationship) bindEndpoints(start, end int64) {
	r.start = start
	r.end = end
	r.bound = true
}

func (r *Relationship) String() string {
	if !r.bound {
		return fmt.Sprintf("<Relationship id=%s type=%s unbound>", formatIdentity(&r.entity), r.relType)
	}
	return fmt.Sprintf("<Relationship id=%s start=%d end=%d type=%s props=%d>",
		formatIdentity(&r.entity), r.start, r.end, r.relType, r.Len())
}
