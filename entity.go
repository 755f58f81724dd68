package neograph

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
)

// Identified is the capability shared by every server-identified graph value.
// Equality between entities is defined only in terms of this capability: a
// value that does not implement it never compares equal to an entity.
type Identified interface {
	// Identity returns the server-assigned identifier of the value and
	// whether one has been assigned yet.
	Identity() (int64, bool)
}

// entity is the common core of Node and Relationship: an optional
// server-assigned identity plus an immutable property map.
type entity struct {
	id    int64
	idSet bool
	props map[string]interface{}
}

// mergeProperties combines a base property map with a set of overrides,
// dropping every entry whose value is nil. The server does not distinguish
// between an absent property and a property explicitly set to null, so
// neither does the resulting map.
func mergeProperties(base map[string]interface{}, overrides map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	for k, v := range merged {
		if v == nil {
			delete(merged, k)
		}
	}
	return merged
}

func newEntity(props map[string]interface{}, overrides map[string]interface{}) entity {
	return entity{props: mergeProperties(props, overrides)}
}

// Identity returns the server-assigned identifier, if any.
func (e *entity) Identity() (int64, bool) {
	return e.id, e.idSet
}

// Get returns the value of the named property, or nil if it is absent.
// A missing key is not an error.
func (e *entity) Get(name string) interface{} {
	return e.props[name]
}

// GetOr returns the value of the named property, or fallback if it is absent.
func (e *entity) GetOr(name string, fallback interface{}) interface{} {
	if v, ok := e.props[name]; ok {
		return v
	}
	return fallback
}

// Contains reports whether the named property is present.
func (e *entity) Contains(name string) bool {
	_, ok := e.props[name]
	return ok
}

// Len returns the number of properties.
func (e *entity) Len() int {
	return len(e.props)
}

// Keys returns the property names in sorted order.
func (e *entity) Keys() []string {
	keys := make([]string, 0, len(e.props))
	for k := range e.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the property values, ordered by their sorted keys.
func (e *entity) Values() []interface{} {
	keys := e.Keys()
	values := make([]interface{}, len(keys))
	for i, k := range keys {
		values[i] = e.props[k]
	}
	return values
}

// Props returns the underlying property map. The map is shared, not copied;
// callers must treat it as read-only.
func (e *entity) Props() map[string]interface{} {
	return e.props
}

// Equal reports whether other is an entity with the same identity. A value
// without the Identified capability (a plain int, a string, a struct from
// another package) is simply not equal; no type guard is needed at the call
// site. Two entities that both lack an assigned identity compare equal to
// each other, matching the behaviour of the wire protocol reference
// implementation, which some callers rely on.
func (e *entity) Equal(other interface{}) bool {
	o, ok := other.(Identified)
	if !ok {
		return false
	}
	oid, oSet := o.Identity()
	if e.idSet != oSet {
		return false
	}
	return !e.idSet || e.id == oid
}

// Hash returns a hash derived solely from the identity, so that equal
// entities always hash equal.
func (e *entity) Hash() uint64 {
	var buf [9]byte
	if e.idSet {
		buf[0] = 1
		binary.BigEndian.PutUint64(buf[1:], uint64(e.id))
	}
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}
