package neograph

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// bindMetadata holds the parsed `graph` tag information for a struct type.
// Parsed metadata is cached to avoid costly reflection on every bind.
type bindMetadata struct {
	// Label is the node label associated with the struct, defaulting to the
	// struct's name.
	Label string
	// IDField is the name of the struct field receiving the node identity,
	// if any.
	IDField string
	// Mappings maps struct field names to node property names.
	Mappings map[string]string
}

var bindMetaCache sync.Map // reflect.Type -> *bindMetadata

// parseBindTags inspects a struct type and extracts binding metadata from
// its `graph` tags. Supported tag components:
//
//	graph:"property:<name>"  — map the field to the named node property
//	graph:"id"               — receive the node's server identity (int64)
//	graph:"label:<Label>"    — override the label derived from the type name
//	                           (valid on any tagged field, last one wins)
//
// Untagged fields are left alone.
func parseBindTags(typ reflect.Type) (*bindMetadata, error) {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("type %s is not a struct", typ.Name())
	}

	if cached, ok := bindMetaCache.Load(typ); ok {
		return cached.(*bindMetadata), nil
	}

	meta := &bindMetadata{
		Label:    typ.Name(),
		Mappings: make(map[string]string),
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("graph")
		if tag == "" {
			continue
		}

		for _, part := range strings.Split(tag, ",") {
			switch {
			case part == "id":
				if field.Type.Kind() != reflect.Int64 {
					return nil, fmt.Errorf("id field %s must be int64, is %s", field.Name, field.Type)
				}
				meta.IDField = field.Name
			case strings.HasPrefix(part, "property:"):
				meta.Mappings[field.Name] = strings.TrimPrefix(part, "property:")
			case strings.HasPrefix(part, "label:"):
				meta.Label = strings.TrimPrefix(part, "label:")
			default:
				return nil, fmt.Errorf("field %s has unknown tag component %q", field.Name, part)
			}
		}
	}

	bindMetaCache.Store(typ, meta)
	return meta, nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Bind populates a struct's fields from a node's properties according to the
// struct's `graph` tags. Properties absent from the node leave the
// corresponding fields at their zero value; node properties without a tagged
// field are ignored.
//
// Parameters:
//   - n: The hydrated node to read from.
//   - out: A non-nil pointer to the struct to populate.
//
// Returns:
//
//	An error if out is not a pointer to a struct, if the tags are invalid,
//	or if a property value cannot be assigned to its field.
func Bind(n *Node, out interface{}) error {
	val := reflect.ValueOf(out)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("bind target must be a non-nil pointer")
	}

	meta, err := parseBindTags(val.Elem().Type())
	if err != nil {
		return err
	}

	elem := val.Elem()
	if meta.IDField != "" {
		if id, ok := n.Identity(); ok {
			elem.FieldByName(meta.IDField).SetInt(id)
		}
	}

	for fieldName, propName := range meta.Mappings {
		field := elem.FieldByName(fieldName)
		if !field.IsValid() || !field.CanSet() {
			continue
		}
		propValue, ok := n.Props()[propName]
		if !ok {
			continue
		}
		pv := reflect.ValueOf(propValue)
		if !pv.Type().AssignableTo(field.Type()) {
			// Numeric widening only. A plain ConvertibleTo check would also
			// accept int-to-string conversions, which mangle the value.
			if !isNumericKind(pv.Kind()) || !isNumericKind(field.Kind()) {
				return fmt.Errorf("property %s is %T, not assignable to field %s", propName, propValue, fieldName)
			}
			pv = pv.Convert(field.Type())
		}
		field.Set(pv)
	}
	return nil
}

// BindAs is a generic convenience wrapper around Bind that allocates and
// populates a fresh T from a node.
func BindAs[T any](n *Node) (*T, error) {
	out := new(T)
	if err := Bind(n, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CollectAs binds every node in a Graph carrying T's label into a slice of
// T, ordered by node identity. Nodes with other labels are skipped.
func CollectAs[T any](g *Graph) ([]*T, error) {
	meta, err := parseBindTags(reflect.TypeOf((*T)(nil)))
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, g.NodeCount())
	for id, n := range g.nodes {
		if n.Labels().Contains(meta.Label) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		bound, err := BindAs[T](g.nodes[id])
		if err != nil {
			return nil, err
		}
		out = append(out, bound)
	}
	return out, nil
}
