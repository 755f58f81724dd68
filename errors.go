package neograph

import "errors"

// ErrNotFound is a sentinel error returned by Graph lookups when no entity
// with the requested identity has been registered.
var ErrNotFound = errors.New("entity not found")

// ErrMalformedPath is a sentinel error returned by HydratePath when the
// compact path encoding is invalid (odd-length index sequence, empty node
// list, zero relationship selector, or an index outside the supplied lists).
// A failed hydration produces no partial Path.
var ErrMalformedPath = errors.New("malformed path encoding")

// ErrUnknownTag is a sentinel error returned by Registry.Hydrate when the
// wire tag does not correspond to any registered structure type.
var ErrUnknownTag = errors.New("unknown structure tag")

// ErrUnsupportedParameter is a sentinel error returned when a graph value
// (Node, Relationship or Path) is passed where an outbound query parameter
// is expected. The server accepts no wire shape for graph fragments as
// input, so there is deliberately no encoder for them.
var ErrUnsupportedParameter = errors.New("graph types cannot be used as query parameters")
