// Package unmarshal decodes a node.Document back into an object.Value
// graph, restoring every KindRef field to the same Go value the
// marshaller collapsed it from — including cycles, which a single
// allocate-then-populate pass cannot resolve on its own.
//
// Decoding runs in two passes over the document's nodes: the first
// allocates one Go value per reference-tracked node (an empty shell for
// containers, a fully-formed value for anything with no children), the
// second walks the nodes again and fills in each container's fields,
// resolving KindRef fields against the shells the first pass already
// allocated. Because every shell exists before any field is populated, a
// cycle resolves to the right pointer instead of an infinite recursion.
//
// # Related Packages
//
//   - github.com/signadot/objectgraph/object - the values being reconstructed
//   - github.com/signadot/objectgraph/registry - resolves table indices back to prototypes, functions, symbols
//   - github.com/signadot/objectgraph/node - the document schema being consumed
package unmarshal
