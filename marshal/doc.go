// Package marshal encodes an object.Value graph into a node.Document,
// assigning each reference-tracked value one ordinal the first time it
// is seen and replacing every later occurrence with a KindRef field. It
// is the write side of the reference-identity protocol; unmarshal is
// the read side.
//
// # Related Packages
//
//   - github.com/signadot/objectgraph/object - the values being encoded
//   - github.com/signadot/objectgraph/registry - resolves prototypes, functions, symbols to table indices
//   - github.com/signadot/objectgraph/node - the document schema being produced
package marshal
