// Package wire carries node.Document values across process boundaries:
// as a bare JSON array (the document's canonical textual form), as a
// length-prefixed binary frame over a stream connection, and as the
// target of an RFC 6902 JSON Patch for incremental updates.
//
// # Related Packages
//
//   - github.com/signadot/objectgraph/node - the document type being transported
package wire
