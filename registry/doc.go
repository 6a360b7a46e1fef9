// Package registry holds the peer-shared positional tables of
// prototypes, functions, and symbols that the marshal/unmarshal packages
// resolve document nodes against.
//
// A Registry is effectively immutable once built: both peers must
// construct equivalent registries (same length, same semantic content
// per index) for a document to decode faithfully. A positional mismatch
// between a document's encoder and its decoder's registry produces the
// wrong result silently — this package cannot detect that, and the spec
// places the burden of keeping registries aligned on the caller.
//
// # Related Packages
//
//   - github.com/signadot/objectgraph/object - the values a registry entry describes
//   - github.com/signadot/objectgraph/marshal - the encode-side consumer
//   - github.com/signadot/objectgraph/unmarshal - the decode-side consumer
package registry
