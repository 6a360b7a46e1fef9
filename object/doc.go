// Package object models the dynamically-typed object graph that the
// marshal/unmarshal packages traverse and reconstruct.
//
// Go has no native dynamic object with prototypes, symbols, and property
// descriptors, so this package stands in for it: Value is the closed set
// of shapes the marshaller understands, and Object carries an ordered,
// descriptor-aware property list the way a host object would.
//
// Container built-ins that carry hidden state outside their ordinary
// properties (for example a Map's default-value factory) will lose that
// state across a round trip unless the state is exposed as an ordinary
// own property: reconstruction bypasses constructors entirely (see
// Class), so anything the encoder cannot see as a property is gone on
// the other side.
package object
