// Package node defines the document/node schema shared by every encoded
// object graph: a flat, ordinally-addressed sequence of typed nodes in
// which non-primitive values are referenced by position instead of being
// nested inline, which is what lets a document represent a cycle.
//
// A Document is a pure, transport-neutral tree; JSON or binary framing
// is the collaborator's concern (package wire). The canonical in-memory
// form is a slice of *Node whose Kind is a string discriminator and
// whose ordinal references are plain ints into that slice.
package node
