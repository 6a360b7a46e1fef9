package unmarshal

import "errors"

// Sentinel errors returned (wrapped with fmt.Errorf("%w: ...")) by
// Unmarshal, matching the spec's decode-side error taxonomy (§7).
var (
	// ErrBadDocument is returned when a document is structurally
	// malformed in a way no registry mismatch could explain: an empty
	// document, a non-root node carrying an inline-only kind, a top-level
	// node tagged KindRef, a field whose Ref ordinal is out of range, an
	// invalid bignumber/bigint literal, or an accessor field that does
	// not resolve to a function.
	ErrBadDocument = errors.New("unmarshal: malformed document")

	// ErrUnknownKind is returned in strict mode when a node or field
	// carries a kind tag this decoder does not recognize, or one of the
	// §10.1 extension kinds. In permissive mode an unrecognized kind
	// decodes to object.Undefined instead.
	ErrUnknownKind = errors.New("unmarshal: unknown node kind")

	// ErrRegistryMismatch is returned when a document references a
	// prototype, function, or symbol table index the configured registry
	// does not have, indicating the decoder's registry does not match the
	// one the encoder used.
	ErrRegistryMismatch = errors.New("unmarshal: document does not match registry")
)
