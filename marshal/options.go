package marshal

// MarshalOption configures a Marshaller, following the teacher's
// functional-options idiom (see encode.Option in the teacher's encode
// package).
type MarshalOption func(*Marshaller)

// WithNonFinite toggles encoding of object.NonFinite (NaN, +Inf, -Inf)
// and *object.BigInt values as the §10.1 extension node kinds. Enabled
// by default; pass false to restrict a Marshaller to the base
// specification's closed kind set, in which case encountering one of
// these values returns ErrNonFiniteDisabled instead of silently
// producing an extension-kind document a strict peer will reject.
func WithNonFinite(enabled bool) MarshalOption {
	return func(m *Marshaller) { m.nonFinite = enabled }
}

// WithTypedArrays toggles encoding of *object.TypedArray values as the
// §10.1 extension typedarray node kind. Enabled by default, for the
// same reason as WithNonFinite.
func WithTypedArrays(enabled bool) MarshalOption {
	return func(m *Marshaller) { m.typedArrays = enabled }
}
