package marshal

import "errors"

// Sentinel errors returned (wrapped with fmt.Errorf("%w: ...")) by
// Marshal, matching the spec's encode-side error taxonomy (§7).
var (
	// ErrNonFiniteDisabled is returned when a NonFinite or BigInt value is
	// encountered but the marshaller was constructed with
	// WithNonFinite(false).
	ErrNonFiniteDisabled = errors.New("marshal: non-finite/bigint encoding disabled")

	// ErrTypedArrayDisabled is returned when a *object.TypedArray is
	// encountered but the marshaller was constructed with
	// WithTypedArrays(false).
	ErrTypedArrayDisabled = errors.New("marshal: typed array encoding disabled")

	// ErrUnknownValue is returned when a value implements object.Value but
	// is not one of the concrete types this package knows how to encode.
	// This can only happen if a caller outside this module set defines a
	// new object.Value implementation, which the sealed interface is
	// meant to prevent.
	ErrUnknownValue = errors.New("marshal: unknown value type")
)
