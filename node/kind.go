package node

import "fmt"

// Kind is the closed set of node tags a document may contain, string-backed
// so it reads as a self-describing discriminator in JSON the way the
// teacher's ir.Type does, rather than an opaque integer.
type Kind string

const (
	KindUndefined Kind = "undefined"
	KindNull      Kind = "null"
	KindBool      Kind = "bool"
	KindNumber    Kind = "number"
	KindString    Kind = "string"

	// Non-finite numbers, bigint, and typed arrays are the §10.1
	// forward-compatible extension; a strict decoder rejects them with
	// ErrUnknownKind. bignumber belongs to the core set (see coreKinds).
	KindNaN        Kind = "nan"
	KindPosInf     Kind = "posinf"
	KindNegInf     Kind = "neginf"
	KindBigNumber  Kind = "bignumber"
	KindBigInt     Kind = "bigint"
	KindTypedArray Kind = "typedarray"

	KindDate     Kind = "date"
	KindSymbol   Kind = "symbol"
	KindFunction Kind = "function"
	KindArray    Kind = "array"
	KindMap      Kind = "map"
	KindSet      Kind = "set"
	KindError    Kind = "error"
	KindObject   Kind = "object"
	KindRef      Kind = "ref"
)

// coreKinds is the set defined by the base specification (§3); the
// extension kinds are listed separately so strict-mode checks can tell
// the two apart.
var coreKinds = map[Kind]bool{
	KindUndefined: true,
	KindNull:      true,
	KindBool:      true,
	KindNumber:    true,
	KindString:    true,
	KindDate:      true,
	KindBigNumber: true,
	KindSymbol:    true,
	KindFunction:  true,
	KindArray:     true,
	KindMap:       true,
	KindSet:       true,
	KindError:     true,
	KindObject:    true,
	KindRef:       true,
}

var extensionKinds = map[Kind]bool{
	KindNaN:        true,
	KindPosInf:     true,
	KindNegInf:     true,
	KindBigInt:     true,
	KindTypedArray: true,
}

// IsExtension reports whether k is one of the §10.1 extension kinds
// rather than one of the base specification's closed set.
func (k Kind) IsExtension() bool {
	return extensionKinds[k]
}

// Valid reports whether k is a recognized kind at all (core or extension).
func (k Kind) Valid() bool {
	return coreKinds[k] || extensionKinds[k]
}

// IsInline reports whether values of this kind are encoded by value
// wherever they appear, rather than reference-tracked.
func (k Kind) IsInline() bool {
	switch k {
	case KindUndefined, KindNull, KindBool, KindNumber, KindString,
		KindNaN, KindPosInf, KindNegInf:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("node: invalid kind %q", string(k))
	}
	return []byte(k), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	candidate := Kind(d)
	if !candidate.Valid() {
		return fmt.Errorf("node: invalid kind %q", string(d))
	}
	*k = candidate
	return nil
}
