package object

// TypedArrayKind names the element type of a TypedArray, mirroring the
// host environment's family of byte-backed numeric arrays.
type TypedArrayKind string

const (
	Uint8Array   TypedArrayKind = "Uint8Array"
	Int8Array    TypedArrayKind = "Int8Array"
	Uint16Array  TypedArrayKind = "Uint16Array"
	Int16Array   TypedArrayKind = "Int16Array"
	Uint32Array  TypedArrayKind = "Uint32Array"
	Int32Array   TypedArrayKind = "Int32Array"
	Float32Array TypedArrayKind = "Float32Array"
	Float64Array TypedArrayKind = "Float64Array"
)

// TypedArray is the §10.1 extension for byte-backed numeric arrays. Data
// holds the raw little-endian bytes; Kind says how to interpret them.
type TypedArray struct {
	Kind TypedArrayKind
	Data []byte
}

func (*TypedArray) isValue() {}
