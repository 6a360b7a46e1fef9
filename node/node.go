package node

// Field is one slot inside a container (an array element, a map key or
// value, a set element): either an inline primitive encoded directly, or
// a Ref pointing at another node's ordinal. Per the spec's invariant,
// every non-primitive value gets its own top-level Node; a Field never
// embeds one inline.
type Field struct {
	Kind Kind `json:"kind"`

	Bool   bool    `json:"bool,omitempty"`
	Number float64 `json:"number,omitempty"`
	String string  `json:"string,omitempty"`

	// Ref is the referenced node's ordinal, valid when Kind == KindRef.
	Ref int `json:"ref,omitempty"`
}

// InlineUndefined, InlineNull and similar helpers build common Fields.
func InlineUndefined() Field { return Field{Kind: KindUndefined} }
func InlineNull() Field      { return Field{Kind: KindNull} }
func InlineBool(b bool) Field {
	return Field{Kind: KindBool, Bool: b}
}
func InlineNumber(n float64) Field {
	return Field{Kind: KindNumber, Number: n}
}
func InlineString(s string) Field {
	return Field{Kind: KindString, String: s}
}
func InlineNaN() Field    { return Field{Kind: KindNaN} }
func InlinePosInf() Field { return Field{Kind: KindPosInf} }
func InlineNegInf() Field { return Field{Kind: KindNegInf} }

// RefField builds a reference to the node at the given ordinal.
func RefField(ordinal int) Field {
	return Field{Kind: KindRef, Ref: ordinal}
}

// Entry is one key/value pair of a map node, in document order.
type Entry struct {
	Key   Field `json:"key"`
	Value Field `json:"value"`
}

// Property is one (key, descriptor) pair of an object node, in document
// (insertion) order. Key is either an inline string or a ref to a
// symbol node.
type Property struct {
	Key Field `json:"key"`

	Configurable bool `json:"configurable"`
	Enumerable   bool `json:"enumerable"`
	Writable     bool `json:"writable,omitempty"`

	IsAccessor bool  `json:"isAccessor,omitempty"`
	Value      Field `json:"value,omitzero"`
	Get        Field `json:"get,omitzero"`
	Set        Field `json:"set,omitzero"`
}

// Node is one entry of a Document. Only the fields relevant to Kind are
// meaningful; the rest are left zero. See Kind's doc comment for the
// closed set of tags.
type Node struct {
	Kind Kind `json:"kind"`

	// inline-kind payload, meaningful only when this Node is the
	// document root and the root itself is a primitive value.
	Bool   bool    `json:"bool,omitempty"`
	Number float64 `json:"number,omitempty"`
	String string  `json:"string,omitempty"`

	// date
	EpochMillis int64 `json:"epochMillis,omitempty"`

	// bignumber / bigint
	Literal string `json:"literal,omitempty"`

	// symbol / function
	Index int `json:"index,omitempty"`

	// array / set
	Elements []Field `json:"elements,omitempty"`

	// map
	Entries []Entry `json:"entries,omitempty"`

	// error
	Message string `json:"message,omitempty"`
	Name    string `json:"name,omitempty"`
	Stack   string `json:"stack,omitempty"`

	// object
	IsPlain    bool       `json:"isPlain,omitempty"`
	ProtoIndex int        `json:"protoIndex,omitempty"`
	Properties []Property `json:"properties,omitempty"`

	// typedarray
	TypedArrayKind string `json:"typedArrayKind,omitempty"`
	TypedArrayData []byte `json:"typedArrayData,omitempty"`
}

// Document is an ordered sequence of nodes; node 0 is the root.
type Document struct {
	Nodes []*Node
}

// Root returns the document's node 0. It panics if the document is
// empty, since a document with no nodes at all cannot represent any
// value, not even undefined.
func (d *Document) Root() *Node {
	return d.Nodes[0]
}

// At returns the node at ordinal, and whether ordinal is in range.
func (d *Document) At(ordinal int) (*Node, bool) {
	if ordinal < 0 || ordinal >= len(d.Nodes) {
		return nil, false
	}
	return d.Nodes[ordinal], true
}

// Len returns the number of nodes in the document.
func (d *Document) Len() int {
	return len(d.Nodes)
}
