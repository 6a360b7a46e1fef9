package unmarshal

import (
	"errors"
	"testing"

	"github.com/signadot/objectgraph/marshal"
	"github.com/signadot/objectgraph/node"
	"github.com/signadot/objectgraph/object"
	"github.com/signadot/objectgraph/registry"
)

func TestUnmarshalScalarRoot(t *testing.T) {
	doc := &node.Document{Nodes: []*node.Node{{Kind: node.KindString, String: "hello"}}}
	u := New(registry.New(registry.Config{}))
	v, err := u.Unmarshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := v.(object.String)
	if !ok || string(s) != "hello" {
		t.Fatalf("unexpected value: %#v", v)
	}
}

func TestUnmarshalEmptyDocument(t *testing.T) {
	u := New(registry.New(registry.Config{}))
	_, err := u.Unmarshal(&node.Document{})
	if !errors.Is(err, ErrBadDocument) {
		t.Fatalf("expected ErrBadDocument, got %v", err)
	}
}

func TestUnmarshalStrictRejectsExtensionKindByDefault(t *testing.T) {
	doc := &node.Document{Nodes: []*node.Node{{Kind: node.KindNaN}}}
	u := New(registry.New(registry.Config{}))
	_, err := u.Unmarshal(doc)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestUnmarshalStrictRejectsExtensionKind(t *testing.T) {
	doc := &node.Document{Nodes: []*node.Node{{Kind: node.KindNaN}}}
	u := New(registry.New(registry.Config{}), WithStrict(true))
	_, err := u.Unmarshal(doc)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestUnmarshalPermissiveAcceptsExtensionKind(t *testing.T) {
	doc := &node.Document{Nodes: []*node.Node{{Kind: node.KindNaN}}}
	u := New(registry.New(registry.Config{}), WithStrict(false))
	v, err := u.Unmarshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nf, ok := v.(object.NonFinite)
	if !ok || nf.Kind != object.NaN {
		t.Fatalf("unexpected value: %#v", v)
	}
}

func TestUnmarshalStrictRejectsUnrecognizedKind(t *testing.T) {
	doc := &node.Document{Nodes: []*node.Node{{Kind: node.Kind("bogus")}}}
	u := New(registry.New(registry.Config{}))
	_, err := u.Unmarshal(doc)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestUnmarshalPermissiveFallsBackToUndefinedForUnrecognizedKind(t *testing.T) {
	doc := &node.Document{Nodes: []*node.Node{{Kind: node.Kind("bogus")}}}
	u := New(registry.New(registry.Config{}), WithStrict(false))
	v, err := u.Unmarshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != object.Undef {
		t.Fatalf("expected object.Undef, got %#v", v)
	}
}

func TestUnmarshalRegistryMismatch(t *testing.T) {
	doc := &node.Document{Nodes: []*node.Node{{Kind: node.KindSymbol, Index: 3}}}
	u := New(registry.New(registry.Config{}))
	_, err := u.Unmarshal(doc)
	if !errors.Is(err, ErrRegistryMismatch) {
		t.Fatalf("expected ErrRegistryMismatch, got %v", err)
	}
}

// roundTrip runs v through Marshal then Unmarshal against the same
// registry and returns the result. Decoding is permissive: these tests
// exercise fidelity of the round trip, not strict-mode rejection, which
// has its own tests above.
func roundTrip(t *testing.T, reg *registry.Registry, v object.Value, opts ...marshal.MarshalOption) object.Value {
	t.Helper()
	doc, err := marshal.New(reg, opts...).Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := New(reg, WithStrict(false)).Unmarshal(doc)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestRoundTripArrayDedup(t *testing.T) {
	shared := object.NewArray(object.Number(42))
	root := object.NewArray(shared, shared)
	reg := registry.New(registry.Config{})

	out := roundTrip(t, reg, root).(*object.Array)
	if len(out.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(out.Elements))
	}
	a, ok1 := out.Elements[0].(*object.Array)
	b, ok2 := out.Elements[1].(*object.Array)
	if !ok1 || !ok2 {
		t.Fatalf("expected both elements to be arrays")
	}
	if a != b {
		t.Fatalf("expected the decoded shared array to be the same pointer both times")
	}
	if len(a.Elements) != 1 || a.Elements[0].(object.Number) != 42 {
		t.Fatalf("unexpected inner array contents: %+v", a.Elements)
	}
}

func TestRoundTripCycle(t *testing.T) {
	arr := object.NewArray()
	arr.Elements = append(arr.Elements, arr)
	reg := registry.New(registry.Config{})

	out := roundTrip(t, reg, arr).(*object.Array)
	if len(out.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(out.Elements))
	}
	self, ok := out.Elements[0].(*object.Array)
	if !ok || self != out {
		t.Fatalf("expected the array to reference itself after round-trip")
	}
}

func TestRoundTripObjectWithAccessor(t *testing.T) {
	cls := object.NewClass("Counter")
	getter := object.NewFunc("get count", "function() { return this._n; }", func(this object.Value, args ...object.Value) (object.Value, error) {
		return object.Number(7), nil
	})
	reg := registry.New(registry.Config{
		Prototypes: []*object.Class{cls},
		Functions:  []*object.Func{getter},
	})

	instance := object.NewObject(cls)
	instance.DefineProperty(object.String("count"), object.AccessorDescriptor(getter, nil, true, true))

	out := roundTrip(t, reg, instance).(*object.Object)
	if out.Proto != cls {
		t.Fatalf("expected decoded object's Proto to be the same *Class pointer")
	}
	d, ok := out.GetOwn(object.String("count"))
	if !ok || !d.IsAccessor() || d.Get != getter {
		t.Fatalf("expected the decoded getter to be the same *Func pointer as registered, got %+v", d)
	}
}

func TestRoundTripMapKeySharesIdentityWithPlainReference(t *testing.T) {
	shared := object.NewObject(nil)
	m := object.NewMap()
	m.Set(shared, object.String("v"))
	root := object.NewArray(shared, m)
	reg := registry.New(registry.Config{})

	out := roundTrip(t, reg, root).(*object.Array)
	decodedShared := out.Elements[0].(*object.Object)
	decodedMap := out.Elements[1].(*object.Map)
	if decodedMap.Entries[0].Key != object.Value(decodedShared) {
		t.Fatalf("expected the map key to be the same object as the array's shared element")
	}
}

func TestRoundTripNonFiniteAndBigInt(t *testing.T) {
	reg := registry.New(registry.Config{})
	bi, err := object.NewBigIntFromString("123456789012345678901234567890")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := object.NewArray(object.NonFinite{Kind: object.NaN}, bi)

	out := roundTrip(t, reg, root, marshal.WithNonFinite(true)).(*object.Array)
	nf, ok := out.Elements[0].(object.NonFinite)
	if !ok || nf.Kind != object.NaN {
		t.Fatalf("expected NaN, got %#v", out.Elements[0])
	}
	gotBI, ok := out.Elements[1].(*object.BigInt)
	if !ok || gotBI.Literal() != bi.Literal() {
		t.Fatalf("expected matching bigint literal, got %#v", out.Elements[1])
	}
}
