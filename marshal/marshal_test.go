package marshal

import (
	"errors"
	"testing"

	"github.com/signadot/objectgraph/node"
	"github.com/signadot/objectgraph/object"
	"github.com/signadot/objectgraph/registry"
)

func TestMarshalScalarRoot(t *testing.T) {
	m := New(registry.New(registry.Config{}))
	doc, err := m.Marshal(object.String("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", doc.Len())
	}
	root := doc.Root()
	if root.Kind != node.KindString || root.String != "hello" {
		t.Fatalf("unexpected root: %+v", root)
	}
}

func TestMarshalArrayDedup(t *testing.T) {
	shared := object.NewArray(object.Number(1))
	root := object.NewArray(shared, shared)

	m := New(registry.New(registry.Config{}))
	doc, err := m.Marshal(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// node 0: root array, node 1: shared array, node 2: the number 1 is
	// inline so it does not get its own node.
	if doc.Len() != 2 {
		t.Fatalf("expected 2 nodes (root + shared, deduped), got %d", doc.Len())
	}
	rootNode := doc.Root()
	if len(rootNode.Elements) != 2 {
		t.Fatalf("expected 2 elements in root array")
	}
	if rootNode.Elements[0].Kind != node.KindRef || rootNode.Elements[1].Kind != node.KindRef {
		t.Fatalf("expected both elements to be refs")
	}
	if rootNode.Elements[0].Ref != rootNode.Elements[1].Ref {
		t.Fatalf("expected both refs to point at the same ordinal (dedup)")
	}
}

func TestMarshalCycle(t *testing.T) {
	arr := object.NewArray()
	arr.Elements = append(arr.Elements, arr)

	m := New(registry.New(registry.Config{}))
	doc, err := m.Marshal(arr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Len() != 1 {
		t.Fatalf("expected 1 node for a self-referencing array, got %d", doc.Len())
	}
	root := doc.Root()
	if len(root.Elements) != 1 || root.Elements[0].Kind != node.KindRef || root.Elements[0].Ref != 0 {
		t.Fatalf("expected the array's single element to ref ordinal 0, got %+v", root.Elements)
	}
}

func TestMarshalNonFiniteEnabledByDefault(t *testing.T) {
	m := New(registry.New(registry.Config{}))
	doc, err := m.Marshal(object.NonFinite{Kind: object.PosInf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Root().Kind != node.KindPosInf {
		t.Fatalf("expected posinf root, got %s", doc.Root().Kind)
	}
}

func TestMarshalNonFiniteDisabled(t *testing.T) {
	m := New(registry.New(registry.Config{}), WithNonFinite(false))
	_, err := m.Marshal(object.NonFinite{Kind: object.NaN})
	if !errors.Is(err, ErrNonFiniteDisabled) {
		t.Fatalf("expected ErrNonFiniteDisabled, got %v", err)
	}
}

func TestMarshalTypedArrayEnabledByDefault(t *testing.T) {
	m := New(registry.New(registry.Config{}))
	doc, err := m.Marshal(&object.TypedArray{Kind: object.Uint8Array, Data: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Root().Kind != node.KindTypedArray {
		t.Fatalf("expected typedarray root, got %s", doc.Root().Kind)
	}
}

func TestMarshalTypedArrayDisabled(t *testing.T) {
	m := New(registry.New(registry.Config{}), WithTypedArrays(false))
	_, err := m.Marshal(&object.TypedArray{Kind: object.Uint8Array, Data: []byte{1, 2, 3}})
	if !errors.Is(err, ErrTypedArrayDisabled) {
		t.Fatalf("expected ErrTypedArrayDisabled, got %v", err)
	}
}

func TestMarshalObjectWithPrototype(t *testing.T) {
	cls := object.NewClass("Point")
	reg := registry.New(registry.Config{Prototypes: []*object.Class{cls}})

	instance := object.NewObject(cls)
	instance.DefineProperty(object.String("x"), object.ValueDescriptor(object.Number(1), true, true, true))

	m := New(reg)
	doc, err := m.Marshal(instance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := doc.Root()
	if root.Kind != node.KindObject || root.IsPlain {
		t.Fatalf("expected a non-plain object node, got %+v", root)
	}
	if root.ProtoIndex != 0 {
		t.Fatalf("expected proto index 0, got %d", root.ProtoIndex)
	}
	if len(root.Properties) != 1 || root.Properties[0].Key.String != "x" {
		t.Fatalf("unexpected properties: %+v", root.Properties)
	}
}

func TestMarshalUnknownPrototype(t *testing.T) {
	stray := object.NewClass("Stray")
	m := New(registry.New(registry.Config{}))
	_, err := m.Marshal(object.NewObject(stray))
	if !errors.Is(err, registry.ErrUnknownPrototype) {
		t.Fatalf("expected ErrUnknownPrototype, got %v", err)
	}
}

func TestMarshalSameValueAsMapKeyAndReference(t *testing.T) {
	shared := object.NewObject(nil)
	m2 := object.NewMap()
	m2.Set(shared, object.String("value-for-shared-key"))

	root := object.NewArray(shared, m2)

	m := New(registry.New(registry.Config{}))
	doc, err := m.Marshal(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rootNode := doc.Root()
	arrayRefToShared := rootNode.Elements[0]
	mapNodeField := rootNode.Elements[1]
	mapNode, ok := doc.At(mapNodeField.Ref)
	if !ok {
		t.Fatalf("expected map node at ref %d", mapNodeField.Ref)
	}
	keyField := mapNode.Entries[0].Key
	if keyField.Ref != arrayRefToShared.Ref {
		t.Fatalf("expected the map key and the array element to share ordinal %d, got %d", arrayRefToShared.Ref, keyField.Ref)
	}
}
