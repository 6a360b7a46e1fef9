package node

import "testing"

func TestEqual(t *testing.T) {
	a := &Document{Nodes: []*Node{
		{Kind: KindObject, IsPlain: true, Properties: []Property{
			{Key: InlineString("hello"), Enumerable: true, Writable: true, Value: InlineString("world")},
		}},
	}}
	b := &Document{Nodes: []*Node{
		{Kind: KindObject, IsPlain: true, Properties: []Property{
			{Key: InlineString("hello"), Enumerable: true, Writable: true, Value: InlineString("world")},
		}},
	}}
	if !Equal(a, b) {
		t.Fatalf("expected documents to compare equal")
	}

	c := &Document{Nodes: []*Node{
		{Kind: KindObject, IsPlain: true, Properties: []Property{
			{Key: InlineString("hello"), Enumerable: true, Writable: true, Value: InlineString("there")},
		}},
	}}
	if Equal(a, c) {
		t.Fatalf("expected documents to differ")
	}
}

func TestHashStable(t *testing.T) {
	n := &Node{Kind: KindArray, Elements: []Field{InlineNumber(1), InlineString("x")}}
	h1 := n.Hash()
	h2 := n.Hash()
	if h1 != h2 {
		t.Fatalf("hash not stable across calls: %d != %d", h1, h2)
	}

	other := &Node{Kind: KindArray, Elements: []Field{InlineNumber(2), InlineString("x")}}
	if n.Hash() == other.Hash() {
		t.Fatalf("expected different nodes to (almost certainly) hash differently")
	}
}

func TestDiffReplace(t *testing.T) {
	a := &Document{Nodes: []*Node{{Kind: KindString, String: "hello"}}}
	b := &Document{Nodes: []*Node{{Kind: KindString, String: "hullo"}}}
	patches := Diff(a, b)
	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != OpReplace {
		t.Fatalf("expected replace op, got %s", patches[0].Op)
	}
	if patches[0].TextDiff == "" {
		t.Fatalf("expected a non-empty text diff for two differing strings")
	}
}

func TestDiffAddRemove(t *testing.T) {
	a := &Document{Nodes: []*Node{{Kind: KindNull}}}
	b := &Document{Nodes: []*Node{{Kind: KindNull}, {Kind: KindBool, Bool: true}}}
	patches := Diff(a, b)
	if len(patches) != 1 || patches[0].Op != OpAdd {
		t.Fatalf("expected a single add patch, got %+v", patches)
	}

	patches = Diff(b, a)
	if len(patches) != 1 || patches[0].Op != OpRemove {
		t.Fatalf("expected a single remove patch, got %+v", patches)
	}
}
