package node

import "cmp"

// Compare returns an integer comparing two documents node-by-node in
// ordinal order: 0 if equal, -1 if a sorts before b, +1 otherwise.
// Useful for detecting whether a cached encode is still current without
// a full decode round trip, grounded on the teacher's ir.Compare, which
// serves the same caching/dedup role for Tony documents.
func Compare(a, b *Document) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	n := min(len(a.Nodes), len(b.Nodes))
	for i := 0; i < n; i++ {
		if c := compareNode(a.Nodes[i], b.Nodes[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Nodes), len(b.Nodes))
}

// Equal reports whether two documents are identical node-for-node.
func Equal(a, b *Document) bool {
	return Compare(a, b) == 0
}

func compareNode(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case KindBool:
		return cmp.Compare(boolInt(a.Bool), boolInt(b.Bool))
	case KindNumber:
		return cmp.Compare(a.Number, b.Number)
	case KindString:
		return cmp.Compare(a.String, b.String)
	case KindDate:
		return cmp.Compare(a.EpochMillis, b.EpochMillis)
	case KindBigNumber, KindBigInt:
		return cmp.Compare(a.Literal, b.Literal)
	case KindSymbol, KindFunction, KindRef:
		return cmp.Compare(a.Index, b.Index)
	case KindArray, KindSet:
		return compareFields(a.Elements, b.Elements)
	case KindMap:
		return compareEntries(a.Entries, b.Entries)
	case KindError:
		if c := cmp.Compare(a.Message, b.Message); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Stack, b.Stack)
	case KindObject:
		if a.IsPlain != b.IsPlain {
			return cmp.Compare(boolInt(a.IsPlain), boolInt(b.IsPlain))
		}
		if !a.IsPlain {
			if c := cmp.Compare(a.ProtoIndex, b.ProtoIndex); c != 0 {
				return c
			}
		}
		return compareProperties(a.Properties, b.Properties)
	case KindTypedArray:
		if c := cmp.Compare(a.TypedArrayKind, b.TypedArrayKind); c != 0 {
			return c
		}
		return compareBytes(a.TypedArrayData, b.TypedArrayData)
	default:
		// undefined, null, nan, posinf, neginf: no payload to compare
		return 0
	}
}

func compareField(a, b Field) int {
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case KindBool:
		return cmp.Compare(boolInt(a.Bool), boolInt(b.Bool))
	case KindNumber:
		return cmp.Compare(a.Number, b.Number)
	case KindString:
		return cmp.Compare(a.String, b.String)
	case KindRef:
		return cmp.Compare(a.Ref, b.Ref)
	default:
		return 0
	}
}

func compareFields(a, b []Field) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := compareField(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareEntries(a, b []Entry) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := compareField(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := compareField(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareProperties(a, b []Property) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := compareField(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		for _, flag := range [][2]bool{
			{a[i].Configurable, b[i].Configurable},
			{a[i].Enumerable, b[i].Enumerable},
			{a[i].Writable, b[i].Writable},
			{a[i].IsAccessor, b[i].IsAccessor},
		} {
			if c := cmp.Compare(boolInt(flag[0]), boolInt(flag[1])); c != 0 {
				return c
			}
		}
		if c := compareField(a[i].Value, b[i].Value); c != 0 {
			return c
		}
		if c := compareField(a[i].Get, b[i].Get); c != 0 {
			return c
		}
		if c := compareField(a[i].Set, b[i].Set); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareBytes(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return cmp.Compare(a[i], b[i])
		}
	}
	return cmp.Compare(len(a), len(b))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
