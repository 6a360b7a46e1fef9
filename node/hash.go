package node

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, not following ref ordinals
// (refs hash as their ordinal, not as the pointed-to node's content).
// Grounded on the teacher's (*ir.Node).Hash, used the same way here: to
// cheaply detect whether a document is likely to have changed without a
// full Compare. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("node: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(len(n.Kind)))
	h.WriteString(string(n.Kind))

	switch n.Kind {
	case KindBool:
		writeBool(&h, n.Bool)
	case KindNumber:
		writeFloat(&h, n.Number)
	case KindString:
		h.WriteString(n.String)
	case KindDate:
		writeInt64(&h, n.EpochMillis)
	case KindBigNumber, KindBigInt:
		h.WriteString(n.Literal)
	case KindSymbol, KindFunction, KindRef:
		writeInt64(&h, int64(n.Index))
	case KindArray, KindSet:
		for _, e := range n.Elements {
			hashField(&h, e)
		}
	case KindMap:
		for _, e := range n.Entries {
			hashField(&h, e.Key)
			hashField(&h, e.Value)
		}
	case KindError:
		h.WriteString(n.Message)
		h.WriteString(n.Name)
		h.WriteString(n.Stack)
	case KindObject:
		writeBool(&h, n.IsPlain)
		writeInt64(&h, int64(n.ProtoIndex))
		for _, p := range n.Properties {
			hashField(&h, p.Key)
			writeBool(&h, p.Configurable)
			writeBool(&h, p.Enumerable)
			writeBool(&h, p.Writable)
			hashField(&h, p.Value)
		}
	case KindTypedArray:
		h.WriteString(n.TypedArrayKind)
		h.Write(n.TypedArrayData)
	}
	return h.Sum64()
}

func hashField(h *maphash.Hash, f Field) {
	h.WriteByte(byte(len(f.Kind)))
	h.WriteString(string(f.Kind))
	switch f.Kind {
	case KindBool:
		writeBool(h, f.Bool)
	case KindNumber:
		writeFloat(h, f.Number)
	case KindString:
		h.WriteString(f.String)
	case KindRef:
		writeInt64(h, int64(f.Ref))
	}
}

func writeBool(h *maphash.Hash, b bool) {
	if b {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
}

func writeInt64(h *maphash.Hash, v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	h.Write(b[:])
}

func writeFloat(h *maphash.Hash, f float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	h.Write(b[:])
}
