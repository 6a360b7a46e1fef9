package marshal

import (
	"fmt"

	"github.com/signadot/objectgraph/node"
	"github.com/signadot/objectgraph/object"
	"github.com/signadot/objectgraph/registry"
)

// Marshaller encodes object.Value graphs against a fixed Registry. It
// holds no per-call state, so a single Marshaller can be reused
// concurrently across goroutines as long as the values it is asked to
// encode are not concurrently mutated (§5).
type Marshaller struct {
	reg *registry.Registry

	nonFinite   bool
	typedArrays bool
}

// New constructs a Marshaller bound to reg. By default both the
// non-finite/bigint and typed-array extensions (§10.1) are enabled;
// pass WithNonFinite(false) or WithTypedArrays(false) to restrict
// encoding to the base specification's closed kind set.
func New(reg *registry.Registry, opts ...MarshalOption) *Marshaller {
	m := &Marshaller{reg: reg, nonFinite: true, typedArrays: true}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Marshal walks v depth-first, producing a Document whose node 0 is v
// itself. Every reference-tracked value (object, array, map, set, date,
// bignumber, bigint, symbol, function, error, typedarray) reachable from
// v gets exactly one node, at the ordinal of its first encounter in
// traversal order; every later encounter of the same value — including
// v reappearing inside its own graph — becomes a KindRef field pointing
// at that ordinal. Inline values (undefined, null, bool, number, string,
// and, when enabled, the non-finite numbers) are never reference-tracked
// and are written by value everywhere they occur.
//
// Grounded on the teacher's gomap.toIRReflectValue dispatch-by-kind
// walk, generalized from a Go-reflection source to an object.Value
// source, and on gomap's visited-pointer-map cycle detection,
// generalized from "detect and reject" to "detect and dedup".
func (m *Marshaller) Marshal(v object.Value) (*node.Document, error) {
	if v == nil {
		v = object.Undef
	}
	e := &encoder{m: m, doc: &node.Document{}, refs: make(map[object.Value]int)}

	root := &node.Node{}
	e.doc.Nodes = append(e.doc.Nodes, root)
	if isReferenceTracked(v) {
		e.refs[v] = 0
	}
	if err := e.populate(root, v); err != nil {
		return nil, err
	}
	return e.doc, nil
}

type encoder struct {
	m    *Marshaller
	doc  *node.Document
	refs map[object.Value]int
}

// isReferenceTracked reports whether v's kind is dedup/cycle-tracked
// rather than written inline everywhere it occurs.
func isReferenceTracked(v object.Value) bool {
	switch v.(type) {
	case object.Undefined, object.Null, object.Bool, object.Number, object.String, object.NonFinite:
		return false
	default:
		return true
	}
}

// encodeField produces the Field representing v at one use site (an
// array element, a map key or value, a set element, a property value or
// accessor). Inline kinds are written by value; everything else resolves
// through the reference table.
func (e *encoder) encodeField(v object.Value) (node.Field, error) {
	if v == nil {
		v = object.Undef
	}
	switch val := v.(type) {
	case object.Undefined:
		return node.InlineUndefined(), nil
	case object.Null:
		return node.InlineNull(), nil
	case object.Bool:
		return node.InlineBool(bool(val)), nil
	case object.Number:
		return node.InlineNumber(float64(val)), nil
	case object.String:
		return node.InlineString(string(val)), nil
	case object.NonFinite:
		if !e.m.nonFinite {
			return node.Field{}, fmt.Errorf("%w: %s", ErrNonFiniteDisabled, val.Kind)
		}
		switch val.Kind {
		case object.NaN:
			return node.InlineNaN(), nil
		case object.PosInf:
			return node.InlinePosInf(), nil
		case object.NegInf:
			return node.InlineNegInf(), nil
		default:
			return node.Field{}, fmt.Errorf("marshal: unrecognized NonFiniteKind %v", val.Kind)
		}
	default:
		ordinal, err := e.refFor(v)
		if err != nil {
			return node.Field{}, err
		}
		return node.RefField(ordinal), nil
	}
}

// refFor returns v's ordinal, allocating and populating a new node the
// first time v is seen. The ordinal is reserved in e.refs before
// populate recurses into v's children, so a child field that refers back
// to v (a cycle) resolves to the correct ordinal instead of recursing
// forever.
func (e *encoder) refFor(v object.Value) (int, error) {
	if ordinal, ok := e.refs[v]; ok {
		return ordinal, nil
	}
	ordinal := len(e.doc.Nodes)
	n := &node.Node{}
	e.doc.Nodes = append(e.doc.Nodes, n)
	e.refs[v] = ordinal
	if err := e.populate(n, v); err != nil {
		return 0, err
	}
	return ordinal, nil
}

// populate fills n with v's kind and payload, recursively encoding any
// children through encodeField.
func (e *encoder) populate(n *node.Node, v object.Value) error {
	switch val := v.(type) {
	case object.Undefined:
		n.Kind = node.KindUndefined
	case object.Null:
		n.Kind = node.KindNull
	case object.Bool:
		n.Kind = node.KindBool
		n.Bool = bool(val)
	case object.Number:
		n.Kind = node.KindNumber
		n.Number = float64(val)
	case object.String:
		n.Kind = node.KindString
		n.String = string(val)
	case object.NonFinite:
		if !e.m.nonFinite {
			return fmt.Errorf("%w: %s", ErrNonFiniteDisabled, val.Kind)
		}
		switch val.Kind {
		case object.NaN:
			n.Kind = node.KindNaN
		case object.PosInf:
			n.Kind = node.KindPosInf
		case object.NegInf:
			n.Kind = node.KindNegInf
		default:
			return fmt.Errorf("marshal: unrecognized NonFiniteKind %v", val.Kind)
		}

	case *object.Date:
		n.Kind = node.KindDate
		n.EpochMillis = val.EpochMillis

	case *object.BigNumber:
		n.Kind = node.KindBigNumber
		n.Literal = val.Literal

	case *object.BigInt:
		if !e.m.nonFinite {
			return fmt.Errorf("%w: bigint", ErrNonFiniteDisabled)
		}
		n.Kind = node.KindBigInt
		n.Literal = val.Literal()

	case *object.Symbol:
		idx, err := e.m.reg.SymbolIndex(val)
		if err != nil {
			return err
		}
		n.Kind = node.KindSymbol
		n.Index = idx

	case *object.Func:
		idx, err := e.m.reg.FunctionIndex(val)
		if err != nil {
			return err
		}
		n.Kind = node.KindFunction
		n.Index = idx

	case *object.Array:
		n.Kind = node.KindArray
		n.Elements = make([]node.Field, len(val.Elements))
		for i, el := range val.Elements {
			f, err := e.encodeField(el)
			if err != nil {
				return fmt.Errorf("marshal: array element %d: %w", i, err)
			}
			n.Elements[i] = f
		}

	case *object.Set:
		n.Kind = node.KindSet
		n.Elements = make([]node.Field, len(val.Elements))
		for i, el := range val.Elements {
			f, err := e.encodeField(el)
			if err != nil {
				return fmt.Errorf("marshal: set element %d: %w", i, err)
			}
			n.Elements[i] = f
		}

	case *object.Map:
		n.Kind = node.KindMap
		n.Entries = make([]node.Entry, len(val.Entries))
		for i, entry := range val.Entries {
			kf, err := e.encodeField(entry.Key)
			if err != nil {
				return fmt.Errorf("marshal: map entry %d key: %w", i, err)
			}
			vf, err := e.encodeField(entry.Value)
			if err != nil {
				return fmt.Errorf("marshal: map entry %d value: %w", i, err)
			}
			n.Entries[i] = node.Entry{Key: kf, Value: vf}
		}

	case *object.ErrorValue:
		n.Kind = node.KindError
		n.Message = val.Message
		n.Name = val.Name
		n.Stack = val.Stack

	case *object.TypedArray:
		if !e.m.typedArrays {
			return fmt.Errorf("%w: %s", ErrTypedArrayDisabled, val.Kind)
		}
		n.Kind = node.KindTypedArray
		n.TypedArrayKind = string(val.Kind)
		n.TypedArrayData = val.Data

	case *object.Object:
		idx, isPlain, err := e.m.reg.PrototypeOf(val)
		if err != nil {
			return err
		}
		n.Kind = node.KindObject
		n.IsPlain = isPlain
		n.ProtoIndex = idx

		keys := val.OwnKeys()
		n.Properties = make([]node.Property, len(keys))
		for i, key := range keys {
			d, _ := val.GetOwn(key)
			keyField, err := e.encodeField(key)
			if err != nil {
				return fmt.Errorf("marshal: object property %d key: %w", i, err)
			}
			p := node.Property{
				Key:          keyField,
				Configurable: d.Configurable,
				Enumerable:   d.Enumerable,
			}
			if d.IsAccessor() {
				p.IsAccessor = true
				p.Get = node.InlineUndefined()
				if d.Get != nil {
					gf, err := e.encodeField(d.Get)
					if err != nil {
						return fmt.Errorf("marshal: object property %d getter: %w", i, err)
					}
					p.Get = gf
				}
				p.Set = node.InlineUndefined()
				if d.Set != nil {
					sf, err := e.encodeField(d.Set)
					if err != nil {
						return fmt.Errorf("marshal: object property %d setter: %w", i, err)
					}
					p.Set = sf
				}
			} else {
				p.Writable = d.Writable
				vf, err := e.encodeField(d.Value)
				if err != nil {
					return fmt.Errorf("marshal: object property %d value: %w", i, err)
				}
				p.Value = vf
			}
			n.Properties[i] = p
		}

	default:
		return fmt.Errorf("%w: %T", ErrUnknownValue, v)
	}
	return nil
}
