package unmarshal

import (
	"errors"
	"fmt"

	"github.com/signadot/objectgraph/node"
	"github.com/signadot/objectgraph/object"
	"github.com/signadot/objectgraph/registry"
)

// Unmarshaller decodes documents against a fixed Registry. Like
// Marshaller, it holds no per-call state and is safe to reuse
// concurrently across goroutines decoding independent documents.
type Unmarshaller struct {
	reg    *registry.Registry
	strict bool
}

// New constructs an Unmarshaller bound to reg. Strict mode is on by
// default; pass WithStrict(false) to decode permissively.
func New(reg *registry.Registry, opts ...UnmarshalOption) *Unmarshaller {
	u := &Unmarshaller{reg: reg, strict: true}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Unmarshal reconstructs the object.Value graph doc encodes. It runs the
// allocate pass and the populate pass described in the package doc
// comment, then returns the value at ordinal 0.
//
// Grounded on the teacher's gomap.fromIRReflectWithVisited, generalized
// from a single pass that rejects a repeated pointer to two passes that
// tie the knot instead.
func (u *Unmarshaller) Unmarshal(doc *node.Document) (object.Value, error) {
	if doc == nil || doc.Len() == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrBadDocument)
	}
	d := &decoder{u: u, doc: doc, values: make([]object.Value, doc.Len())}
	if err := d.allocate(); err != nil {
		return nil, err
	}
	if err := d.populate(); err != nil {
		return nil, err
	}
	return d.values[0], nil
}

type decoder struct {
	u      *Unmarshaller
	doc    *node.Document
	values []object.Value
}

// allocate makes one pass over every node, producing either a fully
// resolved value (for kinds with no children) or an empty shell (for
// array/set/map/object) that the populate pass fills in. Shells exist
// for every ordinal before any field is resolved, so a Ref field
// encountered during populate always finds a value to point at.
func (d *decoder) allocate() error {
	for i, n := range d.doc.Nodes {
		v, err := d.allocateNode(i, n)
		if err != nil {
			return fmt.Errorf("unmarshal: node %d: %w", i, err)
		}
		d.values[i] = v
	}
	return nil
}

func (d *decoder) allocateNode(ordinal int, n *node.Node) (object.Value, error) {
	if !n.Kind.Valid() {
		if d.u.strict {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
		}
		return object.Undef, nil
	}
	if n.Kind.IsExtension() && d.u.strict {
		return nil, fmt.Errorf("%w: extension kind %q in strict mode", ErrUnknownKind, n.Kind)
	}

	if n.Kind.IsInline() {
		if ordinal != 0 {
			return nil, fmt.Errorf("%w: non-root node %d has inline kind %q", ErrBadDocument, ordinal, n.Kind)
		}
		switch n.Kind {
		case node.KindUndefined:
			return object.Undef, nil
		case node.KindNull:
			return object.Nil, nil
		case node.KindBool:
			return object.Bool(n.Bool), nil
		case node.KindNumber:
			return object.Number(n.Number), nil
		case node.KindString:
			return object.String(n.String), nil
		case node.KindNaN:
			return object.NonFinite{Kind: object.NaN}, nil
		case node.KindPosInf:
			return object.NonFinite{Kind: object.PosInf}, nil
		case node.KindNegInf:
			return object.NonFinite{Kind: object.NegInf}, nil
		}
	}

	switch n.Kind {
	case node.KindRef:
		return nil, fmt.Errorf("%w: top-level node %d is a ref", ErrBadDocument, ordinal)

	case node.KindDate:
		return &object.Date{EpochMillis: n.EpochMillis}, nil

	case node.KindBigNumber:
		v, err := object.NewBigNumber(n.Literal)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		return v, nil

	case node.KindBigInt:
		v, err := object.NewBigIntFromString(n.Literal)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		return v, nil

	case node.KindSymbol:
		sym, err := d.u.reg.SymbolAt(n.Index)
		if err != nil {
			return nil, joinRegistryMismatch(err)
		}
		return sym, nil

	case node.KindFunction:
		fn, err := d.u.reg.FunctionAt(n.Index)
		if err != nil {
			return nil, joinRegistryMismatch(err)
		}
		return fn, nil

	case node.KindArray:
		return &object.Array{Elements: make([]object.Value, len(n.Elements))}, nil

	case node.KindSet:
		return &object.Set{Elements: make([]object.Value, len(n.Elements))}, nil

	case node.KindMap:
		return &object.Map{Entries: make([]object.MapEntry, len(n.Entries))}, nil

	case node.KindError:
		return &object.ErrorValue{Message: n.Message, Name: n.Name, Stack: n.Stack}, nil

	case node.KindTypedArray:
		return &object.TypedArray{Kind: object.TypedArrayKind(n.TypedArrayKind), Data: n.TypedArrayData}, nil

	case node.KindObject:
		if n.IsPlain {
			return object.NewObject(nil), nil
		}
		cls, err := d.u.reg.PrototypeAt(n.ProtoIndex)
		if err != nil {
			return nil, joinRegistryMismatch(err)
		}
		return object.NewObject(cls), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}
}

// populate makes the second pass, filling in the containers allocate
// left empty.
func (d *decoder) populate() error {
	for i, n := range d.doc.Nodes {
		if err := d.populateNode(i, n); err != nil {
			return fmt.Errorf("unmarshal: node %d: %w", i, err)
		}
	}
	return nil
}

func (d *decoder) populateNode(ordinal int, n *node.Node) error {
	switch n.Kind {
	case node.KindArray:
		arr := d.values[ordinal].(*object.Array)
		for i, f := range n.Elements {
			v, err := d.resolveField(f)
			if err != nil {
				return fmt.Errorf("array element %d: %w", i, err)
			}
			arr.Elements[i] = v
		}

	case node.KindSet:
		set := d.values[ordinal].(*object.Set)
		for i, f := range n.Elements {
			v, err := d.resolveField(f)
			if err != nil {
				return fmt.Errorf("set element %d: %w", i, err)
			}
			set.Elements[i] = v
		}

	case node.KindMap:
		m := d.values[ordinal].(*object.Map)
		for i, e := range n.Entries {
			k, err := d.resolveField(e.Key)
			if err != nil {
				return fmt.Errorf("map entry %d key: %w", i, err)
			}
			v, err := d.resolveField(e.Value)
			if err != nil {
				return fmt.Errorf("map entry %d value: %w", i, err)
			}
			m.Entries[i] = object.MapEntry{Key: k, Value: v}
		}

	case node.KindObject:
		obj := d.values[ordinal].(*object.Object)
		for i, p := range n.Properties {
			key, err := d.resolveField(p.Key)
			if err != nil {
				return fmt.Errorf("object property %d key: %w", i, err)
			}
			if p.IsAccessor {
				get, err := d.resolveFunc(p.Get)
				if err != nil {
					return fmt.Errorf("object property %d getter: %w", i, err)
				}
				set, err := d.resolveFunc(p.Set)
				if err != nil {
					return fmt.Errorf("object property %d setter: %w", i, err)
				}
				obj.DefineProperty(key, object.AccessorDescriptor(get, set, p.Configurable, p.Enumerable))
			} else {
				val, err := d.resolveField(p.Value)
				if err != nil {
					return fmt.Errorf("object property %d value: %w", i, err)
				}
				obj.DefineProperty(key, object.ValueDescriptor(val, p.Configurable, p.Enumerable, p.Writable))
			}
		}
	}
	return nil
}

// resolveField turns a Field into an object.Value, following a Ref into
// the already-allocated shell table.
func (d *decoder) resolveField(f node.Field) (object.Value, error) {
	if !f.Kind.Valid() {
		if d.u.strict {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
		}
		return object.Undef, nil
	}
	if f.Kind.IsExtension() && d.u.strict {
		return nil, fmt.Errorf("%w: extension kind %q in strict mode", ErrUnknownKind, f.Kind)
	}
	switch f.Kind {
	case node.KindUndefined:
		return object.Undef, nil
	case node.KindNull:
		return object.Nil, nil
	case node.KindBool:
		return object.Bool(f.Bool), nil
	case node.KindNumber:
		return object.Number(f.Number), nil
	case node.KindString:
		return object.String(f.String), nil
	case node.KindNaN:
		return object.NonFinite{Kind: object.NaN}, nil
	case node.KindPosInf:
		return object.NonFinite{Kind: object.PosInf}, nil
	case node.KindNegInf:
		return object.NonFinite{Kind: object.NegInf}, nil
	case node.KindRef:
		if f.Ref < 0 || f.Ref >= len(d.values) {
			return nil, fmt.Errorf("%w: ref %d out of range (document has %d nodes)", ErrBadDocument, f.Ref, len(d.values))
		}
		return d.values[f.Ref], nil
	default:
		return nil, fmt.Errorf("%w: field with node-only kind %q", ErrBadDocument, f.Kind)
	}
}

// resolveFunc resolves an accessor's Get/Set field, treating an absent
// (undefined) field as no getter/setter rather than an error.
func (d *decoder) resolveFunc(f node.Field) (*object.Func, error) {
	if f.Kind == node.KindUndefined {
		return nil, nil
	}
	v, err := d.resolveField(f)
	if err != nil {
		return nil, err
	}
	fn, ok := v.(*object.Func)
	if !ok {
		return nil, fmt.Errorf("%w: accessor field does not resolve to a function", ErrBadDocument)
	}
	return fn, nil
}

func joinRegistryMismatch(err error) error {
	if errors.Is(err, registry.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: %v", ErrRegistryMismatch, err)
	}
	return err
}
