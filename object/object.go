package object

import "fmt"

// Object is a reference-tracked record: either a plain object (Proto ==
// nil) or an instance of a registered Class. Its own properties are kept
// in an ordered list so that iteration order matches the order the
// encoder observed on the source graph, per the spec's traversal
// invariant.
type Object struct {
	Proto *Class

	props []Property
	index map[Value]int
}

func (*Object) isValue() {}

// NewObject allocates an object with no own properties. proto == nil
// makes it a plain object.
func NewObject(proto *Class) *Object {
	return &Object{Proto: proto, index: make(map[Value]int)}
}

// OwnKeys returns all own property keys (string and symbol) in
// insertion order, including non-enumerable ones — the marshaller must
// see every one of them to capture full descriptors.
func (o *Object) OwnKeys() []Value {
	keys := make([]Value, len(o.props))
	for i, p := range o.props {
		keys[i] = p.Key
	}
	return keys
}

// GetOwn returns the full descriptor for key without invoking any
// accessor, and whether the property exists.
func (o *Object) GetOwn(key Value) (Descriptor, bool) {
	i, ok := o.index[key]
	if !ok {
		return Descriptor{}, false
	}
	return o.props[i].Descriptor, true
}

// DefineProperty installs or replaces a property's full descriptor
// without invoking any accessor and without checking the existing
// descriptor's Configurable bit. This is the low-level operation the
// decoder's populate pass uses to restore descriptors bit-for-bit; it is
// exported for callers building fixtures directly, too.
func (o *Object) DefineProperty(key Value, d Descriptor) {
	if i, ok := o.index[key]; ok {
		o.props[i].Descriptor = d
		return
	}
	o.index[key] = len(o.props)
	o.props = append(o.props, Property{Key: key, Descriptor: d})
}

// Get reads a property, invoking its getter if it is an accessor.
// Reading a missing property returns Undefined, matching host object
// semantics, not an error.
func (o *Object) Get(key Value) (Value, error) {
	d, ok := o.GetOwn(key)
	if !ok {
		return Undef, nil
	}
	if d.IsAccessor() {
		if d.Get == nil {
			return Undef, nil
		}
		return d.Get.Invoke(o)
	}
	return d.Value, nil
}

// Set assigns a property following ordinary [[Set]] semantics: an
// accessor's setter is invoked if present, a non-writable value
// property rejects the assignment, and a new property is created
// configurable/enumerable/writable by default. This is distinct from
// DefineProperty, which is the decoder's bypass path.
func (o *Object) Set(key Value, v Value) error {
	d, ok := o.GetOwn(key)
	if !ok {
		o.DefineProperty(key, ValueDescriptor(v, true, true, true))
		return nil
	}
	if d.IsAccessor() {
		if d.Set == nil {
			return &NotWritableError{Key: fmt.Sprint(key)}
		}
		_, err := d.Set.Invoke(o, v)
		return err
	}
	if !d.Writable {
		return &NotWritableError{Key: fmt.Sprint(key)}
	}
	d.Value = v
	o.DefineProperty(key, d)
	return nil
}

// NotWritableError is returned by Set when a property cannot be
// assigned: a non-writable value property, or an accessor with no
// setter.
type NotWritableError struct {
	Key string
}

func (e *NotWritableError) Error() string {
	return "object: property " + e.Key + " is not writable"
}
