package object

// Descriptor is the full attribute set of one own property: either a
// plain value or an accessor pair, plus the three boolean attributes a
// low-level property-definition operation restores bit-for-bit.
type Descriptor struct {
	Value Value
	Get   *Func
	Set   *Func

	Configurable bool
	Enumerable   bool
	Writable     bool
}

// IsAccessor reports whether this descriptor is a getter/setter pair
// rather than a plain value slot.
func (d Descriptor) IsAccessor() bool {
	return d.Get != nil || d.Set != nil
}

// ValueDescriptor builds a plain-value descriptor with the given
// attributes.
func ValueDescriptor(v Value, configurable, enumerable, writable bool) Descriptor {
	return Descriptor{Value: v, Configurable: configurable, Enumerable: enumerable, Writable: writable}
}

// AccessorDescriptor builds a getter/setter descriptor. Writable is
// meaningless for accessors and always reads false.
func AccessorDescriptor(get, set *Func, configurable, enumerable bool) Descriptor {
	return Descriptor{Get: get, Set: set, Configurable: configurable, Enumerable: enumerable}
}

// Property is one (key, descriptor) pair as it appears, in insertion
// order, within an object node. Key is either a String or a *Symbol.
type Property struct {
	Key        Value
	Descriptor Descriptor
}
