package object

// Func is a callable registry entry: a named or anonymous function,
// method, getter, or setter. Two *Func values in independently
// constructed registries are considered the same function, per the
// spec's function-equivalence rule, if either they are the same pointer
// in this process, or their Source strings compare byte-for-byte equal
// (no whitespace normalization — see registry.FunctionIndex).
type Func struct {
	Name   string
	Source string
	Call   func(this Value, args ...Value) (Value, error)
}

func (*Func) isValue() {}

// NewFunc constructs a Func. Source should be the function's literal
// source text (or some other representation two independently-built
// peers will produce identically), since it is the only thing a
// different-process peer can compare.
func NewFunc(name, source string, call func(this Value, args ...Value) (Value, error)) *Func {
	return &Func{Name: name, Source: source, Call: call}
}

// Invoke calls the function, substituting Undef for a nil this.
func (f *Func) Invoke(this Value, args ...Value) (Value, error) {
	if this == nil {
		this = Undef
	}
	if f.Call == nil {
		return Undef, nil
	}
	return f.Call(this, args...)
}
