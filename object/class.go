package object

// Class is a registry entry describing one user class: a human-readable
// name used only in error messages. An instance's membership in a class
// is the *Class pointer it carries as its Object.Proto, matched by
// registry.PrototypeOf on pointer identity — there is no separate
// prototype object to delegate property lookups to, since decode never
// re-runs a constructor or walks a prototype chain (§ node kind 7/8).
type Class struct {
	Name string
}

// NewClass registers no state of its own; it is a plain descriptor
// identifying instances that share it as their Object.Proto.
func NewClass(name string) *Class {
	return &Class{Name: name}
}
