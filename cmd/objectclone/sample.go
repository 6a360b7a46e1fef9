package main

import "github.com/signadot/objectgraph/object"

// buildSampleGraph constructs a small object graph exercising every kind
// of reference sharing the format supports: a self-cycle, a value shared
// between two containers, and a plain object with a nested array. It
// stands in for the literal-object syntax this tool does not implement
// (see the package doc comment).
func buildSampleGraph() object.Value {
	shared := object.NewArray(object.String("shared"), object.Number(1))

	root := object.NewObject(nil)
	root.DefineProperty(object.String("name"), object.ValueDescriptor(object.String("objectclone sample"), true, true, true))
	root.DefineProperty(object.String("shared"), object.ValueDescriptor(shared, true, true, true))

	list := object.NewArray(object.Number(1), object.Number(2), shared)
	root.DefineProperty(object.String("list"), object.ValueDescriptor(list, true, true, true))

	self := object.NewObject(nil)
	self.DefineProperty(object.String("self"), object.ValueDescriptor(self, true, true, true))
	root.DefineProperty(object.String("cycle"), object.ValueDescriptor(self, true, true, true))

	return root
}
