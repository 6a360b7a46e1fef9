package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/objectgraph/node"
)

// compileNodePredicate compiles a --where expression against the field set
// nodeEnv projects, following the teacher's eval package pattern of
// expr.Compile once and expr.Run per environment (see eval/script.go's
// scriptOp.Eval and eval/expand_env.go's evalWithOptions).
func compileNodePredicate(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(nodeEnv(&node.Node{})), expr.AsBool())
}

// nodeEnv projects the fields of a node.Node a --where expression can test.
func nodeEnv(n *node.Node) map[string]any {
	return map[string]any{
		"kind":       string(n.Kind),
		"isPlain":    n.IsPlain,
		"protoIndex": n.ProtoIndex,
		"index":      n.Index,
		"string":     n.String,
		"number":     n.Number,
		"bool":       n.Bool,
		"elements":   len(n.Elements),
		"properties": len(n.Properties),
		"entries":    len(n.Entries),
	}
}

// matchNode runs a compiled --where predicate against n.
func matchNode(prg *vm.Program, n *node.Node) (bool, error) {
	out, err := expr.Run(prg, nodeEnv(n))
	if err != nil {
		return false, err
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("--where must evaluate to bool, got %T", out)
	}
	return matched, nil
}
