package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/expr-lang/expr/vm"

	"github.com/signadot/objectgraph/node"
	"github.com/signadot/objectgraph/registry"
	"github.com/signadot/objectgraph/unmarshal"
	"github.com/signadot/objectgraph/wire"
)

func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	in := fs.String("in", "-", "input document (default stdin)")
	strict := fs.Bool("strict", false, "reject non-finite/bigint/typedarray extension kinds")
	where := fs.String("where", "", `expr-lang predicate over each node, e.g. kind == "object" (only matching nodes are counted)`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := openInput(*in)
	if err != nil {
		return fmt.Errorf("opening %q: %w", *in, err)
	}
	if f != os.Stdin {
		defer f.Close()
	}

	doc, err := wire.ReadJSON(f)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	value, err := unmarshal.New(registry.New(registry.Config{}), unmarshal.WithStrict(*strict)).Unmarshal(doc)
	if err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	var pred *vm.Program
	if *where != "" {
		pred, err = compileNodePredicate(*where)
		if err != nil {
			return fmt.Errorf("compiling --where: %w", err)
		}
	}

	histogram := make(map[node.Kind]int)
	matched := 0
	for _, n := range doc.Nodes {
		if pred != nil {
			ok, err := matchNode(pred, n)
			if err != nil {
				return fmt.Errorf("evaluating --where: %w", err)
			}
			if !ok {
				continue
			}
			matched++
		}
		histogram[n.Kind]++
	}
	fmt.Printf("decoded %d node(s) into a %T\n", doc.Len(), value)
	if pred != nil {
		fmt.Printf("%d node(s) matched --where\n", matched)
	}
	for kind, count := range histogram {
		fmt.Printf("  %-10s %d\n", kind, count)
	}
	return nil
}
