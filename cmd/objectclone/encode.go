package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/signadot/objectgraph/marshal"
	"github.com/signadot/objectgraph/registry"
	"github.com/signadot/objectgraph/wire"
)

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, err := marshal.New(registry.New(registry.Config{})).Marshal(buildSampleGraph())
	if err != nil {
		return fmt.Errorf("encoding sample graph: %w", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("opening %q: %w", *out, err)
		}
		defer f.Close()
		w = f
	}
	if err := wire.WriteJSON(w, doc); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	fmt.Fprintln(w)
	theLog.Info("wrote sample document", "nodes", doc.Len())
	return nil
}
