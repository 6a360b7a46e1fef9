package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/signadot/objectgraph/marshal"
	"github.com/signadot/objectgraph/node"
	"github.com/signadot/objectgraph/registry"
	"github.com/signadot/objectgraph/unmarshal"
	"github.com/signadot/objectgraph/wire"
)

// runRoundtrip decodes a document, re-encodes the resulting value, and
// diffs the two documents. A clean round trip produces zero patches: any
// patch printed means the decode/re-encode pair lost or reordered
// information, which is the bug this tool exists to surface.
func runRoundtrip(args []string) error {
	fs := flag.NewFlagSet("roundtrip", flag.ContinueOnError)
	in := fs.String("in", "-", "input document (default stdin)")
	strict := fs.Bool("strict", false, "reject non-finite/bigint/typedarray extension kinds")
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

	original, err := wire.ReadJSON(f)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	reg := registry.New(registry.Config{})
	uopts := []unmarshal.UnmarshalOption{unmarshal.WithStrict(*strict)}
	var mopts []marshal.MarshalOption
	if !*strict {
		mopts = append(mopts, marshal.WithNonFinite(true), marshal.WithTypedArrays(true))
	}

	value, err := unmarshal.New(reg, uopts...).Unmarshal(original)
	if err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	replayed, err := marshal.New(reg, mopts...).Marshal(value)
	if err != nil {
		return fmt.Errorf("re-encoding document: %w", err)
	}

	patches := node.Diff(original, replayed)
	if len(patches) == 0 {
		printGreen("round trip clean: %d node(s), no differences\n", original.Len())
		return nil
	}

	printRed("round trip changed %d node(s):\n", len(patches))
	for _, p := range patches {
		fmt.Printf("  %s ordinal=%d\n", p.Op, p.Ordinal)
		if p.TextDiff != "" {
			fmt.Println("    " + p.TextDiff)
		}
	}
	return fmt.Errorf("round trip is not lossless")
}

func printGreen(format string, args ...any) { printColor(color.FgGreen, format, args...) }
func printRed(format string, args ...any)   { printColor(color.FgRed, format, args...) }

func printColor(attr color.Attribute, format string, args ...any) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf(format, args...)
		return
	}
	color.New(attr).Printf(format, args...)
}
