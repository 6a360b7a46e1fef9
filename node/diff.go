package node

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// PatchOp names the edit a Patch performs, mirroring the teacher's own
// patch.go Op naming (add/remove/replace) over Tony documents.
type PatchOp string

const (
	OpAdd     PatchOp = "add"
	OpRemove  PatchOp = "remove"
	OpReplace PatchOp = "replace"
)

// Patch is one edit between two documents at a given ordinal. TextDiff
// is populated only for OpReplace between two KindString nodes, holding
// a human-readable inline diff of the string contents (go-diff's
// DiffPrettyText, which marks insertions and deletions with ANSI colors).
type Patch struct {
	Op       PatchOp
	Ordinal  int
	Node     *Node
	TextDiff string
}

// Diff produces an ordinal-addressed edit script transforming a into b.
// It is a structural, not semantic, diff: documents produced by two
// unrelated encodes of similar-but-not-identical graphs will usually
// ordinal-shift after the first change, so Diff is most useful for
// comparing two encodes of the same graph taken at different times
// (e.g. a cache invalidation check), not for general tree diffing.
//
// Grounded on the teacher's top-level patch.go/libdiff packages, which
// perform the same per-kind, per-position comparison over ir.Node trees.
func Diff(a, b *Document) []Patch {
	var patches []Patch
	n := min(len(a.Nodes), len(b.Nodes))
	for i := 0; i < n; i++ {
		if compareNode(a.Nodes[i], b.Nodes[i]) == 0 {
			continue
		}
		p := Patch{Op: OpReplace, Ordinal: i, Node: b.Nodes[i]}
		if a.Nodes[i].Kind == KindString && b.Nodes[i].Kind == KindString {
			p.TextDiff = textDiff(a.Nodes[i].String, b.Nodes[i].String)
		}
		patches = append(patches, p)
	}
	for i := n; i < len(b.Nodes); i++ {
		patches = append(patches, Patch{Op: OpAdd, Ordinal: i, Node: b.Nodes[i]})
	}
	for i := n; i < len(a.Nodes); i++ {
		patches = append(patches, Patch{Op: OpRemove, Ordinal: i})
	}
	return patches
}

func textDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffPrettyText(diffs)
}
