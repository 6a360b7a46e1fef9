package wire

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/objectgraph/node"
)

func sampleDocument() *node.Document {
	return &node.Document{Nodes: []*node.Node{
		{Kind: node.KindArray, Elements: []node.Field{
			node.InlineNumber(1),
			node.InlineString("two"),
			node.RefField(0),
		}},
	}}
}

func TestWriteReadJSON(t *testing.T) {
	doc := sampleDocument()
	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if diff := cmp.Diff(doc.Nodes, got.Nodes); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteReadFrame(t *testing.T) {
	doc := sampleDocument()
	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := WriteFrame(ctx, &buf, doc); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	got, err := ReadFrame(ctx, &buf)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if diff := cmp.Diff(doc.Nodes, got.Nodes); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xff, 0xff, 0xff, 0xff})
	_, err := ReadFrame(context.Background(), &buf)
	if err == nil {
		t.Fatalf("expected an error for an oversized frame length")
	}
}

func TestApplyJSONPatch(t *testing.T) {
	doc := &node.Document{Nodes: []*node.Node{{Kind: node.KindString, String: "hello"}}}
	patch := []byte(`[{"op": "replace", "path": "/0/string", "value": "hullo"}]`)
	patched, err := ApplyJSONPatch(doc, patch)
	if err != nil {
		t.Fatalf("ApplyJSONPatch: %v", err)
	}
	if patched.Root().String != "hullo" {
		t.Fatalf("expected patched string 'hullo', got %q", patched.Root().String)
	}
	if doc.Root().String != "hello" {
		t.Fatalf("ApplyJSONPatch must not mutate its input")
	}
}

func TestWriteFrameHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := WriteFrame(ctx, &buf, sampleDocument()); err == nil {
		t.Fatalf("expected an error for an already-canceled context")
	}
}
