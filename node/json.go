package node

import "encoding/json"

// MarshalJSON renders a Document as a bare JSON array of nodes, matching
// the spec's canonical in-memory form (an array of nodes whose ordinal
// is its array index) rather than wrapping it in an envelope object.
func (d *Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Nodes)
}

// UnmarshalJSON parses a bare JSON array of nodes into a Document.
func (d *Document) UnmarshalJSON(data []byte) error {
	var nodes []*Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return err
	}
	d.Nodes = nodes
	return nil
}
