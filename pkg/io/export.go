package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

type document struct {
	Type      string `json:"type,omitempty" toml:"type" yaml:"type,omitempty"`
	Direction string `json:"direction,omitempty" toml:"direction" yaml:"direction,omitempty"`
	Nodes     []node `json:"nodes,omitempty" toml:"nodes" yaml:"nodes,omitempty"`
	Edges     []edge `json:"edges,omitempty" toml:"edges" yaml:"edges,omitempty"`
}

type node struct {
	ID    string        `json:"id" toml:"id" yaml:"id"`
	Label *string       `json:"label,omitempty" toml:"label" yaml:"label,omitempty"`
	Shape string        `json:"shape,omitempty" toml:"shape" yaml:"shape,omitempty"`
	Open  *string       `json:"open,omitempty" toml:"open" yaml:"open,omitempty"`
	Close *string       `json:"close,omitempty" toml:"close" yaml:"close,omitempty"`
	Style mermaid.Style `json:"style,omitempty" toml:"style" yaml:"style,omitempty"`
	Raw   bool          `json:"raw,omitempty" toml:"raw" yaml:"raw,omitempty"`
}

type edge struct {
	Source string `json:"source" toml:"source" yaml:"source"`
	Target string `json:"target" toml:"target" yaml:"target"`
	Label  string `json:"label,omitempty" toml:"label" yaml:"label,omitempty"`
	Style  string `json:"style,omitempty" toml:"style" yaml:"style,omitempty"`
	Raw    bool   `json:"raw,omitempty" toml:"raw" yaml:"raw,omitempty"`
}

// WriteJSON encodes d as a JSON document and writes it to w.
// Nodes and edges are marked raw so that [ReadJSON] adds them back through
// the value path unchanged and the rebuilt diagram renders identically.
func WriteJSON(d *mermaid.Diagram, w io.Writer) error {
	out := fromDiagram(d)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes d to a JSON document file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func Export(d *mermaid.Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}

func fromDiagram(d *mermaid.Diagram) document {
	doc := document{
		Type:      string(d.Type()),
		Direction: string(d.Direction()),
		Nodes:     make([]node, 0, d.NodeCount()),
		Edges:     make([]edge, 0, d.EdgeCount()),
	}
	for _, n := range d.Nodes() {
		nd := node{ID: n.ID, Style: n.Style, Raw: true}
		if n.Label != "" {
			label := n.Label
			nd.Label = &label
		}
		switch s := n.Shape.(type) {
		case mermaid.ShapeName:
			nd.Shape = string(s)
		case mermaid.Delimiters:
			o, c := s.Open, s.Close
			nd.Open, nd.Close = &o, &c
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, e := range d.Edges() {
		doc.Edges = append(doc.Edges, edge{Source: e.Source, Target: e.Target, Label: e.Label, Style: e.Style, Raw: true})
	}
	return doc
}
