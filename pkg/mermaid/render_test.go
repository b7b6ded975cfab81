package mermaid

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRender_Empty(t *testing.T) {
	if got := NewFlowchart().Render(); got != "flowchart TD" {
		t.Errorf("Render() = %q, want %q", got, "flowchart TD")
	}
}

func TestRender_Complete(t *testing.T) {
	d := NewFlowchart()
	_ = d.SetDirection(LR)
	_ = d.AddNodeValue(Node{ID: "A", Label: "Start"})
	_ = d.AddNodeValue(Node{ID: "B", Label: "End"})
	_ = d.AddEdge("A", "B", WithEdgeLabel("Next"))

	want := "flowchart LR\n    A[\"Start\"]\n    B[\"End\"]\n    A --> B|Next|"
	if diff := cmp.Diff(want, d.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_HeaderPerDirection(t *testing.T) {
	for _, dir := range Directions() {
		d := NewFlowchart()
		_ = d.SetDirection(dir)
		out := d.Render()
		if n := strings.Count(out, "flowchart "+string(dir)); n != 1 {
			t.Errorf("direction %s: header appears %d times in %q", dir, n, out)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	d := NewFlowchart()
	_ = d.AddNode("A", WithShape(ShapeCircle), WithStyle(Style{"stroke": "#333", "fill": "#f9f"}))
	_ = d.AddNode("B")
	_ = d.AddEdge("A", "B", WithConnector("==="), WithEdgeLabel("go"))

	first := d.Render()
	if second := d.Render(); first != second {
		t.Errorf("Render() not repeatable:\n%s\n---\n%s", first, second)
	}
	if d.String() != first {
		t.Error("String() differs from Render()")
	}
}

func TestRender_Nodes(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "bare id",
			node: Node{ID: "A"},
			want: "    A",
		},
		{
			name: "label only",
			node: Node{ID: "B", Label: "Label Only"},
			want: `    B["Label Only"]`,
		},
		{
			name: "style only",
			node: Node{ID: "A", Style: Style{"fill": "#f9f"}},
			want: "    A style A fill:#f9f",
		},
		{
			name: "shape with style",
			node: Node{ID: "A", Label: "Styled Node", Shape: ShapeCircle, Style: Style{"fill": "#f9f", "stroke": "#333"}},
			want: "    A((Styled Node)) style A fill:#f9f,stroke:#333",
		},
		{
			name: "label and style",
			node: Node{ID: "start", Label: "Start", Style: Style{"fill": "#green"}},
			want: `    start["Start"] style start fill:#green`,
		},
		{
			name: "explicit delimiters",
			node: Node{ID: "A", Label: "Custom Shape", Shape: Delimiters{"{{", "}}"}},
			want: "    A{{Custom Shape}}",
		},
		{
			name: "shape without label",
			node: Node{ID: "A", Shape: ShapeRhombus},
			want: "    A{}",
		},
		{
			name: "default shape",
			node: Node{ID: "A", Label: "plain", Shape: ShapeDefault},
			want: "    Aplain",
		},
		{
			name: "quotes are not escaped",
			node: Node{ID: "A", Label: `say "hi"`},
			want: `    A["say "hi""]`,
		},
		{
			name: "multi-line label",
			node: Node{ID: "C", Label: "Multi-line\nText"},
			want: "    C[\"Multi-line\nText\"]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtNode(tt.node); got != tt.want {
				t.Errorf("fmtNode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Edges(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		want string
	}{
		{"default", NewEdge("A", "B"), "    A --> B"},
		{"labeled", Edge{Source: "A", Target: "B", Label: "x", Style: "-->"}, "    A --> B|x|"},
		{"thick", Edge{Source: "A", Target: "B", Style: "==="}, "    A === B"},
		{"zero style", Edge{Source: "A", Target: "B"}, "    A --> B"},
		{"pipe in label", Edge{Source: "A", Target: "B", Label: "a|b"}, "    A --> B|a|b|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtEdge(tt.edge); got != tt.want {
				t.Errorf("fmtEdge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_AddEdgeDefaults(t *testing.T) {
	d := NewFlowchart()
	_ = d.AddEdge("A", "B")
	_ = d.AddEdge("A", "B", WithEdgeLabel("x"))

	want := "flowchart TD\n    A --> B\n    A --> B|x|"
	if diff := cmp.Diff(want, d.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_AllShapes(t *testing.T) {
	d := NewFlowchart()
	for _, name := range ShapeNames() {
		id := "node_" + string(name)
		label := "Test " + string(name)
		if err := d.AddNode(id, WithShape(name), WithLabel(label)); err != nil {
			t.Fatalf("AddNode(%s) error = %v", name, err)
		}
	}

	lines := strings.Split(d.Render(), "\n")[1:]
	for i, name := range ShapeNames() {
		delims, _ := LookupShape(string(name))
		want := "    node_" + string(name) + delims.Open + "Test " + string(name) + delims.Close
		if lines[i] != want {
			t.Errorf("shape %s: line = %q, want %q", name, lines[i], want)
		}
	}
}

func TestRender_ConvenienceShapes(t *testing.T) {
	d := NewFlowchart()
	_ = d.AddNode("circle", WithShape(ShapeCircle))
	_ = d.AddNode("diamond", WithShape(ShapeDiamond))
	_ = d.AddNode("database", WithShape(Delimiters{"[(", ")]"}))
	_ = d.AddNode("hexagon", WithShape(ShapeHexagon))

	want := strings.Join([]string{
		"flowchart TD",
		"    circle((circle))",
		"    diamond{diamond}",
		"    database[(database)]",
		"    hexagon{{hexagon}}",
	}, "\n")
	if diff := cmp.Diff(want, d.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Workflow(t *testing.T) {
	d := NewFlowchart()
	_ = d.SetDirection(LR)

	for _, n := range []Node{
		{ID: "start", Label: "Start", Style: Style{"fill": "#green"}},
		{ID: "process", Label: "Process Data"},
		{ID: "decision", Label: "Check Result"},
		{ID: "end", Label: "End", Style: Style{"fill": "#red"}},
	} {
		_ = d.AddNodeValue(n)
	}
	_ = d.AddEdge("start", "process", WithEdgeLabel("Begin"))
	_ = d.AddEdge("process", "decision", WithEdgeLabel("Analyze"))
	_ = d.AddEdge("decision", "end", WithEdgeLabel("Complete"))

	want := strings.Join([]string{
		"flowchart LR",
		`    start["Start"] style start fill:#green`,
		`    process["Process Data"]`,
		`    decision["Check Result"]`,
		`    end["End"] style end fill:#red`,
		"    start --> process|Begin|",
		"    process --> decision|Analyze|",
		"    decision --> end|Complete|",
	}, "\n")
	if diff := cmp.Diff(want, d.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_OtherDiagramTypes(t *testing.T) {
	d := NewSequenceDiagram()
	_ = d.AddEdge("Alice", "Bob", WithConnector("->>"))
	want := "sequenceDiagram TD\n    Alice ->> Bob"
	if got := d.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
