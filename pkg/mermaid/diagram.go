package mermaid

import (
	"maps"
	"slices"
)

// Diagram is an ordered collection of nodes and edges plus the type and
// direction written in the header line.
//
// Nodes and edges are only ever appended, and they render in insertion
// order. Every mutating method is all-or-nothing: on error the diagram is
// left exactly as it was.
//
// The zero value is not usable - use [New] or one of the typed constructors.
// Diagram is not safe for concurrent use without external synchronization.
type Diagram struct {
	typ       Type
	direction Direction
	nodes     []Node
	edges     []Edge

	// handled records the delimiter concatenations seen so far. It is an
	// introspection ledger only and never influences rendering or validation.
	handled map[string]struct{}
}

// New creates an empty diagram of type t with direction [TD].
// An empty t defaults to [Flowchart].
func New(t Type) *Diagram {
	if t == "" {
		t = Flowchart
	}
	handled := make(map[string]struct{}, len(shapeTable))
	for _, d := range shapeTable {
		handled[d.String()] = struct{}{}
	}
	return &Diagram{
		typ:       t,
		direction: DefaultDirection,
		handled:   handled,
	}
}

// NewFlowchart creates an empty flowchart diagram.
func NewFlowchart() *Diagram { return New(Flowchart) }

// NewSequenceDiagram creates an empty diagram tagged "sequenceDiagram".
// It renders with the same node and edge rules as a flowchart.
func NewSequenceDiagram() *Diagram { return New(SequenceDiagram) }

// NewClassDiagram creates an empty diagram tagged "classDiagram".
// It renders with the same node and edge rules as a flowchart.
func NewClassDiagram() *Diagram { return New(ClassDiagram) }

// Type returns the diagram-type tag.
func (d *Diagram) Type() Type { return d.typ }

// Direction returns the current layout direction.
func (d *Diagram) Direction() Direction { return d.direction }

// Nodes returns a copy of the nodes in insertion order.
func (d *Diagram) Nodes() []Node { return slices.Clone(d.nodes) }

// Edges returns a copy of the edges in insertion order.
func (d *Diagram) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes added so far.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges added so far.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// HandledShapes returns the sorted delimiter concatenations known to the
// diagram: every shape table entry plus any explicit pair added since.
// The list is informational and has no effect on output.
func (d *Diagram) HandledShapes() []string {
	return slices.Sorted(maps.Keys(d.handled))
}

// NodeOption customizes a node created by [Diagram.AddNode].
type NodeOption func(*nodeConfig)

type nodeConfig struct {
	node     Node
	labelSet bool
}

// WithLabel sets the node label. Without it, AddNode uses the node ID.
// An empty label renders the bare ID.
func WithLabel(label string) NodeOption {
	return func(c *nodeConfig) {
		c.node.Label = label
		c.labelSet = true
	}
}

// WithShape sets the node shape to a [ShapeName] or [Delimiters].
func WithShape(shape ShapeSpec) NodeOption {
	return func(c *nodeConfig) { c.node.Shape = shape }
}

// WithStyle attaches style declarations to the node.
func WithStyle(style Style) NodeOption {
	return func(c *nodeConfig) { c.node.Style = style }
}

// AddNode appends a node with the given ID. Unless [WithLabel] is passed,
// the label defaults to the ID, so AddNode("A") renders as A["A"].
//
// A [ShapeName] missing from the shape table fails with INVALID_SHAPE and
// nothing is appended.
func (d *Diagram) AddNode(id string, opts ...NodeOption) error {
	cfg := nodeConfig{node: Node{ID: id}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.labelSet {
		cfg.node.Label = id
	}
	return d.AddNodeValue(cfg.node)
}

// AddNodeValue appends n as given, without defaulting its label.
// A [ShapeName] missing from the shape table fails with INVALID_SHAPE and
// nothing is appended.
func (d *Diagram) AddNodeValue(n Node) error {
	if n.Shape != nil {
		delims, ok := n.Shape.resolve()
		if !ok {
			name, _ := n.Shape.(ShapeName)
			return errInvalidShape(name)
		}
		d.handled[delims.String()] = struct{}{}
	}
	d.nodes = append(d.nodes, n)
	return nil
}

// EdgeOption customizes an edge created by [Diagram.AddEdge].
type EdgeOption func(*Edge)

// WithEdgeLabel sets the text rendered between pipes after the target.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// WithConnector overrides the default "-->" connector token.
func WithConnector(token string) EdgeOption {
	return func(e *Edge) { e.Style = token }
}

// AddEdge appends an edge from source to target. Endpoints are not checked
// against the node list. An empty target fails with MISSING_EDGE_TARGET.
func (d *Diagram) AddEdge(source, target string, opts ...EdgeOption) error {
	if target == "" {
		return errMissingEdgeTarget(source)
	}
	e := NewEdge(source, target)
	for _, opt := range opts {
		opt(&e)
	}
	d.AddEdgeValue(e)
	return nil
}

// AddEdgeValue appends e unchanged. It never fails.
func (d *Diagram) AddEdgeValue(e Edge) {
	d.edges = append(d.edges, e)
}

// SetDirection replaces the layout direction. Values outside
// TB, TD, BT, LR and RL fail with INVALID_DIRECTION.
func (d *Diagram) SetDirection(dir Direction) error {
	if !dir.Valid() {
		return errInvalidDirection(string(dir))
	}
	d.direction = dir
	return nil
}
