// Package mermaid builds Mermaid flowchart text from an in-memory model.
//
// # Overview
//
// A [Diagram] holds an ordered list of [Node] values, an ordered list of
// [Edge] values, a diagram-type tag and a layout [Direction]. Callers mutate
// it with [Diagram.AddNode], [Diagram.AddEdge] and [Diagram.SetDirection],
// then call [Diagram.Render] once to obtain the text.
//
//	d := mermaid.NewFlowchart()
//	_ = d.SetDirection(mermaid.LR)
//	_ = d.AddNodeValue(mermaid.Node{ID: "A", Label: "Start"})
//	_ = d.AddNodeValue(mermaid.Node{ID: "B", Label: "End"})
//	_ = d.AddEdge("A", "B", mermaid.WithEdgeLabel("Next"))
//	fmt.Println(d.Render())
//
// produces:
//
//	flowchart LR
//	    A["Start"]
//	    B["End"]
//	    A --> B|Next|
//
// # Two Entry Points
//
// Nodes and edges can be added from raw identifiers ([Diagram.AddNode],
// [Diagram.AddEdge]) or as fully-formed values ([Diagram.AddNodeValue],
// [Diagram.AddEdgeValue]). Both funnel into the same append. The paths
// differ in one respect: AddNode defaults the label to the node ID, while
// AddNodeValue keeps an empty label empty, so the node renders as its bare ID.
//
// # Shapes
//
// A node shape is either a [ShapeName] looked up in the built-in table
// (see [ShapeNames] and [LookupShape]) or an explicit [Delimiters] pair.
// Unknown names are rejected when the node is added.
//
// # Validation
//
// Only three things are validated: shape names, directions, and the presence
// of an edge target. IDs, labels and connector tokens are written verbatim,
// and edges may reference nodes that were never added. Errors carry codes
// from package [github.com/matzehuels/mermaidgen/pkg/errors].
//
// Sequence and class diagram constructors only change the header keyword;
// the body uses the same node and edge rules as a flowchart.
package mermaid
