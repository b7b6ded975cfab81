// Package pkg holds the public libraries of mermaidgen.
//
// # Overview
//
// mermaidgen builds Mermaid diagram text from an in-memory model of nodes and
// edges. The packages are layered:
//
//  1. [mermaid] - the diagram model, the shape table and the renderer
//  2. [io] - JSON, TOML and YAML diagram documents
//  3. [docs] - markdown showcase pages and their HTML preview
//  4. [errors] - coded errors shared by every layer
//  5. [observability] - optional render hooks for metrics backends
//
// # Data Flow
//
//	diagram document (.json/.toml/.yaml)
//	         ↓
//	    [io] package (decode + validate through the Diagram operations)
//	         ↓
//	    [mermaid] package (Diagram.Render)
//	         ↓
//	    Mermaid text, markdown page or HTML preview
//
// # Quick Start
//
//	d := mermaid.NewFlowchart()
//	_ = d.SetDirection(mermaid.LR)
//	_ = d.AddNode("A", mermaid.WithLabel("Start"), mermaid.WithShape(mermaid.ShapeRound))
//	_ = d.AddNode("B", mermaid.WithLabel("End"))
//	_ = d.AddEdge("A", "B", mermaid.WithEdgeLabel("go"))
//	fmt.Println(d.Render())
//
// Output:
//
//	flowchart LR
//	    A(Start)
//	    B["End"]
//	    A --> B|go|
//
// [mermaid]: https://pkg.go.dev/github.com/matzehuels/mermaidgen/pkg/mermaid
// [io]: https://pkg.go.dev/github.com/matzehuels/mermaidgen/pkg/io
// [docs]: https://pkg.go.dev/github.com/matzehuels/mermaidgen/pkg/docs
// [errors]: https://pkg.go.dev/github.com/matzehuels/mermaidgen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mermaidgen/pkg/observability
package pkg
