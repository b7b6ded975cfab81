// Package io reads and writes diagram documents.
//
// # Overview
//
// A diagram document is a declarative description of a [mermaid.Diagram]
// that can be stored in JSON, TOML or YAML. It is the input format of the
// mermaidgen CLI, the docs generator and the HTTP render endpoint.
//
// # Document Format
//
//	type = "flowchart"
//	direction = "LR"
//
//	[[nodes]]
//	id = "start"
//	label = "Start"
//	shape = "stadium"
//	style = { fill = "#9f9" }
//
//	[[nodes]]
//	id = "db"
//	open = "[("
//	close = ")]"
//
//	[[edges]]
//	source = "start"
//	target = "db"
//	label = "write"
//	style = "-.->"
//
// The same fields are used in JSON and YAML.
//
// # Node Fields
//
// Required (unless raw):
//   - id: Mermaid identifier, written unescaped
//
// Optional:
//   - label: Display text. When omitted the label defaults to the id.
//   - shape: Symbolic shape name (see [mermaid.ShapeNames])
//   - open/close: Explicit delimiter pair, exclusive with shape
//   - style: Table of CSS-like declarations
//   - raw: Add the node as-is, without the label default or the id check
//
// # Edge Fields
//
// source and target are required; label and style (the connector token,
// "-->" by default) are optional. Endpoints do not have to be declared nodes.
// An edge with raw set is added as-is and neither endpoint is checked.
//
// # Import
//
// Use [Import] to read a file (the decoder is chosen by extension), or
// [Read] / [ReadJSON] / [ReadTOML] / [ReadYAML] for any io.Reader:
//
//	d, err := io.Import("pipeline.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.Render())
//
// Every entry is applied through the [mermaid.Diagram] operations, so the
// usual shape, direction and edge-target validation applies. Errors name
// the offending node or edge index and keep their error codes.
//
// # Export
//
// [WriteJSON] and [Export] encode a diagram as a JSON document. All nodes
// and edges are written with raw set, so re-importing the output renders
// identically, including entries only the value path accepts.
package io
