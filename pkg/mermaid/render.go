package mermaid

import "strings"

// indent prefixes every body line.
const indent = "    "

// Render returns the Mermaid text for the diagram.
//
// The first line is "<type> <direction>". Each node follows on its own line
// in insertion order, then each edge. Lines are joined with "\n" and no
// trailing newline is added. Labels, IDs and connector tokens are written
// verbatim: quotes, pipes and brackets inside them are not escaped.
//
// Render does not modify the diagram, so repeated calls return identical text.
func (d *Diagram) Render() string {
	lines := make([]string, 0, 1+len(d.nodes)+len(d.edges))
	lines = append(lines, string(d.typ)+" "+string(d.direction))
	for _, n := range d.nodes {
		lines = append(lines, fmtNode(n))
	}
	for _, e := range d.edges {
		lines = append(lines, fmtEdge(e))
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer by calling [Diagram.Render].
func (d *Diagram) String() string { return d.Render() }

func fmtNode(n Node) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(n.ID)

	switch {
	case n.Shape != nil:
		// Shapes are validated on insertion; an unresolvable one renders as default.
		delims, _ := n.Shape.resolve()
		b.WriteString(delims.Open)
		b.WriteString(n.Label)
		b.WriteString(delims.Close)
	case n.Label != "":
		b.WriteString(`["`)
		b.WriteString(n.Label)
		b.WriteString(`"]`)
	}

	if len(n.Style) > 0 {
		b.WriteString(" style ")
		b.WriteString(n.ID)
		b.WriteString(" ")
		b.WriteString(n.Style.String())
	}
	return b.String()
}

func fmtEdge(e Edge) string {
	line := indent + e.Source + " " + e.Connector() + " " + e.Target
	if e.Label != "" {
		line += "|" + e.Label + "|"
	}
	return line
}
