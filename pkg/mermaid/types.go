package mermaid

import (
	"maps"
	"slices"
	"strings"
)

// Style holds CSS-like declarations attached to a node, rendered as
// "key:value" pairs joined by commas. Keys are emitted in sorted order.
type Style map[string]string

// String returns the comma-joined declarations, e.g. "fill:#f9f,stroke:#333".
func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range slices.Sorted(maps.Keys(s)) {
		parts = append(parts, k+":"+s[k])
	}
	return strings.Join(parts, ",")
}

// Node is one diagram vertex.
//
// ID is written unescaped, so it must already be a valid Mermaid token.
// An empty Label, a nil Shape and an empty Style each mean "absent".
type Node struct {
	ID    string
	Label string
	Shape ShapeSpec
	Style Style
}

// DefaultConnector is the directed-arrow token used when an edge has no style.
const DefaultConnector = "-->"

// Edge connects two node IDs. Neither endpoint has to exist in the diagram.
type Edge struct {
	Source string
	Target string
	Label  string
	// Style is the connector token placed between the endpoints, such as
	// "-->", "---" or "===". Empty means [DefaultConnector].
	Style string
}

// NewEdge returns an unlabeled edge using [DefaultConnector].
func NewEdge(source, target string) Edge {
	return Edge{Source: source, Target: target, Style: DefaultConnector}
}

// Connector returns the edge's connector token, falling back to [DefaultConnector].
func (e Edge) Connector() string {
	if e.Style == "" {
		return DefaultConnector
	}
	return e.Style
}

// Direction is the layout axis written after the diagram type.
type Direction string

// Valid directions.
const (
	TB Direction = "TB" // top to bottom
	TD Direction = "TD" // top down, same as TB
	BT Direction = "BT" // bottom to top
	LR Direction = "LR" // left to right
	RL Direction = "RL" // right to left

	DefaultDirection = TD
)

var directions = []Direction{TB, TD, BT, LR, RL}

// Directions returns the valid directions in canonical order.
func Directions() []Direction { return slices.Clone(directions) }

// Valid reports whether d is one of [Directions].
func (d Direction) Valid() bool { return slices.Contains(directions, d) }

// ParseDirection converts s to a Direction, failing with INVALID_DIRECTION
// for anything outside the valid set.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", errInvalidDirection(s)
	}
	return d, nil
}

// Type is the leading keyword of a diagram. It is free-form and never validated.
type Type string

// Diagram types with convenience constructors.
const (
	Flowchart       Type = "flowchart"
	SequenceDiagram Type = "sequenceDiagram"
	ClassDiagram    Type = "classDiagram"
)
