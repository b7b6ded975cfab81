package mermaid

import (
	"maps"
	"slices"
)

// ShapeSpec describes how a node's label is wrapped. It is either a
// [ShapeName] resolved through the shape table or an explicit [Delimiters]
// pair used verbatim. A nil ShapeSpec means the node has no shape.
type ShapeSpec interface {
	resolve() (Delimiters, bool)
}

// ShapeName is a symbolic shape looked up in the shape table.
// Lookup is exact and case-sensitive.
type ShapeName string

func (s ShapeName) resolve() (Delimiters, bool) { return LookupShape(string(s)) }

// Delimiters is an explicit (open, close) pair wrapped around a label.
type Delimiters struct {
	Open  string
	Close string
}

func (d Delimiters) resolve() (Delimiters, bool) { return d, true }

// String returns the concatenation of both delimiters, e.g. "(())".
func (d Delimiters) String() string { return d.Open + d.Close }

// Shape names understood by [LookupShape].
const (
	ShapeDefault          ShapeName = "default"
	ShapeRound            ShapeName = "round"
	ShapeStadium          ShapeName = "stadium"
	ShapeSubroutine       ShapeName = "subroutine"
	ShapeCylindrical      ShapeName = "cylindrical"
	ShapeCircle           ShapeName = "circle"
	ShapeAsymmetric       ShapeName = "asymmetric"
	ShapeRhombus          ShapeName = "rhombus"
	ShapeHexagon          ShapeName = "hexagon"
	ShapeParallelogram    ShapeName = "parallelogram"
	ShapeParallelogramAlt ShapeName = "parallelogram_alt"
	ShapeTrapezoid        ShapeName = "trapezoid"
	ShapeTrapezoidAlt     ShapeName = "trapezoid_alt"
	ShapeDoubleCircle     ShapeName = "double_circle"

	// Aliases
	ShapeRounded  ShapeName = "rounded"
	ShapeDiamond  ShapeName = "diamond"
	ShapeDatabase ShapeName = "database"
)

// shapeTable is never mutated after package initialization.
var shapeTable = map[ShapeName]Delimiters{
	ShapeDefault:          {"", ""},
	ShapeRound:            {"(", ")"},
	ShapeStadium:          {"([", "])"},
	ShapeSubroutine:       {"[[", "]]"},
	ShapeCylindrical:      {"[(", ")]"},
	ShapeCircle:           {"((", "))"},
	ShapeAsymmetric:       {">", "]"},
	ShapeRhombus:          {"{", "}"},
	ShapeHexagon:          {"{{", "}}"},
	ShapeParallelogram:    {"[/", "/]"},
	ShapeParallelogramAlt: {`[\`, `\]`},
	ShapeTrapezoid:        {"[/", `\]`},
	ShapeTrapezoidAlt:     {`[\`, "/]"},
	ShapeDoubleCircle:     {"(((", ")))"},

	ShapeRounded:  {"(", ")"},
	ShapeDiamond:  {"{", "}"},
	ShapeDatabase: {"[(", ")]"},
}

// LookupShape returns the delimiters registered for name.
func LookupShape(name string) (Delimiters, bool) {
	d, ok := shapeTable[ShapeName(name)]
	return d, ok
}

// ShapeNames returns every symbolic shape name, aliases included, in sorted order.
func ShapeNames() []ShapeName {
	return slices.Sorted(maps.Keys(shapeTable))
}
