package mermaid

import "github.com/matzehuels/mermaidgen/pkg/errors"

func errInvalidShape(name ShapeName) error {
	return errors.New(errors.ErrCodeInvalidShape, "invalid shape: %s", string(name))
}

func errInvalidDirection(got string) error {
	return errors.New(errors.ErrCodeInvalidDirection, "direction must be one of %v, got %q", directions, got)
}

func errMissingEdgeTarget(source string) error {
	return errors.New(errors.ErrCodeMissingEdgeTarget, "edge from %q: target is required", source)
}

// IsInvalidShape reports whether err was caused by an unknown shape name.
func IsInvalidShape(err error) bool { return errors.Is(err, errors.ErrCodeInvalidShape) }

// IsInvalidDirection reports whether err was caused by an invalid direction.
func IsInvalidDirection(err error) bool { return errors.Is(err, errors.ErrCodeInvalidDirection) }

// IsMissingEdgeTarget reports whether err was caused by an edge without a target.
func IsMissingEdgeTarget(err error) bool { return errors.Is(err, errors.ErrCodeMissingEdgeTarget) }
