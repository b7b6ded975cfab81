package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mermaidgen/pkg/errors"
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Format identifies a document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var formatFromExt = map[string]Format{
	".json": FormatJSON,
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// FormatFromPath returns the document format implied by the file extension.
// Unknown extensions fail with INVALID_FORMAT.
func FormatFromPath(path string) (Format, error) {
	f, ok := formatFromExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported document extension %q (want .json, .toml, .yaml or .yml)", filepath.Ext(path))
	}
	return f, nil
}

// IsDocument reports whether path has a diagram document extension.
func IsDocument(path string) bool {
	_, ok := formatFromExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Read decodes a document in format f from r and builds the diagram.
func Read(r io.Reader, f Format) (*mermaid.Diagram, error) {
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", string(f))
	}
}

// ReadJSON decodes a JSON document from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*mermaid.Diagram, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode JSON")
	}
	return doc.build()
}

// ReadTOML decodes a TOML document from r. ReadTOML does not close r.
func ReadTOML(r io.Reader) (*mermaid.Diagram, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode TOML")
	}
	return doc.build()
}

// ReadYAML decodes a YAML document from r. An empty stream yields an empty
// flowchart. ReadYAML does not close r.
func ReadYAML(r io.Reader) (*mermaid.Diagram, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode YAML")
	}
	return doc.build()
}

// Import reads the document at path, choosing the decoder from its extension.
func Import(path string) (*mermaid.Diagram, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// build applies the document to a fresh diagram. Entries are applied in
// order, so the first invalid one aborts the build.
func (doc *document) build() (*mermaid.Diagram, error) {
	d := mermaid.New(mermaid.Type(doc.Type))
	if doc.Direction != "" {
		if err := d.SetDirection(mermaid.Direction(doc.Direction)); err != nil {
			return nil, err
		}
	}

	for i, n := range doc.Nodes {
		if err := n.addTo(d); err != nil {
			return nil, fmt.Errorf("node %d (%s): %w", i, n.ID, err)
		}
	}
	for i, e := range doc.Edges {
		if err := e.addTo(d); err != nil {
			return nil, fmt.Errorf("edge %d (%s): %w", i, e.Source, err)
		}
	}
	return d, nil
}

func (n node) addTo(d *mermaid.Diagram) error {
	if n.ID == "" && !n.Raw {
		return errors.New(errors.ErrCodeInvalidDocument, "node id is required")
	}
	shape, err := n.shape()
	if err != nil {
		return err
	}

	if n.Raw {
		v := mermaid.Node{ID: n.ID, Shape: shape, Style: n.Style}
		if n.Label != nil {
			v.Label = *n.Label
		}
		return d.AddNodeValue(v)
	}

	var opts []mermaid.NodeOption
	if shape != nil {
		opts = append(opts, mermaid.WithShape(shape))
	}
	if n.Label != nil {
		opts = append(opts, mermaid.WithLabel(*n.Label))
	}
	if len(n.Style) > 0 {
		opts = append(opts, mermaid.WithStyle(n.Style))
	}
	return d.AddNode(n.ID, opts...)
}

func (n node) shape() (mermaid.ShapeSpec, error) {
	explicit := n.Open != nil || n.Close != nil
	switch {
	case n.Shape != "" && explicit:
		return nil, errors.New(errors.ErrCodeInvalidDocument, "shape and open/close are mutually exclusive")
	case n.Shape != "":
		return mermaid.ShapeName(n.Shape), nil
	case explicit:
		var delims mermaid.Delimiters
		if n.Open != nil {
			delims.Open = *n.Open
		}
		if n.Close != nil {
			delims.Close = *n.Close
		}
		return delims, nil
	default:
		return nil, nil
	}
}

func (e edge) addTo(d *mermaid.Diagram) error {
	if e.Raw {
		d.AddEdgeValue(mermaid.Edge{Source: e.Source, Target: e.Target, Label: e.Label, Style: e.Style})
		return nil
	}
	if e.Source == "" {
		return errors.New(errors.ErrCodeInvalidDocument, "edge source is required")
	}
	var opts []mermaid.EdgeOption
	if e.Label != "" {
		opts = append(opts, mermaid.WithEdgeLabel(e.Label))
	}
	if e.Style != "" {
		opts = append(opts, mermaid.WithConnector(e.Style))
	}
	return d.AddEdge(e.Source, e.Target, opts...)
}
