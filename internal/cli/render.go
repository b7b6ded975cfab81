package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidgen/pkg/errors"
	mio "github.com/matzehuels/mermaidgen/pkg/io"
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
	"github.com/matzehuels/mermaidgen/pkg/observability"
)

// Output formats of the render command.
const (
	formatMermaid  = "mermaid"  // raw Mermaid text
	formatMarkdown = "markdown" // Mermaid text in a ```mermaid fence
	formatJSON     = "json"     // normalized JSON document
)

var validFormats = []string{formatMermaid, formatMarkdown, formatJSON}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path; stdout when empty
	format    string // one of validFormats
	direction string // overrides the document direction when set
}

// renderCommand creates the render command for converting a diagram document.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram document to Mermaid text",
		Long: `Render a JSON, TOML or YAML diagram document to Mermaid text.

The result is printed to stdout unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.config.Render.Format
			}
			if !cmd.Flags().Changed("direction") {
				opts.direction = c.config.Render.Direction
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatMermaid, "output format: "+strings.Join(validFormats, ", "))
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", "", "override direction: TB, TD, BT, LR, RL")
	registerRenderCompletions(cmd)

	return cmd
}

// validateFormat checks that format is one of validFormats.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(validFormats, ", "))
}

func runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	hooks := observability.Render()
	logger.Debug("Importing document", "path", path)
	start := time.Now()
	d, err := mio.Import(path)
	format, _ := mio.FormatFromPath(path)
	hooks.OnImport(ctx, string(format), time.Since(start), err)
	if err != nil {
		return err
	}
	if opts.direction != "" {
		dir, err := mermaid.ParseDirection(opts.direction)
		if err != nil {
			return err
		}
		if err := d.SetDirection(dir); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	start = time.Now()
	if err := writeDiagram(&buf, d, opts.format); err != nil {
		return err
	}
	hooks.OnRender(ctx, observability.RenderStats{
		Type:  string(d.Type()),
		Nodes: d.NodeCount(),
		Edges: d.EdgeCount(),
		Bytes: buf.Len(),
	}, time.Since(start))
	prog.done(fmt.Sprintf("Rendered %s", path))

	if opts.output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Rendered %s diagram", d.Type())
	printStats(d.NodeCount(), d.EdgeCount())
	printFile(opts.output)
	return nil
}

// writeDiagram encodes d to w in the given format. Text formats end with a
// newline so the output is a well-formed file.
func writeDiagram(w io.Writer, d *mermaid.Diagram, format string) error {
	switch format {
	case formatMarkdown:
		_, err := fmt.Fprintf(w, "```mermaid\n%s\n```\n", d.Render())
		return err
	case formatJSON:
		return mio.WriteJSON(d, w)
	default:
		_, err := fmt.Fprintln(w, d.Render())
		return err
	}
}
