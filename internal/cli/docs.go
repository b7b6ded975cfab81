package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidgen/pkg/docs"
)

// docsCommand creates the command that writes markdown showcase pages.
func (c *CLI) docsCommand() *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "docs [dir]",
		Short: "Generate markdown pages for every diagram document in a directory",
		Long: `Generate a markdown page for every .json, .toml, .yaml and .yml diagram
document in dir. Each page shows the document, the rendered diagram in a
mermaid code fence, and the raw Mermaid text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("html") {
				html = c.config.Docs.HTML
			}
			return runDocs(cmd.Context(), args[0], html)
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "also write a sanitized HTML preview per page")
	return cmd
}

func runDocs(ctx context.Context, dir string, html bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	pages, err := docs.GenerateDir(ctx, dir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		printInfo("No diagram documents in %s", dir)
		return nil
	}

	for _, page := range pages {
		logger.Debug("Wrote page", "path", page)
		if !html {
			continue
		}
		out, err := writeHTML(page)
		if err != nil {
			return err
		}
		logger.Debug("Wrote preview", "path", out)
	}
	prog.done(fmt.Sprintf("Generated %d pages", len(pages)))

	printSuccess("Generated %d pages", len(pages))
	for _, page := range pages {
		printFile(page)
	}
	return nil
}

func writeHTML(page string) (string, error) {
	md, err := os.ReadFile(page)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", page, err)
	}
	out := strings.TrimSuffix(page, ".md") + ".html"
	if err := os.WriteFile(out, docs.ToHTML(md), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}
