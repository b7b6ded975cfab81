package docs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matzehuels/mermaidgen/pkg/errors"
	mio "github.com/matzehuels/mermaidgen/pkg/io"
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// Example is one showcase page.
type Example struct {
	Title   string           // page title without the " Example" suffix
	Source  string           // document or program text shown first
	Lang    string           // fence label for Source, e.g. "toml"
	Diagram *mermaid.Diagram // diagram to render
}

// Title derives a page title from a file path: the base name without its
// extension, underscores replaced by spaces, every word capitalized.
// "examples/node_shapes.toml" becomes "Node Shapes".
func Title(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	// Casers are stateful, so one is created per call.
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// WriteExample writes the markdown page for ex to w.
func WriteExample(w io.Writer, ex Example) error {
	text := ex.Diagram.Render()
	source := ex.Source
	if !strings.HasSuffix(source, "\n") {
		source += "\n"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s Example\n\n", ex.Title)
	fmt.Fprintf(bw, "```%s\n%s```\n\n", ex.Lang, source)
	fmt.Fprintf(bw, "```mermaid\n%s\n```\n\n", text)
	fmt.Fprintf(bw, "```bash\n%s\n```\n", text)
	return bw.Flush()
}

// GenerateFile reads the diagram document at path and writes the page to
// the same path with a .md extension. It returns the written path.
func GenerateFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	d, err := mio.Import(path)
	if err != nil {
		return "", err
	}
	format, _ := mio.FormatFromPath(path)

	out := pagePath(path)
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	ex := Example{Title: Title(path), Source: string(src), Lang: string(format), Diagram: d}
	if err := WriteExample(f, ex); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}

// GenerateDir runs [GenerateFile] for every diagram document directly
// inside dir, in lexical order. It stops at the first failure or when ctx
// is canceled and returns the pages written so far.
//
// Two documents that differ only in extension, such as flow.json and
// flow.yaml, would share flow.md; GenerateDir rejects that with
// INVALID_INPUT before writing any page.
func GenerateDir(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var sources []string
	seen := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !mio.IsDocument(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		page := pagePath(path)
		if prev, ok := seen[page]; ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s and %s both map to %s", filepath.Base(prev), e.Name(), filepath.Base(page))
		}
		seen[page] = path
		sources = append(sources, path)
	}

	var written []string
	for _, path := range sources {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		out, err := GenerateFile(path)
		if err != nil {
			return written, err
		}
		written = append(written, out)
	}
	slices.Sort(written)
	return written, nil
}

// pagePath returns the markdown page written for the document at path.
func pagePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".md"
}

// ToHTML converts a markdown page to HTML and sanitizes it with the
// bluemonday UGC policy. Fenced blocks keep their language class, so a
// client-side Mermaid script can pick up "language-mermaid" blocks.
func ToHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(md)

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	out := markdown.Render(doc, renderer)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code")
	return policy.SanitizeBytes(out)
}
