// Package docs generates markdown pages that showcase diagram documents.
//
// Each page shows the document source, the rendered Mermaid text inside a
// fenced block labeled "mermaid" (rendered by GitHub and most doc sites),
// and the same text again as a plain code block for copying.
//
// The generator only consumes a diagram through [mermaid.Diagram.Render]
// and never reformats the output.
//
//	paths, err := docs.GenerateDir(ctx, "examples")
//
// [ToHTML] converts a generated page to sanitized HTML for previews.
package docs
