package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

// documentExts are the extensions offered when completing a document path.
var documentExts = []string{"json", "toml", "yaml", "yml"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mermaidgen.

Completions cover subcommands, diagram document paths, and the values of
render --format and --direction.

Bash:
  $ source <(mermaidgen completion bash)

Zsh:
  $ mermaidgen completion zsh > "${fpath[1]}/_mermaidgen"

Fish:
  $ mermaidgen completion fish > ~/.config/fish/completions/mermaidgen.fish

PowerShell:
  PS> mermaidgen completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
}

// registerRenderCompletions wires value completion for the render
// command's argument and its --format and --direction flags.
func registerRenderCompletions(cmd *cobra.Command) {
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return documentExts, cobra.ShellCompDirectiveFilterFileExt
	}

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return validFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("direction", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		dirs := mermaid.Directions()
		out := make([]string, len(dirs))
		for i, d := range dirs {
			out[i] = string(d)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}
