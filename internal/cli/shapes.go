package cli

import "github.com/spf13/cobra"

// shapesCommand creates the command that lists the shape table.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the symbolic node shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printShapeTable(stdout)
			return nil
		},
	}
}
