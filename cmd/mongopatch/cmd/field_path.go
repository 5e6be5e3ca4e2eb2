package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brunoga/mongopatch"
)

func newFieldPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "field-path POINTER...",
		Short: "Print the MongoDB field path of each JSON Pointer",
		Example: `  mongopatch field-path /a/b/0
  mongopatch field-path '/a~1b/c~0d'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, pointer := range args {
				fmt.Fprintln(cmd.OutOrStdout(), mongopatch.FieldPath(pointer))
			}
			return nil
		},
	}
}
