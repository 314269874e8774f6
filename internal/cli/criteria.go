package cli

import (
	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/criteria"
)

func newCriteriaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "criteria",
		Short: "Evaluation criteria reference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "List the evaluation categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(outputFormat)
			if outputFormat == "json" {
				out.Print(criteria.Categories)
				return nil
			}
			for _, c := range criteria.Categories {
				out.PrintMessage(c)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <category>",
		Short: "Show the scoring rows of one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := criteria.For(args[0])
			if err != nil {
				return err
			}
			NewOutput(outputFormat).Print(rows)
			return nil
		},
	})

	return cmd
}
