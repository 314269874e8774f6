package cli

import (
	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/services/ranking"
)

func newRankingCmd() *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show per-class and global rankings of active designers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ranks := ranking.Compute(app.Roster, app.Ledger)

			if class != "" {
				tier, err := parseClass(class)
				if err != nil {
					return err
				}
				ranks = ranking.Rankings{
					ByClass: map[model.ClassTier][]ranking.Entry{tier: ranks.ByClass[tier]},
				}
			}
			NewOutput(outputFormat).Print(ranks)
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Restrict to one class (S, A, B, C, D)")
	return cmd
}
