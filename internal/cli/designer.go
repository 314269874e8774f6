package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/model"
)

func newDesignerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "designer",
		Short: "Designer lifecycle and history",
	}

	cmd.AddCommand(newDesignerAddCmd())
	cmd.AddCommand(newDesignerInactivateCmd())
	cmd.AddCommand(newDesignerReactivateCmd())
	cmd.AddCommand(newDesignerHistoryCmd())
	cmd.AddCommand(newDesignerInactiveListCmd())

	return cmd
}

func parseClass(s string) (model.ClassTier, error) {
	class := model.ClassTier(s)
	if !model.ValidClassTier(class) {
		return "", fmt.Errorf("unknown class %q (S, A, B, C, D)", s)
	}
	return class, nil
}

func newDesignerAddCmd() *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "add <handle> <class> <room>",
		Short: "Seat a new designer in a room",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			handle := model.Handle(args[0])
			class, err := parseClass(args[1])
			if err != nil {
				return err
			}
			roomID, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[2])
			}

			name := displayName
			if name == "" {
				name = string(handle)
			}
			designer := model.Designer{
				Handle:      handle,
				DisplayName: name,
				Class:       class,
				Status:      model.StatusActive,
			}
			if err := app.Roster.Assign(designer, roomID); err != nil {
				return err
			}
			details := fmt.Sprintf("%s (classe %s) na sala %d", handle, class, roomID)
			if err := persist(cmd.Context(), model.AuditAddDesigner, details); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(details)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name (defaults to the handle)")
	return cmd
}

func newDesignerInactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inactivate <handle>",
		Short: "Move a designer to the inactive roster, preserving the score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			handle := model.Handle(args[0])

			record, err := app.Lifecycle.Inactivate(handle)
			if err != nil {
				return err
			}
			details := fmt.Sprintf("%s com %s pontos preservados", handle, formatPoints(record.PreservedTotal))
			if err := persist(cmd.Context(), model.AuditInactivateDesigner, details); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(details)
			return nil
		},
	}
}

func newDesignerReactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate <handle> <room> <class>",
		Short: "Return an inactive designer to a room with the preserved score",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			handle := model.Handle(args[0])
			roomID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[1])
			}
			class, err := parseClass(args[2])
			if err != nil {
				return err
			}

			record, err := app.Lifecycle.Reactivate(handle, roomID, class)
			if err != nil {
				return err
			}
			details := fmt.Sprintf("%s na sala %d, classe %s, %s pontos restaurados",
				handle, roomID, class, formatPoints(record.PreservedTotal))
			if err := persist(cmd.Context(), model.AuditReactivateDesigner, details); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(details)
			return nil
		},
	}
}

func newDesignerHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <handle>",
		Short: "Show a designer's evaluation history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle := model.Handle(args[0])

			events := slices.Collect(app.Ledger.HistoryFor(handle))
			if len(events) == 0 {
				NewOutput(outputFormat).PrintMessage(fmt.Sprintf("Sem avaliações para %s", handle))
				return nil
			}
			NewOutput(outputFormat).Print(events)
			return nil
		},
	}
}

func newDesignerInactiveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inactive",
		Short: "List the inactive roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			NewOutput(outputFormat).Print(app.Inactive.Records())
			return nil
		},
	}
}
