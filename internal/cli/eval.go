package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/criteria"
	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/services/scoring"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluations and consolidation",
	}

	cmd.AddCommand(newEvalRecordCmd())
	cmd.AddCommand(newEvalCoordinatorCmd())
	cmd.AddCommand(newEvalConsolidateCmd())

	return cmd
}

func newEvalRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <handle> <activity> <category> <score>",
		Short: "Validate an evaluation for a seated designer",
		Long: `Validates one evaluation against the criteria table and applies the
resulting points: score 10 is worth 3 points, 9 is worth 2, 8 is worth 1,
anything lower adds nothing but still enters the history.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			handle := model.Handle(args[0])
			activity := args[1]
			category := args[2]
			score, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid score %q", args[3])
			}

			criterion, err := criteria.Lookup(category, score)
			if err != nil {
				return err
			}
			_, roomID, err := app.Roster.Seated(handle)
			if err != nil {
				return err
			}
			room, err := app.Roster.Room(roomID)
			if err != nil {
				return err
			}

			delta := scoring.PointsFor(score)
			raw := score
			event := app.Ledger.ApplyEvent(model.EvaluationEvent{
				Timestamp:  app.Clock.Now(),
				Team:       room.Team,
				Activity:   activity,
				Target:     handle,
				Category:   category,
				RawScore:   &raw,
				PointDelta: &delta,
				Summary:    criterion.Summary,
				Kind:       model.KindRegular,
			})

			details := fmt.Sprintf("%s: %s nota %d (+%s pontos) em %s",
				handle, category, score, formatPoints(delta), activity)
			if err := persist(cmd.Context(), model.AuditValidatePoints, details); err != nil {
				return err
			}

			out := NewOutput(outputFormat)
			if outputFormat == "json" {
				out.Print(event)
				return nil
			}
			out.PrintMessage(details)
			return nil
		},
	}
}

func newEvalCoordinatorCmd() *cobra.Command {
	var supervisorFlag string

	cmd := &cobra.Command{
		Use:   "coordinator <evaluator> <category> <score>",
		Short: "Record a designer's anonymous evaluation of their room coordinator",
		Long: `Records a coordinator evaluation from a seated designer. The evaluated
coordinator is resolved from the evaluator's room unless --supervisor is
given. Scores stay pending until a director consolidates them; no points
are applied here.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			evaluator := model.Handle(args[0])
			category := args[1]
			score, err := strconv.Atoi(args[2])
			if err != nil || score < 0 || score > 10 {
				return fmt.Errorf("invalid score %q (0-10)", args[2])
			}
			if !criteria.Known(category) {
				return model.ErrUnknownCategory
			}

			_, roomID, err := app.Roster.Seated(evaluator)
			if err != nil {
				return err
			}
			room, err := app.Roster.Room(roomID)
			if err != nil {
				return err
			}

			supervisor := model.Handle(supervisorFlag)
			if supervisor == "" {
				account, err := app.Auth.CoordinatorForRoom(roomID)
				if err != nil {
					return fmt.Errorf("no coordinator assigned to room %d, use --supervisor: %w", roomID, err)
				}
				supervisor = model.Handle(account.Username)
			}

			raw := score
			app.Ledger.ApplyEvent(model.EvaluationEvent{
				Timestamp:  app.Clock.Now(),
				Team:       room.Team,
				Activity:   fmt.Sprintf("AVAL_COORD:%s", supervisor),
				Target:     evaluator,
				Category:   category,
				RawScore:   &raw,
				Kind:       model.KindSupervisorEvaluation,
				Supervisor: supervisor,
			})

			// The audit entry names the room, not the evaluator, so the
			// evaluation stays anonymous in the management log.
			details := fmt.Sprintf("Coordenador %s: %s nota %d (sala %d)", supervisor, category, score, roomID)
			if err := persist(cmd.Context(), model.AuditEvaluateCoord, details); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(details)
			return nil
		},
	}

	cmd.Flags().StringVar(&supervisorFlag, "supervisor", "", "Evaluated coordinator (defaults to the room's assigned coordinator)")
	return cmd
}

func newEvalConsolidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consolidate <supervisor> <room>",
		Short: "Consolidate a coordinator's pending evaluations into a point award",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			supervisor := model.Handle(args[0])
			roomID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[1])
			}

			result, err := app.Consolidation.Consolidate(supervisor, roomID)
			if err != nil {
				return err
			}
			details := fmt.Sprintf("Coordenador %s: +%s pontos (sala %d)",
				supervisor, formatPoints(result.Total), roomID)
			if err := persist(cmd.Context(), model.AuditConsolidateCoord, details); err != nil {
				return err
			}

			NewOutput(outputFormat).Print(result)
			return nil
		},
	}
}
