package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/model"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room and seat management",
	}

	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomAddSeatsCmd())
	cmd.AddCommand(newRoomListCmd())

	return cmd
}

func parseTeam(s string) (model.TeamLabel, error) {
	switch s {
	case "hidro", string(model.TeamHydro):
		return model.TeamHydro, nil
	case "eletrica", string(model.TeamElectric):
		return model.TeamElectric, nil
	default:
		return "", fmt.Errorf("unknown team %q (hidro, eletrica)", s)
	}
}

func newRoomCreateCmd() *cobra.Command {
	var seats int

	cmd := &cobra.Command{
		Use:   "create <id> <team>",
		Short: "Create a room with empty seats",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}
			team, err := parseTeam(args[1])
			if err != nil {
				return err
			}

			seatCount := seats
			if seatCount == 0 {
				seatCount = cfg.DefaultSeats
			}
			if err := app.Roster.CreateRoom(id, team, seatCount); err != nil {
				return err
			}
			details := fmt.Sprintf("Sala %d (%s) com %d vagas", id, team, seatCount)
			if err := persist(cmd.Context(), model.AuditCreateRoom, details); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(details)
			return nil
		},
	}

	cmd.Flags().IntVar(&seats, "seats", 0, "Seat count (defaults to configured default_seats)")
	return cmd
}

func newRoomAddSeatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-seats <id> <count>",
		Short: "Append empty seats to a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}
			count, err := strconv.Atoi(args[1])
			if err != nil || count <= 0 {
				return fmt.Errorf("invalid seat count %q", args[1])
			}

			if err := app.Roster.AddSeats(id, count); err != nil {
				return err
			}
			details := fmt.Sprintf("Sala %d: +%d vagas", id, count)
			if err := persist(cmd.Context(), model.AuditCreateRoom, details); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(details)
			return nil
		},
	}
}

func newRoomListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rooms and their occupants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			NewOutput(outputFormat).Print(app.Roster.Rooms())
			return nil
		},
	}
}
