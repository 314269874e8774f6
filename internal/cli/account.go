package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/model"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Login account management",
	}

	cmd.AddCommand(newAccountCreateCmd())
	cmd.AddCommand(newAccountListCmd())
	cmd.AddCommand(newAccountEnableCmd(true))
	cmd.AddCommand(newAccountEnableCmd(false))
	cmd.AddCommand(newAccountResetPasswordCmd())
	cmd.AddCommand(newAccountPromoteCmd())
	cmd.AddCommand(newAccountAssignRoomCmd())
	cmd.AddCommand(newAccountLoginCmd())

	return cmd
}

func parseRole(s string) (model.Role, error) {
	switch model.Role(s) {
	case model.RoleDirector, model.RoleManager, model.RoleCoordinator, model.RoleDesigner:
		return model.Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q (Diretor, Gerente, Coordenador, Projetista)", s)
	}
}

func newAccountCreateCmd() *cobra.Command {
	var displayName, password string

	cmd := &cobra.Command{
		Use:   "create <username> <role>",
		Short: "Create a login account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			username := args[0]
			role, err := parseRole(args[1])
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			name := displayName
			if name == "" {
				name = username
			}

			account, err := app.Auth.Register(username, name, password, role)
			if err != nil {
				return err
			}
			details := fmt.Sprintf("%s (%s)", account.Username, account.Role)
			if err := persist(cmd.Context(), model.AuditCreateAccount, details); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(details)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name (defaults to the username)")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	return cmd
}

func newAccountListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			NewOutput(outputFormat).Print(app.Auth.Accounts())
			return nil
		},
	}
}

func newAccountEnableCmd(enable bool) *cobra.Command {
	use, action := "enable", model.AuditEnableAccount
	if !enable {
		use, action = "disable", model.AuditDisableAccount
	}

	return &cobra.Command{
		Use:   use + " <username>",
		Short: use + " an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			username := args[0]

			if err := app.Auth.SetEnabled(actor, username, enable); err != nil {
				return err
			}
			if err := persist(cmd.Context(), action, username); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(username)
			return nil
		},
	}
}

func newAccountResetPasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "reset-password <username>",
		Short: "Set a new password for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			username := args[0]

			if err := app.Auth.ResetPassword(username, password); err != nil {
				return err
			}
			if err := persist(cmd.Context(), model.AuditResetPassword, username); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(username)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password")
	return cmd
}

func newAccountPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <username>",
		Short: "Promote a designer account to coordinator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			username := args[0]

			if err := app.Auth.Promote(username); err != nil {
				return err
			}
			details := fmt.Sprintf("%s promovido a %s", username, model.RoleCoordinator)
			if err := persist(cmd.Context(), model.AuditPromote, details); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(details)
			return nil
		},
	}
}

func newAccountAssignRoomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign-room <username> <room>",
		Short: "Assign a coordinator to a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			username := args[0]
			roomID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[1])
			}
			if _, err := app.Roster.Room(roomID); err != nil {
				return err
			}

			if err := app.Auth.AssignRoom(username, roomID); err != nil {
				return err
			}
			details := fmt.Sprintf("%s na sala %d", username, roomID)
			if err := persist(cmd.Context(), model.AuditAssignRoom, details); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(details)
			return nil
		},
	}
}

func newAccountLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Verify credentials and record the login",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			account, err := app.Auth.Authenticate(username, password)
			if err != nil {
				// Failed attempts go to the management log too
				var role model.Role
				if existing, getErr := app.Auth.Get(username); getErr == nil {
					role = existing.Role
				}
				_ = app.Audit.Record(cmd.Context(), username, role, model.AuditLoginFailed, err.Error())
				_ = app.Flush(cmd.Context())
				return err
			}

			if err := app.Audit.Record(cmd.Context(), username, account.Role, model.AuditLogin, ""); err != nil {
				return err
			}
			if err := app.Flush(cmd.Context()); err != nil {
				return err
			}

			NewOutput(outputFormat).PrintMessage(fmt.Sprintf("%s (%s)", account.DisplayName, account.Role))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}
