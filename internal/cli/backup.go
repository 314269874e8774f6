package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/backup"
	"github.com/quadro-app/quadro/internal/model"
)

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import full-state archives",
	}

	cmd.AddCommand(newBackupExportCmd())
	cmd.AddCommand(newBackupImportCmd())

	return cmd
}

func newBackupExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write every collection to a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			path := args[0]

			auditEntries, err := app.Audit.Recent(cmd.Context(), 0)
			if err != nil {
				return err
			}
			archive := backup.Archive{
				Rooms:    app.Roster.Rooms(),
				Events:   app.Ledger.Events(),
				Totals:   app.Ledger.Totals(),
				Inactive: app.Inactive.Records(),
				Accounts: app.Auth.Accounts(),
				Audit:    auditEntries,
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := backup.Export(f, archive); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			if err := persist(cmd.Context(), model.AuditBackup, path); err != nil {
				return err
			}
			NewOutput(outputFormat).PrintMessage(fmt.Sprintf("Backup gravado em %s", path))
			return nil
		},
	}
}

func newBackupImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace every collection with the archive's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActor(); err != nil {
				return err
			}
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return err
			}
			archive, err := backup.Import(f, info.Size())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := app.Storage.SaveRooms(ctx, archive.Rooms); err != nil {
				return err
			}
			if err := app.Storage.SaveEvents(ctx, archive.Events); err != nil {
				return err
			}
			if err := app.Storage.SaveTotals(ctx, archive.Totals); err != nil {
				return err
			}
			if err := app.Storage.SaveInactive(ctx, archive.Inactive); err != nil {
				return err
			}
			if err := app.Storage.SaveAccounts(ctx, archive.Accounts); err != nil {
				return err
			}

			var role model.Role
			if actorAccount != nil {
				role = actorAccount.Role
			}
			if err := app.Audit.Record(ctx, actor, role, model.AuditImportBackup, path); err != nil {
				return err
			}
			NewOutput(outputFormat).PrintMessage(fmt.Sprintf("Backup restaurado de %s", path))
			return nil
		},
	}
}
