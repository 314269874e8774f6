// Package audit writes the append-only management log: one structured
// entry per state-changing operation, persisted through storage and
// mirrored to the application logger.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quadro-app/quadro/internal/dependencies/clock"
	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/storage"
)

// Recorder appends audit entries
type Recorder struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger
}

// NewRecorder creates a recorder over the given sink
func NewRecorder(store storage.Store, clk clock.Clock, logger *slog.Logger) *Recorder {
	return &Recorder{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Record appends one entry to the management log
func (r *Recorder) Record(ctx context.Context, actor string, role model.Role, action, details string) error {
	entry := model.AuditEntry{
		Timestamp: r.clock.Now(),
		Actor:     actor,
		Role:      role,
		Action:    action,
		Details:   details,
	}
	if err := r.store.AppendAudit(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	r.logger.Info("audit",
		slog.String("actor", actor),
		slog.String("role", string(role)),
		slog.String("action", action),
		slog.String("details", details),
	)
	return nil
}

// Recent returns up to limit entries, newest first
func (r *Recorder) Recent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	return r.store.LoadAudit(ctx, limit)
}
