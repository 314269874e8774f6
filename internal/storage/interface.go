// Package storage defines the persistence boundary of the engine. The core
// mutates in memory only; flushing collections to a backend is an explicit,
// separate step the caller triggers.
package storage

import (
	"context"

	"github.com/quadro-app/quadro/internal/model"
)

// Store persists the engine's collections wholesale and appends audit
// entries. Loads of an empty backend return empty collections, not errors.
type Store interface {
	SaveRooms(ctx context.Context, rooms []model.Room) error
	LoadRooms(ctx context.Context) ([]model.Room, error)

	SaveEvents(ctx context.Context, events []model.EvaluationEvent) error
	LoadEvents(ctx context.Context) ([]model.EvaluationEvent, error)

	SaveTotals(ctx context.Context, totals map[model.Handle]float64) error
	LoadTotals(ctx context.Context) (map[model.Handle]float64, error)

	SaveInactive(ctx context.Context, records []model.InactiveRecord) error
	LoadInactive(ctx context.Context) ([]model.InactiveRecord, error)

	SaveAccounts(ctx context.Context, accounts []model.Account) error
	LoadAccounts(ctx context.Context) ([]model.Account, error)

	// AppendAudit prepends one entry to the management log
	AppendAudit(ctx context.Context, entry model.AuditEntry) error
	// LoadAudit returns up to limit entries, newest first; limit <= 0
	// means all
	LoadAudit(ctx context.Context, limit int) ([]model.AuditEntry, error)

	Close() error
}
