// Package factory wires storage, dependencies, and services into a running
// application.
package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/quadro-app/quadro/internal/dependencies/clock"
	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/services/audit"
	"github.com/quadro-app/quadro/internal/services/auth"
	"github.com/quadro-app/quadro/internal/services/consolidation"
	"github.com/quadro-app/quadro/internal/services/ledger"
	"github.com/quadro-app/quadro/internal/services/lifecycle"
	"github.com/quadro-app/quadro/internal/services/roster"
	"github.com/quadro-app/quadro/internal/session"
	"github.com/quadro-app/quadro/internal/storage"
	"github.com/quadro-app/quadro/internal/storage/memory"
	redisstorage "github.com/quadro-app/quadro/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock clock.Clock

	// Collections
	Roster   *roster.Engine
	Ledger   *ledger.Ledger
	Inactive *lifecycle.InactiveStore

	// Services
	Lifecycle     *lifecycle.Manager
	Consolidation *consolidation.Engine
	Auth          *auth.Service
	Audit         *audit.Recorder
	Session       *session.Session

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Clock overrides the wall clock (optional, used by tests)
	Clock clock.Clock
	// Bootstrap seeds the predefined director and manager accounts when
	// the account collection is empty
	Bootstrap bool
}

// New creates a new application with all dependencies wired and the
// persisted collections loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	app, err := newWithDependencies(ctx, store, clk, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Bootstrap {
		if err := app.Auth.Bootstrap(); err != nil {
			return nil, fmt.Errorf("bootstrap accounts: %w", err)
		}
	}
	return app, nil
}

// newWithDependencies loads the persisted collections and wires the
// services over them (useful for testing)
func newWithDependencies(ctx context.Context, store storage.Store, clk clock.Clock, logger *slog.Logger) (*App, error) {
	rooms, err := store.LoadRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	events, err := store.LoadEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	totals, err := store.LoadTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("load totals: %w", err)
	}
	inactiveRecords, err := store.LoadInactive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inactive records: %w", err)
	}
	accounts, err := store.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	// The retired set mirrors the inactive records, so it is rebuilt
	// from them rather than persisted separately.
	retired := make([]model.Handle, 0, len(inactiveRecords))
	for _, r := range inactiveRecords {
		retired = append(retired, r.Handle)
	}

	rosterEngine := roster.Load(rooms)
	scoreLedger := ledger.Load(events, totals, retired)
	inactive := lifecycle.LoadInactiveStore(inactiveRecords)

	return &App{
		Storage:       store,
		Clock:         clk,
		Roster:        rosterEngine,
		Ledger:        scoreLedger,
		Inactive:      inactive,
		Lifecycle:     lifecycle.NewManager(rosterEngine, scoreLedger, inactive, clk, logger),
		Consolidation: consolidation.NewEngine(rosterEngine, scoreLedger, clk, logger),
		Auth:          auth.Load(accounts, clk, logger),
		Audit:         audit.NewRecorder(store, clk, logger),
		Session:       session.New(rosterEngine, scoreLedger, inactive),
		logger:        logger,
	}, nil
}

// Flush persists every collection to storage
func (a *App) Flush(ctx context.Context) error {
	if err := a.Storage.SaveRooms(ctx, a.Roster.Rooms()); err != nil {
		return fmt.Errorf("save rooms: %w", err)
	}
	if err := a.Storage.SaveEvents(ctx, a.Ledger.Events()); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	if err := a.Storage.SaveTotals(ctx, a.Ledger.Totals()); err != nil {
		return fmt.Errorf("save totals: %w", err)
	}
	if err := a.Storage.SaveInactive(ctx, a.Inactive.Records()); err != nil {
		return fmt.Errorf("save inactive records: %w", err)
	}
	if err := a.Storage.SaveAccounts(ctx, a.Auth.Accounts()); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
