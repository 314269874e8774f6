// Package lifecycle orchestrates inactivation and reactivation of designers.
// Inactivation frees the seat and preserves the accumulated score in an
// inactive record; reactivation restores the preserved score onto a freshly
// seated designer. Both transitions are atomic: on any failure all three
// owned collections are rolled back to their pre-operation state.
package lifecycle

import (
	"fmt"
	"log/slog"

	"github.com/quadro-app/quadro/internal/dependencies/clock"
	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/services/ledger"
	"github.com/quadro-app/quadro/internal/services/roster"
)

// Manager runs the Active <-> Free state machine for designers
type Manager struct {
	roster   *roster.Engine
	ledger   *ledger.Ledger
	inactive *InactiveStore
	clock    clock.Clock
	logger   *slog.Logger
}

// NewManager creates a lifecycle manager over the injected collections
func NewManager(
	rosterEngine *roster.Engine,
	scoreLedger *ledger.Ledger,
	inactive *InactiveStore,
	clk clock.Clock,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		roster:   rosterEngine,
		ledger:   scoreLedger,
		inactive: inactive,
		clock:    clk,
		logger:   logger,
	}
}

type snapshot struct {
	roster   *roster.Engine
	ledger   *ledger.Ledger
	inactive *InactiveStore
}

func (m *Manager) capture() snapshot {
	return snapshot{
		roster:   m.roster.Clone(),
		ledger:   m.ledger.Clone(),
		inactive: m.inactive.Clone(),
	}
}

func (m *Manager) rollback(s snapshot) {
	m.roster.Restore(s.roster)
	m.ledger.Restore(s.ledger)
	m.inactive.Restore(s.inactive)
}

// Inactivate removes a seated designer from active duty: the current total
// is preserved in an inactive record, the seat is freed for anyone, and the
// designer's history is flagged as retired.
func (m *Manager) Inactivate(h model.Handle) (model.InactiveRecord, error) {
	if _, _, err := m.roster.Seated(h); err != nil {
		return model.InactiveRecord{}, fmt.Errorf("inactivate %s: %w", h, model.ErrNotSeated)
	}
	if _, ok := m.inactive.Get(h); ok {
		return model.InactiveRecord{}, fmt.Errorf("inactivate %s: %w", h, model.ErrAlreadyInactive)
	}

	before := m.capture()
	record := model.InactiveRecord{
		Handle:         h,
		PreservedTotal: m.ledger.TotalFor(h),
		RemovedAt:      m.clock.Now(),
	}
	m.inactive.add(record)
	if _, err := m.roster.Vacate(h); err != nil {
		m.rollback(before)
		return model.InactiveRecord{}, fmt.Errorf("inactivate %s: %w", h, err)
	}
	m.ledger.ResetTotal(h)
	m.ledger.MarkRetired(h)

	m.logger.Info("designer inactivated",
		slog.String("handle", string(h)),
		slog.Float64("preserved_total", record.PreservedTotal),
	)
	return record, nil
}

// Reactivate seats an inactivated designer in the target room and restores
// the preserved total. The class tier is supplied fresh: reactivation is a
// deliberate re-classification step.
func (m *Manager) Reactivate(h model.Handle, roomID int, newClass model.ClassTier) (model.InactiveRecord, error) {
	record, ok := m.inactive.Get(h)
	if !ok {
		return model.InactiveRecord{}, fmt.Errorf("reactivate %s: %w", h, model.ErrNoInactiveRecord)
	}
	if !model.ValidClassTier(newClass) {
		return model.InactiveRecord{}, fmt.Errorf("reactivate %s: unknown class %q", h, newClass)
	}

	before := m.capture()
	d := model.Designer{
		Handle:      h,
		DisplayName: string(h),
		Class:       newClass,
		Status:      model.StatusActive,
	}
	if err := m.roster.Assign(d, roomID); err != nil {
		m.rollback(before)
		return model.InactiveRecord{}, fmt.Errorf("reactivate %s: %w", h, err)
	}
	m.ledger.SetTotal(h, record.PreservedTotal)
	m.ledger.ClearRetired(h)
	m.inactive.remove(h)

	m.logger.Info("designer reactivated",
		slog.String("handle", string(h)),
		slog.Int("room", roomID),
		slog.String("class", string(newClass)),
		slog.Float64("restored_total", record.PreservedTotal),
	)
	return record, nil
}
