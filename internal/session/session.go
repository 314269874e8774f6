// Package session provides the snapshot-before-mutation / restore-on-demand
// discipline: callers capture a deep copy of the whole engine state before a
// mutating sequence, and a single undo restores the most recent snapshot
// wholesale. One snapshot only, last-snapshot-wins; there is no undo stack.
package session

import (
	"errors"

	"github.com/quadro-app/quadro/internal/services/ledger"
	"github.com/quadro-app/quadro/internal/services/lifecycle"
	"github.com/quadro-app/quadro/internal/services/roster"
)

// ErrNothingToUndo is returned when no snapshot has been captured since the
// last undo
var ErrNothingToUndo = errors.New("nothing to undo")

type snapshot struct {
	roster   *roster.Engine
	ledger   *ledger.Ledger
	inactive *lifecycle.InactiveStore
}

// Session tracks the single undo snapshot over the engine's collections
type Session struct {
	roster   *roster.Engine
	ledger   *ledger.Ledger
	inactive *lifecycle.InactiveStore
	last     *snapshot
}

// New creates a session over the injected collections
func New(rosterEngine *roster.Engine, scoreLedger *ledger.Ledger, inactive *lifecycle.InactiveStore) *Session {
	return &Session{
		roster:   rosterEngine,
		ledger:   scoreLedger,
		inactive: inactive,
	}
}

// Snapshot captures a deep copy of the current state, replacing any earlier
// snapshot.
func (s *Session) Snapshot() {
	s.last = &snapshot{
		roster:   s.roster.Clone(),
		ledger:   s.ledger.Clone(),
		inactive: s.inactive.Clone(),
	}
}

// CanUndo reports whether a snapshot is available
func (s *Session) CanUndo() bool {
	return s.last != nil
}

// Undo restores the most recent snapshot wholesale and discards it
func (s *Session) Undo() error {
	if s.last == nil {
		return ErrNothingToUndo
	}
	s.roster.Restore(s.last.roster)
	s.ledger.Restore(s.last.ledger)
	s.inactive.Restore(s.last.inactive)
	s.last = nil
	return nil
}
