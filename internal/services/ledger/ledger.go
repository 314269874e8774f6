// Package ledger owns the evaluation history and each designer's current
// point total. History is append-only and ordered newest-first; totals move
// only through ApplyEvent, except for the explicit freeze/restore used by
// the lifecycle manager.
package ledger

import (
	"iter"

	"github.com/google/uuid"

	"github.com/quadro-app/quadro/internal/model"
)

// Ledger holds totals and history for all designers and coordinators
type Ledger struct {
	totals map[model.Handle]float64
	// events is ordered newest-first
	events  []model.EvaluationEvent
	retired map[model.Handle]bool
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{
		totals:  make(map[model.Handle]float64),
		retired: make(map[model.Handle]bool),
	}
}

// Load creates a ledger from persisted collections. Events must already be
// ordered newest-first. Retired flags are rebuilt by the caller from the
// inactive records.
func Load(events []model.EvaluationEvent, totals map[model.Handle]float64, retired []model.Handle) *Ledger {
	l := New()
	l.events = make([]model.EvaluationEvent, len(events))
	for i, e := range events {
		l.events[i] = e.Clone()
	}
	for h, t := range totals {
		l.totals[h] = t
	}
	for _, h := range retired {
		l.retired[h] = true
	}
	return l
}

// ApplyEvent appends the event to history and, when the event carries a
// point delta, adds it to the target's total. The ledger does not
// deduplicate: applying the same logical event twice double-counts.
func (l *Ledger) ApplyEvent(e model.EvaluationEvent) model.EvaluationEvent {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	l.events = append([]model.EvaluationEvent{e.Clone()}, l.events...)
	if e.PointDelta != nil {
		l.totals[e.Target] += *e.PointDelta
	}
	return e
}

// TotalFor returns the current point total; 0 for a handle never evaluated
func (l *Ledger) TotalFor(h model.Handle) float64 {
	return l.totals[h]
}

// SetTotal overwrites a handle's total. Used by reactivation to restore a
// preserved score.
func (l *Ledger) SetTotal(h model.Handle, total float64) {
	l.totals[h] = total
}

// ResetTotal removes a handle's total. Used by inactivation after the score
// has been preserved in an inactive record.
func (l *Ledger) ResetTotal(h model.Handle) {
	delete(l.totals, h)
}

// Totals returns a copy of all totals, for persistence
func (l *Ledger) Totals() map[model.Handle]float64 {
	out := make(map[model.Handle]float64, len(l.totals))
	for h, t := range l.totals {
		out[h] = t
	}
	return out
}

// HistoryFor returns a lazy, restartable sequence of a handle's events,
// newest first.
func (l *Ledger) HistoryFor(h model.Handle) iter.Seq[model.EvaluationEvent] {
	return func(yield func(model.EvaluationEvent) bool) {
		for _, e := range l.events {
			if e.Target != h {
				continue
			}
			if !yield(e.Clone()) {
				return
			}
		}
	}
}

// Events returns a copy of the full history, newest first
func (l *Ledger) Events() []model.EvaluationEvent {
	out := make([]model.EvaluationEvent, len(l.events))
	for i, e := range l.events {
		out[i] = e.Clone()
	}
	return out
}

// PendingSupervisorEvaluations returns the unconsumed peer evaluations of
// the given supervisor, newest first.
func (l *Ledger) PendingSupervisorEvaluations(supervisor model.Handle) []model.EvaluationEvent {
	var out []model.EvaluationEvent
	for _, e := range l.events {
		if e.Kind == model.KindSupervisorEvaluation && e.Supervisor == supervisor && !e.Consumed {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Consume marks the given events as folded into a consolidation run
func (l *Ledger) Consume(ids []string) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	for i := range l.events {
		if set[l.events[i].ID] {
			l.events[i].Consumed = true
		}
	}
}

// MarkRetired flags a handle as inactivated. Display layers use the flag to
// annotate historical entries; the history itself is never rewritten.
func (l *Ledger) MarkRetired(h model.Handle) {
	l.retired[h] = true
}

// ClearRetired removes the inactivated flag on reactivation
func (l *Ledger) ClearRetired(h model.Handle) {
	delete(l.retired, h)
}

// Retired reports whether a handle is currently flagged as inactivated
func (l *Ledger) Retired(h model.Handle) bool {
	return l.retired[h]
}

// Clone returns a deep copy of the ledger
func (l *Ledger) Clone() *Ledger {
	c := New()
	c.events = make([]model.EvaluationEvent, len(l.events))
	for i, e := range l.events {
		c.events[i] = e.Clone()
	}
	for h, t := range l.totals {
		c.totals[h] = t
	}
	for h := range l.retired {
		c.retired[h] = true
	}
	return c
}

// Restore overwrites the ledger's contents with those of the snapshot
func (l *Ledger) Restore(snapshot *Ledger) {
	restored := snapshot.Clone()
	l.totals = restored.totals
	l.events = restored.events
	l.retired = restored.retired
}
