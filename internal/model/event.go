package model

import "time"

// EventKind discriminates the three shapes an evaluation event can take
type EventKind string

const (
	// KindRegular is an ordinary demand evaluation of a designer
	KindRegular EventKind = "regular"
	// KindSupervisorEvaluation is an anonymous peer evaluation of a room's
	// coordinator. Target is the evaluator; Supervisor identifies the
	// coordinator being evaluated. PointDelta is always nil: these events
	// are inputs to consolidation, not direct awards.
	KindSupervisorEvaluation EventKind = "supervisor_evaluation"
	// KindConsolidationAward is the synthetic event emitted by a
	// consolidation run, one per evaluated category, targeting the
	// supervisor.
	KindConsolidationAward EventKind = "consolidation_award"
)

// EvaluationEvent is an immutable, append-only history record. The only
// field ever rewritten after the fact is Consumed, which consolidation
// flips on supervisor evaluations it has already averaged.
type EvaluationEvent struct {
	ID        string
	Timestamp time.Time
	Team      TeamLabel
	// Activity is the demand name for regular evaluations, or a synthetic
	// tag for supervisor evaluations and consolidation awards.
	Activity string
	// Target is the designer the event is recorded against: the evaluated
	// designer for regular events, the evaluator for supervisor
	// evaluations, and the supervisor for consolidation awards.
	Target     Handle
	Category   string
	RawScore   *int
	PointDelta *float64
	Summary    string
	Kind       EventKind
	// Supervisor is set for supervisor evaluations and consolidation awards
	Supervisor Handle
	// MeanScore is the rounded category mean recorded on consolidation awards
	MeanScore *float64
	// Consumed marks supervisor evaluations already folded into a
	// consolidation average, so a re-run cannot double-award
	Consumed bool
}

// Clone returns a deep copy of the event
func (e EvaluationEvent) Clone() EvaluationEvent {
	c := e
	if e.RawScore != nil {
		v := *e.RawScore
		c.RawScore = &v
	}
	if e.PointDelta != nil {
		v := *e.PointDelta
		c.PointDelta = &v
	}
	if e.MeanScore != nil {
		v := *e.MeanScore
		c.MeanScore = &v
	}
	return c
}
