// Package consolidation aggregates the anonymous peer evaluations of a
// room's coordinator into a bounded point award, applied through the ledger
// like any other evaluation.
package consolidation

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/quadro-app/quadro/internal/dependencies/clock"
	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/services/ledger"
	"github.com/quadro-app/quadro/internal/services/roster"
	"github.com/quadro-app/quadro/internal/services/scoring"
)

// Engine consolidates supervisor evaluations
type Engine struct {
	roster *roster.Engine
	ledger *ledger.Ledger
	clock  clock.Clock
	logger *slog.Logger
}

// NewEngine creates a consolidation engine over the injected collections
func NewEngine(rosterEngine *roster.Engine, scoreLedger *ledger.Ledger, clk clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{
		roster: rosterEngine,
		ledger: scoreLedger,
		clock:  clk,
		logger: logger,
	}
}

// CategoryAward is the outcome of one evaluated category
type CategoryAward struct {
	Category    string
	Mean        float64
	Award       float64
	Evaluations int
}

// Result summarizes a consolidation run
type Result struct {
	Supervisor model.Handle
	RoomID     int
	Total      float64
	Categories []CategoryAward
}

// Consolidate averages the pending evaluations of the supervisor, restricted
// to evaluators currently seated and active in the given room, and applies
// one award event per category. Included source evaluations are marked
// consumed, so a re-run over the same batch reports ErrNoEvaluations rather
// than double-awarding. Evaluations from outside the room stay in history,
// unconsumed, and are simply excluded from the average.
func (e *Engine) Consolidate(supervisor model.Handle, roomID int) (Result, error) {
	pending := e.ledger.PendingSupervisorEvaluations(supervisor)
	if len(pending) == 0 {
		return Result{}, fmt.Errorf("consolidate %s: %w", supervisor, model.ErrNoEvaluations)
	}

	room, err := e.roster.Room(roomID)
	if err != nil {
		return Result{}, fmt.Errorf("consolidate %s: %w", supervisor, err)
	}
	members := make(map[model.Handle]bool)
	for _, h := range e.roster.ActiveInRoom(roomID) {
		members[h] = true
	}

	byCategory := make(map[string][]model.EvaluationEvent)
	var consumedIDs []string
	for _, ev := range pending {
		if !members[ev.Target] || ev.RawScore == nil {
			continue
		}
		byCategory[ev.Category] = append(byCategory[ev.Category], ev)
		consumedIDs = append(consumedIDs, ev.ID)
	}
	if len(byCategory) == 0 {
		return Result{}, fmt.Errorf("consolidate %s: %w", supervisor, model.ErrNoInRoomEvaluations)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	result := Result{Supervisor: supervisor, RoomID: roomID}
	for _, category := range categories {
		evs := byCategory[category]
		var sum float64
		for _, ev := range evs {
			sum += float64(*ev.RawScore)
		}
		mean := sum / float64(len(evs))
		award := scoring.AwardForMean(mean)
		rounded := math.Round(mean*100) / 100

		e.ledger.ApplyEvent(model.EvaluationEvent{
			Timestamp:  e.clock.Now(),
			Team:       room.Team,
			Activity:   fmt.Sprintf("COORD_APLICACAO:%s", category),
			Target:     supervisor,
			Category:   category,
			PointDelta: &award,
			Summary:    "Consolidação avaliações projetistas",
			Kind:       model.KindConsolidationAward,
			Supervisor: supervisor,
			MeanScore:  &rounded,
		})

		result.Categories = append(result.Categories, CategoryAward{
			Category:    category,
			Mean:        rounded,
			Award:       award,
			Evaluations: len(evs),
		})
		result.Total += award
	}

	e.ledger.Consume(consumedIDs)

	e.logger.Info("coordinator evaluations consolidated",
		slog.String("supervisor", string(supervisor)),
		slog.Int("room", roomID),
		slog.Float64("total_award", result.Total),
		slog.Int("evaluations", len(consumedIDs)),
	)
	return result, nil
}
