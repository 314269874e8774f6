package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quadro-app/quadro/internal/dependencies/mocks"
	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/services/ledger"
	"github.com/quadro-app/quadro/internal/services/lifecycle"
	"github.com/quadro-app/quadro/internal/services/roster"
	"github.com/quadro-app/quadro/internal/testutil"
)

type SessionSuite struct {
	suite.Suite
	roster   *roster.Engine
	ledger   *ledger.Ledger
	inactive *lifecycle.InactiveStore
	manager  *lifecycle.Manager
	session  *Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.roster = roster.New()
	s.ledger = ledger.New()
	s.inactive = lifecycle.NewInactiveStore()
	clk := mocks.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	s.manager = lifecycle.NewManager(s.roster, s.ledger, s.inactive, clk, testutil.NopLogger())
	s.session = New(s.roster, s.ledger, s.inactive)

	s.Require().NoError(s.roster.CreateRoom(1, model.TeamHydro, 6))
	s.Require().NoError(s.roster.Assign(model.Designer{
		Handle: "ana", DisplayName: "ana", Class: model.ClassA, Status: model.StatusActive,
	}, 1))
	delta := 3.0
	s.ledger.ApplyEvent(model.EvaluationEvent{
		Target: "ana", PointDelta: &delta, Kind: model.KindRegular,
	})
}

func (s *SessionSuite) TestUndoWithoutSnapshotFails() {
	s.False(s.session.CanUndo())
	s.ErrorIs(s.session.Undo(), ErrNothingToUndo)
}

func (s *SessionSuite) TestUndoRestoresBatchOfMutations() {
	wantRooms := s.roster.Rooms()
	wantEvents := s.ledger.Events()
	wantTotals := s.ledger.Totals()
	wantInactive := s.inactive.Records()

	s.session.Snapshot()

	// a batch of unrelated mutations
	delta := 2.0
	s.ledger.ApplyEvent(model.EvaluationEvent{Target: "ana", PointDelta: &delta, Kind: model.KindRegular})
	s.Require().NoError(s.roster.CreateRoom(2, model.TeamElectric, 4))
	s.Require().NoError(s.roster.Assign(model.Designer{
		Handle: "bia", DisplayName: "bia", Class: model.ClassB, Status: model.StatusActive,
	}, 2))
	_, err := s.manager.Inactivate("ana")
	s.Require().NoError(err)

	s.Require().NoError(s.session.Undo())

	s.Equal(wantRooms, s.roster.Rooms())
	s.Equal(wantEvents, s.ledger.Events())
	s.Equal(wantTotals, s.ledger.Totals())
	s.Equal(wantInactive, s.inactive.Records())
	s.Equal(3.0, s.ledger.TotalFor("ana"))
}

func (s *SessionSuite) TestLastSnapshotWins() {
	s.session.Snapshot()

	delta := 2.0
	s.ledger.ApplyEvent(model.EvaluationEvent{Target: "ana", PointDelta: &delta, Kind: model.KindRegular})

	s.session.Snapshot() // replaces the first snapshot

	s.ledger.ApplyEvent(model.EvaluationEvent{Target: "ana", PointDelta: &delta, Kind: model.KindRegular})
	s.Require().NoError(s.session.Undo())

	// only the second mutation is undone
	s.Equal(5.0, s.ledger.TotalFor("ana"))
}

func (s *SessionSuite) TestUndoConsumesTheSnapshot() {
	s.session.Snapshot()
	s.Require().NoError(s.session.Undo())
	s.ErrorIs(s.session.Undo(), ErrNothingToUndo)
}
