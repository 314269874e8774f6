package ranking

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/services/ledger"
	"github.com/quadro-app/quadro/internal/services/roster"
)

type RankingSuite struct {
	suite.Suite
	roster *roster.Engine
	ledger *ledger.Ledger
}

func TestRankingSuite(t *testing.T) {
	suite.Run(t, new(RankingSuite))
}

func (s *RankingSuite) SetupTest() {
	s.roster = roster.New()
	s.ledger = ledger.New()
	s.Require().NoError(s.roster.CreateRoom(1, model.TeamHydro, 6))
}

func (s *RankingSuite) seat(h string, class model.ClassTier, total float64) {
	s.Require().NoError(s.roster.Assign(model.Designer{
		Handle:      model.Handle(h),
		DisplayName: h,
		Class:       class,
		Status:      model.StatusActive,
	}, 1))
	if total > 0 {
		s.ledger.ApplyEvent(model.EvaluationEvent{
			Target:     model.Handle(h),
			PointDelta: &total,
			Kind:       model.KindRegular,
		})
	}
}

func (s *RankingSuite) TestTiesGetSequentialRanksInArrivalOrder() {
	// Equal totals are deliberately not collapsed into a shared rank:
	// stable sort keeps arrival order and numbering stays sequential.
	s.seat("ana", model.ClassA, 5)
	s.seat("bia", model.ClassA, 5)
	s.seat("caio", model.ClassA, 2)

	classA := Compute(s.roster, s.ledger).ByClass[model.ClassA]
	s.Require().Len(classA, 3)
	s.Equal(model.Handle("ana"), classA[0].Handle)
	s.Equal(1, classA[0].Rank)
	s.Equal(model.Handle("bia"), classA[1].Handle)
	s.Equal(2, classA[1].Rank)
	s.Equal(model.Handle("caio"), classA[2].Handle)
	s.Equal(3, classA[2].Rank)
}

func (s *RankingSuite) TestZeroTotalIsListedButUnranked() {
	s.seat("ana", model.ClassB, 3)
	s.seat("bia", model.ClassB, 0)

	classB := Compute(s.roster, s.ledger).ByClass[model.ClassB]
	s.Require().Len(classB, 2)
	s.Equal(1, classB[0].Rank)
	s.Equal(model.Handle("bia"), classB[1].Handle)
	s.Equal(0, classB[1].Rank)
	s.Equal(0.0, classB[1].Total)
}

func (s *RankingSuite) TestClassesArePartitioned() {
	s.seat("ana", model.ClassS, 1)
	s.seat("bia", model.ClassA, 7)

	rankings := Compute(s.roster, s.ledger)
	s.Len(rankings.ByClass[model.ClassS], 1)
	s.Len(rankings.ByClass[model.ClassA], 1)
	s.NotContains(rankings.ByClass, model.ClassD)
}

func (s *RankingSuite) TestGlobalRankingCrossesClasses() {
	s.seat("ana", model.ClassS, 2)
	s.seat("bia", model.ClassC, 9)
	s.seat("caio", model.ClassA, 0)

	global := Compute(s.roster, s.ledger).Global
	s.Require().Len(global, 3)
	s.Equal(model.Handle("bia"), global[0].Handle)
	s.Equal(1, global[0].Rank)
	s.Equal(model.Handle("ana"), global[1].Handle)
	s.Equal(2, global[1].Rank)
	s.Equal(0, global[2].Rank)
}

func (s *RankingSuite) TestNonActiveSeatRecordsAreExcluded() {
	// Persisted rooms can carry stale statuses; Compute only trusts
	// active occupants.
	loaded := roster.Load([]model.Room{{
		ID:   2,
		Team: model.TeamElectric,
		Seats: []model.Seat{
			{Occupant: &model.Designer{Handle: "ana", DisplayName: "ana", Class: model.ClassA, Status: model.StatusActive}},
			{Occupant: &model.Designer{Handle: "bia", DisplayName: "bia", Class: model.ClassA, Status: model.StatusFree}},
		},
	}})

	global := Compute(loaded, s.ledger).Global
	s.Require().Len(global, 1)
	s.Equal(model.Handle("ana"), global[0].Handle)
}
