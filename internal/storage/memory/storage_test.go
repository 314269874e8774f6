package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quadro-app/quadro/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *StoreSuite) TestEmptyLoads() {
	rooms, err := s.store.LoadRooms(s.ctx)
	s.Require().NoError(err)
	s.Empty(rooms)

	totals, err := s.store.LoadTotals(s.ctx)
	s.Require().NoError(err)
	s.Empty(totals)

	audit, err := s.store.LoadAudit(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(audit)
}

func (s *StoreSuite) TestRoomsRoundTrip() {
	rooms := []model.Room{{
		ID:   1,
		Team: model.TeamHydro,
		Seats: []model.Seat{
			{Occupant: &model.Designer{Handle: "ana", DisplayName: "ana", Class: model.ClassA, Status: model.StatusActive}},
			{},
		},
	}}
	s.Require().NoError(s.store.SaveRooms(s.ctx, rooms))

	loaded, err := s.store.LoadRooms(s.ctx)
	s.Require().NoError(err)
	s.Equal(rooms, loaded)
}

func (s *StoreSuite) TestLoadedRoomsAreCopies() {
	rooms := []model.Room{{
		ID:    1,
		Team:  model.TeamHydro,
		Seats: []model.Seat{{Occupant: &model.Designer{Handle: "ana", Status: model.StatusActive}}},
	}}
	s.Require().NoError(s.store.SaveRooms(s.ctx, rooms))

	loaded, err := s.store.LoadRooms(s.ctx)
	s.Require().NoError(err)
	loaded[0].Seats[0].Occupant.Handle = "hacked"

	again, err := s.store.LoadRooms(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Handle("ana"), again[0].Seats[0].Occupant.Handle)
}

func (s *StoreSuite) TestEventsAndTotalsRoundTrip() {
	raw := 10
	delta := 3.0
	events := []model.EvaluationEvent{{
		ID:         "ev-1",
		Timestamp:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Team:       model.TeamHydro,
		Activity:   "Projeto Alfa",
		Target:     "ana",
		Category:   "Qualidade Técnica",
		RawScore:   &raw,
		PointDelta: &delta,
		Kind:       model.KindRegular,
	}}
	s.Require().NoError(s.store.SaveEvents(s.ctx, events))
	s.Require().NoError(s.store.SaveTotals(s.ctx, map[model.Handle]float64{"ana": 3}))

	loadedEvents, err := s.store.LoadEvents(s.ctx)
	s.Require().NoError(err)
	s.Equal(events, loadedEvents)

	loadedTotals, err := s.store.LoadTotals(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[model.Handle]float64{"ana": 3}, loadedTotals)
}

func (s *StoreSuite) TestInactiveAndAccountsRoundTrip() {
	records := []model.InactiveRecord{{
		Handle:         "ana",
		PreservedTotal: 5,
		RemovedAt:      time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}}
	accounts := []model.Account{{
		Username: "diretor1", DisplayName: "Diretor 1",
		Role: model.RoleDirector, Enabled: true,
	}}
	s.Require().NoError(s.store.SaveInactive(s.ctx, records))
	s.Require().NoError(s.store.SaveAccounts(s.ctx, accounts))

	loadedRecords, err := s.store.LoadInactive(s.ctx)
	s.Require().NoError(err)
	s.Equal(records, loadedRecords)

	loadedAccounts, err := s.store.LoadAccounts(s.ctx)
	s.Require().NoError(err)
	s.Equal(accounts, loadedAccounts)
}

func (s *StoreSuite) TestAuditIsNewestFirstAndLimited() {
	for i, action := range []string{model.AuditCreateRoom, model.AuditValidatePoints, model.AuditUndo} {
		s.Require().NoError(s.store.AppendAudit(s.ctx, model.AuditEntry{
			Timestamp: time.Date(2024, 3, 1, 9, i, 0, 0, time.UTC),
			Actor:     "diretor1",
			Role:      model.RoleDirector,
			Action:    action,
		}))
	}

	all, err := s.store.LoadAudit(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(model.AuditUndo, all[0].Action)
	s.Equal(model.AuditCreateRoom, all[2].Action)

	limited, err := s.store.LoadAudit(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(limited, 2)
	s.Equal(model.AuditUndo, limited[0].Action)
}
