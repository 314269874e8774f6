package roster

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quadro-app/quadro/internal/model"
)

type RosterSuite struct {
	suite.Suite
	roster *Engine
}

func TestRosterSuite(t *testing.T) {
	suite.Run(t, new(RosterSuite))
}

func (s *RosterSuite) SetupTest() {
	s.roster = New()
	s.Require().NoError(s.roster.CreateRoom(1, model.TeamHydro, 2))
	s.Require().NoError(s.roster.CreateRoom(3, model.TeamElectric, 3))
}

func designer(h string, class model.ClassTier) model.Designer {
	return model.Designer{
		Handle:      model.Handle(h),
		DisplayName: h,
		Class:       class,
		Status:      model.StatusActive,
	}
}

func (s *RosterSuite) TestCreateRoomDuplicateIDFails() {
	before := len(s.roster.Rooms())

	err := s.roster.CreateRoom(1, model.TeamElectric, 4)

	s.ErrorIs(err, model.ErrDuplicateRoom)
	s.Len(s.roster.Rooms(), before)
}

func (s *RosterSuite) TestCreateRoomUnknownTeamFails() {
	err := s.roster.CreateRoom(9, "Estrutural", 4)
	s.Error(err)
}

func (s *RosterSuite) TestAssignUsesFirstFreeSeat() {
	s.Require().NoError(s.roster.Assign(designer("ana", model.ClassA), 1))

	room, err := s.roster.Room(1)
	s.Require().NoError(err)
	s.NotNil(room.Seats[0].Occupant)
	s.Equal(model.Handle("ana"), room.Seats[0].Occupant.Handle)
	s.Nil(room.Seats[1].Occupant)
}

func (s *RosterSuite) TestAssignFullRoomFails() {
	s.Require().NoError(s.roster.Assign(designer("ana", model.ClassA), 1))
	s.Require().NoError(s.roster.Assign(designer("bia", model.ClassB), 1))

	err := s.roster.Assign(designer("caio", model.ClassC), 1)

	s.ErrorIs(err, model.ErrRoomFull)
}

func (s *RosterSuite) TestAssignTwiceFails() {
	s.Require().NoError(s.roster.Assign(designer("ana", model.ClassA), 1))

	err := s.roster.Assign(designer("ana", model.ClassA), 3)

	s.ErrorIs(err, model.ErrAlreadySeated)
}

func (s *RosterSuite) TestAssignUnknownRoomFails() {
	err := s.roster.Assign(designer("ana", model.ClassA), 42)
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *RosterSuite) TestVacateFreesSeatForReuse() {
	s.Require().NoError(s.roster.Assign(designer("ana", model.ClassA), 1))
	s.Require().NoError(s.roster.Assign(designer("bia", model.ClassB), 1))

	removed, err := s.roster.Vacate("ana")
	s.Require().NoError(err)
	s.Equal(model.Handle("ana"), removed.Handle)

	s.Require().NoError(s.roster.Assign(designer("caio", model.ClassC), 1))
	room, err := s.roster.Room(1)
	s.Require().NoError(err)
	s.Equal(model.Handle("caio"), room.Seats[0].Occupant.Handle)
}

func (s *RosterSuite) TestVacateUnseatedFails() {
	_, err := s.roster.Vacate("nobody")
	s.ErrorIs(err, model.ErrNotSeated)
}

func (s *RosterSuite) TestSeatedReportsRoom() {
	s.Require().NoError(s.roster.Assign(designer("ana", model.ClassA), 3))

	d, roomID, err := s.roster.Seated("ana")
	s.Require().NoError(err)
	s.Equal(model.Handle("ana"), d.Handle)
	s.Equal(3, roomID)
}

func (s *RosterSuite) TestAddSeatsGrowsRoom() {
	s.Require().NoError(s.roster.AddSeats(1, 2))

	room, err := s.roster.Room(1)
	s.Require().NoError(err)
	s.Len(room.Seats, 4)
}

func (s *RosterSuite) TestActiveInRoomSkipsFreeSeats() {
	s.Require().NoError(s.roster.Assign(designer("ana", model.ClassA), 3))
	s.Require().NoError(s.roster.Assign(designer("bia", model.ClassB), 3))

	s.Equal([]model.Handle{"ana", "bia"}, s.roster.ActiveInRoom(3))
}

func (s *RosterSuite) TestRoomsOrderedByID() {
	rooms := s.roster.Rooms()
	s.Require().Len(rooms, 2)
	s.Equal(1, rooms[0].ID)
	s.Equal(3, rooms[1].ID)
}

func (s *RosterSuite) TestCloneAndRestore() {
	s.Require().NoError(s.roster.Assign(designer("ana", model.ClassA), 1))
	snapshot := s.roster.Clone()

	s.Require().NoError(s.roster.Assign(designer("bia", model.ClassB), 1))
	_, _, err := s.roster.Seated("bia")
	s.Require().NoError(err)

	s.roster.Restore(snapshot)
	_, _, err = s.roster.Seated("bia")
	s.ErrorIs(err, model.ErrNotSeated)
	_, _, err = s.roster.Seated("ana")
	s.NoError(err)
}
