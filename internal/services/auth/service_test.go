package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quadro-app/quadro/internal/dependencies/mocks"
	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	s.service = New(s.clock, testutil.NopLogger())
}

func (s *ServiceSuite) TestRegisterAndAuthenticate() {
	_, err := s.service.Register("ana", "Ana Silva", "segredo!", model.RoleDesigner)
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	a, err := s.service.Authenticate("ana", "segredo!")
	s.Require().NoError(err)
	s.Equal("Ana Silva", a.DisplayName)
	s.Equal(model.RoleDesigner, a.Role)
	s.Equal(s.clock.Now(), a.LastLogin)
}

func (s *ServiceSuite) TestRegisterDuplicateFails() {
	_, err := s.service.Register("ana", "Ana", "x1", model.RoleDesigner)
	s.Require().NoError(err)

	_, err = s.service.Register("ana", "Outra Ana", "x2", model.RoleDesigner)
	s.ErrorIs(err, model.ErrAccountExists)
}

func (s *ServiceSuite) TestAuthenticateWrongPassword() {
	_, err := s.service.Register("ana", "Ana", "segredo!", model.RoleDesigner)
	s.Require().NoError(err)

	_, err = s.service.Authenticate("ana", "errado")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestAuthenticateUnknownUser() {
	_, err := s.service.Authenticate("nobody", "x")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestDisabledAccountCannotLogin() {
	_, err := s.service.Register("ana", "Ana", "segredo!", model.RoleDesigner)
	s.Require().NoError(err)
	s.Require().NoError(s.service.SetEnabled("diretor1", "ana", false))

	_, err = s.service.Authenticate("ana", "segredo!")
	s.ErrorIs(err, model.ErrAccountDisabled)
}

func (s *ServiceSuite) TestDirectorCannotDisableThemselves() {
	s.Require().NoError(s.service.Bootstrap())

	err := s.service.SetEnabled("diretor1", "diretor1", false)
	s.Error(err)

	a, err := s.service.Get("diretor1")
	s.Require().NoError(err)
	s.True(a.Enabled)
}

func (s *ServiceSuite) TestBootstrapCreatesPredefinedAccounts() {
	s.Require().NoError(s.service.Bootstrap())

	s.Len(s.service.Accounts(), 5)
	_, err := s.service.Authenticate("gerente1", "gerente1!")
	s.NoError(err)
}

func (s *ServiceSuite) TestBootstrapIsNoopWhenAccountsExist() {
	_, err := s.service.Register("ana", "Ana", "x", model.RoleDesigner)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Bootstrap())
	s.Len(s.service.Accounts(), 1)
}

func (s *ServiceSuite) TestResetPassword() {
	_, err := s.service.Register("ana", "Ana", "velha", model.RoleDesigner)
	s.Require().NoError(err)
	s.Require().NoError(s.service.ResetPassword("ana", "nova"))

	_, err = s.service.Authenticate("ana", "velha")
	s.ErrorIs(err, model.ErrInvalidCredentials)
	_, err = s.service.Authenticate("ana", "nova")
	s.NoError(err)
}

func (s *ServiceSuite) TestPromoteAndAssignRoom() {
	_, err := s.service.Register("carla", "Carla", "x", model.RoleDesigner)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Promote("carla"))
	s.Require().NoError(s.service.AssignRoom("carla", 3))

	a, err := s.service.Get("carla")
	s.Require().NoError(err)
	s.Equal(model.RoleCoordinator, a.Role)
	s.Equal(3, a.AssignedRoom)

	roomID, err := s.service.AssignedRoom("carla")
	s.Require().NoError(err)
	s.Equal(3, roomID)

	coord, err := s.service.CoordinatorForRoom(3)
	s.Require().NoError(err)
	s.Equal("carla", coord.Username)
}

func (s *ServiceSuite) TestAssignedRoomUnassigned() {
	_, err := s.service.Register("carla", "Carla", "x", model.RoleCoordinator)
	s.Require().NoError(err)

	_, err = s.service.AssignedRoom("carla")
	s.ErrorIs(err, model.ErrNoAssignedRoom)
}
