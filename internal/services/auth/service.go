// Package auth manages login accounts and roles for the management panel.
// Accounts are held in memory and flushed through storage like the other
// collections; passwords are stored as bcrypt hashes.
package auth

import (
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/crypto/bcrypt"

	"github.com/quadro-app/quadro/internal/dependencies/clock"
	"github.com/quadro-app/quadro/internal/model"
)

// Predefined bootstrap accounts, created only when the account set is empty
var bootstrapAccounts = []struct {
	username string
	name     string
	role     model.Role
	password string
}{
	{"diretor1", "Diretor 1", model.RoleDirector, "diretor1!"},
	{"diretor2", "Diretor 2", model.RoleDirector, "diretor2!"},
	{"diretor3", "Diretor 3", model.RoleDirector, "diretor3!"},
	{"gerente1", "Gerente 1", model.RoleManager, "gerente1!"},
	{"gerente2", "Gerente 2", model.RoleManager, "gerente2!"},
}

// Service manages accounts
type Service struct {
	accounts map[string]*model.Account
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates an empty account service
func New(clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		accounts: make(map[string]*model.Account),
		clock:    clk,
		logger:   logger,
	}
}

// Load creates a service from persisted accounts
func Load(accounts []model.Account, clk clock.Clock, logger *slog.Logger) *Service {
	s := New(clk, logger)
	for i := range accounts {
		a := accounts[i]
		s.accounts[a.Username] = &a
	}
	return s
}

// Bootstrap creates the predefined director and manager accounts. It does
// nothing when any account already exists.
func (s *Service) Bootstrap() error {
	if len(s.accounts) > 0 {
		return nil
	}
	for _, b := range bootstrapAccounts {
		if _, err := s.Register(b.username, b.name, b.password, b.role); err != nil {
			return fmt.Errorf("bootstrap accounts: %w", err)
		}
	}
	s.logger.Info("bootstrap accounts created", slog.Int("count", len(bootstrapAccounts)))
	return nil
}

// Register creates a new enabled account
func (s *Service) Register(username, displayName, password string, role model.Role) (model.Account, error) {
	if username == "" || displayName == "" || password == "" {
		return model.Account{}, fmt.Errorf("register: username, name and password are required")
	}
	if _, exists := s.accounts[username]; exists {
		return model.Account{}, model.ErrAccountExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Account{}, fmt.Errorf("register %s: %w", username, err)
	}
	a := &model.Account{
		Username:     username,
		DisplayName:  displayName,
		Role:         role,
		PasswordHash: string(hash),
		Enabled:      true,
		CreatedAt:    s.clock.Now(),
	}
	s.accounts[username] = a
	return *a, nil
}

// Authenticate verifies credentials and records the login time
func (s *Service) Authenticate(username, password string) (model.Account, error) {
	a, ok := s.accounts[username]
	if !ok {
		return model.Account{}, model.ErrInvalidCredentials
	}
	if !a.Enabled {
		return model.Account{}, model.ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return model.Account{}, model.ErrInvalidCredentials
	}
	a.LastLogin = s.clock.Now()
	return *a, nil
}

// Get returns an account by username
func (s *Service) Get(username string) (model.Account, error) {
	a, ok := s.accounts[username]
	if !ok {
		return model.Account{}, model.ErrAccountNotFound
	}
	return *a, nil
}

// SetEnabled enables or disables an account. A director cannot disable
// their own account.
func (s *Service) SetEnabled(executor, username string, enabled bool) error {
	a, ok := s.accounts[username]
	if !ok {
		return model.ErrAccountNotFound
	}
	if !enabled && executor == username {
		if exec, ok := s.accounts[executor]; ok && exec.Role == model.RoleDirector {
			return fmt.Errorf("disable %s: a director cannot disable their own account", username)
		}
	}
	a.Enabled = enabled
	return nil
}

// ResetPassword replaces an account's password
func (s *Service) ResetPassword(username, newPassword string) error {
	a, ok := s.accounts[username]
	if !ok {
		return model.ErrAccountNotFound
	}
	if newPassword == "" {
		return fmt.Errorf("reset password for %s: new password is required", username)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("reset password for %s: %w", username, err)
	}
	a.PasswordHash = string(hash)
	return nil
}

// Promote raises an account to coordinator
func (s *Service) Promote(username string) error {
	a, ok := s.accounts[username]
	if !ok {
		return model.ErrAccountNotFound
	}
	a.Role = model.RoleCoordinator
	return nil
}

// AssignRoom assigns the room a coordinator runs
func (s *Service) AssignRoom(username string, roomID int) error {
	a, ok := s.accounts[username]
	if !ok {
		return model.ErrAccountNotFound
	}
	a.AssignedRoom = roomID
	return nil
}

// CoordinatorForRoom finds the coordinator assigned to a room
func (s *Service) CoordinatorForRoom(roomID int) (model.Account, error) {
	for _, a := range s.accounts {
		if a.Role == model.RoleCoordinator && a.AssignedRoom == roomID {
			return *a, nil
		}
	}
	return model.Account{}, model.ErrAccountNotFound
}

// AssignedRoom returns the room assigned to a coordinator account
func (s *Service) AssignedRoom(username string) (int, error) {
	a, ok := s.accounts[username]
	if !ok {
		return 0, model.ErrAccountNotFound
	}
	if a.AssignedRoom == 0 {
		return 0, model.ErrNoAssignedRoom
	}
	return a.AssignedRoom, nil
}

// Accounts returns a copy of all accounts ordered by username, for
// persistence and listings.
func (s *Service) Accounts() []model.Account {
	out := make([]model.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}
