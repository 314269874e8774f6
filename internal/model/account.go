package model

import "time"

// Role is an account's permission level
type Role string

const (
	RoleDirector    Role = "Diretor"
	RoleManager     Role = "Gerente"
	RoleCoordinator Role = "Coordenador"
	RoleDesigner    Role = "Projetista"
)

// Account is a login account for the management panel.
// Stored separately from the roster: a designer may exist on the seat table
// without an account, and coordinators never occupy seats.
type Account struct {
	Username     string
	DisplayName  string
	Role         Role
	PasswordHash string // bcrypt hash
	Enabled      bool
	CreatedAt    time.Time
	LastLogin    time.Time
	// AssignedRoom is the room a coordinator runs; 0 means unassigned.
	// Only meaningful for RoleCoordinator.
	AssignedRoom int
}
