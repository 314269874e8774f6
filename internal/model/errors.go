package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrDuplicateRoom    = errors.New("room number already exists")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room has no free seat")
	ErrNotSeated        = errors.New("designer holds no seat")
	ErrAlreadySeated    = errors.New("designer already holds a seat")
	ErrDesignerNotFound = errors.New("designer not found")

	// Lifecycle errors
	ErrNoInactiveRecord = errors.New("no inactive record for designer")
	ErrAlreadyInactive  = errors.New("designer already has an inactive record")

	// Consolidation errors
	ErrNoEvaluations       = errors.New("no pending evaluations for supervisor")
	ErrNoInRoomEvaluations = errors.New("no evaluations from the supervisor's current room")

	// Criteria errors
	ErrUnknownCategory  = errors.New("unknown evaluation category")
	ErrUnknownCriterion = errors.New("no criterion for that score")

	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoAssignedRoom     = errors.New("no room assigned to coordinator")
)
