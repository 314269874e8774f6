package model

import "time"

// Handle uniquely identifies a designer across the system
type Handle string

// ClassTier is the coarse performance band assigned to a designer,
// independent of point total. Ordered S > A > B > C > D.
type ClassTier string

// Class tiers from strongest to weakest
const (
	ClassS ClassTier = "S"
	ClassA ClassTier = "A"
	ClassB ClassTier = "B"
	ClassC ClassTier = "C"
	ClassD ClassTier = "D"
)

// ClassTiers lists all tiers in ranking display order
var ClassTiers = []ClassTier{ClassS, ClassA, ClassB, ClassC, ClassD}

// ValidClassTier reports whether t is one of the fixed tiers
func ValidClassTier(t ClassTier) bool {
	for _, c := range ClassTiers {
		if c == t {
			return true
		}
	}
	return false
}

// DesignerStatus is the lifecycle state of a designer
type DesignerStatus string

const (
	// StatusActive means the designer holds a seat and is evaluated normally
	StatusActive DesignerStatus = "Ativo"
	// StatusFree means the designer was inactivated; their seat is released
	// and their score is preserved in an InactiveRecord
	StatusFree DesignerStatus = "Livre"
)

// Designer represents an evaluated individual occupying at most one seat
type Designer struct {
	Handle      Handle
	DisplayName string
	Class       ClassTier
	Status      DesignerStatus
}

// InactiveRecord preserves a designer's score while they hold no seat.
// A handle appears in at most one record at a time, and never while seated.
type InactiveRecord struct {
	Handle         Handle
	PreservedTotal float64
	RemovedAt      time.Time
}
