package model

// TeamLabel identifies the discipline a room belongs to
type TeamLabel string

// The two fixed disciplines
const (
	TeamHydro    TeamLabel = "Hidrossanitário"
	TeamElectric TeamLabel = "Elétrica"
)

// TeamLabels lists all known disciplines
var TeamLabels = []TeamLabel{TeamHydro, TeamElectric}

// ValidTeamLabel reports whether t is a known discipline
func ValidTeamLabel(t TeamLabel) bool {
	for _, l := range TeamLabels {
		if l == t {
			return true
		}
	}
	return false
}

// Seat is the atomic assignable slot inside a room. A free seat has a nil
// occupant. An occupant is unique across the whole roster.
type Seat struct {
	Occupant *Designer
}

// Free reports whether the seat has no occupant
func (s Seat) Free() bool {
	return s.Occupant == nil
}

// Room groups seats under one discipline. Seat lists only ever grow by
// appending; they never shrink.
type Room struct {
	ID    int
	Team  TeamLabel
	Seats []Seat
}

// FreeSeats counts unoccupied seats in the room
func (r *Room) FreeSeats() int {
	n := 0
	for _, s := range r.Seats {
		if s.Free() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the room, including seated designers
func (r *Room) Clone() *Room {
	c := &Room{
		ID:    r.ID,
		Team:  r.Team,
		Seats: make([]Seat, len(r.Seats)),
	}
	for i, s := range r.Seats {
		if s.Occupant != nil {
			d := *s.Occupant
			c.Seats[i].Occupant = &d
		}
	}
	return c
}
