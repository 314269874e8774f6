// Package roster owns the seat table: rooms with ordered seats and the
// designer-to-seat assignment. It enforces one seat per designer and fixed
// room capacity; seat lists grow only by appending and never shrink.
package roster

import (
	"fmt"
	"sort"

	"github.com/quadro-app/quadro/internal/model"
)

// Engine is the seat table for all rooms
type Engine struct {
	rooms []*model.Room
}

// New creates an empty roster
func New() *Engine {
	return &Engine{}
}

// Load creates a roster from persisted rooms
func Load(rooms []model.Room) *Engine {
	e := New()
	for i := range rooms {
		e.rooms = append(e.rooms, rooms[i].Clone())
	}
	return e
}

// SeatedDesigner pairs a designer with the room they occupy
type SeatedDesigner struct {
	Designer model.Designer
	RoomID   int
	Team     model.TeamLabel
}

// CreateRoom appends a new room with seatCount empty seats
func (e *Engine) CreateRoom(id int, team model.TeamLabel, seatCount int) error {
	if e.findRoom(id) != nil {
		return model.ErrDuplicateRoom
	}
	if !model.ValidTeamLabel(team) {
		return fmt.Errorf("create room %d: unknown team %q", id, team)
	}
	if seatCount < 1 {
		return fmt.Errorf("create room %d: seat count must be positive", id)
	}
	e.rooms = append(e.rooms, &model.Room{
		ID:    id,
		Team:  team,
		Seats: make([]model.Seat, seatCount),
	})
	return e.validate()
}

// AddSeats grows a room by appending empty seats
func (e *Engine) AddSeats(id int, count int) error {
	room := e.findRoom(id)
	if room == nil {
		return model.ErrRoomNotFound
	}
	if count < 1 {
		return fmt.Errorf("add seats to room %d: count must be positive", id)
	}
	room.Seats = append(room.Seats, make([]model.Seat, count)...)
	return e.validate()
}

// Assign seats a designer in the first free seat of the room, left to right.
// First-fit only; there is no balancing across seats.
func (e *Engine) Assign(d model.Designer, roomID int) error {
	room := e.findRoom(roomID)
	if room == nil {
		return model.ErrRoomNotFound
	}
	if _, _, err := e.Seated(d.Handle); err == nil {
		return model.ErrAlreadySeated
	}
	for i := range room.Seats {
		if room.Seats[i].Free() {
			occupant := d
			occupant.Status = model.StatusActive
			room.Seats[i].Occupant = &occupant
			return e.validate()
		}
	}
	return model.ErrRoomFull
}

// Vacate empties the seat held by the designer and returns the removed
// occupant.
func (e *Engine) Vacate(h model.Handle) (model.Designer, error) {
	for _, room := range e.rooms {
		for i := range room.Seats {
			if o := room.Seats[i].Occupant; o != nil && o.Handle == h {
				removed := *o
				room.Seats[i].Occupant = nil
				return removed, e.validate()
			}
		}
	}
	return model.Designer{}, model.ErrNotSeated
}

// Seated returns the designer's current record and room
func (e *Engine) Seated(h model.Handle) (model.Designer, int, error) {
	for _, room := range e.rooms {
		for i := range room.Seats {
			if o := room.Seats[i].Occupant; o != nil && o.Handle == h {
				return *o, room.ID, nil
			}
		}
	}
	return model.Designer{}, 0, model.ErrNotSeated
}

// Room returns a copy of the room with the given id
func (e *Engine) Room(id int) (model.Room, error) {
	room := e.findRoom(id)
	if room == nil {
		return model.Room{}, model.ErrRoomNotFound
	}
	return *room.Clone(), nil
}

// Rooms returns copies of all rooms ordered by id
func (e *Engine) Rooms() []model.Room {
	out := make([]model.Room, 0, len(e.rooms))
	for _, r := range e.rooms {
		out = append(out, *r.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ActiveInRoom returns the handles of active designers seated in the room,
// in seat order.
func (e *Engine) ActiveInRoom(roomID int) []model.Handle {
	room := e.findRoom(roomID)
	if room == nil {
		return nil
	}
	var out []model.Handle
	for _, s := range room.Seats {
		if s.Occupant != nil && s.Occupant.Status == model.StatusActive {
			out = append(out, s.Occupant.Handle)
		}
	}
	return out
}

// SeatedDesigners returns every occupied seat across the roster, in room
// then seat order.
func (e *Engine) SeatedDesigners() []SeatedDesigner {
	var out []SeatedDesigner
	for _, room := range e.rooms {
		for _, s := range room.Seats {
			if s.Occupant != nil {
				out = append(out, SeatedDesigner{
					Designer: *s.Occupant,
					RoomID:   room.ID,
					Team:     room.Team,
				})
			}
		}
	}
	return out
}

// Clone returns a deep copy of the roster
func (e *Engine) Clone() *Engine {
	c := New()
	for _, r := range e.rooms {
		c.rooms = append(c.rooms, r.Clone())
	}
	return c
}

// Restore overwrites the roster's contents with those of the snapshot
func (e *Engine) Restore(snapshot *Engine) {
	e.rooms = snapshot.Clone().rooms
}

func (e *Engine) findRoom(id int) *model.Room {
	for _, r := range e.rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// validate checks the roster invariants after a mutation: no designer in
// two seats and no duplicate room ids.
func (e *Engine) validate() error {
	roomIDs := make(map[int]bool, len(e.rooms))
	seated := make(map[model.Handle]bool)
	for _, r := range e.rooms {
		if roomIDs[r.ID] {
			return fmt.Errorf("roster invariant broken: duplicate room %d", r.ID)
		}
		roomIDs[r.ID] = true
		for _, s := range r.Seats {
			if s.Occupant == nil {
				continue
			}
			if seated[s.Occupant.Handle] {
				return fmt.Errorf("roster invariant broken: %s holds two seats", s.Occupant.Handle)
			}
			seated[s.Occupant.Handle] = true
		}
	}
	return nil
}
