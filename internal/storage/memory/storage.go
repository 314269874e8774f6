package memory

import (
	"context"
	"sync"

	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/storage"
)

// Store is an in-memory implementation of the storage interface
type Store struct {
	mu sync.RWMutex

	rooms    []model.Room
	events   []model.EvaluationEvent
	totals   map[model.Handle]float64
	inactive []model.InactiveRecord
	accounts []model.Account
	audit    []model.AuditEntry
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		totals: make(map[model.Handle]float64),
	}
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

func (s *Store) SaveRooms(_ context.Context, rooms []model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = make([]model.Room, 0, len(rooms))
	for i := range rooms {
		s.rooms = append(s.rooms, *rooms[i].Clone())
	}
	return nil
}

func (s *Store) LoadRooms(_ context.Context) ([]model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Room, 0, len(s.rooms))
	for i := range s.rooms {
		out = append(out, *s.rooms[i].Clone())
	}
	return out, nil
}

func (s *Store) SaveEvents(_ context.Context, events []model.EvaluationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make([]model.EvaluationEvent, 0, len(events))
	for _, e := range events {
		s.events = append(s.events, e.Clone())
	}
	return nil
}

func (s *Store) LoadEvents(_ context.Context) ([]model.EvaluationEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.EvaluationEvent, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (s *Store) SaveTotals(_ context.Context, totals map[model.Handle]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals = make(map[model.Handle]float64, len(totals))
	for h, t := range totals {
		s.totals[h] = t
	}
	return nil
}

func (s *Store) LoadTotals(_ context.Context) (map[model.Handle]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[model.Handle]float64, len(s.totals))
	for h, t := range s.totals {
		out[h] = t
	}
	return out, nil
}

func (s *Store) SaveInactive(_ context.Context, records []model.InactiveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inactive = append([]model.InactiveRecord(nil), records...)
	return nil
}

func (s *Store) LoadInactive(_ context.Context) ([]model.InactiveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.InactiveRecord(nil), s.inactive...), nil
}

func (s *Store) SaveAccounts(_ context.Context, accounts []model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append([]model.Account(nil), accounts...)
	return nil
}

func (s *Store) LoadAccounts(_ context.Context) ([]model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Account(nil), s.accounts...), nil
}

func (s *Store) AppendAudit(_ context.Context, entry model.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append([]model.AuditEntry{entry}, s.audit...)
	return nil
}

func (s *Store) LoadAudit(_ context.Context, limit int) ([]model.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.audit)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]model.AuditEntry(nil), s.audit[:n]...), nil
}

func (s *Store) Close() error {
	return nil
}
