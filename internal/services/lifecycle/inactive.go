package lifecycle

import "github.com/quadro-app/quadro/internal/model"

// InactiveStore holds the preserved-score records of unseated designers.
// A handle appears in at most one record at a time.
type InactiveStore struct {
	records []model.InactiveRecord
}

// NewInactiveStore creates an empty store
func NewInactiveStore() *InactiveStore {
	return &InactiveStore{}
}

// LoadInactiveStore creates a store from persisted records
func LoadInactiveStore(records []model.InactiveRecord) *InactiveStore {
	s := NewInactiveStore()
	s.records = append(s.records, records...)
	return s
}

// Get returns the record for a handle, if any
func (s *InactiveStore) Get(h model.Handle) (model.InactiveRecord, bool) {
	for _, r := range s.records {
		if r.Handle == h {
			return r, true
		}
	}
	return model.InactiveRecord{}, false
}

// Records returns a copy of all records in insertion order
func (s *InactiveStore) Records() []model.InactiveRecord {
	out := make([]model.InactiveRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *InactiveStore) add(r model.InactiveRecord) {
	s.records = append(s.records, r)
}

func (s *InactiveStore) remove(h model.Handle) {
	for i, r := range s.records {
		if r.Handle == h {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of the store
func (s *InactiveStore) Clone() *InactiveStore {
	return LoadInactiveStore(s.records)
}

// Restore overwrites the store's contents with those of the snapshot
func (s *InactiveStore) Restore(snapshot *InactiveStore) {
	s.records = snapshot.Clone().records
}
