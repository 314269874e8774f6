package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/storage"
)

// Store is a Redis-backed implementation of the storage interface. Each
// collection is one JSON document; the audit log is a Redis list, newest
// first.
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis store
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

func (s *Store) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// loadJSON unmarshals the document at key into out; a missing key leaves
// out untouched.
func (s *Store) loadJSON(ctx context.Context, key string, out any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) SaveRooms(ctx context.Context, rooms []model.Room) error {
	return s.saveJSON(ctx, roomsKey(), rooms)
}

func (s *Store) LoadRooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := s.loadJSON(ctx, roomsKey(), &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *Store) SaveEvents(ctx context.Context, events []model.EvaluationEvent) error {
	return s.saveJSON(ctx, eventsKey(), events)
}

func (s *Store) LoadEvents(ctx context.Context) ([]model.EvaluationEvent, error) {
	var events []model.EvaluationEvent
	if err := s.loadJSON(ctx, eventsKey(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) SaveTotals(ctx context.Context, totals map[model.Handle]float64) error {
	return s.saveJSON(ctx, totalsKey(), totals)
}

func (s *Store) LoadTotals(ctx context.Context) (map[model.Handle]float64, error) {
	totals := make(map[model.Handle]float64)
	if err := s.loadJSON(ctx, totalsKey(), &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

func (s *Store) SaveInactive(ctx context.Context, records []model.InactiveRecord) error {
	return s.saveJSON(ctx, inactiveKey(), records)
}

func (s *Store) LoadInactive(ctx context.Context) ([]model.InactiveRecord, error) {
	var records []model.InactiveRecord
	if err := s.loadJSON(ctx, inactiveKey(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	return s.saveJSON(ctx, accountsKey(), accounts)
}

func (s *Store) LoadAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := s.loadJSON(ctx, accountsKey(), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Store) AppendAudit(ctx context.Context, entry model.AuditEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}
	if err := s.client.LPush(ctx, auditKey(), data).Err(); err != nil {
		return err
	}
	if s.cfg.AuditMaxEntries > 0 {
		return s.client.LTrim(ctx, auditKey(), 0, int64(s.cfg.AuditMaxEntries-1)).Err()
	}
	return nil
}

func (s *Store) LoadAudit(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	raw, err := s.client.LRange(ctx, auditKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.AuditEntry, 0, len(raw))
	for _, item := range raw {
		var entry model.AuditEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("unmarshal audit entry: %w", err)
		}
		out = append(out, entry)
	}
	return out, nil
}
