package history

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Simplici0/candle-pricer/internal/pricing"
)

const (
	// DefaultKey is the storage slot holding the saved calculations.
	DefaultKey = "candle_calc_history_v2"
	// Capacity is the number of calculations kept; older ones are dropped.
	Capacity = 10

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Storage is the durable key-value slot the history is persisted in.
type Storage interface {
	Get(key string) (value string, found bool, err error)
	Put(key, value string) error
	Delete(key string) error
}

// Record is one saved calculation.
type Record struct {
	Timestamp string         `json:"ts"`
	Inputs    pricing.Input  `json:"inputs"`
	Outputs   pricing.Output `json:"outputs"`
	// Image is an embedded image reference, usually a data URL. Nil when absent.
	Image *string `json:"image"`
}

// NewRecord stamps a calculation with now in UTC.
func NewRecord(in pricing.Input, out pricing.Output, image string, now time.Time) Record {
	rec := Record{
		Timestamp: now.UTC().Format(timestampLayout),
		Inputs:    in,
		Outputs:   out,
	}
	if image != "" {
		rec.Image = &image
	}
	return rec
}

// Time parses the record timestamp. The bool is false for unparseable values.
func (r Record) Time() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Store keeps the most recent calculations, newest first, mirrored to Storage.
type Store struct {
	mu      sync.Mutex
	storage Storage
	key     string
	logger  zerolog.Logger
	records []Record
}

// NewStore returns a Store on storage under key and loads what is already saved.
// An empty key selects DefaultKey.
func NewStore(storage Storage, key string, logger zerolog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{storage: storage, key: key, logger: logger}
	s.Load()
	return s
}

// Load re-reads the saved calculations. A missing, unreadable or malformed
// value yields an empty history; malformed entries inside an otherwise valid
// list are skipped.
func (s *Store) Load() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.read()
	return clone(s.records)
}

func (s *Store) read() []Record {
	raw, found, err := s.storage.Get(s.key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("history unreadable, starting empty")
		return nil
	}
	if !found {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("history malformed, starting empty")
		return nil
	}

	records := make([]Record, 0, min(len(elems), Capacity))
	for i, elem := range elems {
		if len(records) == Capacity {
			break
		}
		var rec Record
		if err := json.Unmarshal(elem, &rec); err != nil {
			s.logger.Warn().Err(err).Str("key", s.key).Int("index", i).Msg("skipping malformed history entry")
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Records returns a copy of the in-memory history, newest first.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.records)
}

// Append puts rec at the front, drops anything past Capacity and persists the
// whole history before returning. On a write failure the history is unchanged.
func (s *Store) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := min(len(s.records)+1, Capacity)
	next := make([]Record, 0, n)
	next = append(next, rec)
	next = append(next, s.records[:n-1]...)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.storage.Put(s.key, string(data)); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}

	s.records = next
	s.logger.Debug().Str("key", s.key).Int("records", len(next)).Msg("history saved")
	return nil
}

// Clear empties the history and removes the durable entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(s.key); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	s.records = nil
	s.logger.Debug().Str("key", s.key).Msg("history cleared")
	return nil
}

func clone(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
