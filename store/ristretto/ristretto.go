package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/multiread/store"
)

// Store wraps a Ristretto cache holding []byte values.
// Ristretto has no multi-get; reads of many keys use single-key fallback.
type Store struct {
	c *rc.Cache
}

var _ store.Store = (*Store)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto store: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// unexpected entry shape; drop it and report a miss
		s.c.Del(key)
		return nil, nil
	}
	return b, nil
}

// Write admits value with the given cost. Returns false when Ristretto drops
// the write. Writes are buffered; call Wait before reading in tests.
func (s *Store) Write(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) bool {
	if value == nil {
		value = []byte{}
	}
	if ttl <= 0 {
		return s.c.Set(key, value, cost)
	}
	return s.c.SetWithTTL(key, value, cost, ttl)
}

// Wait blocks until buffered writes are applied.
func (s *Store) Wait() { s.c.Wait() }

func (s *Store) Delete(_ context.Context, key string) error {
	s.c.Del(key)
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes Ristretto's counters (nil unless Config.Metrics is set).
func (s *Store) Metrics() *rc.Metrics { return s.c.Metrics }
