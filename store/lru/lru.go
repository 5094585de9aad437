package lru

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/unkn0wn-root/multiread/store"
)

// Store is a bounded in-process LRU. Single-key reads only.
type Store struct {
	c *lru.Cache[string, []byte]
}

var _ store.Store = (*Store)(nil)

type Config struct {
	Size int // max entries; required
}

func New(cfg Config) (*Store, error) {
	if cfg.Size <= 0 {
		return nil, errors.New("lru store: size must be > 0")
	}
	c, err := lru.New[string, []byte](cfg.Size)
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
	return v, nil
}

// Write adds or replaces key. Reports whether an older entry was evicted.
func (s *Store) Write(_ context.Context, key string, value []byte) bool {
	if value == nil {
		value = []byte{}
	}
	return s.c.Add(key, value)
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.c.Remove(key)
	return nil
}

func (s *Store) Len() int { return s.c.Len() }

func (s *Store) Purge() { s.c.Purge() }
