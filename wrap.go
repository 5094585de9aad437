package multiread

import (
	"context"

	"github.com/unkn0wn-root/multiread/store"
)

// Adapted is a store.BatchStore around any store.Store. Its ReadMulti goes
// through the Reader, so it never reports store.ErrNotSupported.
//
//	s := multiread.Wrap(memcacheStore)
//	vals, err := s.ReadMulti(ctx, []string{"a", "b"})
type Adapted struct {
	inner store.Store
	r     *Reader
}

var _ store.BatchStore = (*Adapted)(nil)

// Wrap adapts s. Wrapping an *Adapted returns a new adapter around its inner store.
func (r *Reader) Wrap(s store.Store) *Adapted {
	if a, ok := s.(*Adapted); ok {
		s = a.inner
	}
	return &Adapted{inner: s, r: r}
}

// Unwrap returns the adapted store.
func (a *Adapted) Unwrap() store.Store { return a.inner }

func (a *Adapted) Read(ctx context.Context, key string) ([]byte, error) {
	if a.inner == nil {
		return nil, ErrNilStore
	}
	return a.inner.Read(ctx, key)
}

func (a *Adapted) ReadMulti(ctx context.Context, keys []string) (map[string][]byte, error) {
	return a.r.ReadMulti(ctx, a.inner, keys)
}
