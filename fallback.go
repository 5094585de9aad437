package multiread

import (
	"context"
	"reflect"

	"github.com/unkn0wn-root/multiread/store"
)

// ReadEach reads keys one by one with s.Read. The first failing read aborts
// the batch and its error is returned unchanged; there are no partial results.
// Misses come back as nil values, so the map has an entry for every key.
//
// ReadEach does not touch Capabilities or Coverage.
func (r *Reader) ReadEach(ctx context.Context, s store.Store, keys []string) (map[string][]byte, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	return r.readEach(ctx, s, reflect.TypeOf(s), keys)
}

func (r *Reader) readEach(ctx context.Context, s store.Store, t reflect.Type, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		v, err := s.Read(ctx, k)
		if err != nil {
			r.hooks.ReadError(t.String(), k, err)
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
