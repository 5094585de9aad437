package multiread

import (
	"context"
	"fmt"
	"sort"

	"github.com/unkn0wn-root/multiread/codec"
	"github.com/unkn0wn-root/multiread/store"
)

// Decode turns a ReadMulti result into typed values. Nil entries are misses
// and are returned in missing (sorted). The first payload that fails to
// decode aborts with an error naming its key.
func Decode[V any](res map[string][]byte, dec codec.Decoder[V]) (values map[string]V, missing []string, err error) {
	values = make(map[string]V, len(res))
	for k, raw := range res {
		if raw == nil {
			missing = append(missing, k)
			continue
		}
		v, err := dec.Decode(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("multiread: decode %q: %w", k, err)
		}
		values[k] = v
	}
	sort.Strings(missing)
	return values, missing, nil
}

// ReadMultiAs is ReadMulti followed by Decode.
func ReadMultiAs[V any](ctx context.Context, r *Reader, s store.Store, keys []string, dec codec.Decoder[V]) (map[string]V, []string, error) {
	res, err := r.ReadMulti(ctx, s, keys)
	if err != nil {
		return nil, nil, err
	}
	return Decode(res, dec)
}
