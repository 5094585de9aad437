package multiread

import (
	"context"
	"errors"
	"reflect"

	"github.com/unkn0wn-root/multiread/internal/util"
	"github.com/unkn0wn-root/multiread/store"
)

// Reader gives any store.Store a batch read. It is immutable after New and
// safe for concurrent use.
type Reader struct {
	caps     *Capabilities
	cov      *Coverage
	log      Logger
	hooks    Hooks
	keepDups bool
}

func newReader(opts Options) *Reader {
	r := &Reader{keepDups: opts.KeepDuplicates}
	r.log = coalesce[Logger](opts.Logger, NopLogger{})
	r.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	r.caps = coalesce(opts.Capabilities, DefaultCapabilities)
	r.cov = coalesce(opts.Coverage, DefaultCoverage)
	return r
}

// Capabilities returns the capability registry r consults.
func (r *Reader) Capabilities() *Capabilities { return r.caps }

// Coverage returns the set r records every ReadMulti target in.
func (r *Reader) Coverage() *Coverage { return r.cov }

// ReadMulti returns a value for every key, using the native batch read of s
// when it has one and it is not disabled, and single reads otherwise.
//
//   - type disabled in Capabilities: single reads, native ReadMulti never called.
//   - store.BatchStore: native ReadMulti, result returned as is. An error
//     matching store.ErrNotSupported switches to single reads; any other
//     error is returned unchanged.
//   - plain store.Store: single reads.
//
// Every call records s in Coverage, whatever path it takes.
func (r *Reader) ReadMulti(ctx context.Context, s store.Store, keys []string) (map[string][]byte, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	r.cov.MarkTested(s)

	if !r.keepDups {
		keys = util.Uniq(keys)
	}
	if len(keys) == 0 {
		return map[string][]byte{}, nil
	}

	t := reflect.TypeOf(s)
	if r.caps.IsDisabled(t) {
		return r.fallback(ctx, s, t, keys, ReasonDisabled)
	}

	bs, ok := store.Batched(s)
	if !ok {
		return r.fallback(ctx, s, t, keys, ReasonNoBatch)
	}

	res, err := bs.ReadMulti(ctx, keys)
	switch {
	case err == nil:
		r.hooks.NativeBatch(t.String(), len(keys))
		return res, nil
	case errors.Is(err, store.ErrNotSupported):
		return r.fallback(ctx, s, t, keys, ReasonUnsupported)
	default:
		r.hooks.BatchError(t.String(), len(keys), err)
		r.log.Warn("native batch read failed", Fields{"store": t.String(), "keys": len(keys), "err": err})
		return nil, err
	}
}

func (r *Reader) fallback(ctx context.Context, s store.Store, t reflect.Type, keys []string, reason string) (map[string][]byte, error) {
	r.hooks.Fallback(t.String(), len(keys), reason)
	r.log.Debug("batch read served by single reads", Fields{"store": t.String(), "keys": len(keys), "reason": reason})
	return r.readEach(ctx, s, t, keys)
}
