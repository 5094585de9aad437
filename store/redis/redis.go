package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/multiread/store"
)

var ErrNilClient = errors.New("redis store: nil client")

// Redis is a BatchStore backed by GET/MGET.
// On a cluster, MGET over keys living in different slots is refused by the
// server with CROSSSLOT; that refusal is reported as store.ErrNotSupported so
// the caller can fall back to single GETs.
type Redis struct {
	rdb         goredis.UniversalClient
	prefix      string
	closeClient bool
}

var _ store.BatchStore = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	Prefix      string // optional; joined as "<prefix>:<key>"
	CloseClient bool   // set true only if this store exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{rdb: cfg.Client, prefix: cfg.Prefix, closeClient: cfg.CloseClient}, nil
}

func (s *Redis) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

func (s *Redis) Read(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err == goredis.Nil {
		return nil, nil // miss
	}
	if err != nil {
		return nil, err // transport/server error
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// ReadMulti issues a single MGET. The result has one entry per requested key;
// missing keys map to nil.
func (s *Redis) ReadMulti(ctx context.Context, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	vals, err := s.rdb.MGet(ctx, full...).Result()
	if err != nil {
		if isCrossSlot(err) {
			return nil, fmt.Errorf("redis mget over %d keys: %w", len(keys), store.ErrNotSupported)
		}
		return nil, err
	}
	if len(vals) != len(keys) {
		return nil, fmt.Errorf("redis mget: got %d values for %d keys", len(vals), len(keys))
	}
	for i, v := range vals {
		switch vv := v.(type) {
		case nil:
			out[keys[i]] = nil
		case string:
			out[keys[i]] = []byte(vv)
		case []byte:
			out[keys[i]] = vv
		default:
			out[keys[i]] = []byte(fmt.Sprint(vv))
		}
	}
	return out, nil
}

// Write stores value under key. ttl<=0 means no expiry.
func (s *Redis) Write(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return s.rdb.Set(ctx, s.key(key), value, ttl).Err()
}

func (s *Redis) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.key(key)).Err()
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Redis) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

func isCrossSlot(err error) bool {
	return strings.HasPrefix(err.Error(), "CROSSSLOT")
}
