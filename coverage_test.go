package multiread

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/multiread/store"
	bcstore "github.com/unkn0wn-root/multiread/store/bigcache"
	lrustore "github.com/unkn0wn-root/multiread/store/lru"
	redisstore "github.com/unkn0wn-root/multiread/store/redis"
	rstore "github.com/unkn0wn-root/multiread/store/ristretto"
)

func TestMarkTestedIdempotent(t *testing.T) {
	c := NewCoverage()
	s := &multiReadNotDefined{}

	if c.WasTested(s) {
		t.Fatalf("fresh coverage should be empty")
	}
	for i := 0; i < 3; i++ {
		c.MarkTested(s)
		if !c.WasTested(s) {
			t.Fatalf("WasTested false after MarkTested #%d", i+1)
		}
	}
	if n := len(c.AllTested()); n != 1 {
		t.Fatalf("expected a single entry, got %d", n)
	}
}

func TestCoverageIsPerInstance(t *testing.T) {
	c := NewCoverage()
	a, b := &multiReadNotDefined{}, &multiReadNotDefined{}
	c.MarkTested(a)
	if c.WasTested(b) {
		t.Fatalf("another instance of the same type must not count as tested")
	}
	c.MarkTested(b)
	got := c.AllTested()
	if len(got) != 2 || got[0] != store.Store(a) || got[1] != store.Store(b) {
		t.Fatalf("AllTested should keep first-marked order, got %v", got)
	}
	c.MarkTested(nil)
	if c.WasTested(nil) || len(c.AllTested()) != 2 {
		t.Fatalf("nil store must be ignored")
	}
}

// funcStore is not comparable; coverage matches it by function pointer.
type funcStore func(ctx context.Context, key string) ([]byte, error)

func (f funcStore) Read(ctx context.Context, key string) ([]byte, error) { return f(ctx, key) }

// sliceStore is a non-comparable struct.
type sliceStore struct{ vals []string }

func (sliceStore) Read(context.Context, string) ([]byte, error) { return nil, nil }

// valueWrapper is a comparable struct type whose dynamic value may not be.
type valueWrapper struct{ inner store.Store }

func (w valueWrapper) Read(ctx context.Context, key string) ([]byte, error) {
	return w.inner.Read(ctx, key)
}

func TestCoverageNonComparableStores(t *testing.T) {
	c := NewCoverage()
	f := funcStore(func(context.Context, string) ([]byte, error) { return []byte("x"), nil })
	c.MarkTested(f)
	if !c.WasTested(f) {
		t.Fatalf("func store not recorded")
	}

	a := sliceStore{vals: []string{"a"}}
	c.MarkTested(a)
	if !c.WasTested(a) {
		t.Fatalf("slice store not recorded")
	}
	if c.WasTested(sliceStore{vals: []string{"b"}}) {
		t.Fatalf("a different slice store instance must not count as tested")
	}
	c.MarkTested(a)
	if n := len(c.AllTested()); n != 2 {
		t.Fatalf("expected 2 entries, got %d", n)
	}

	r := newTestReader(t, nil)
	if _, err := r.ReadMulti(context.Background(), f, []string{"k"}); err != nil {
		t.Fatalf("ReadMulti on func store: %v", err)
	}
}

func TestCoverageValueStructWrappingFuncStore(t *testing.T) {
	ctx := context.Background()
	r := newTestReader(t, nil)

	w := valueWrapper{inner: funcStore(func(context.Context, string) ([]byte, error) { return []byte("w"), nil })}
	got, err := r.ReadMulti(ctx, w, []string{"k"})
	if err != nil {
		t.Fatalf("ReadMulti: %v", err)
	}
	if string(got["k"]) != "w" {
		t.Fatalf("unexpected result %q", got)
	}
	if !r.Coverage().WasTested(w) {
		t.Fatalf("wrapper store not recorded")
	}

	other := valueWrapper{inner: funcStore(func(context.Context, string) ([]byte, error) { return nil, nil })}
	if r.Coverage().WasTested(other) {
		t.Fatalf("wrapper around a different func must not count as tested")
	}

	// comparable dynamic values still go through the map
	p := valueWrapper{inner: &multiReadNotDefined{}}
	r.Coverage().MarkTested(p)
	if !r.Coverage().WasTested(valueWrapper{inner: p.inner}) {
		t.Fatalf("equal comparable wrapper should count as tested")
	}
}

func TestCoverageReset(t *testing.T) {
	c := NewCoverage()
	s := &multiReadNotDefined{}
	c.MarkTested(s)
	c.Reset()
	if c.WasTested(s) || len(c.AllTested()) != 0 {
		t.Fatalf("Reset should empty the set")
	}
}

func TestVerifyReportsMissingStores(t *testing.T) {
	ctx := context.Background()
	r := newTestReader(t, nil)

	version := &multiReadSupported{}
	users := &multiReadNotDefined{}
	orders := &multiReadNotImplemented{}
	reg := StaticRegistry{
		Version: version,
		Named:   map[string]store.Store{"users": users, "orders": orders},
	}

	err := r.Coverage().Verify(reg)
	var ce *CoverageError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CoverageError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrNotCovered) {
		t.Fatalf("CoverageError should unwrap to ErrNotCovered")
	}
	want := []string{"orders", "users", VersionStoreName}
	if !reflect.DeepEqual(ce.Missing, want) {
		t.Fatalf("missing: got %v want %v", ce.Missing, want)
	}

	if _, err := r.ReadMulti(ctx, users, []string{"k"}); err != nil {
		t.Fatalf("ReadMulti: %v", err)
	}
	if got := r.Coverage().Missing(reg); !reflect.DeepEqual(got, []string{"orders", VersionStoreName}) {
		t.Fatalf("after users: missing=%v", got)
	}

	for _, s := range []store.Store{version, orders} {
		if _, err := r.ReadMulti(ctx, s, []string{"k"}); err != nil {
			t.Fatalf("ReadMulti: %v", err)
		}
	}
	if err := r.Coverage().Verify(reg); err != nil {
		t.Fatalf("expected full coverage, got %v", err)
	}
}

// Drives every bundled backend through a Reader, the way a framework test
// suite would, then asserts the registry is fully covered.
func TestAllBackendsCovered(t *testing.T) {
	ctx := context.Background()
	hooks := &recHooks{}
	r := newTestReader(t, func(o *Options) { o.Hooks = hooks })

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	version, err := redisstore.New(redisstore.Config{Client: rdb, Prefix: "version", CloseClient: true})
	if err != nil {
		t.Fatalf("redis store: %v", err)
	}
	t.Cleanup(func() { _ = version.Close(ctx) })

	lru, err := lrustore.New(lrustore.Config{Size: 16})
	if err != nil {
		t.Fatalf("lru store: %v", err)
	}
	bc, err := bcstore.New(bcstore.Config{LifeWindow: time.Minute, Shards: 1})
	if err != nil {
		t.Fatalf("bigcache store: %v", err)
	}
	t.Cleanup(func() { _ = bc.Close(ctx) })
	rs, err := rstore.New(rstore.Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64})
	if err != nil {
		t.Fatalf("ristretto store: %v", err)
	}
	t.Cleanup(func() { _ = rs.Close(ctx) })

	if err := version.Write(ctx, "a", []byte("va"), 0); err != nil {
		t.Fatalf("redis write: %v", err)
	}
	lru.Write(ctx, "a", []byte("la"))
	if err := bc.Write(ctx, "a", []byte("ba")); err != nil {
		t.Fatalf("bigcache write: %v", err)
	}
	rs.Write(ctx, "a", []byte("ra"), 1, 0)
	rs.Wait()

	reg := StaticRegistry{
		Version: version,
		Named: map[string]store.Store{
			"lru":       lru,
			"bigcache":  bc,
			"ristretto": rs,
		},
	}

	for name, s := range map[string]store.Store{"version": version, "lru": lru, "bigcache": bc, "ristretto": rs} {
		got, err := r.ReadMulti(ctx, s, []string{"a", "nope"})
		if err != nil {
			t.Fatalf("%s: ReadMulti: %v", name, err)
		}
		if len(got) != 2 || got["a"] == nil || got["nope"] != nil {
			t.Fatalf("%s: unexpected result %q", name, got)
		}
	}

	if err := r.Coverage().Verify(reg); err != nil {
		t.Fatalf("coverage: %v", err)
	}
	if hooks.native != 1 {
		t.Fatalf("only redis has a native batch read, native=%d", hooks.native)
	}
	if len(hooks.reasons) != 3 {
		t.Fatalf("expected 3 fallbacks, got %v", hooks.reasons)
	}
}
