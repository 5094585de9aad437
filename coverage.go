package multiread

import (
	"reflect"
	"sort"
	"sync"

	"github.com/unkn0wn-root/multiread/store"
)

// Coverage is the set of store instances that have gone through a Reader at
// least once. It only grows during normal operation; test tooling compares it
// against the framework's Registry to make sure every configured store has
// been exercised by the batch/fallback logic.
type Coverage struct {
	mu    sync.RWMutex
	seen  map[any]struct{}
	other []reflect.Value // stores whose value cannot be a map key
	order []store.Store
}

// DefaultCoverage is the process-wide coverage set used by Readers that do not
// get their own via Options.
var DefaultCoverage = NewCoverage()

// NewCoverage returns an empty coverage set.
func NewCoverage() *Coverage {
	return &Coverage{seen: make(map[any]struct{})}
}

// MarkTested records s. Marking the same instance again is a no-op.
func (c *Coverage) MarkTested(s store.Store) {
	if s == nil {
		return
	}
	v := reflect.ValueOf(s)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.has(s, v) {
		return
	}
	if v.Comparable() {
		c.seen[s] = struct{}{}
	} else {
		c.other = append(c.other, v)
	}
	c.order = append(c.order, s)
}

// WasTested reports whether s was recorded by MarkTested.
func (c *Coverage) WasTested(s store.Store) bool {
	if s == nil {
		return false
	}
	v := reflect.ValueOf(s)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.has(s, v)
}

func (c *Coverage) has(s store.Store, v reflect.Value) bool {
	if v.Comparable() {
		_, ok := c.seen[s]
		return ok
	}
	for _, o := range c.other {
		if sameInstance(o, v) {
			return true
		}
	}
	return false
}

// AllTested returns a snapshot of every recorded store in first-marked order.
func (c *Coverage) AllTested() []store.Store {
	c.mu.RLock()
	out := make([]store.Store, len(c.order))
	copy(out, c.order)
	c.mu.RUnlock()
	return out
}

// Missing returns the names of registry stores that were never exercised,
// sorted. The version store is reported as VersionStoreName.
func (c *Coverage) Missing(reg Registry) []string {
	var missing []string
	if vs := reg.VersionStore(); vs != nil && !c.WasTested(vs) {
		missing = append(missing, VersionStoreName)
	}
	for name, s := range reg.Stores() {
		if s != nil && !c.WasTested(s) {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Verify returns a *CoverageError when any registry store was never exercised.
func (c *Coverage) Verify(reg Registry) error {
	if missing := c.Missing(reg); len(missing) > 0 {
		return &CoverageError{Missing: missing}
	}
	return nil
}

// Reset empties the set. Test teardown only.
func (c *Coverage) Reset() {
	c.mu.Lock()
	c.seen = make(map[any]struct{})
	c.other = nil
	c.order = nil
	c.mu.Unlock()
}

// sameInstance compares two non-hashable store values. Reference kinds
// (map, slice, func, chan, pointer) match only when they point at the same
// data; everything else is compared field by field.
func sameInstance(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return sameInstance(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !sameInstance(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !sameInstance(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	default:
		return a.Equal(b)
	}
}
