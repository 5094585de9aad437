package multiread

import (
	"reflect"
	"sort"
	"sync"

	"github.com/unkn0wn-root/multiread/store"
)

// Capabilities records, per concrete store type, whether native batch reads are
// disabled. A disabled BatchStore is treated as a plain Store: its ReadMulti is
// never called.
//
// Flags are meant to be set once during application setup and then only read.
// There is no way to re-enable a type other than Reset, which exists for tests.
type Capabilities struct {
	mu       sync.RWMutex
	disabled map[reflect.Type]struct{}
}

// DefaultCapabilities is the process-wide registry used by Readers that do not
// get their own via Options.
var DefaultCapabilities = NewCapabilities()

// NewCapabilities returns a registry with every type enabled.
func NewCapabilities() *Capabilities {
	return &Capabilities{disabled: make(map[reflect.Type]struct{})}
}

// Disable turns off native batch reads for every instance of t.
func (c *Capabilities) Disable(t reflect.Type) {
	if t == nil {
		return
	}
	c.mu.Lock()
	c.disabled[t] = struct{}{}
	c.mu.Unlock()
}

// DisableStore is Disable for the dynamic type of s.
func (c *Capabilities) DisableStore(s store.Store) {
	c.Disable(reflect.TypeOf(s))
}

// IsDisabled reports whether t was disabled. Unknown types are enabled.
func (c *Capabilities) IsDisabled(t reflect.Type) bool {
	if t == nil {
		return false
	}
	c.mu.RLock()
	_, ok := c.disabled[t]
	c.mu.RUnlock()
	return ok
}

// Disabled returns the names of all disabled types, sorted.
func (c *Capabilities) Disabled() []string {
	c.mu.RLock()
	out := make([]string, 0, len(c.disabled))
	for t := range c.disabled {
		out = append(out, t.String())
	}
	c.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Reset forgets every flag. Test teardown only.
func (c *Capabilities) Reset() {
	c.mu.Lock()
	c.disabled = make(map[reflect.Type]struct{})
	c.mu.Unlock()
}

// Disable turns off native batch reads for store type T in DefaultCapabilities.
//
//	multiread.Disable[*memcache.Store]()
func Disable[T store.Store]() {
	DefaultCapabilities.Disable(reflect.TypeOf((*T)(nil)).Elem())
}
