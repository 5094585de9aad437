package multiread

import "github.com/unkn0wn-root/multiread/store"

// VersionStoreName is how the version store shows up in coverage reports.
const VersionStoreName = "version_store"

// Registry is the cache framework's view of its configured stores: one
// distinguished version store plus any number of named record stores.
// Only coverage tooling consumes it; the read path never does.
type Registry interface {
	VersionStore() store.Store
	Stores() map[string]store.Store
}

// StaticRegistry is a Registry over fixed values.
type StaticRegistry struct {
	Version store.Store
	Named   map[string]store.Store
}

var _ Registry = StaticRegistry{}

func (r StaticRegistry) VersionStore() store.Store      { return r.Version }
func (r StaticRegistry) Stores() map[string]store.Store { return r.Named }
