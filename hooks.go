package multiread

// Fallback reasons passed to Hooks.Fallback.
const (
	ReasonDisabled    = "disabled"    // store type registered via Capabilities.Disable
	ReasonUnsupported = "unsupported" // ReadMulti returned store.ErrNotSupported
	ReasonNoBatch     = "no_batch"    // store does not implement store.BatchStore
)

// Hooks lightweight callbacks for read-path events.
// Implementations MUST be cheap and non-blocking.
// The reader calls them on hot paths.
type Hooks interface {
	// Native batch read succeeded.
	NativeBatch(storeType string, requested int)

	// Request was served by single-key reads.
	// reason ∈ {"disabled", "unsupported", "no_batch"}
	Fallback(storeType string, requested int, reason string)

	// Native batch read failed with a genuine error (returned to the caller).
	BatchError(storeType string, requested int, err error)

	// A single-key read failed during fallback; the whole batch is aborted.
	ReadError(storeType, key string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) NativeBatch(string, int)         {}
func (NopHooks) Fallback(string, int, string)    {}
func (NopHooks) BatchError(string, int, error)   {}
func (NopHooks) ReadError(string, string, error) {}
