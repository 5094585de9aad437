package multiread

import (
	"context"

	"github.com/unkn0wn-root/multiread/store"
)

// Options tune a Reader. The zero value is valid and shares the
// process-wide DefaultCapabilities and DefaultCoverage.
type Options struct {
	Logger       Logger        // if nil, NopLogger is used
	Hooks        Hooks         // if nil, NopHooks is used
	Capabilities *Capabilities // nil => DefaultCapabilities
	Coverage     *Coverage     // nil => DefaultCoverage

	// KeepDuplicates passes the caller's key slice through untouched.
	// Default false => duplicate keys are collapsed before any store call.
	KeepDuplicates bool
}

// New builds a Reader. It never fails; the error is kept so option validation
// can be added without an API break.
func New(opts Options) (*Reader, error) {
	return newReader(opts), nil
}

var defaultReader = newReader(Options{})

// Default returns the Reader backing the package-level functions.
func Default() *Reader { return defaultReader }

// ReadMulti reads keys from s with the default Reader.
func ReadMulti(ctx context.Context, s store.Store, keys []string) (map[string][]byte, error) {
	return defaultReader.ReadMulti(ctx, s, keys)
}

// Wrap adapts s with the default Reader.
func Wrap(s store.Store) *Adapted {
	return defaultReader.Wrap(s)
}
