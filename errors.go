package multiread

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilStore is returned when ReadMulti is called without a store.
	ErrNilStore = errors.New("multiread: nil store")
	// ErrNotCovered is the sentinel behind every CoverageError.
	ErrNotCovered = errors.New("multiread: store not covered")
)

// CoverageError lists registry stores that were never driven through a Reader.
type CoverageError struct {
	Missing []string
}

func (e *CoverageError) Error() string {
	switch len(e.Missing) {
	case 0:
		return "multiread: coverage check failed"
	case 1:
		return fmt.Sprintf("multiread: store %q was never exercised", e.Missing[0])
	default:
		return fmt.Sprintf("multiread: %d stores were never exercised: %s",
			len(e.Missing), strings.Join(e.Missing, ", "))
	}
}

func (e *CoverageError) Unwrap() error { return ErrNotCovered }
