package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/multiread"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	NativeEvery   uint64
	FallbackEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	nativeCtr   atomic.Uint64
	fallbackCtr atomic.Uint64
}

var _ multiread.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) NativeBatch(storeType string, requested int) {
	if h.l == nil || !sample(h.opts.NativeEvery, &h.nativeCtr) {
		return
	}
	h.l.Debug("multiread.native_batch",
		"store", storeType,
		"requested", requested)
}

func (h *Hooks) Fallback(storeType string, requested int, reason string) {
	if h.l == nil || !sample(h.opts.FallbackEvery, &h.fallbackCtr) {
		return
	}
	h.l.Info("multiread.fallback",
		"store", storeType,
		"requested", requested,
		"reason", reason)
}

func (h *Hooks) BatchError(storeType string, requested int, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("multiread.batch_error",
		"store", storeType,
		"requested", requested,
		"err", err)
}

func (h *Hooks) ReadError(storeType, key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("multiread.read_error",
		"store", storeType,
		"key", h.redact(key),
		"err", err)
}
