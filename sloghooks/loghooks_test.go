package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/multiread"
)

func newBufLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), &buf
}

func TestFallbackSampling(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{FallbackEvery: 3})

	for i := 0; i < 9; i++ {
		h.Fallback("*lru.Store", 2, multiread.ReasonNoBatch)
	}
	if n := strings.Count(buf.String(), "multiread.fallback"); n != 3 {
		t.Fatalf("expected 3 sampled lines, got %d:\n%s", n, buf.String())
	}
}

func TestReadErrorRedactsKey(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{})

	h.ReadError("*redis.Redis", "user:secret@example.com", errors.New("conn reset"))
	out := buf.String()
	if strings.Contains(out, "secret@example.com") {
		t.Fatalf("key not redacted: %s", out)
	}
	if !strings.Contains(out, "multiread.read_error") || !strings.Contains(out, "conn reset") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestCustomRedactAndNilLogger(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{Redact: func(string) string { return "REDACTED" }})
	h.ReadError("s", "k", errors.New("x"))
	if !strings.Contains(buf.String(), "key=REDACTED") {
		t.Fatalf("custom redactor not used: %s", buf.String())
	}

	// nil logger must be a silent no-op
	quiet := New(nil, Options{})
	quiet.NativeBatch("s", 1)
	quiet.Fallback("s", 1, multiread.ReasonDisabled)
	quiet.BatchError("s", 1, errors.New("x"))
	quiet.ReadError("s", "k", errors.New("x"))
}
