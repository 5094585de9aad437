package ristretto

import (
	"context"
	"testing"
	"time"
)

func TestNewValidatesConfig(t *testing.T) {
	if _, err := New(Config{NumCounters: 10}); err == nil {
		t.Fatalf("expected error for incomplete config")
	}
}

func TestReadWriteDelete(t *testing.T) {
	ctx := context.Background()
	s, err := New(Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64, Metrics: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(ctx) })

	if v, err := s.Read(ctx, "k"); err != nil || v != nil {
		t.Fatalf("miss: %v %v", v, err)
	}
	if ok := s.Write(ctx, "k", []byte("v"), 1, time.Minute); !ok {
		t.Fatalf("write dropped")
	}
	s.Wait()
	if v, err := s.Read(ctx, "k"); err != nil || string(v) != "v" {
		t.Fatalf("hit: %q %v", v, err)
	}
	_ = s.Delete(ctx, "k")
	if v, _ := s.Read(ctx, "k"); v != nil {
		t.Fatalf("Read after Delete: %q", v)
	}
	if s.Metrics() == nil {
		t.Fatalf("metrics requested but nil")
	}
}

func TestUnexpectedShapeIsMiss(t *testing.T) {
	ctx := context.Background()
	s, err := New(Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(ctx) })

	s.c.Set("foreign", 42, 1)
	s.c.Wait()
	if v, err := s.Read(ctx, "foreign"); err != nil || v != nil {
		t.Fatalf("foreign value should read as miss, got %v %v", v, err)
	}
}
