// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tagforge/tagforge/internal/cache"
)

// mockSweepable counts sweeps without a real cache behind it.
type mockSweepable struct {
	mu      sync.Mutex
	sweeps  int
	evicted int64
}

func (m *mockSweepable) Sweep() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweeps++
	return m.evicted
}

func (m *mockSweepable) GetStats() cache.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cache.Stats{TotalKeys: 3, Evictions: m.evicted}
}

func (m *mockSweepable) sweepCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweeps
}

func TestCacheJanitorServiceImplementsService(t *testing.T) {
	var _ suture.Service = (*CacheJanitorService)(nil)
	var _ SweepableCache = (*cache.Cache)(nil)
}

func TestNewCacheJanitorServiceDefaultInterval(t *testing.T) {
	svc := NewCacheJanitorService(&mockSweepable{}, 0)

	if svc.interval != time.Minute {
		t.Errorf("expected default interval 1m, got %v", svc.interval)
	}
}

func TestCacheJanitorService_Serve(t *testing.T) {
	t.Run("sweeps on every tick", func(t *testing.T) {
		store := &mockSweepable{evicted: 2}
		svc := NewCacheJanitorService(store, 10*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		time.Sleep(80 * time.Millisecond)
		cancel()
		<-errCh

		if got := store.sweepCount(); got < 3 {
			t.Errorf("expected at least 3 sweeps, got %d", got)
		}
	})

	t.Run("returns context error on cancellation", func(t *testing.T) {
		svc := NewCacheJanitorService(&mockSweepable{}, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("Serve did not return after cancellation")
		}
	})

	t.Run("evicts expired entries from a real cache", func(t *testing.T) {
		store := cache.New(time.Hour)
		store.SetWithTTL("stale", "value", time.Millisecond)
		store.SetWithTTL("fresh", "value", time.Hour)

		svc := NewCacheJanitorService(store, 10*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		time.Sleep(60 * time.Millisecond)
		cancel()
		<-errCh

		stats := store.GetStats()
		if stats.TotalKeys != 1 {
			t.Errorf("expected 1 surviving entry, got %d", stats.TotalKeys)
		}
		if stats.Evictions != 1 {
			t.Errorf("expected 1 eviction, got %d", stats.Evictions)
		}

		if _, ok := store.Get("fresh"); !ok {
			t.Error("fresh entry should survive the sweep")
		}
	})
}

func TestCacheJanitorService_String(t *testing.T) {
	svc := NewCacheJanitorService(&mockSweepable{}, time.Minute)

	if got := svc.String(); got != "cache-janitor" {
		t.Errorf("expected \"cache-janitor\", got %q", got)
	}
}
