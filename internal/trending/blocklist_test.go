// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package trending

import (
	"sync"
	"testing"
)

func TestBlocklistBlock(t *testing.T) {
	t.Parallel()

	bl := NewBlocklist()

	if bl.IsBlocked("top-hashtags.com") {
		t.Error("IsBlocked() = true on fresh blocklist, want false")
	}

	bl.Block("top-hashtags.com")

	if !bl.IsBlocked("top-hashtags.com") {
		t.Error("IsBlocked() = false after Block(), want true")
	}
	if bl.IsBlocked("all-hashtag.com") {
		t.Error("IsBlocked() = true for unblocked host, want false")
	}
}

func TestBlocklistIdempotentAdd(t *testing.T) {
	t.Parallel()

	bl := NewBlocklist()
	bl.Block("all-hashtag.com")
	bl.Block("all-hashtag.com")
	bl.Block("all-hashtag.com")

	if got := bl.Len(); got != 1 {
		t.Errorf("Len() after repeated Block of same host = %d, want 1", got)
	}
}

func TestBlocklistHosts(t *testing.T) {
	t.Parallel()

	bl := NewBlocklist()
	bl.Block("top-hashtags.com")
	bl.Block("all-hashtag.com")
	bl.Block("hashtagsforlikes.co")

	hosts := bl.Hosts()
	want := []string{"all-hashtag.com", "hashtagsforlikes.co", "top-hashtags.com"}

	if len(hosts) != len(want) {
		t.Fatalf("Hosts() returned %d hosts, want %d", len(hosts), len(want))
	}
	for i := range want {
		if hosts[i] != want[i] {
			t.Errorf("Hosts()[%d] = %q, want %q", i, hosts[i], want[i])
		}
	}
}

func TestBlocklistConcurrentAccess(t *testing.T) {
	t.Parallel()

	bl := NewBlocklist()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bl.Block("top-hashtags.com")
		}()
		go func() {
			defer wg.Done()
			bl.IsBlocked("top-hashtags.com")
		}()
	}
	wg.Wait()

	if got := bl.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}
