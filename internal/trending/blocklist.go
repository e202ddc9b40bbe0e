// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package trending

import (
	"sort"
	"sync"
)

// Blocklist records scrape hosts that have refused automated requests so
// they are skipped without another network round trip. State lives for the
// process lifetime; a restart clears it with no recovery needed.
//
// Concurrent adds of the same host are harmless (idempotent), and a write
// is visible to all subsequent calls in the process.
type Blocklist struct {
	mu    sync.RWMutex
	hosts map[string]struct{}
}

// NewBlocklist creates an empty blocklist.
func NewBlocklist() *Blocklist {
	return &Blocklist{hosts: make(map[string]struct{})}
}

// Block records a host as refusing requests.
func (b *Blocklist) Block(host string) {
	b.mu.Lock()
	b.hosts[host] = struct{}{}
	b.mu.Unlock()
}

// IsBlocked reports whether a host has been recorded as refusing requests.
func (b *Blocklist) IsBlocked(host string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, blocked := b.hosts[host]
	return blocked
}

// Hosts returns a sorted snapshot of the blocked hosts.
func (b *Blocklist) Hosts() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	hosts := make([]string, 0, len(b.hosts))
	for host := range b.hosts {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}

// Len returns the number of blocked hosts.
func (b *Blocklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.hosts)
}
