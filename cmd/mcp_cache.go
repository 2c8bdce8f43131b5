package cmd

import (
	"context"
	"sync"
	"time"

	"simaudit/internal/model"
	"simaudit/internal/telemetry"
)

// snapshotEntry holds a cached view-hierarchy snapshot with its timestamp.
type snapshotEntry struct {
	nodes     []model.ViewNode
	timestamp time.Time
}

// snapshotCache provides a TTL-based cache for view-hierarchy snapshots so
// repeated describe_ui calls within one agent turn hit the bridge once.
// Audit tools never go through the cache: every audit classifies a fresh
// capture.
type snapshotCache struct {
	mu    sync.Mutex
	entry *snapshotEntry
	ttl   time.Duration
}

// newSnapshotCache creates a new cache. A ttl of 0 disables caching.
func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{ttl: ttl}
}

// snapshot returns a cached snapshot if within TTL, otherwise fetches fresh.
func (c *snapshotCache) snapshot(ctx context.Context, bridge *telemetry.Bridge) ([]model.ViewNode, error) {
	if c.ttl == 0 {
		return bridge.Snapshot(ctx)
	}

	c.mu.Lock()
	if c.entry != nil && time.Since(c.entry.timestamp) < c.ttl {
		nodes := c.entry.nodes
		c.mu.Unlock()
		return nodes, nil
	}
	c.mu.Unlock()

	nodes, err := bridge.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entry = &snapshotEntry{nodes: nodes, timestamp: time.Now()}
	c.mu.Unlock()

	return nodes, nil
}
