package eeg

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// defaultDirectoryTTL is the snapshot lifetime when none is configured.
const defaultDirectoryTTL = 60 * time.Second

// Directory is the TTL-cached, name-sorted set of known instances.
//
// One snapshot and its capture timestamp are the only shared mutable state
// in the system. Reads within the TTL are served from the snapshot with no
// vendor call, so bursts of page loads cost at most one refresh. A failed
// refresh keeps serving the previous snapshot (stale-but-available); the
// staleness window is bounded only by how long the vendor stays unreachable.
//
// All methods are safe for concurrent use. Concurrent refreshes are allowed
// to race; the snapshot replace is atomic and the last writer wins.
type Directory struct {
	client     *Client
	ttl        time.Duration
	fallbackID string
	logger     Logger

	mu        sync.RWMutex
	snapshot  []Instance
	fetchedAt time.Time
}

// NewDirectory creates a Directory backed by the given client.
//
// fallbackID is the configured instance id used when resolution finds no
// directory entries.
func NewDirectory(client *Client, ttl time.Duration, fallbackID string) *Directory {
	if ttl <= 0 {
		ttl = defaultDirectoryTTL
	}
	return &Directory{
		client:     client,
		ttl:        ttl,
		fallbackID: fallbackID,
		logger:     noopLogger{},
	}
}

// SetLogger sets the logger for the directory.
func (d *Directory) SetLogger(logger Logger) {
	d.logger = logger
}

// List returns the directory of controllable instances.
//
// When force is false and the snapshot is younger than the TTL, the cached
// snapshot is returned without a vendor call. Otherwise the vendor listing
// is fetched; on any failure the previous snapshot (possibly empty) is
// returned. List never returns an error.
func (d *Directory) List(ctx context.Context, force bool) []Instance {
	d.mu.RLock()
	if !force && !d.fetchedAt.IsZero() && time.Since(d.fetchedAt) < d.ttl {
		cached := append([]Instance(nil), d.snapshot...)
		d.mu.RUnlock()
		return cached
	}
	stale := append([]Instance(nil), d.snapshot...)
	d.mu.RUnlock()

	raw, err := d.client.fetchInstances(ctx)
	if err != nil {
		d.logger.Warn("directory refresh failed, serving previous snapshot",
			"cached", len(stale), "error", err)
		return stale
	}

	fresh := make([]Instance, 0, len(raw))
	for _, inst := range raw {
		// Records without an id are unaddressable; skip them.
		if inst.InstanceID == "" {
			continue
		}
		fresh = append(fresh, Instance{
			ID:   inst.InstanceID,
			Name: inst.Settings.Name,
		})
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return strings.ToLower(fresh[i].Name) < strings.ToLower(fresh[j].Name)
	})

	d.mu.Lock()
	d.snapshot = fresh
	d.fetchedAt = time.Now()
	d.mu.Unlock()

	d.logger.Debug("directory refreshed", "count", len(fresh))
	return append([]Instance(nil), fresh...)
}

// ResolveActive derives the active instance id for one request.
//
// A non-empty client-supplied id wins as-is; membership is deliberately not
// validated on this hot path (only the selection-commit operation validates).
// Otherwise the first directory entry is used, and an empty directory falls
// back to the configured id. The result is never persisted.
func (d *Directory) ResolveActive(ctx context.Context, clientID string) string {
	if clientID != "" {
		return clientID
	}
	if instances := d.List(ctx, false); len(instances) > 0 {
		return instances[0].ID
	}
	return d.fallbackID
}

// Contains reports whether id is a current directory member.
// Used by the selection-commit operation.
func (d *Directory) Contains(ctx context.Context, id string) bool {
	for _, inst := range d.List(ctx, false) {
		if inst.ID == id {
			return true
		}
	}
	return false
}

// FallbackID returns the configured fallback instance id.
func (d *Directory) FallbackID() string {
	return d.fallbackID
}
