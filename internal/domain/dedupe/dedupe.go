// Package dedupe tracks team medals already credited during one run.
package dedupe

import (
	"context"
	"sync"

	"github.com/okian/podium/internal/domain/model"
)

// Deduper records seen keys to ensure a team medal is credited at most once.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key model.DedupKey) bool

	Size() int64
}

// inMemoryDeduper is an unbounded set. It never evicts: dropping a key
// would let a later athlete row credit the same team medal twice.
type inMemoryDeduper struct {
	mu           sync.Mutex
	seen         map[model.DedupKey]struct{}
	capacityHint int
}

// NewInMemoryDeduper creates an empty deduper. Create one per run.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[model.DedupKey]struct{}, d.capacityHint)
	return d
}

// SeenAndRecord atomically checks if key was seen and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key model.DedupKey) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[key]; exists {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

// Size returns the number of recorded keys.
func (d *inMemoryDeduper) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}
