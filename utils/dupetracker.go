package utils

import "sync"

// DupeTracker tracks record keys already seen to avoid duplicates
type DupeTracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewDupeTracker creates a new tracker
func NewDupeTracker() *DupeTracker {
	return &DupeTracker{seen: make(map[string]struct{})}
}

// Add returns true if the key is new (not seen before), false if duplicate
func (t *DupeTracker) Add(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.seen[key]; exists {
		return false
	}
	t.seen[key] = struct{}{}
	return true
}

// Count returns the number of tracked keys
func (t *DupeTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
