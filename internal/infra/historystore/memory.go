package historystore

import (
	"context"
	"sync"
	"time"

	"perfume-order-api/internal/domain/history"
	"perfume-order-api/internal/pkg/clock"
	"perfume-order-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// MemoryStore keeps histories in process memory. Idle histories expire after ttl.
type MemoryStore struct {
	mu           sync.Mutex
	entries      map[uuid.UUID]*memoryEntry
	ttl          time.Duration
	maxSnapshots int
	clock        clock.Clock
	lastSweep    time.Time
}

type memoryEntry struct {
	mu      sync.Mutex
	history *history.History
	touched time.Time
	removed bool
}

func NewMemoryStore(ttl time.Duration, maxSnapshots int, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries:      make(map[uuid.UUID]*memoryEntry),
		ttl:          ttl,
		maxSnapshots: maxSnapshots,
		clock:        clk,
		lastSweep:    clk.Now(),
	}
}

func (s *MemoryStore) Update(ctx context.Context, customerID uuid.UUID, fn func(h *history.History, save shared.SaveHistoryFunc) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := s.lockEntry(customerID)
	defer e.mu.Unlock()

	now := s.clock.Now()
	if e.history == nil || s.expired(e, now) {
		e.history = history.New(s.maxSnapshots)
	}

	return fn(e.history.Clone(), func(h *history.History) error {
		e.history = h.Clone()
		e.touched = now
		return nil
	})
}

// Len reports how many customers currently hold a history.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// lockEntry returns the customer's entry locked, retrying when a sweep removed it meanwhile.
func (s *MemoryStore) lockEntry(customerID uuid.UUID) *memoryEntry {
	for {
		s.mu.Lock()
		s.sweepLocked()
		e, ok := s.entries[customerID]
		if !ok {
			e = &memoryEntry{}
			s.entries[customerID] = e
		}
		s.mu.Unlock()

		e.mu.Lock()
		if !e.removed {
			return e
		}
		e.mu.Unlock()
	}
}

// sweepLocked drops expired entries at most once per ttl. Entries in use are skipped.
func (s *MemoryStore) sweepLocked() {
	now := s.clock.Now()
	if s.ttl <= 0 || now.Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = now
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.history != nil && s.expired(e, now) {
			e.removed = true
			delete(s.entries, id)
		}
		e.mu.Unlock()
	}
}

func (s *MemoryStore) expired(e *memoryEntry, now time.Time) bool {
	return s.ttl > 0 && !e.touched.IsZero() && now.Sub(e.touched) >= s.ttl
}
