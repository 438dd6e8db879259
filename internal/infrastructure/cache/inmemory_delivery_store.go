package cache

import (
	"context"
	"sync"
	"time"

	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// deliveryEntry holds stored delivery info with expiration
type deliveryEntry struct {
	info      trade.DeliveryInfo
	expiresAt time.Time
}

// InMemoryDeliveryStore implements trade.DeliverySessionStore using an
// in-memory map. Suitable for single-instance deployments and testing.
type InMemoryDeliveryStore struct {
	mu        sync.RWMutex
	entries   map[uuid.UUID]deliveryEntry
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryDeliveryStore creates a new in-memory delivery session store.
// It starts a background goroutine to clean up expired entries.
func NewInMemoryDeliveryStore(ttl time.Duration) *InMemoryDeliveryStore {
	store := &InMemoryDeliveryStore{
		entries:  make(map[uuid.UUID]deliveryEntry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Save stores the buyer's delivery info, resetting the TTL
func (s *InMemoryDeliveryStore) Save(ctx context.Context, buyerID uuid.UUID, info trade.DeliveryInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[buyerID] = deliveryEntry{
		info:      info,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Get returns the buyer's delivery info, or nil if none is stored
func (s *InMemoryDeliveryStore) Get(ctx context.Context, buyerID uuid.UUID) (*trade.DeliveryInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[buyerID]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, nil
	}

	info := e.info
	return &info, nil
}

// Delete removes the buyer's delivery info
func (s *InMemoryDeliveryStore) Delete(ctx context.Context, buyerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, buyerID)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryDeliveryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (s *InMemoryDeliveryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryDeliveryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for buyerID, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, buyerID)
		}
	}
}

// Size returns the number of entries in the store (for testing/monitoring)
func (s *InMemoryDeliveryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemoryDeliveryStore implements DeliverySessionStore
var _ trade.DeliverySessionStore = (*InMemoryDeliveryStore)(nil)
