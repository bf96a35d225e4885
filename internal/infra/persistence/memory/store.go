// Package memory contains an in-process implementation of the persistence layer.
// It backs the "memory" storage driver and scenario tests.
package memory

import (
	"sync"

	"geofence/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds every table of the in-memory driver behind one mutex.
// Repositories hand out copies so callers never alias stored rows.
type Store struct {
	mu            sync.RWMutex
	txMu          sync.Mutex
	locations     map[string]entity.UserLocation
	regions       map[uuid.UUID]entity.GeofenceRegion
	ledger        []entity.ProximityNotification
	experiences   map[uuid.UUID]entity.Experience
	subscriptions map[string][]entity.PushSubscription
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		locations:     make(map[string]entity.UserLocation),
		regions:       make(map[uuid.UUID]entity.GeofenceRegion),
		experiences:   make(map[uuid.UUID]entity.Experience),
		subscriptions: make(map[string][]entity.PushSubscription),
	}
}

// PutExperience inserts or replaces an experience. Experiences are owned by an external service;
// this is how local runs and tests provide them.
func (s *Store) PutExperience(experience *entity.Experience) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.experiences[experience.ID] = *experience
}

// PutSubscription registers a push endpoint for its user
func (s *Store) PutSubscription(subscription *entity.PushSubscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if subscription.ID == uuid.Nil {
		subscription.ID = uuid.New()
	}
	s.subscriptions[subscription.UserID] = append(s.subscriptions[subscription.UserID], *subscription)
}
