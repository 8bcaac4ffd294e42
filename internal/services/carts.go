package services

import (
	"sync"

	"cardapio/internal/cart"
	"cardapio/internal/repo"

	"github.com/google/uuid"
)

// CartService hands out session cart stores, one manager per tenant so
// snapshots land in the right tenant's rows
type CartService struct {
	mu        sync.Mutex
	managers  map[uuid.UUID]*cart.Manager
	snapshots *repo.CartSnapshotRepository
}

// NewCartService creates a new cart service
func NewCartService(snapshots *repo.CartSnapshotRepository) *CartService {
	return &CartService{
		managers:  make(map[uuid.UUID]*cart.Manager),
		snapshots: snapshots,
	}
}

// Store returns the cart store for a tenant session
func (s *CartService) Store(tenantID uuid.UUID, sessionKey string) *cart.Store {
	return s.manager(tenantID).Get(sessionKey)
}

// Release drops the in-memory store for a session
func (s *CartService) Release(tenantID uuid.UUID, sessionKey string) {
	s.manager(tenantID).Release(sessionKey)
}

func (s *CartService) manager(tenantID uuid.UUID) *cart.Manager {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.managers[tenantID]; ok {
		return m
	}
	var snapshots cart.SnapshotStore
	if s.snapshots != nil {
		snapshots = s.snapshots.ForTenant(tenantID)
	}
	m := cart.NewManager(snapshots)
	s.managers[tenantID] = m
	return m
}
