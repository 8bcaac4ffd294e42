package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SnapshotStore persists cart state between visits. Implementations are
// best-effort: the cart keeps working in memory when persistence fails.
type SnapshotStore interface {
	Load(sessionKey string) (*State, error)
	Save(sessionKey string, state *State) error
	Delete(sessionKey string) error
}

// Store is the state container for one storefront session. It is the
// single writer for its cart; the mutex only guards against concurrent
// HTTP requests from the same session.
type Store struct {
	mu        sync.Mutex
	key       string
	state     State
	snapshots SnapshotStore
}

// NewStore creates a session cart, restoring a persisted snapshot when
// one exists. Load failures degrade to an empty cart.
func NewStore(sessionKey string, snapshots SnapshotStore) *Store {
	state := DefaultState()
	if snapshots != nil {
		if restored, err := snapshots.Load(sessionKey); err != nil {
			log.Warn().Err(err).Str("session", sessionKey).Msg("Failed to load cart snapshot, starting empty")
		} else if restored != nil {
			state = *restored
			sanitize(&state)
		}
	}
	return &Store{key: sessionKey, state: state, snapshots: snapshots}
}

// sanitize repairs a restored snapshot. Every write path enforces
// quantity ≥ 1, but a corrupted row must not be able to divide the
// quantity rescale by zero.
func sanitize(state *State) {
	for i := range state.Items {
		if state.Items[i].Quantity < 1 {
			state.Items[i].Quantity = 1
		}
	}
}

// command is one cart mutation. apply runs against the live state after a
// pre-state snapshot is taken; an error rolls the state back.
type command struct {
	name  string
	apply func(*State) error
}

func (s *Store) execute(cmd command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()

	if err := cmd.apply(&s.state); err != nil {
		s.state = snapshot
		return err
	}

	s.persist(cmd.name)
	return nil
}

// persist writes the snapshot best-effort; failures are logged and
// swallowed so a storage hiccup never loses the in-memory cart.
func (s *Store) persist(op string) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(s.key, &s.state); err != nil {
		log.Warn().Err(err).Str("session", s.key).Str("op", op).Msg("Failed to persist cart snapshot")
	}
}

// AddItem appends a new line with a fresh id. Identical items are never
// merged: each add is its own line, matching kitchen-printing expectations.
func (s *Store) AddItem(item Item) Item {
	item.ID = uuid.New()
	s.execute(command{name: "add_item", apply: func(state *State) error {
		state.Items = append(state.Items, item)
		return nil
	}})
	return item
}

// RemoveItem deletes a line by id; removing an absent id is a no-op
func (s *Store) RemoveItem(id uuid.UUID) {
	s.execute(command{name: "remove_item", apply: func(state *State) error {
		items := state.Items[:0]
		for _, item := range state.Items {
			if item.ID != id {
				items = append(items, item)
			}
		}
		state.Items = items
		return nil
	}})
}

// UpdateQuantity clamps the new quantity to at least 1 and rescales the
// cached line total proportionally. The unit price is immutable after
// creation, so (total/oldQty)*newQty stays exact.
func (s *Store) UpdateQuantity(id uuid.UUID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	return s.execute(command{name: "update_quantity", apply: func(state *State) error {
		for i := range state.Items {
			if state.Items[i].ID != id {
				continue
			}
			item := &state.Items[i]
			unit := item.ItemTotal.Div(decimalFromInt(item.Quantity))
			item.ItemTotal = unit.Mul(decimalFromInt(quantity))
			item.Quantity = quantity
			return nil
		}
		return ErrItemNotFound
	}})
}

// SetCustomer merges the given fields into the checkout identity
func (s *Store) SetCustomer(customer Customer) {
	s.execute(command{name: "set_customer", apply: func(state *State) error {
		state.Customer = customer
		return nil
	}})
}

// SetDelivery replaces the fulfillment selection
func (s *Store) SetDelivery(delivery Delivery) {
	s.execute(command{name: "set_delivery", apply: func(state *State) error {
		state.Delivery = delivery
		return nil
	}})
}

// SetPayment replaces the payment selection
func (s *Store) SetPayment(payment Payment) {
	s.execute(command{name: "set_payment", apply: func(state *State) error {
		state.Payment = payment
		return nil
	}})
}

// Clear empties the cart and resets the checkout context to defaults.
// Called after a successful order dispatch.
func (s *Store) Clear() {
	s.execute(command{name: "clear", apply: func(state *State) error {
		*state = DefaultState()
		return nil
	}})
	if s.snapshots != nil {
		if err := s.snapshots.Delete(s.key); err != nil {
			log.Warn().Err(err).Str("session", s.key).Msg("Failed to delete cart snapshot")
		}
	}
}

// Snapshot returns a copy of the current state for reads
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}
