package client

import (
	"context"
	"errors"
	"sync"

	"github.com/shopdesk/product-api/internal/models"
)

// Action names one logical store operation. Pending state is tracked per
// action, so a list refresh may overlap a delete without either blocking
// the other.
type Action string

const (
	ActionFetch  Action = "fetch"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Snapshot is a copy of the store state handed to views. Mutating it has no
// effect on the store.
type Snapshot struct {
	Items     []models.Product
	Selected  *models.Product
	Pending   bool
	LastError string
}

// Store mirrors the server-side product collection. Local state changes only
// after the server confirms a mutation; there is no speculative apply, no
// retry and no request de-duplication. Two overlapping updates of the same
// id race, and whichever response lands last wins.
type Store struct {
	api *Client

	mu         sync.Mutex
	items      []models.Product
	selectedID uint
	pending    map[Action]int
	lastError  string
	onChange   func(Snapshot)
}

func NewStore(api *Client) *Store {
	return &Store{
		api:     api,
		pending: make(map[Action]int),
	}
}

// OnChange registers a callback fired after every committed state
// transition. The callback runs outside the store lock.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Fetch replaces the local collection wholesale with the server's.
func (s *Store) Fetch(ctx context.Context) error {
	s.begin(ActionFetch)

	items, err := s.api.ListProducts(ctx)
	if err != nil {
		s.commit(ActionFetch, func() {
			s.lastError = errorMessage(err)
		})
		return err
	}

	s.commit(ActionFetch, func() {
		s.items = items
		s.lastError = ""
	})
	return nil
}

// Create appends the server-confirmed product and clears the selection.
func (s *Store) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	s.begin(ActionCreate)

	product, err := s.api.CreateProduct(ctx, in)
	if err != nil {
		s.commit(ActionCreate, func() {
			s.lastError = errorMessage(err)
		})
		return nil, err
	}

	s.commit(ActionCreate, func() {
		s.items = append(s.items, *product)
		s.selectedID = 0
	})
	return product, nil
}

// Update replaces the matching item in place, preserving its position in
// the sequence.
func (s *Store) Update(ctx context.Context, id uint, in UpdateProductInput) (*models.Product, error) {
	s.begin(ActionUpdate)

	product, err := s.api.UpdateProduct(ctx, id, in)
	if err != nil {
		s.commit(ActionUpdate, func() {
			s.lastError = errorMessage(err)
		})
		return nil, err
	}

	s.commit(ActionUpdate, func() {
		for i := range s.items {
			if s.items[i].ID == product.ID {
				s.items[i] = *product
				break
			}
		}
		if s.selectedID == product.ID {
			s.selectedID = 0
		}
	})
	return product, nil
}

// Delete removes the matching item once the server confirms.
func (s *Store) Delete(ctx context.Context, id uint) error {
	s.begin(ActionDelete)

	if err := s.api.DeleteProduct(ctx, id); err != nil {
		s.commit(ActionDelete, func() {
			s.lastError = errorMessage(err)
		})
		return err
	}

	s.commit(ActionDelete, func() {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
		if s.selectedID == id {
			s.selectedID = 0
		}
	})
	return nil
}

// Select marks the item with the given id as selected. Returns false when
// the id is not in the local collection.
func (s *Store) Select(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.selectedID = id
			return true
		}
	}
	return false
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selectedID = 0
	s.mu.Unlock()
}

// PendingFor reports whether a call for the given action is in flight.
func (s *Store) PendingFor(action Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[action] > 0
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Items:     make([]models.Product, len(s.items)),
		LastError: s.lastError,
	}
	copy(snap.Items, s.items)

	for _, n := range s.pending {
		if n > 0 {
			snap.Pending = true
			break
		}
	}

	if s.selectedID != 0 {
		for i := range snap.Items {
			if snap.Items[i].ID == s.selectedID {
				snap.Selected = &snap.Items[i]
				break
			}
		}
	}

	return snap
}

// begin raises the pending counter for an action and notifies observers.
func (s *Store) begin(action Action) {
	s.mu.Lock()
	s.pending[action]++
	snap := s.snapshotLocked()
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// commit lowers the pending counter, applies the state transition under the
// lock and notifies observers outside it.
func (s *Store) commit(action Action, apply func()) {
	s.mu.Lock()
	s.pending[action]--
	apply()
	snap := s.snapshotLocked()
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// errorMessage picks the server-provided message when the envelope carried
// one, and a local message when the call never completed.
func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
