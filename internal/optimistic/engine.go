package optimistic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/huddleapp/huddle-client/internal/model"
)

// ErrMutationInFlight guards against two mutations racing on the same item
// identifier; the caller must wait for the first confirm/rollback to
// resolve.
var ErrMutationInFlight = errors.New("mutation already in flight for this item")

// Item is the capability a collection element must expose to the engine.
type Item interface {
	ItemID() int64
}

// Collection applies mutations locally first and confirms them against the
// platform in the same call: snapshot, apply, confirm. On a failed confirm
// the collection is restored to the exact pre-mutation snapshot (same
// items, same order, same field values), so rollbacks are
// position-preserving by construction. Identifiers are unique within a
// collection.
type Collection[T Item] struct {
	mu       sync.Mutex
	items    []T
	pending  map[int64]string
	inflight map[int64]struct{}
}

func NewCollection[T Item](items []T) *Collection[T] {
	initial := make([]T, len(items))
	copy(initial, items)
	return &Collection[T]{
		items:    initial,
		pending:  make(map[int64]string),
		inflight: make(map[int64]struct{}),
	}
}

// Items returns a copy of the visible collection. Items under
// pending-delete are absent until their confirm resolves.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Provenance reports the item's mutation state: confirmed unless a mutation
// on it is currently in flight.
func (c *Collection[T]) Provenance(id int64) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.pending[id]; ok {
		return p
	}
	return model.ProvenanceConfirmed
}

// Replace swaps the whole collection for a freshly fetched server state.
// It fails while any mutation is in flight.
func (c *Collection[T]) Replace(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.inflight) > 0 {
		return ErrMutationInFlight
	}
	c.items = make([]T, len(items))
	copy(c.items, items)
	return nil
}

// Add appends the item locally and confirms it remotely. The confirm
// returns the canonical server representation (with the assigned
// identifier), which replaces the optimistic value outright.
func (c *Collection[T]) Add(ctx context.Context, item T, confirm func(context.Context, T) (T, error)) (T, error) {
	var zero T
	id := item.ItemID()

	c.mu.Lock()
	if err := c.acquireLocked(id); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	if c.indexLocked(id) >= 0 {
		c.releaseLocked(id)
		c.mu.Unlock()
		return zero, &model.ValidationError{Reason: fmt.Sprintf("item %d already exists", id)}
	}
	snapshot := c.snapshotLocked()
	c.items = append(c.items, item)
	c.pending[id] = model.ProvenancePendingCreate
	c.mu.Unlock()

	canonical, err := confirm(ctx, item)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.releaseLocked(id)

	if err != nil {
		c.items = snapshot
		return zero, err
	}

	if i := c.indexLocked(id); i >= 0 {
		c.items[i] = canonical
	}
	return canonical, nil
}

// Remove deletes the item locally and confirms the deletion. On failure the
// full snapshot is restored, so the item reappears at its original index.
func (c *Collection[T]) Remove(ctx context.Context, id int64, confirm func(context.Context) error) error {
	c.mu.Lock()
	if err := c.acquireLocked(id); err != nil {
		c.mu.Unlock()
		return err
	}
	i := c.indexLocked(id)
	if i < 0 {
		c.releaseLocked(id)
		c.mu.Unlock()
		return &model.ValidationError{Reason: fmt.Sprintf("item %d not found", id)}
	}
	snapshot := c.snapshotLocked()
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.pending[id] = model.ProvenancePendingDelete
	c.mu.Unlock()

	err := confirm(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.releaseLocked(id)

	if err != nil {
		c.items = snapshot
		return err
	}
	return nil
}

// Update applies a field change locally and confirms it. Rollback restores
// the exact prior item value, not just the changed fields; reconciliation
// replaces the item with the canonical returned value, never merges.
func (c *Collection[T]) Update(ctx context.Context, id int64, apply func(T) T, confirm func(context.Context, T) (T, error)) error {
	c.mu.Lock()
	if err := c.acquireLocked(id); err != nil {
		c.mu.Unlock()
		return err
	}
	i := c.indexLocked(id)
	if i < 0 {
		c.releaseLocked(id)
		c.mu.Unlock()
		return &model.ValidationError{Reason: fmt.Sprintf("item %d not found", id)}
	}
	snapshot := c.snapshotLocked()
	updated := apply(c.items[i])
	c.items[i] = updated
	c.pending[id] = model.ProvenancePendingUpdate
	c.mu.Unlock()

	canonical, err := confirm(ctx, updated)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.releaseLocked(id)

	if err != nil {
		c.items = snapshot
		return err
	}

	if j := c.indexLocked(id); j >= 0 {
		c.items[j] = canonical
	}
	return nil
}

func (c *Collection[T]) acquireLocked(id int64) error {
	if _, ok := c.inflight[id]; ok {
		return ErrMutationInFlight
	}
	c.inflight[id] = struct{}{}
	return nil
}

func (c *Collection[T]) releaseLocked(id int64) {
	delete(c.inflight, id)
	delete(c.pending, id)
}

func (c *Collection[T]) snapshotLocked() []T {
	snapshot := make([]T, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

func (c *Collection[T]) indexLocked(id int64) int {
	for i, item := range c.items {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}
