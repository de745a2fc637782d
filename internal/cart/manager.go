// Package cart owns the shopping-cart collection: idempotent adds keyed by
// product id, clamped quantity updates and a persisted snapshot per mutation.
package cart

import (
	"context"
	"sync"

	"github.com/nikolayk812/storefront-core/internal/domain"
	"github.com/nikolayk812/storefront-core/internal/store"
)

const storageKey = "cart"

// snapshot is the persisted envelope: the full collection plus the derived
// unit count, written whole on every mutation so a stale delta can never
// overwrite a newer state.
type snapshot struct {
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
}

type Manager struct {
	mu      sync.Mutex
	adapter *store.Adapter
	items   []domain.CartItem
}

// NewManager hydrates the cart from storage exactly once. A missing or
// corrupt blob yields an empty cart, never an error.
func NewManager(ctx context.Context, adapter *store.Adapter) *Manager {
	snap := store.Load(ctx, adapter, storageKey, snapshot{})

	return &Manager{
		adapter: adapter,
		items:   snap.Items,
	}
}

// Add inserts the item if its id is not present. A duplicate add is an
// identity no-op: quantity changes go through UpdateQuantity instead.
func (m *Manager) Add(ctx context.Context, item domain.CartItem) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(item.ID) >= 0 {
		return
	}

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	m.items = append(m.items, item)
	m.persist(ctx)
}

// UpdateQuantity adjusts the line's quantity by delta, clamped at a floor
// of 1. Decrementing below 1 clamps rather than deletes; removal is an
// explicit Remove. Unknown ids are ignored.
func (m *Manager) UpdateQuantity(ctx context.Context, id string, delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return
	}

	m.items[i].Quantity = max(1, m.items[i].Quantity+delta)
	m.persist(ctx)
}

// SetQuantity sets the line's quantity outright, clamped at 1.
func (m *Manager) SetQuantity(ctx context.Context, id string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return
	}

	m.items[i].Quantity = max(1, quantity)
	m.persist(ctx)
}

// Remove deletes the line and reports whether it existed.
func (m *Manager) Remove(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}

	m.items = append(m.items[:i], m.items[i+1:]...)
	m.persist(ctx)
	return true
}

func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	m.persist(ctx)
}

func (m *Manager) Items() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	dup := make([]domain.CartItem, len(m.items))
	copy(dup, m.items)
	return dup
}

func (m *Manager) Get(id string) (domain.CartItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return domain.CartItem{}, false
	}
	return m.items[i], true
}

func (m *Manager) Contains(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.indexOf(id) >= 0
}

// ItemCount is the total unit count across all lines.
func (m *Manager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return domain.Cart{Items: m.items}.ItemCount()
}

func (m *Manager) Subtotal() domain.Money {
	m.mu.Lock()
	defer m.mu.Unlock()

	return domain.Cart{Items: m.items}.Subtotal()
}

// persist writes the full current snapshot; callers hold m.mu, which
// serialises writes and keeps them in mutation order.
func (m *Manager) persist(ctx context.Context) {
	snap := snapshot{
		Items:     m.items,
		ItemCount: domain.Cart{Items: m.items}.ItemCount(),
	}
	store.Save(ctx, m.adapter, storageKey, snap)
}

func (m *Manager) indexOf(id string) int {
	for i, item := range m.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
