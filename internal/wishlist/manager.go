// Package wishlist owns the saved-items collection. Presence is boolean:
// adding an existing id is a strict no-op and there are no quantities.
package wishlist

import (
	"context"
	"sync"

	"github.com/nikolayk812/storefront-core/internal/domain"
	"github.com/nikolayk812/storefront-core/internal/store"
)

const storageKey = "wishlist"

type Manager struct {
	mu      sync.Mutex
	adapter *store.Adapter
	items   []domain.WishlistItem
}

func NewManager(ctx context.Context, adapter *store.Adapter) *Manager {
	return &Manager{
		adapter: adapter,
		items:   store.Load(ctx, adapter, storageKey, []domain.WishlistItem(nil)),
	}
}

// Add appends the item unless its id is already present.
func (m *Manager) Add(ctx context.Context, item domain.WishlistItem) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(item.ID) >= 0 {
		return
	}

	m.items = append(m.items, item)
	m.persist(ctx)
}

// Remove deletes the item and reports whether it existed.
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

// Toggle adds the item when absent and removes it when present,
// reporting whether it is present afterwards.
func (m *Manager) Toggle(ctx context.Context, item domain.WishlistItem) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(item.ID); i >= 0 {
		m.items = append(m.items[:i], m.items[i+1:]...)
		m.persist(ctx)
		return false
	}

	m.items = append(m.items, item)
	m.persist(ctx)
	return true
}

func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	m.persist(ctx)
}

func (m *Manager) Items() []domain.WishlistItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	dup := make([]domain.WishlistItem, len(m.items))
	copy(dup, m.items)
	return dup
}

func (m *Manager) Contains(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.indexOf(id) >= 0
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.items)
}

func (m *Manager) persist(ctx context.Context) {
	store.Save(ctx, m.adapter, storageKey, m.items)
}

func (m *Manager) indexOf(id string) int {
	for i, item := range m.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
