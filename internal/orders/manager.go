// Package orders owns the order-history collection and the forward-only
// status machine a stored order moves through.
package orders

import (
	"context"
	"sync"

	"github.com/nikolayk812/storefront-core/internal/domain"
	"github.com/nikolayk812/storefront-core/internal/store"
)

const storageKey = "orders"

type Manager struct {
	mu      sync.Mutex
	adapter *store.Adapter
	orders  []domain.Order
}

func NewManager(ctx context.Context, adapter *store.Adapter) *Manager {
	return &Manager{
		adapter: adapter,
		orders:  store.Load(ctx, adapter, storageKey, []domain.Order(nil)),
	}
}

// Upsert inserts or replaces by id: new orders are prepended so the history
// reads newest-first, replaced orders keep their position.
func (m *Manager) Upsert(ctx context.Context, order domain.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order = order.Clone()

	if i := m.indexOf(order.ID); i >= 0 {
		m.orders[i] = order
	} else {
		m.orders = append([]domain.Order{order}, m.orders...)
	}

	m.persist(ctx)
}

func (m *Manager) Get(id string) (domain.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return domain.Order{}, false
	}
	return m.orders[i].Clone(), true
}

// Remove deletes the order and reports whether it existed.
func (m *Manager) Remove(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}

	m.orders = append(m.orders[:i], m.orders[i+1:]...)
	m.persist(ctx)
	return true
}

func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders = nil
	m.persist(ctx)
}

func (m *Manager) Orders() []domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	dup := make([]domain.Order, len(m.orders))
	for i, order := range m.orders {
		dup[i] = order.Clone()
	}
	return dup
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.orders)
}

// Advance re-reads the order by id and applies a forward status transition,
// prepending event to the tracking history. It reports false — without
// mutating anything — when the order is gone or the transition is not legal,
// so a delayed step can never resurrect a removed order or move one backward.
func (m *Manager) Advance(ctx context.Context, id string, status domain.OrderStatus, event domain.TrackingEvent) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}

	order := &m.orders[i]
	if !order.Status.CanTransitionTo(status) {
		return false
	}

	order.Status = status
	event.Status = status

	if order.Tracking == nil {
		order.Tracking = &domain.TrackingInfo{}
	}
	order.Tracking.Status = status
	order.Tracking.History = append([]domain.TrackingEvent{event}, order.Tracking.History...)

	m.persist(ctx)
	return true
}

// Cancel moves the order to cancelled. The status machine only allows this
// from pending, so a shipped order reports false.
func (m *Manager) Cancel(ctx context.Context, id string, event domain.TrackingEvent) bool {
	return m.Advance(ctx, id, domain.OrderStatusCancelled, event)
}

func (m *Manager) persist(ctx context.Context) {
	store.Save(ctx, m.adapter, storageKey, m.orders)
}

func (m *Manager) indexOf(id string) int {
	for i, order := range m.orders {
		if order.ID == id {
			return i
		}
	}
	return -1
}
