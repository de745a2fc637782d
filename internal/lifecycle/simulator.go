// Package lifecycle drives the simulated progression of a newly placed
// order through pending → confirmed → processing → shipped. Terminal states
// (delivered, cancelled) are never produced here; they take explicit action.
package lifecycle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nikolayk812/storefront-core/internal/domain"
	"github.com/nikolayk812/storefront-core/internal/orders"
)

// Step is one scheduled transition, delayed relative to scheduling time.
type Step struct {
	After       time.Duration
	Status      domain.OrderStatus
	Location    string
	Description string
}

// DefaultSteps mirrors the storefront's demo cadence.
func DefaultSteps() []Step {
	return []Step{
		{After: 3 * time.Second, Status: domain.OrderStatusConfirmed, Location: "Karachi Fulfillment Center", Description: "Order confirmed and payment verified"},
		{After: 8 * time.Second, Status: domain.OrderStatusProcessing, Location: "Karachi Fulfillment Center", Description: "Order is being picked and packed"},
		{After: 15 * time.Second, Status: domain.OrderStatusShipped, Location: "Karachi Dispatch Hub", Description: "Package handed to carrier"},
	}
}

type Simulator struct {
	mu      sync.Mutex
	manager *orders.Manager
	steps   []Step
	timers  map[string][]*time.Timer
	logger  *slog.Logger
	closed  bool
}

func New(manager *orders.Manager, steps []Step, logger *slog.Logger) *Simulator {
	if len(steps) == 0 {
		steps = DefaultSteps()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Simulator{
		manager: manager,
		steps:   steps,
		timers:  map[string][]*time.Timer{},
		logger:  logger,
	}
}

// Schedule arms one-shot timers for every step of the order's chain,
// replacing any schedule already pending for that id. Each step re-reads
// the order by id when it fires; an order removed mid-flight, or one whose
// status already passed the step's target, makes the step a silent no-op.
func (s *Simulator) Schedule(ctx context.Context, orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.stopLocked(orderID)

	timers := make([]*time.Timer, 0, len(s.steps))
	for _, step := range s.steps {
		timers = append(timers, time.AfterFunc(step.After, func() {
			s.fire(ctx, orderID, step)
		}))
	}
	s.timers[orderID] = timers
}

func (s *Simulator) fire(ctx context.Context, orderID string, step Step) {
	event := domain.TrackingEvent{
		Date:        time.Now(),
		Location:    step.Location,
		Description: step.Description,
	}

	if !s.manager.Advance(ctx, orderID, step.Status, event) {
		s.logger.Debug("order transition skipped", "orderID", orderID, "status", step.Status)
	}
}

// CancelOrder stops every pending transition for the order as a group.
// Idempotent: cancelling an unknown or already-settled schedule is a no-op.
func (s *Simulator) CancelOrder(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked(orderID)
}

// Close cancels all pending transitions for all orders. Steps that already
// fired are unaffected; none fire afterwards.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for orderID := range s.timers {
		s.stopLocked(orderID)
	}
}

func (s *Simulator) stopLocked(orderID string) {
	for _, timer := range s.timers[orderID] {
		timer.Stop()
	}
	delete(s.timers, orderID)
}
