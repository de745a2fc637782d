package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// statusRank orders the forward-moving part of the machine.
// Terminal states sit above everything a simulator step can produce.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
	OrderStatusCancelled:  5,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is legal.
// Status only moves forward; cancellation is allowed from pending only,
// and terminal states accept no further transitions.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == OrderStatusDelivered || s == OrderStatusCancelled {
		return false
	}
	if next == OrderStatusCancelled {
		return s == OrderStatusPending
	}
	return statusRank[next] > statusRank[s]
}

type Order struct {
	ID              string        `json:"id"`
	OrderNumber     string        `json:"orderNumber"`
	Date            time.Time     `json:"date"`
	Status          OrderStatus   `json:"status"`
	Subtotal        Money         `json:"subtotal"`
	Shipping        Money         `json:"shipping"`
	Tax             Money         `json:"tax"`
	Total           Money         `json:"total"`
	Items           []OrderItem   `json:"items"`
	ShippingAddress Address       `json:"shippingAddress"`
	BillingAddress  *Address      `json:"billingAddress,omitempty"`
	Payment         PaymentMethod `json:"payment"`
	Tracking        *TrackingInfo `json:"tracking,omitempty"`
}

type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     Money  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type TrackingInfo struct {
	Carrier           string      `json:"carrier"`
	TrackingNumber    string      `json:"trackingNumber"`
	Status            OrderStatus `json:"status"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`

	// History is prepend-ordered: the most recent event is History[0].
	History []TrackingEvent `json:"history"`
}

type TrackingEvent struct {
	Date        time.Time   `json:"date"`
	Status      OrderStatus `json:"status"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
}

// Clone returns a copy sharing no mutable state with the receiver, so a
// caller-held order can never alias the manager's in-memory collection.
func (o Order) Clone() Order {
	dup := o

	if len(o.Items) > 0 {
		dup.Items = make([]OrderItem, len(o.Items))
		copy(dup.Items, o.Items)
	}

	if o.BillingAddress != nil {
		addr := *o.BillingAddress
		dup.BillingAddress = &addr
	}

	if o.Tracking != nil {
		tracking := *o.Tracking
		if len(o.Tracking.History) > 0 {
			tracking.History = make([]TrackingEvent, len(o.Tracking.History))
			copy(tracking.History, o.Tracking.History)
		}
		dup.Tracking = &tracking
	}

	return dup
}

// NewOrderID returns a fresh order id.
func NewOrderID() string {
	return uuid.NewString()
}

// NewOrderNumber derives a short human-facing order number.
func NewOrderNumber(at time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("ORD-%s-%X", at.Format("20060102"), id[:4])
}
