package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is a state of the order lifecycle.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "nouveau"
	OrderStatusConfirmed OrderStatus = "confirmé"
	OrderStatusShipping  OrderStatus = "avec_livreur"
	OrderStatusDelivered OrderStatus = "livré"
	OrderStatusCancelled OrderStatus = "annulé"
)

// NoteSeparator joins successive notes appended to an order.
const NoteSeparator = "\n---\n"

// orderTransitions is the complete adjacency table of the lifecycle.
//
//nolint:gochecknoglobals
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:       {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipping, OrderStatusCancelled},
	OrderStatusShipping:  {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {OrderStatusCancelled},
	OrderStatusCancelled: {},
}

// OrderStatuses lists every status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusNew,
		OrderStatusConfirmed,
		OrderStatusShipping,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// AllowedTransitions returns the statuses reachable from s in one step.
func (s OrderStatus) AllowedTransitions() []OrderStatus {
	allowed := orderTransitions[s]
	out := make([]OrderStatus, len(allowed))
	copy(out, allowed)

	return out
}

// Order is a customer order with its line items.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	OrderNumber     int64       `json:"order_number"`
	CustomerID      uuid.UUID   `json:"customer_id"`
	ConversationID  *uuid.UUID  `json:"conversation_id,omitempty"`
	Status          OrderStatus `json:"status"`
	TotalAmount     int64       `json:"total_amount"`
	DeliveryService string      `json:"delivery_service"`
	TrackingNumber  string      `json:"tracking_number"`
	Notes           string      `json:"notes"`
	OrderDate       time.Time   `json:"order_date"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is one order line. Prices are snapshots taken when the line was first added.
type OrderItem struct {
	ID            uuid.UUID `json:"id"`
	OrderID       uuid.UUID `json:"order_id"`
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int       `json:"quantity"`
	SellingPrice  int64     `json:"selling_price"`
	PurchasePrice int64     `json:"purchase_price"`
}

// LineTotal is quantity times the selling price snapshot.
func (i OrderItem) LineTotal() int64 {
	return int64(i.Quantity) * i.SellingPrice
}

// CalculateTotal sums the line totals of items.
func CalculateTotal(items []OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.LineTotal()
	}

	return total
}

// ReservedQuantities returns the quantity held by the order per product.
func (o *Order) ReservedQuantities() map[uuid.UUID]int {
	reserved := make(map[uuid.UUID]int, len(o.Items))
	for _, item := range o.Items {
		reserved[item.ProductID] += item.Quantity
	}

	return reserved
}

// AppendNote adds note after the existing notes, keeping both.
func AppendNote(existing, note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return existing
	}
	if strings.TrimSpace(existing) == "" {
		return note
	}

	return existing + NoteSeparator + note
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status     *OrderStatus
	CustomerID *uuid.UUID
	Limit      int
	Offset     int
}

// SalesSummary aggregates orders over a period.
type SalesSummary struct {
	From           time.Time             `json:"from"`
	To             time.Time             `json:"to"`
	OrdersByStatus map[OrderStatus]int64 `json:"orders_by_status"`
	Revenue        int64                 `json:"revenue"`
	GrossProfit    int64                 `json:"gross_profit"`
}
