package entities

import "time"

// OrderStatus represents the lifecycle of a school order.
//
// Domain notes:
//   - The order-service is the source of truth for order state; this
//     service only reads it.
//   - "processing" covers the whole production window; the payment-required
//     affordance is derived from milestones, not stored here.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderLine is a single uniform line on a school order.
type OrderLine struct {
	ID          string
	GarmentType string
	Gender      string
	Size        string
	Quantity    int
}

// Order is a school order as fetched from the order-service. Immutable for
// this service's purposes.
type Order struct {
	ID              string
	SchoolName      string
	OrderDate       time.Time
	Deadline        time.Time
	Status          OrderStatus
	ShippingAddress string
	Lines           []OrderLine
	Milestones      []Milestone
}
