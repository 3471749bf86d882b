package entities

import "time"

// DeliverySelection is either an explicit delivery date or a day count
// relative to the order date. Exactly one side is set.
type DeliverySelection struct {
	Date      *time.Time
	DayOffset *int
}

// QuotationDraft is the factory's in-progress quotation for one order.
// Session-scoped and owned by the authoring session; it is never handed to
// the order-service until validation passes and, on a price shortfall, the
// factory has explicitly confirmed.
//
// Monetary representation:
//   - TotalPrice is a minor-unit-free currency integer.
//   - DepositRate is a percentage in [0.1, 100].
type QuotationDraft struct {
	TotalPrice  int64
	DepositRate float64
	Delivery    DeliverySelection
	ValidUntil  time.Time
	Note        string
}

// QuotationPayload is the finalized submission handed to the order-service.
// Dates are ISO calendar dates (yyyy-mm-dd).
type QuotationPayload struct {
	OrderID            string  `json:"orderId"`
	EarlyDeliveryDate  string  `json:"earlyDeliveryDate"`
	AcceptanceDeadline string  `json:"acceptanceDeadline"`
	Price              int64   `json:"price"`
	DepositRate        float64 `json:"depositRate"`
	Note               string  `json:"note"`
}
