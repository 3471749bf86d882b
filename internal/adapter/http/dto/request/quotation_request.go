package request

import (
	"errors"
	"strings"
	"time"

	"unimarket/internal/domain/entities"
)

var (
	ErrInvalidDate                = errors.New("invalid date, expected yyyy-mm-dd")
	ErrDeliverySelectionNeeded    = errors.New("either delivery_date or delivery_days is required")
	ErrDeliverySelectionAmbiguous = errors.New("delivery_date and delivery_days are mutually exclusive")
)

// QuotationSessionOpenRequest opens an authoring session for one order.
type QuotationSessionOpenRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

func (r QuotationSessionOpenRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

// QuotationDraftRequest carries the factory's draft fields. Delivery is
// expressed either as an explicit calendar date or as a day count relative
// to the order date, never both.
type QuotationDraftRequest struct {
	TotalPrice   int64   `json:"total_price" binding:"required"`
	DepositRate  float64 `json:"deposit_rate" binding:"required"`
	DeliveryDate string  `json:"delivery_date"`
	DeliveryDays *int    `json:"delivery_days"`
	ValidUntil   string  `json:"valid_until" binding:"required"`
	Note         string  `json:"note"`
}

// ResolveDraft translates the wire payload into the domain draft.
func (r QuotationDraftRequest) ResolveDraft() (entities.QuotationDraft, error) {
	draft := entities.QuotationDraft{
		TotalPrice:  r.TotalPrice,
		DepositRate: r.DepositRate,
		Note:        strings.TrimSpace(r.Note),
	}

	validUntil, err := parseDate(r.ValidUntil)
	if err != nil {
		return entities.QuotationDraft{}, err
	}
	draft.ValidUntil = validUntil

	hasDate := strings.TrimSpace(r.DeliveryDate) != ""
	hasDays := r.DeliveryDays != nil
	switch {
	case hasDate && hasDays:
		return entities.QuotationDraft{}, ErrDeliverySelectionAmbiguous
	case hasDate:
		d, err := parseDate(r.DeliveryDate)
		if err != nil {
			return entities.QuotationDraft{}, err
		}
		draft.Delivery = entities.DeliverySelection{Date: &d}
	case hasDays:
		days := *r.DeliveryDays
		draft.Delivery = entities.DeliverySelection{DayOffset: &days}
	default:
		return entities.QuotationDraft{}, ErrDeliverySelectionNeeded
	}

	return draft, nil
}

// QuotationSubmitRequest triggers a submit attempt. force confirms a price
// below the computed material cost; it never bypasses hard constraints.
type QuotationSubmitRequest struct {
	Force bool `json:"force"`
}

// parseDate accepts an ISO calendar date, falling back to RFC 3339 for
// clients that send full timestamps.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
