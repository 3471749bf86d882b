package response

import (
	"time"

	"unimarket/internal/usecase"
)

type ValidationFailureResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Bound   string `json:"bound,omitempty"`
}

type ValidationResponse struct {
	Valid    bool                        `json:"valid"`
	Failures []ValidationFailureResponse `json:"failures,omitempty"`
}

func FromValidationResult(r usecase.ValidationResult) ValidationResponse {
	resp := ValidationResponse{Valid: r.OK()}
	for _, f := range r.Failures {
		fr := ValidationFailureResponse{
			Reason:  string(f.Reason),
			Message: f.Message,
		}
		if f.Bound != nil {
			fr.Bound = f.Bound.Format("2006-01-02")
		}
		resp.Failures = append(resp.Failures, fr)
	}
	return resp
}

type DateWindowResponse struct {
	EarliestAllowed string `json:"earliest_allowed"`
	LatestDelivery  string `json:"latest_delivery"`
	LatestValidity  string `json:"latest_validity"`
}

type SessionResponse struct {
	SessionID         string             `json:"session_id"`
	OrderID           string             `json:"order_id"`
	State             string             `json:"state"`
	ComputedTotalCost int64              `json:"computed_total_cost"`
	UnpricedLineIDs   []string           `json:"unpriced_line_ids,omitempty"`
	LeadTimeDays      *int               `json:"lead_time_days,omitempty"`
	LeadTimeUnknown   bool               `json:"lead_time_unknown"`
	Window            DateWindowResponse `json:"window"`
	CreatedAt         time.Time          `json:"created_at"`
}

func FromSession(s usecase.QuotationSession) SessionResponse {
	return SessionResponse{
		SessionID:         s.ID,
		OrderID:           s.Order.ID,
		State:             string(s.State),
		ComputedTotalCost: s.CostBaseline.TotalCost,
		UnpricedLineIDs:   s.CostBaseline.UnpricedLineIDs,
		LeadTimeDays:      s.LeadTimeDays,
		LeadTimeUnknown:   s.LeadTimeUnknown,
		Window: DateWindowResponse{
			EarliestAllowed: s.Window.EarliestAllowed.Format("2006-01-02"),
			LatestDelivery:  s.Window.LatestDelivery.Format("2006-01-02"),
			LatestValidity:  s.Window.LatestValidity.Format("2006-01-02"),
		},
		CreatedAt: s.CreatedAt,
	}
}

type SubmitResponse struct {
	State                string             `json:"state"`
	RequiresConfirmation bool               `json:"requires_confirmation"`
	ComputedTotalCost    int64              `json:"computed_total_cost"`
	Validation           ValidationResponse `json:"validation"`
	EarlyDeliveryDate    string             `json:"early_delivery_date,omitempty"`
	AcceptanceDeadline   string             `json:"acceptance_deadline,omitempty"`
}

func FromSubmitOutcome(o usecase.SubmitOutcome) SubmitResponse {
	resp := SubmitResponse{
		State:                string(o.State),
		RequiresConfirmation: o.RequiresConfirmation,
		ComputedTotalCost:    o.ComputedTotalCost,
		Validation:           FromValidationResult(o.Validation),
	}
	if o.Payload != nil {
		resp.EarlyDeliveryDate = o.Payload.EarlyDeliveryDate
		resp.AcceptanceDeadline = o.Payload.AcceptanceDeadline
	}
	return resp
}
