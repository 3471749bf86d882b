package usecase

import (
	"fmt"
	"time"

	"unimarket/internal/domain/entities"
)

// Quotation price window, minor-unit-free currency integers.
const (
	MinQuotationPrice int64 = 10_000
	MaxQuotationPrice int64 = 200_000_000
)

// Deposit rate window, percent.
const (
	MinDepositRate = 0.1
	MaxDepositRate = 100.0
)

const isoDate = "2006-01-02"

// ValidationReason is a stable reason code for a rejected quotation draft.
type ValidationReason string

const (
	ReasonPriceTooLow                         ValidationReason = "PriceTooLow"
	ReasonPriceTooHigh                        ValidationReason = "PriceTooHigh"
	ReasonDepositRateOutOfRange               ValidationReason = "DepositRateOutOfRange"
	ReasonDeliveryOffsetTooSmall              ValidationReason = "DeliveryOffsetTooSmall"
	ReasonValidUntilTooSoon                   ValidationReason = "ValidUntilTooSoon"
	ReasonDeliveryExceedsWindow               ValidationReason = "DeliveryExceedsWindow"
	ReasonValidUntilTooLateRelativeToDelivery ValidationReason = "ValidUntilTooLateRelativeToDelivery"
	ReasonValidUntilTooLateRelativeToDeadline ValidationReason = "ValidUntilTooLateRelativeToDeadline"
)

// ValidationFailure carries the reason code plus a message a UI can render
// without further lookups. Bound is the violated calendar bound when the
// failure is date-related.
type ValidationFailure struct {
	Reason  ValidationReason
	Message string
	Bound   *time.Time
}

// ValidationResult is the outcome of validating a whole draft. Failures
// holds every currently-failing rule in rule order, so the first entry is
// the rule a sequential validator would have stopped at.
type ValidationResult struct {
	Failures         []ValidationFailure
	ResolvedDelivery time.Time
	Window           DateWindow
}

func (r ValidationResult) OK() bool {
	return len(r.Failures) == 0
}

// First returns the highest-priority failure.
func (r ValidationResult) First() *ValidationFailure {
	if len(r.Failures) == 0 {
		return nil
	}
	return &r.Failures[0]
}

// DateWindow holds the derived calendar bounds for a quoting session, all
// inclusive and at day granularity.
type DateWindow struct {
	EarliestAllowed time.Time
	LatestDelivery  time.Time
	LatestValidity  time.Time
}

// DateWindowContext is everything external the validator needs: the order's
// fixed dates, the optional shipping lead time, and the current instant.
// A nil LeadTimeDays means the shipping lookup failed or is pending; the
// delivery window simply widens (degraded mode, never a hard stop).
type DateWindowContext struct {
	OrderDate    time.Time
	Deadline     time.Time
	LeadTimeDays *int
	Now          time.Time
}

// NormalizeLeadTime interprets the raw upstream leadtime value.
//
// Upstream rule, preserved as-is: value greater than current epoch seconds
// means an absolute future instant, so the day count is derived by
// subtracting current time; otherwise the value is a literal day count.
// The dual representation is a pre-existing ambiguity in the shipping
// collaborator's contract.
func NormalizeLeadTime(raw int64, now time.Time) int {
	if raw > now.Unix() {
		days := int((raw - now.Unix()) / 86400)
		if days < 0 {
			return 0
		}
		return days
	}
	if raw < 0 {
		return 0
	}
	return int(raw)
}

// dayStart truncates an instant to its calendar day.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// ResolveWindow derives the calendar bounds for a session.
//
//   - EarliestAllowed: tomorrow, for both delivery and validity dates.
//   - LatestDelivery: deadline-1 day, further reduced by the shipping lead
//     time when known. Non-increasing in lead time.
//   - LatestValidity: min(LatestDelivery-2 days, deadline-1 day); this is
//     the display bound before a delivery candidate exists. Validation of a
//     concrete draft tightens the delivery-relative side to the chosen
//     delivery date minus 2 days.
func ResolveWindow(wctx DateWindowContext) DateWindow {
	earliest := addDays(dayStart(wctx.Now), 1)

	latestDelivery := addDays(dayStart(wctx.Deadline), -1)
	if wctx.LeadTimeDays != nil && *wctx.LeadTimeDays > 0 {
		latestDelivery = addDays(latestDelivery, -*wctx.LeadTimeDays)
	}

	latestValidity := addDays(latestDelivery, -2)
	if deadlineBound := addDays(dayStart(wctx.Deadline), -1); deadlineBound.Before(latestValidity) {
		latestValidity = deadlineBound
	}

	return DateWindow{
		EarliestAllowed: earliest,
		LatestDelivery:  latestDelivery,
		LatestValidity:  latestValidity,
	}
}

// resolveDelivery turns the draft's delivery selection into a calendar
// date. An explicit date wins; a day offset counts from the order date.
func resolveDelivery(sel entities.DeliverySelection, orderDate time.Time) (time.Time, bool) {
	if sel.Date != nil {
		return dayStart(*sel.Date), true
	}
	if sel.DayOffset != nil {
		return addDays(dayStart(orderDate), *sel.DayOffset), true
	}
	return time.Time{}, false
}

// ValidateDraft checks a quotation draft against every submission rule and
// returns all currently-failing reasons, ordered so that the first failure
// matches the sequential rule order (price, deposit, delivery offset,
// validity lower bound, delivery upper bound, validity upper bound).
// All comparisons are at day granularity with inclusive bounds; a validity
// date at 23:59:59 on its last allowed day passes.
func ValidateDraft(d entities.QuotationDraft, wctx DateWindowContext) ValidationResult {
	window := ResolveWindow(wctx)
	res := ValidationResult{Window: window}

	if d.TotalPrice < MinQuotationPrice {
		res.fail(ReasonPriceTooLow, fmt.Sprintf("quoted price must be at least %d", MinQuotationPrice), nil)
	} else if d.TotalPrice > MaxQuotationPrice {
		res.fail(ReasonPriceTooHigh, fmt.Sprintf("quoted price must not exceed %d", MaxQuotationPrice), nil)
	}

	if d.DepositRate < MinDepositRate || d.DepositRate > MaxDepositRate {
		res.fail(ReasonDepositRateOutOfRange,
			fmt.Sprintf("deposit rate must be between %.1f%% and %.0f%%", MinDepositRate, MaxDepositRate), nil)
	}

	delivery, hasDelivery := resolveDelivery(d.Delivery, wctx.OrderDate)
	if !hasDelivery {
		res.fail(ReasonDeliveryOffsetTooSmall, "a delivery date or day count is required", nil)
	} else if d.Delivery.DayOffset != nil && *d.Delivery.DayOffset < 1 {
		res.fail(ReasonDeliveryOffsetTooSmall, "delivery must be at least 1 day after the order date", nil)
	}
	res.ResolvedDelivery = delivery

	validUntil := dayStart(d.ValidUntil)
	if validUntil.Before(window.EarliestAllowed) {
		res.fail(ReasonValidUntilTooSoon,
			fmt.Sprintf("the quotation must stay valid until at least %s", window.EarliestAllowed.Format(isoDate)),
			&window.EarliestAllowed)
	}

	if hasDelivery && delivery.After(window.LatestDelivery) {
		// The surfaced bound already includes the shipping-time reduction
		// when a lead time is known.
		res.fail(ReasonDeliveryExceedsWindow,
			fmt.Sprintf("delivery must be on or before %s", window.LatestDelivery.Format(isoDate)),
			&window.LatestDelivery)
	}

	if hasDelivery {
		deliveryBound := addDays(delivery, -2)
		deadlineBound := addDays(dayStart(wctx.Deadline), -1)
		if deliveryBound.Before(deadlineBound) || deliveryBound.Equal(deadlineBound) {
			if validUntil.After(deliveryBound) {
				res.fail(ReasonValidUntilTooLateRelativeToDelivery,
					fmt.Sprintf("the validity date must be on or before %s, 2 days ahead of delivery", deliveryBound.Format(isoDate)),
					&deliveryBound)
			}
		} else if validUntil.After(deadlineBound) {
			res.fail(ReasonValidUntilTooLateRelativeToDeadline,
				fmt.Sprintf("the validity date must be on or before %s, 1 day ahead of the deadline", deadlineBound.Format(isoDate)),
				&deadlineBound)
		}
	}

	return res
}

func (r *ValidationResult) fail(reason ValidationReason, message string, bound *time.Time) {
	f := ValidationFailure{Reason: reason, Message: message}
	if bound != nil {
		b := *bound
		f.Bound = &b
	}
	r.Failures = append(r.Failures, f)
}
