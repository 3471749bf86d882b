package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"unimarket/internal/domain/entities"
	"unimarket/internal/logger"
	"unimarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound    = errors.New("quotation session not found")
	ErrSessionAbandoned   = errors.New("quotation session abandoned")
	ErrSubmissionInFlight = errors.New("a submission is already in flight for this draft")
	ErrSessionSubmitted   = errors.New("quotation already submitted")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotQuotable   = errors.New("order is not open for quotation")
	// ErrQuotationSubmitFailed wraps the order-service failure; the upstream
	// message is carried verbatim so the UI can render it unchanged.
	ErrQuotationSubmitFailed = errors.New("quotation submission failed")
)

// SessionState is the coordinator state of one authoring session.
//
// Drafting -> Validating -> AwaitingConfirmation -> Submitted, with
// Validating falling back to Drafting on any failure. AwaitingConfirmation
// is a suspend point: the factory must explicitly resubmit with force.

type SessionState string

const (
	SessionDrafting             SessionState = "drafting"
	SessionValidating           SessionState = "validating"
	SessionAwaitingConfirmation SessionState = "awaiting_confirmation"
	SessionSubmitted            SessionState = "submitted"
)

// QuotationSession is one factory's authoring session for one order. The
// draft inside is exclusively owned by this session; nothing is persisted
// until a submission succeeds.
type QuotationSession struct {
	ID    string
	Order entities.Order
	Draft entities.QuotationDraft
	State SessionState

	// Nil when the shipping lookup failed or is unresolved; the delivery
	// window simply widens (degraded mode).
	LeadTimeDays    *int
	LeadTimeUnknown bool

	CostBaseline entities.FabricCostSummary
	Window       DateWindow
	CreatedAt    time.Time

	inFlight  bool
	abandoned bool
}

// SubmitOutcome reports where a submit attempt landed. Exactly one of the
// following holds: Validation has failures (back to drafting), confirmation
// is required (suspended), or Payload was handed to the order-service.
type SubmitOutcome struct {
	State                SessionState
	Validation           ValidationResult
	RequiresConfirmation bool
	ComputedTotalCost    int64
	Payload              *entities.QuotationPayload
}

// IQuotationSessionUseCase exposes the quotation authoring flow.

type IQuotationSessionUseCase interface {
	Open(ctx context.Context, orderID string) (QuotationSession, error)
	Get(ctx context.Context, sessionID string) (QuotationSession, error)
	UpdateDraft(ctx context.Context, sessionID string, draft entities.QuotationDraft) (ValidationResult, error)
	Submit(ctx context.Context, sessionID string, force bool) (SubmitOutcome, error)
	Abandon(ctx context.Context, sessionID string) error
}

type QuotationSessionUseCase struct {
	orders    interfaces.IOrderService
	fabric    interfaces.IFabricCostService
	shipping  interfaces.IShippingEstimator
	carrierID string

	mu       sync.Mutex
	sessions map[string]*QuotationSession

	now func() time.Time
}

var _ IQuotationSessionUseCase = (*QuotationSessionUseCase)(nil)

func NewQuotationSessionUseCase(
	orders interfaces.IOrderService,
	fabric interfaces.IFabricCostService,
	shipping interfaces.IShippingEstimator,
	carrierID string,
) *QuotationSessionUseCase {
	return &QuotationSessionUseCase{
		orders:    orders,
		fabric:    fabric,
		shipping:  shipping,
		carrierID: carrierID,
		sessions:  make(map[string]*QuotationSession),
		now:       time.Now,
	}
}

// Open starts an authoring session for an order: loads the order, computes
// the material-cost baseline, and resolves the shipping lead time. A failed
// shipping lookup is logged and degrades to an unconstrained window; it
// never blocks the session.
func (u *QuotationSessionUseCase) Open(ctx context.Context, orderID string) (QuotationSession, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "usecase"),
		zap.String("method", "Open"),
		zap.String("order_id", orderID),
	)

	order, err := u.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		log.Error("failed to load order", zap.Error(err))
		return QuotationSession{}, err
	}
	if order.ID == "" {
		return QuotationSession{}, ErrOrderNotFound
	}
	if order.Status == entities.OrderStatusCancelled || order.Status == entities.OrderStatusCompleted {
		return QuotationSession{}, ErrOrderNotQuotable
	}

	costs, err := u.fabric.GetGarmentFabricForQuotation(ctx, orderID)
	if err != nil {
		log.Error("failed to load fabric costs", zap.Error(err))
		return QuotationSession{}, err
	}

	s := &QuotationSession{
		ID:           uuid.NewString(),
		Order:        order,
		State:        SessionDrafting,
		CostBaseline: ComputeTotalCost(order, costs),
		CreatedAt:    u.now(),
	}

	raw, err := u.shipping.CalculateShippingTime(ctx, u.carrierID, order.ShippingAddress)
	if err != nil {
		// Lead time unknown: the delivery window widens instead of blocking.
		log.Warn("shipping lead time unavailable", zap.Error(err))
		s.LeadTimeUnknown = true
	} else {
		days := NormalizeLeadTime(raw, u.now())
		s.LeadTimeDays = &days
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.sessions[s.ID] = s

	log.Info("quotation session opened",
		zap.String("session_id", s.ID),
		zap.Int64("computed_total_cost", s.CostBaseline.TotalCost),
		zap.Bool("lead_time_unknown", s.LeadTimeUnknown),
	)
	return u.snapshotLocked(s), nil
}

func (u *QuotationSessionUseCase) Get(ctx context.Context, sessionID string) (QuotationSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, ok := u.sessions[sessionID]
	if !ok {
		return QuotationSession{}, ErrSessionNotFound
	}
	return u.snapshotLocked(s), nil
}

// UpdateDraft replaces the draft and returns the live validation result, so
// every field change surfaces all currently-failing reasons.
func (u *QuotationSessionUseCase) UpdateDraft(ctx context.Context, sessionID string, draft entities.QuotationDraft) (ValidationResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, ok := u.sessions[sessionID]
	if !ok {
		return ValidationResult{}, ErrSessionNotFound
	}
	if s.inFlight {
		return ValidationResult{}, ErrSubmissionInFlight
	}
	if s.State == SessionSubmitted {
		return ValidationResult{}, ErrSessionSubmitted
	}

	s.Draft = draft
	s.State = SessionDrafting
	return ValidateDraft(draft, u.windowContext(s)), nil
}

// Submit runs the full validation, then the price reconciliation, then the
// hand-off to the order-service.
//
// force skips only the soft price-shortfall confirmation; every hard
// constraint is re-checked on each call. At most one submission may be in
// flight per draft, and a result arriving after the session was abandoned
// is discarded without mutating anything.
func (u *QuotationSessionUseCase) Submit(ctx context.Context, sessionID string, force bool) (SubmitOutcome, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "usecase"),
		zap.String("method", "Submit"),
		zap.String("session_id", sessionID),
		zap.Bool("force", force),
	)

	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	if !ok {
		u.mu.Unlock()
		return SubmitOutcome{}, ErrSessionNotFound
	}
	if s.inFlight {
		u.mu.Unlock()
		return SubmitOutcome{}, ErrSubmissionInFlight
	}
	if s.State == SessionSubmitted {
		u.mu.Unlock()
		return SubmitOutcome{State: SessionSubmitted}, ErrSessionSubmitted
	}

	s.State = SessionValidating
	result := ValidateDraft(s.Draft, u.windowContext(s))
	outcome := SubmitOutcome{
		Validation:        result,
		ComputedTotalCost: s.CostBaseline.TotalCost,
	}

	if !result.OK() {
		s.State = SessionDrafting
		outcome.State = SessionDrafting
		u.mu.Unlock()
		log.Info("draft rejected", zap.String("reason", string(result.First().Reason)))
		return outcome, nil
	}

	if s.Draft.TotalPrice < s.CostBaseline.TotalCost && !force {
		// Soft warning, not an error: the factory is quoting below the
		// independently computed material cost and must confirm explicitly.
		s.State = SessionAwaitingConfirmation
		outcome.State = SessionAwaitingConfirmation
		outcome.RequiresConfirmation = true
		u.mu.Unlock()
		log.Info("price below material cost, awaiting confirmation",
			zap.Int64("price", s.Draft.TotalPrice),
			zap.Int64("computed_total_cost", outcome.ComputedTotalCost),
		)
		return outcome, nil
	}

	payload := entities.QuotationPayload{
		OrderID:            s.Order.ID,
		EarlyDeliveryDate:  result.ResolvedDelivery.Format(isoDate),
		AcceptanceDeadline: dayStart(s.Draft.ValidUntil).Format(isoDate),
		Price:              s.Draft.TotalPrice,
		DepositRate:        s.Draft.DepositRate,
		Note:               s.Draft.Note,
	}
	s.inFlight = true
	u.mu.Unlock()

	submitErr := u.orders.CreateQuotation(ctx, payload)

	u.mu.Lock()
	defer u.mu.Unlock()
	s.inFlight = false

	if s.abandoned {
		// The dialog was closed while the call was in flight; discard the
		// result without touching session state.
		log.Info("submission result discarded after abandonment")
		return SubmitOutcome{}, ErrSessionAbandoned
	}

	if submitErr != nil {
		s.State = SessionDrafting
		outcome.State = SessionDrafting
		log.Error("order service rejected quotation", zap.Error(submitErr))
		return outcome, fmt.Errorf("%w: %s", ErrQuotationSubmitFailed, submitErr.Error())
	}

	s.State = SessionSubmitted
	outcome.State = SessionSubmitted
	outcome.Payload = &payload
	log.Info("quotation submitted", zap.String("order_id", s.Order.ID), zap.Int64("price", payload.Price))
	return outcome, nil
}

// Abandon closes the authoring session. Any in-flight submission result is
// discarded on arrival.
func (u *QuotationSessionUseCase) Abandon(ctx context.Context, sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, ok := u.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	s.abandoned = true
	delete(u.sessions, sessionID)

	logger.FromCtx(ctx).Info("quotation session abandoned",
		zap.String("layer", "usecase"),
		zap.String("session_id", sessionID),
	)
	return nil
}

func (u *QuotationSessionUseCase) windowContext(s *QuotationSession) DateWindowContext {
	return DateWindowContext{
		OrderDate:    s.Order.OrderDate,
		Deadline:     s.Order.Deadline,
		LeadTimeDays: s.LeadTimeDays,
		Now:          u.now(),
	}
}

// snapshotLocked returns a value copy safe to hand outside the lock, with
// the derived date window filled in.
func (u *QuotationSessionUseCase) snapshotLocked(s *QuotationSession) QuotationSession {
	copied := *s
	copied.Window = ResolveWindow(u.windowContext(s))
	return copied
}
