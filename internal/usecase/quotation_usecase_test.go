package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"unimarket/internal/domain/entities"
	mock_interfaces "unimarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func quotableOrder() entities.Order {
	return entities.Order{
		ID:              "order-1",
		SchoolName:      "Springfield Elementary",
		OrderDate:       date(2025, 1, 1),
		Deadline:        date(2025, 3, 1),
		Status:          entities.OrderStatusPending,
		ShippingAddress: "12 School Lane, Springfield",
		Lines: []entities.OrderLine{
			{ID: "line-1", GarmentType: "shirt", Quantity: 100},
		},
	}
}

func baselineCosts() []entities.FabricCostLine {
	return []entities.FabricCostLine{
		{OrderDetailID: "line-1", PriceWithQty: 1_000_000},
	}
}

// passingDraft validates cleanly against quotableOrder with a 3-day lead.
func passingDraft(price int64) entities.QuotationDraft {
	return entities.QuotationDraft{
		TotalPrice:  price,
		DepositRate: 30,
		Delivery:    entities.DeliverySelection{Date: datePtr(date(2025, 2, 20))},
		ValidUntil:  date(2025, 2, 10),
	}
}

type quotationMocks struct {
	orders   *mock_interfaces.MockIOrderService
	fabric   *mock_interfaces.MockIFabricCostService
	shipping *mock_interfaces.MockIShippingEstimator
}

func newQuotationUseCase(ctrl *gomock.Controller) (*QuotationSessionUseCase, quotationMocks) {
	m := quotationMocks{
		orders:   mock_interfaces.NewMockIOrderService(ctrl),
		fabric:   mock_interfaces.NewMockIFabricCostService(ctrl),
		shipping: mock_interfaces.NewMockIShippingEstimator(ctrl),
	}
	uc := NewQuotationSessionUseCase(m.orders, m.fabric, m.shipping, "carrier-7")
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

// openSession drives a successful Open against the standard fixtures.
func openSession(t *testing.T, uc *QuotationSessionUseCase, m quotationMocks) QuotationSession {
	t.Helper()
	m.orders.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(quotableOrder(), nil)
	m.fabric.EXPECT().GetGarmentFabricForQuotation(gomock.Any(), "order-1").Return(baselineCosts(), nil)
	m.shipping.EXPECT().CalculateShippingTime(gomock.Any(), "carrier-7", "12 School Lane, Springfield").Return(int64(3), nil)

	s, err := uc.Open(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return s
}

func TestQuotationSessionUseCase_Open(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)

		s := openSession(t, uc, m)
		if s.State != SessionDrafting {
			t.Fatalf("expected drafting state, got %s", s.State)
		}
		if s.CostBaseline.TotalCost != 1_000_000 {
			t.Fatalf("expected baseline 1000000, got %d", s.CostBaseline.TotalCost)
		}
		if s.LeadTimeDays == nil || *s.LeadTimeDays != 3 {
			t.Fatalf("expected lead time 3, got %v", s.LeadTimeDays)
		}
		// deadline-1 minus the 3-day lead
		if !s.Window.LatestDelivery.Equal(date(2025, 2, 25)) {
			t.Fatalf("expected latest delivery 2025-02-25, got %v", s.Window.LatestDelivery)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)

		m.orders.EXPECT().GetOrderByID(gomock.Any(), "missing").Return(entities.Order{}, nil)
		if _, err := uc.Open(context.Background(), "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("cancelled order is not quotable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)

		order := quotableOrder()
		order.Status = entities.OrderStatusCancelled
		m.orders.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(order, nil)
		if _, err := uc.Open(context.Background(), "order-1"); !errors.Is(err, ErrOrderNotQuotable) {
			t.Fatalf("expected ErrOrderNotQuotable, got %v", err)
		}
	})

	t.Run("shipping failure degrades instead of blocking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)

		m.orders.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(quotableOrder(), nil)
		m.fabric.EXPECT().GetGarmentFabricForQuotation(gomock.Any(), "order-1").Return(baselineCosts(), nil)
		m.shipping.EXPECT().CalculateShippingTime(gomock.Any(), "carrier-7", gomock.Any()).
			Return(int64(0), errors.New("shipping service unavailable"))

		s, err := uc.Open(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("expected degraded open to succeed, got %v", err)
		}
		if !s.LeadTimeUnknown || s.LeadTimeDays != nil {
			t.Fatalf("expected unknown lead time, got %+v", s)
		}
		// Without a lead time the window stops at deadline-1.
		if !s.Window.LatestDelivery.Equal(date(2025, 2, 28)) {
			t.Fatalf("expected latest delivery 2025-02-28, got %v", s.Window.LatestDelivery)
		}
	})
}

func TestQuotationSessionUseCase_UpdateDraft(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newQuotationUseCase(ctrl)

		if _, err := uc.UpdateDraft(context.Background(), "nope", passingDraft(1_200_000)); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("returns the live validation result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		s := openSession(t, uc, m)

		res, err := uc.UpdateDraft(context.Background(), s.ID, passingDraft(1_200_000))
		if err != nil {
			t.Fatalf("update draft: %v", err)
		}
		if !res.OK() {
			t.Fatalf("expected valid draft, got %+v", res.Failures)
		}

		bad := passingDraft(1_200_000)
		bad.DepositRate = 0
		res, err = uc.UpdateDraft(context.Background(), s.ID, bad)
		if err != nil {
			t.Fatalf("update draft: %v", err)
		}
		if f := res.First(); f == nil || f.Reason != ReasonDepositRateOutOfRange {
			t.Fatalf("expected DepositRateOutOfRange, got %+v", res.Failures)
		}
	})
}

func TestQuotationSessionUseCase_Submit(t *testing.T) {
	t.Run("validation failure returns to drafting without any hand-off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		s := openSession(t, uc, m)

		bad := passingDraft(1_200_000)
		bad.TotalPrice = 5_000
		if _, err := uc.UpdateDraft(context.Background(), s.ID, bad); err != nil {
			t.Fatalf("update draft: %v", err)
		}

		outcome, err := uc.Submit(context.Background(), s.ID, false)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if outcome.State != SessionDrafting || outcome.Validation.OK() {
			t.Fatalf("expected drafting with failures, got %+v", outcome)
		}
	})

	t.Run("force does not bypass hard constraints", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		s := openSession(t, uc, m)

		bad := passingDraft(1_200_000)
		bad.TotalPrice = 5_000
		if _, err := uc.UpdateDraft(context.Background(), s.ID, bad); err != nil {
			t.Fatalf("update draft: %v", err)
		}

		outcome, err := uc.Submit(context.Background(), s.ID, true)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if outcome.State != SessionDrafting {
			t.Fatalf("expected drafting, got %s", outcome.State)
		}
		if f := outcome.Validation.First(); f == nil || f.Reason != ReasonPriceTooLow {
			t.Fatalf("expected PriceTooLow, got %+v", outcome.Validation.Failures)
		}
	})

	t.Run("price below material cost suspends until confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		s := openSession(t, uc, m)

		// 800k quote against a 1M computed material cost.
		if _, err := uc.UpdateDraft(context.Background(), s.ID, passingDraft(800_000)); err != nil {
			t.Fatalf("update draft: %v", err)
		}

		outcome, err := uc.Submit(context.Background(), s.ID, false)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if !outcome.RequiresConfirmation || outcome.State != SessionAwaitingConfirmation {
			t.Fatalf("expected confirmation suspend, got %+v", outcome)
		}
		if outcome.ComputedTotalCost != 1_000_000 {
			t.Fatalf("expected computed cost 1000000, got %d", outcome.ComputedTotalCost)
		}

		// The forced resubmission is the only call that reaches the
		// order-service, and it carries the exact confirmed draft.
		m.orders.EXPECT().CreateQuotation(gomock.Any(), entities.QuotationPayload{
			OrderID:            "order-1",
			EarlyDeliveryDate:  "2025-02-20",
			AcceptanceDeadline: "2025-02-10",
			Price:              800_000,
			DepositRate:        30,
		}).Return(nil)

		outcome, err = uc.Submit(context.Background(), s.ID, true)
		if err != nil {
			t.Fatalf("forced submit: %v", err)
		}
		if outcome.State != SessionSubmitted || outcome.Payload == nil {
			t.Fatalf("expected submitted with payload, got %+v", outcome)
		}
	})

	t.Run("upstream rejection keeps the draft and surfaces the message verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		s := openSession(t, uc, m)

		if _, err := uc.UpdateDraft(context.Background(), s.ID, passingDraft(1_200_000)); err != nil {
			t.Fatalf("update draft: %v", err)
		}

		m.orders.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).
			Return(errors.New("quotation already exists for this order"))

		outcome, err := uc.Submit(context.Background(), s.ID, false)
		if !errors.Is(err, ErrQuotationSubmitFailed) {
			t.Fatalf("expected ErrQuotationSubmitFailed, got %v", err)
		}
		if !strings.Contains(err.Error(), "quotation already exists for this order") {
			t.Fatalf("expected upstream message carried verbatim, got %q", err.Error())
		}
		if outcome.State != SessionDrafting {
			t.Fatalf("expected drafting after rejection, got %s", outcome.State)
		}

		// The session survives for another attempt.
		got, err := uc.Get(context.Background(), s.ID)
		if err != nil {
			t.Fatalf("get after rejection: %v", err)
		}
		if got.State != SessionDrafting {
			t.Fatalf("expected session back in drafting, got %s", got.State)
		}
	})

	t.Run("resubmitting a submitted session is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		s := openSession(t, uc, m)

		if _, err := uc.UpdateDraft(context.Background(), s.ID, passingDraft(1_200_000)); err != nil {
			t.Fatalf("update draft: %v", err)
		}
		m.orders.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(nil)
		if _, err := uc.Submit(context.Background(), s.ID, false); err != nil {
			t.Fatalf("submit: %v", err)
		}

		if _, err := uc.Submit(context.Background(), s.ID, false); !errors.Is(err, ErrSessionSubmitted) {
			t.Fatalf("expected ErrSessionSubmitted, got %v", err)
		}
	})

	t.Run("at most one submission in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		s := openSession(t, uc, m)

		if _, err := uc.UpdateDraft(context.Background(), s.ID, passingDraft(1_200_000)); err != nil {
			t.Fatalf("update draft: %v", err)
		}

		started := make(chan struct{})
		release := make(chan struct{})
		m.orders.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, entities.QuotationPayload) error {
				close(started)
				<-release
				return nil
			})

		done := make(chan error, 1)
		go func() {
			_, err := uc.Submit(context.Background(), s.ID, false)
			done <- err
		}()

		<-started
		if _, err := uc.Submit(context.Background(), s.ID, false); !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}
		if _, err := uc.UpdateDraft(context.Background(), s.ID, passingDraft(1_300_000)); !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight on draft edit, got %v", err)
		}

		close(release)
		if err := <-done; err != nil {
			t.Fatalf("first submission failed: %v", err)
		}
	})

	t.Run("abandonment discards an in-flight result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCase(ctrl)
		s := openSession(t, uc, m)

		if _, err := uc.UpdateDraft(context.Background(), s.ID, passingDraft(1_200_000)); err != nil {
			t.Fatalf("update draft: %v", err)
		}

		started := make(chan struct{})
		release := make(chan struct{})
		m.orders.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, entities.QuotationPayload) error {
				close(started)
				<-release
				return nil
			})

		done := make(chan error, 1)
		go func() {
			_, err := uc.Submit(context.Background(), s.ID, false)
			done <- err
		}()

		<-started
		if err := uc.Abandon(context.Background(), s.ID); err != nil {
			t.Fatalf("abandon: %v", err)
		}
		close(release)

		if err := <-done; !errors.Is(err, ErrSessionAbandoned) {
			t.Fatalf("expected ErrSessionAbandoned, got %v", err)
		}
		if _, err := uc.Get(context.Background(), s.ID); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected session gone, got %v", err)
		}
	})
}

func TestQuotationSessionUseCase_Abandon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newQuotationUseCase(ctrl)

	if err := uc.Abandon(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
