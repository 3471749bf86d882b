package request

import (
	"errors"
	"testing"
	"time"
)

func TestQuotationSessionOpenRequest_ResolveOrderID(t *testing.T) {
	r := QuotationSessionOpenRequest{OrderID: "  order-1  "}
	if got := r.ResolveOrderID(); got != "order-1" {
		t.Fatalf("expected trimmed id, got %q", got)
	}
}

func TestQuotationDraftRequest_ResolveDraft(t *testing.T) {
	t.Run("explicit delivery date", func(t *testing.T) {
		r := QuotationDraftRequest{
			TotalPrice:   1_200_000,
			DepositRate:  30,
			DeliveryDate: "2025-02-20",
			ValidUntil:   "2025-02-10",
			Note:         "  includes embroidery  ",
		}
		draft, err := r.ResolveDraft()
		if err != nil {
			t.Fatalf("resolve draft: %v", err)
		}
		if draft.Delivery.Date == nil || !draft.Delivery.Date.Equal(time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected delivery %+v", draft.Delivery)
		}
		if draft.Note != "includes embroidery" {
			t.Fatalf("expected trimmed note, got %q", draft.Note)
		}
	})

	t.Run("delivery day count", func(t *testing.T) {
		days := 30
		r := QuotationDraftRequest{
			TotalPrice:   1_200_000,
			DepositRate:  30,
			DeliveryDays: &days,
			ValidUntil:   "2025-02-10",
		}
		draft, err := r.ResolveDraft()
		if err != nil {
			t.Fatalf("resolve draft: %v", err)
		}
		if draft.Delivery.DayOffset == nil || *draft.Delivery.DayOffset != 30 {
			t.Fatalf("unexpected delivery %+v", draft.Delivery)
		}
	})

	t.Run("both selections rejected", func(t *testing.T) {
		days := 30
		r := QuotationDraftRequest{
			TotalPrice:   1_200_000,
			DepositRate:  30,
			DeliveryDate: "2025-02-20",
			DeliveryDays: &days,
			ValidUntil:   "2025-02-10",
		}
		if _, err := r.ResolveDraft(); !errors.Is(err, ErrDeliverySelectionAmbiguous) {
			t.Fatalf("expected ErrDeliverySelectionAmbiguous, got %v", err)
		}
	})

	t.Run("neither selection rejected", func(t *testing.T) {
		r := QuotationDraftRequest{
			TotalPrice:  1_200_000,
			DepositRate: 30,
			ValidUntil:  "2025-02-10",
		}
		if _, err := r.ResolveDraft(); !errors.Is(err, ErrDeliverySelectionNeeded) {
			t.Fatalf("expected ErrDeliverySelectionNeeded, got %v", err)
		}
	})

	t.Run("rfc3339 timestamps accepted", func(t *testing.T) {
		r := QuotationDraftRequest{
			TotalPrice:   1_200_000,
			DepositRate:  30,
			DeliveryDate: "2025-02-20T00:00:00Z",
			ValidUntil:   "2025-02-10T15:04:05Z",
		}
		draft, err := r.ResolveDraft()
		if err != nil {
			t.Fatalf("resolve draft: %v", err)
		}
		if draft.ValidUntil.IsZero() || draft.Delivery.Date == nil {
			t.Fatalf("unexpected draft %+v", draft)
		}
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		r := QuotationDraftRequest{
			TotalPrice:   1_200_000,
			DepositRate:  30,
			DeliveryDate: "20/02/2025",
			ValidUntil:   "2025-02-10",
		}
		if _, err := r.ResolveDraft(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}
