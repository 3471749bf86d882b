package usecase

import (
	"reflect"
	"testing"

	"unimarket/internal/domain/entities"
)

func milestone(name string, status entities.MilestoneStatus) entities.Milestone {
	return entities.Milestone{Name: name, Status: status}
}

func TestDeriveProgress_NoMilestones(t *testing.T) {
	order := entities.Order{
		ID:        "order-1",
		OrderDate: date(2025, 1, 1),
		Status:    entities.OrderStatusPending,
	}

	got := DeriveProgress(order)
	if got.TotalPhases != 1 || len(got.Phases) != 1 {
		t.Fatalf("expected a single placeholder phase, got %+v", got)
	}
	p := got.Phases[0]
	if p.Title != "Awaiting milestone assignment" || p.State != entities.PhaseNotStarted {
		t.Fatalf("unexpected placeholder phase %+v", p)
	}
	if got.CompletedPhases != 0 {
		t.Fatalf("expected 0 completed phases, got %d", got.CompletedPhases)
	}
}

func TestDeriveProgress_PhaseSequence(t *testing.T) {
	started := date(2025, 1, 10)
	done := date(2025, 1, 15)
	order := entities.Order{
		ID:        "order-1",
		OrderDate: date(2025, 1, 1),
		Status:    entities.OrderStatusProcessing,
		Milestones: []entities.Milestone{
			{Name: "Cutting", Status: entities.MilestoneStatusCompleted, StartDate: &started, CompletedDate: &done},
			{Name: "Sewing", Status: entities.MilestoneStatusProcessing, StartDate: &started, VideoURL: "https://cdn.example.com/sewing.mp4"},
			milestone("Finishing", entities.MilestoneStatusPending),
		},
	}

	got := DeriveProgress(order)
	if got.TotalPhases != 6 {
		t.Fatalf("expected 6 phases (start + 3 milestones + delivering + completed), got %d", got.TotalPhases)
	}

	wantTitles := []string{"Order placed", "Cutting", "Sewing", "Finishing", "Delivering", "Completed"}
	wantStates := []entities.PhaseState{
		entities.PhaseCompleted,
		entities.PhaseCompleted,
		entities.PhaseActive,
		entities.PhaseNotStarted,
		entities.PhaseNotStarted,
		entities.PhaseNotStarted,
	}
	for i, p := range got.Phases {
		if p.Title != wantTitles[i] {
			t.Fatalf("phase %d: expected title %q, got %q", i, wantTitles[i], p.Title)
		}
		if p.State != wantStates[i] {
			t.Fatalf("phase %d: expected state %s, got %s", i, wantStates[i], p.State)
		}
		if p.Stage != i+1 {
			t.Fatalf("phase %d: expected stage %d, got %d", i, i+1, p.Stage)
		}
	}

	// The completed milestone surfaces its completion date, the active one
	// its start date.
	if d := got.Phases[1].Date; d == nil || !d.Equal(done) {
		t.Fatalf("expected completion date on finished milestone, got %v", d)
	}
	if d := got.Phases[2].Date; d == nil || !d.Equal(started) {
		t.Fatalf("expected start date on active milestone, got %v", d)
	}
	if got.Phases[2].VideoURL != "https://cdn.example.com/sewing.mp4" {
		t.Fatalf("expected video url carried through, got %q", got.Phases[2].VideoURL)
	}
	if got.CompletedPhases != 2 {
		t.Fatalf("expected 2 completed phases, got %d", got.CompletedPhases)
	}
}

func TestDeriveProgress_ExplicitStagePreserved(t *testing.T) {
	order := entities.Order{
		OrderDate: date(2025, 1, 1),
		Status:    entities.OrderStatusProcessing,
		Milestones: []entities.Milestone{
			{Name: "Cutting", Status: entities.MilestoneStatusPending, Stage: 7},
			milestone("Sewing", entities.MilestoneStatusPending),
		},
	}

	got := DeriveProgress(order)
	if got.Phases[1].Stage != 7 {
		t.Fatalf("expected factory-set stage 7 preserved, got %d", got.Phases[1].Stage)
	}
	if got.Phases[2].Stage != 3 {
		t.Fatalf("expected defaulted stage 3, got %d", got.Phases[2].Stage)
	}
}

func TestDeriveProgress_DeliveringStates(t *testing.T) {
	base := entities.Order{
		OrderDate: date(2025, 1, 1),
		Milestones: []entities.Milestone{
			milestone("Cutting", entities.MilestoneStatusCompleted),
			milestone("Sewing", entities.MilestoneStatusCompleted),
			milestone("Finishing", entities.MilestoneStatusCompleted),
		},
	}
	deliveringAt := func(tl entities.ProgressTimeline) entities.ProgressPhase {
		return tl.Phases[len(tl.Phases)-2]
	}

	t.Run("payment required while processing with all milestones done", func(t *testing.T) {
		order := base
		order.Status = entities.OrderStatusProcessing
		if p := deliveringAt(DeriveProgress(order)); p.State != entities.PhasePaymentRequired {
			t.Fatalf("expected payment_required, got %s", p.State)
		}
	})

	t.Run("not started while a milestone remains open", func(t *testing.T) {
		order := base
		order.Status = entities.OrderStatusProcessing
		order.Milestones = append([]entities.Milestone{}, base.Milestones...)
		order.Milestones[2] = milestone("Finishing", entities.MilestoneStatusProcessing)
		if p := deliveringAt(DeriveProgress(order)); p.State != entities.PhaseNotStarted {
			t.Fatalf("expected not_started, got %s", p.State)
		}
	})

	t.Run("active while delivering", func(t *testing.T) {
		order := base
		order.Status = entities.OrderStatusDelivering
		if p := deliveringAt(DeriveProgress(order)); p.State != entities.PhaseActive {
			t.Fatalf("expected active, got %s", p.State)
		}
	})

	t.Run("completed order closes both trailing phases", func(t *testing.T) {
		order := base
		order.Status = entities.OrderStatusCompleted
		tl := DeriveProgress(order)
		if p := deliveringAt(tl); p.State != entities.PhaseCompleted {
			t.Fatalf("expected delivering completed, got %s", p.State)
		}
		if last := tl.Phases[len(tl.Phases)-1]; last.State != entities.PhaseCompleted {
			t.Fatalf("expected final phase completed, got %s", last.State)
		}
		if tl.CompletedPhases != tl.TotalPhases {
			t.Fatalf("expected every phase completed, got %d/%d", tl.CompletedPhases, tl.TotalPhases)
		}
	})
}

func TestDeriveProgress_Idempotent(t *testing.T) {
	started := date(2025, 1, 10)
	order := entities.Order{
		ID:        "order-1",
		OrderDate: date(2025, 1, 1),
		Status:    entities.OrderStatusProcessing,
		Milestones: []entities.Milestone{
			{Name: "Cutting", Status: entities.MilestoneStatusProcessing, StartDate: &started},
			milestone("Sewing", entities.MilestoneStatusAssigned),
		},
	}

	first := DeriveProgress(order)
	for i := 0; i < 3; i++ {
		if again := DeriveProgress(order); !reflect.DeepEqual(first, again) {
			t.Fatalf("call %d diverged from the first derivation", i)
		}
	}
}

func TestClassifyMilestone_UnknownStatus(t *testing.T) {
	if got := classifyMilestone(entities.MilestoneStatus("weird")); got != entities.PhaseNotStarted {
		t.Fatalf("expected unknown status to map to not_started, got %s", got)
	}
}
