package usecase

import (
	"time"

	"unimarket/internal/domain/entities"
)

// Fixed bracketing phases around the per-milestone entries.
const (
	phaseTitleStart     = "Order placed"
	phaseTitleAwaiting  = "Awaiting milestone assignment"
	phaseTitleDeliver   = "Delivering"
	phaseTitleCompleted = "Completed"
)

// DeriveProgress turns an order and its raw milestone records into the
// ordered, displayable timeline. Pure function: no side effects, identical
// output for identical snapshots, recomputed on every call because the
// classification depends on live order status.
//
// Sequence: a fixed start phase (always completed, dated at the order
// date), one phase per milestone, a fixed delivering phase, and a fixed
// completed phase. An order with no milestones yet collapses to a single
// not-started placeholder: it looks terminal but only means the order has
// not been scheduled.
func DeriveProgress(order entities.Order) entities.ProgressTimeline {
	if len(order.Milestones) == 0 {
		return finishTimeline([]entities.ProgressPhase{{
			Title:       phaseTitleAwaiting,
			Description: "The factory has not scheduled production milestones yet",
			State:       entities.PhaseNotStarted,
			Stage:       1,
		}})
	}

	phases := make([]entities.ProgressPhase, 0, len(order.Milestones)+3)

	orderDate := order.OrderDate
	phases = append(phases, entities.ProgressPhase{
		Title:       phaseTitleStart,
		Description: "The school confirmed the order",
		State:       entities.PhaseCompleted,
		Stage:       1,
		Date:        &orderDate,
	})

	allMilestonesDone := true
	for i, m := range order.Milestones {
		state := classifyMilestone(m.Status)
		if state != entities.PhaseCompleted {
			allMilestonesDone = false
		}

		stage := m.Stage
		if stage == 0 {
			stage = i + 2
		}

		phases = append(phases, entities.ProgressPhase{
			Title:       m.Name,
			Description: m.Description,
			State:       state,
			Stage:       stage,
			Date:        milestoneDate(m),
			VideoURL:    m.VideoURL,
		})
	}

	phases = append(phases, entities.ProgressPhase{
		Title:       phaseTitleDeliver,
		Description: "Finished uniforms are on the way to the school",
		State:       deliveringState(order.Status, allMilestonesDone),
		Stage:       len(order.Milestones) + 2,
	})

	completedState := entities.PhaseNotStarted
	if order.Status == entities.OrderStatusCompleted {
		completedState = entities.PhaseCompleted
	}
	phases = append(phases, entities.ProgressPhase{
		Title:       phaseTitleCompleted,
		Description: "The order has been delivered and closed",
		State:       completedState,
		Stage:       len(order.Milestones) + 3,
	})

	return finishTimeline(phases)
}

// classifyMilestone maps a factory-reported status onto a phase state.
// Unrecognized values count as not started.
func classifyMilestone(s entities.MilestoneStatus) entities.PhaseState {
	switch s {
	case entities.MilestoneStatusCompleted:
		return entities.PhaseCompleted
	case entities.MilestoneStatusProcessing:
		return entities.PhaseActive
	default:
		return entities.PhaseNotStarted
	}
}

// deliveringState classifies the fixed delivering phase. Payment-required
// fires while the order is still processing but every milestone is done:
// the factory has finished production and delivery is gated on the school's
// remaining payment. It takes precedence over not-started.
func deliveringState(status entities.OrderStatus, allMilestonesDone bool) entities.PhaseState {
	switch {
	case status == entities.OrderStatusCompleted:
		return entities.PhaseCompleted
	case status == entities.OrderStatusDelivering:
		return entities.PhaseActive
	case status == entities.OrderStatusProcessing && allMilestonesDone:
		return entities.PhasePaymentRequired
	default:
		return entities.PhaseNotStarted
	}
}

func milestoneDate(m entities.Milestone) *time.Time {
	if m.CompletedDate != nil {
		return m.CompletedDate
	}
	return m.StartDate
}

func finishTimeline(phases []entities.ProgressPhase) entities.ProgressTimeline {
	completed := 0
	for _, p := range phases {
		if p.State == entities.PhaseCompleted {
			completed++
		}
	}
	return entities.ProgressTimeline{
		Phases:          phases,
		CompletedPhases: completed,
		TotalPhases:     len(phases),
	}
}
