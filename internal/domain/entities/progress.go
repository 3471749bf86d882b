package entities

import "time"

// PhaseState classifies a progress phase. Exactly one state applies per
// phase: modeling this as a closed enum (instead of four independent
// booleans) makes two-states-at-once unrepresentable. Payment-required
// takes precedence over not-started on the delivering phase.

type PhaseState string

const (
	PhaseNotStarted      PhaseState = "not_started"
	PhaseActive          PhaseState = "active"
	PhaseCompleted       PhaseState = "completed"
	PhasePaymentRequired PhaseState = "payment_required"
)

// ProgressPhase is one entry of the derived order timeline. Pure view
// state: recomputed from the (order, milestones) snapshot on every request,
// never persisted.
type ProgressPhase struct {
	Title       string
	Description string
	State       PhaseState
	Stage       int
	Date        *time.Time
	VideoURL    string
}

// ProgressTimeline is the ordered phase list plus live counters. The
// counters depend on order status, so they are recomputed per derivation,
// never cached.
type ProgressTimeline struct {
	Phases          []ProgressPhase
	CompletedPhases int
	TotalPhases     int
}
