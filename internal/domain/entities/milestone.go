package entities

import "time"

// MilestoneStatus is the production status reported by the factory for one
// milestone. Unrecognized values are treated as not started.

type MilestoneStatus string

const (
	MilestoneStatusAssigned   MilestoneStatus = "assigned"
	MilestoneStatusPending    MilestoneStatus = "pending"
	MilestoneStatusProcessing MilestoneStatus = "processing"
	MilestoneStatusCompleted  MilestoneStatus = "completed"
)

// Milestone is a named production stage on an order. Read-only here; the
// factory reports them through the order-service.
type Milestone struct {
	Name          string
	Description   string
	Status        MilestoneStatus
	StartDate     *time.Time
	EndDate       *time.Time
	CompletedDate *time.Time
	Stage         int
	VideoURL      string
}
