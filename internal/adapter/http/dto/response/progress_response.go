package response

import (
	"time"

	"unimarket/internal/domain/entities"
)

type ProgressPhaseResponse struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	Stage       int        `json:"stage"`
	Date        *time.Time `json:"date,omitempty"`
	VideoURL    string     `json:"video_url,omitempty"`
}

type ProgressResponse struct {
	Phases          []ProgressPhaseResponse `json:"phases"`
	CompletedPhases int                     `json:"completed_phases"`
	TotalPhases     int                     `json:"total_phases"`
}

func FromProgressTimeline(t entities.ProgressTimeline) ProgressResponse {
	phases := make([]ProgressPhaseResponse, 0, len(t.Phases))
	for _, p := range t.Phases {
		phases = append(phases, ProgressPhaseResponse{
			Title:       p.Title,
			Description: p.Description,
			State:       string(p.State),
			Stage:       p.Stage,
			Date:        p.Date,
			VideoURL:    p.VideoURL,
		})
	}
	return ProgressResponse{
		Phases:          phases,
		CompletedPhases: t.CompletedPhases,
		TotalPhases:     t.TotalPhases,
	}
}
