package response

import (
	"time"

	"krishisetu/internal/data/entity"
)

type WorkerProfileResponse struct {
	ID              string                    `json:"id"`
	WorkerID        string                    `json:"worker_id"`
	WorkerName      string                    `json:"worker_name,omitempty"`
	Skills          string                    `json:"skills"`
	ExperienceYears int                       `json:"experience_years"`
	HourlyRate      float64                   `json:"hourly_rate"`
	Status          entity.AvailabilityStatus `json:"status"`
	Bio             string                    `json:"bio,omitempty"`
	AvailableDate   *string                   `json:"available_date,omitempty"`
	IsApproved      bool                      `json:"is_approved"`
	CreatedAt       time.Time                 `json:"created_at"`
}

// Helper converters
func WorkerProfileToResponse(wp *entity.WorkerProfile) WorkerProfileResponse {
	resp := WorkerProfileResponse{
		ID:              wp.ID.String(),
		WorkerID:        wp.WorkerID.String(),
		Skills:          wp.Skills,
		ExperienceYears: wp.ExperienceYears,
		HourlyRate:      wp.HourlyRate,
		Status:          wp.Status,
		Bio:             wp.Bio,
		IsApproved:      wp.IsApproved,
		CreatedAt:       wp.CreatedAt,
	}

	if wp.AvailableDate != nil {
		date := wp.AvailableDate.Format("2006-01-02")
		resp.AvailableDate = &date
	}

	return resp
}
