package response

import (
	"time"

	"krishisetu/internal/data/entity"
)

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MachineryResponse struct {
	ID            string                    `json:"id"`
	OwnerID       string                    `json:"owner_id"`
	OwnerName     string                    `json:"owner_name,omitempty"`
	CategoryID    string                    `json:"category_id"`
	CategoryName  string                    `json:"category_name,omitempty"`
	Name          string                    `json:"name"`
	Description   string                    `json:"description"`
	RatePerHour   float64                   `json:"rate_per_hour"`
	RatePerDay    float64                   `json:"rate_per_day"`
	Status        entity.AvailabilityStatus `json:"status"`
	AvailableDate *string                   `json:"available_date,omitempty"`
	ImageURL      *string                   `json:"image_url,omitempty"`
	IsApproved    bool                      `json:"is_approved"`
	CreatedAt     time.Time                 `json:"created_at"`
}

// Helper converters
func CategoryToResponse(c *entity.MachineryCategory) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID.String(),
		Name: c.Name,
	}
}

func MachineryToResponse(m *entity.Machinery) MachineryResponse {
	resp := MachineryResponse{
		ID:          m.ID.String(),
		OwnerID:     m.OwnerID.String(),
		CategoryID:  m.CategoryID.String(),
		Name:        m.Name,
		Description: m.Description,
		RatePerHour: m.RatePerHour,
		RatePerDay:  m.RatePerDay,
		Status:      m.Status,
		ImageURL:    m.ImageURL,
		IsApproved:  m.IsApproved,
		CreatedAt:   m.CreatedAt,
	}

	if m.AvailableDate != nil {
		date := m.AvailableDate.Format("2006-01-02")
		resp.AvailableDate = &date
	}

	return resp
}
