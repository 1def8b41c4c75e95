package response

import (
	"time"

	"krishisetu/internal/data/entity"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id"`
	ReviewerID   string    `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Helper converters
func ReviewToResponse(rv *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         rv.ID.String(),
		BookingID:  rv.BookingID.String(),
		ReviewerID: rv.ReviewerID.String(),
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		CreatedAt:  rv.CreatedAt,
	}
}
