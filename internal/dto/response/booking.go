package response

import (
	"time"

	"krishisetu/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	FarmerID      string               `json:"farmer_id"`
	FarmerName    string               `json:"farmer_name,omitempty"`
	MachineryID   *string              `json:"machinery_id,omitempty"`
	MachineryName string               `json:"machinery_name,omitempty"`
	WorkerID      *string              `json:"worker_id,omitempty"`
	WorkerName    string               `json:"worker_name,omitempty"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	TotalAmount   float64              `json:"total_amount"`
	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentState  `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Order   OrderResponse   `json:"order"`
}

// OrderResponse carries the gateway order the client needs to open checkout.
type OrderResponse struct {
	BookingID string  `json:"booking_id"`
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	KeyID     string  `json:"key_id"`
}

type PaymentResponse struct {
	ID              string    `json:"id"`
	BookingID       string    `json:"booking_id"`
	Amount          float64   `json:"amount"`
	Method          string    `json:"method"`
	Status          string    `json:"status"`
	TransactionDate time.Time `json:"transaction_date"`
}

type EarningResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	EarnedAt  time.Time `json:"earned_at"`
}

type EarningsSummaryResponse struct {
	Total    float64           `json:"total"`
	Earnings []EarningResponse `json:"earnings"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID.String(),
		FarmerID:      b.FarmerID.String(),
		StartDate:     b.StartDate.Format("2006-01-02"),
		EndDate:       b.EndDate.Format("2006-01-02"),
		TotalAmount:   b.TotalAmount,
		Status:        b.Status,
		PaymentStatus: b.PayStatus,
		CreatedAt:     b.CreatedAt,
	}

	if b.MachineryID != nil {
		id := b.MachineryID.String()
		resp.MachineryID = &id
	}
	if b.WorkerID != nil {
		id := b.WorkerID.String()
		resp.WorkerID = &id
	}

	return resp
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID.String(),
		BookingID:       p.BookingID.String(),
		Amount:          p.Amount,
		Method:          p.Method,
		Status:          p.Status,
		TransactionDate: p.TransactionDate,
	}
}

func EarningToResponse(e *entity.Earning) EarningResponse {
	return EarningResponse{
		ID:        e.ID.String(),
		BookingID: e.BookingID.String(),
		Amount:    e.Amount,
		EarnedAt:  e.EarnedAt,
	}
}
