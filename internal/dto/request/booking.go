package request

type CreateBookingRequest struct {
	MachineryID *string `json:"machinery_id,omitempty" validate:"omitempty,uuid4"`
	WorkerID    *string `json:"worker_id,omitempty" validate:"omitempty,uuid4"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Hours       *int    `json:"hours,omitempty" validate:"omitempty,min=1,max=24"`
}

type ProcessPaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=UPI Card NetBanking Cash Razorpay"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}
