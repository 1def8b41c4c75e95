package entity

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	BaseSimple
	BookingID       uuid.UUID `db:"booking_id"`
	Amount          float64   `db:"amount"`
	Method          string    `db:"payment_method"`
	Status          string    `db:"status"`
	TransactionDate time.Time `db:"transaction_date"`
}

type Earning struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	BookingID uuid.UUID `db:"booking_id"`
	Amount    float64   `db:"amount"`
	EarnedAt  time.Time `db:"earned_at"`
}
