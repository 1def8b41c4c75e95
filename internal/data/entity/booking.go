package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type PaymentState string

const (
	PaymentStatePending PaymentState = "Pending"
	PaymentStatePaid    PaymentState = "Paid"
)

type Booking struct {
	Base
	FarmerID    uuid.UUID     `db:"farmer_id"`
	MachineryID *uuid.UUID    `db:"machinery_id"`
	WorkerID    *uuid.UUID    `db:"worker_id"` // references worker_profiles.id
	StartDate   time.Time     `db:"start_date"`
	EndDate     time.Time     `db:"end_date"`
	TotalAmount float64       `db:"total_amount"`
	Status      BookingStatus `db:"status"`
	PayStatus   PaymentState  `db:"payment_status"`
	// OrderID is the gateway order reference, set when the payment order is
	// created. The verify endpoint resolves bookings by it.
	OrderID *string `db:"order_id"`
}
