package entity

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "Available"
	StatusBooked      AvailabilityStatus = "Booked"
	StatusMaintenance AvailabilityStatus = "Maintenance"
)

type MachineryCategory struct {
	BaseSimple
	Name string `db:"name"`
}

type Machinery struct {
	Base
	OwnerID     uuid.UUID          `db:"owner_id"`
	CategoryID  uuid.UUID          `db:"category_id"`
	Name        string             `db:"name"`
	Description string             `db:"description"`
	RatePerHour float64            `db:"rate_per_hour"`
	RatePerDay  float64            `db:"rate_per_day"`
	Status      AvailabilityStatus `db:"availability_status"`
	// AvailableDate is the single provider-set slot. When set, bookings
	// collapse to this date and price as one day.
	AvailableDate *time.Time `db:"available_date"`
	ImageURL      *string    `db:"image_url"`
	IsApproved    bool       `db:"is_approved"`
}
