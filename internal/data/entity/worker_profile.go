package entity

import (
	"time"

	"github.com/google/uuid"
)

type WorkerProfile struct {
	Base
	WorkerID        uuid.UUID          `db:"worker_id"`
	Skills          string             `db:"skills"`
	ExperienceYears int                `db:"experience_years"`
	HourlyRate      float64            `db:"hourly_rate"`
	Status          AvailabilityStatus `db:"availability_status"`
	Bio             string             `db:"bio"`
	AvailableDate   *time.Time         `db:"available_date"`
	IsApproved      bool               `db:"is_approved"`
}
