package request

type WorkerProfileUpdateRequest struct {
	Skills          *string  `json:"skills,omitempty" validate:"omitempty,min=1,max=300"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,min=0,max=60"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=Available Booked"`
	Bio             *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvailableDate   *string  `json:"available_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
