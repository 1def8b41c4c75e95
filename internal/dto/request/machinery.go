package request

type MachineryRequest struct {
	CategoryID    string  `json:"category_id" validate:"required,uuid4"`
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Description   string  `json:"description" validate:"required,min=1,max=500"`
	RatePerHour   float64 `json:"rate_per_hour" validate:"required,gt=0"`
	RatePerDay    float64 `json:"rate_per_day" validate:"required,gt=0"`
	AvailableDate *string `json:"available_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type MachineryUpdateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
	RatePerHour   *float64 `json:"rate_per_hour,omitempty" validate:"omitempty,gt=0"`
	RatePerDay    *float64 `json:"rate_per_day,omitempty" validate:"omitempty,gt=0"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=Available Booked Maintenance"`
	AvailableDate *string  `json:"available_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}
