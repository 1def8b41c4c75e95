package request

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password"`
	FullName    string `json:"full_name" validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,inmobile"`
	Role        string `json:"role" validate:"required,oneof=Farmer MachineryOwner FarmWorker Admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}
