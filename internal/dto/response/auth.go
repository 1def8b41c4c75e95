package response

import (
	"time"

	"krishisetu/internal/data/entity"
)

type AuthResponse struct {
	UserID     string          `json:"user_id"`
	Token      string          `json:"token,omitempty"`
	Email      string          `json:"email"`
	Username   string          `json:"username"`
	Role       entity.UserRole `json:"role"`
	IsApproved bool            `json:"is_approved"`
	IsVerified bool            `json:"is_verified"`
}

type UserResponse struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        entity.UserRole `json:"role"`
	IsApproved  bool            `json:"is_approved"`
	IsVerified  bool            `json:"is_verified"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		IsApproved:  user.IsApproved,
		IsVerified:  user.EmailVerified,
		CreatedAt:   user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string) AuthResponse {
	return AuthResponse{
		UserID:     user.ID.String(),
		Token:      token,
		Email:      user.Email,
		Username:   user.Username,
		Role:       user.Role,
		IsApproved: user.IsApproved,
		IsVerified: user.EmailVerified,
	}
}
