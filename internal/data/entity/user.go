package entity

type UserRole string

const (
	RoleAdmin  UserRole = "Admin"
	RoleFarmer UserRole = "Farmer"
	RoleOwner  UserRole = "MachineryOwner"
	RoleWorker UserRole = "FarmWorker"
)

type User struct {
	Base
	Username      string   `db:"username"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password_hash"`
	FullName      string   `db:"full_name"`
	PhoneNumber   string   `db:"phone_number"`
	Role          UserRole `db:"role"`
	IsApproved    bool     `db:"is_approved"`
	EmailVerified bool     `db:"email_verified"`
}
