package usecase

import (
	"context"
	"fmt"
	"time"

	"krishisetu/internal/data/entity"
	"krishisetu/internal/data/repository"
	"krishisetu/internal/dto/request"
	"krishisetu/internal/dto/response"
	"krishisetu/pkg/mailer"
	"krishisetu/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Sender
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Sender,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	role := entity.UserRole(req.Role)
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		// Admins are trusted at creation, everyone else waits for approval.
		IsApproved:    role == entity.RoleAdmin,
		EmailVerified: false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	if role == entity.RoleWorker {
		profile := &entity.WorkerProfile{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			WorkerID:   user.ID,
			Status:     entity.StatusAvailable,
			IsApproved: false,
		}
		if err := s.repo.Worker.Create(ctx, profile); err != nil {
			s.log.Error("Failed to create worker profile",
				zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("failed to create account")
		}
	}

	go s.sendVerificationOTP(user.ID, user.Email)

	var token string
	if user.IsApproved {
		token, err = utils.GenerateToken(s.config.JWT, user.ID, string(user.Role))
		if err != nil {
			s.log.Warn("Failed to issue token after register",
				zap.Error(err), zap.String("user_id", user.ID.String()))
		}
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check credentials")
	}
	if user == nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Bad password attempt", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !user.IsApproved {
		return nil, fmt.Errorf("account pending admin approval")
	}

	token, err := utils.GenerateToken(s.config.JWT, user.ID, string(user.Role))
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to sign in")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	otp, err := s.repo.OTP.FindValid(ctx, req.Email, req.OTP)
	if err != nil {
		s.log.Error("Failed to look up OTP", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to verify code")
	}
	if otp == nil {
		return fmt.Errorf("invalid or expired otp")
	}

	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		s.log.Error("Failed to mark OTP used", zap.Error(err), zap.String("otp_id", otp.ID.String()))
		return fmt.Errorf("failed to verify code")
	}

	user, err := s.repo.User.FindByID(ctx, otp.UserID)
	if err != nil || user == nil {
		s.log.Error("Failed to load user for OTP", zap.Error(err), zap.String("user_id", otp.UserID.String()))
		return fmt.Errorf("failed to verify code")
	}

	user.EmailVerified = true
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to flag email verified", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to verify code")
	}

	s.log.Info("Email verified", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) sendVerificationOTP(userID uuid.UUID, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	code := utils.GenerateOTP(s.config.OTP.Length)
	now := time.Now()
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute),
		IsUsed:    false,
	}

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Warn("Failed to store OTP", zap.Error(err), zap.String("email", email))
		return
	}

	body := fmt.Sprintf("Your KrishiSetu verification code is %s. It expires in %d minutes.",
		code, s.config.OTP.ExpiryMinutes)
	if err := s.mail.Send(email, "Verify your KrishiSetu account", body); err != nil {
		s.log.Warn("Failed to send OTP email", zap.Error(err), zap.String("email", email))
	}
}
