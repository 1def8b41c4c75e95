package usecase

import (
	"krishisetu/internal/data/repository"
	"krishisetu/pkg/mailer"
	"krishisetu/pkg/payment"
	"krishisetu/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Machinery MachineryService
	Worker    WorkerService
	Booking   BookingService
	Admin     AdminService
	Review    ReviewService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	gateway payment.Gateway,
	mail mailer.Sender,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, mail, log),
		Machinery: NewMachineryService(repo, log),
		Worker:    NewWorkerService(repo, log),
		Booking:   NewBookingService(repo, gateway, log),
		Admin:     NewAdminService(repo, mail, log),
		Review:    NewReviewService(repo, log),
	}
}
