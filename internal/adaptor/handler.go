package adaptor

import (
	"krishisetu/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Machinery *MachineryHandler
	Worker    *WorkerHandler
	Booking   *BookingHandler
	Admin     *AdminHandler
	Review    *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Machinery: NewMachineryHandler(service.Machinery, log),
		Worker:    NewWorkerHandler(service.Worker, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Admin:     NewAdminHandler(service.Admin, log),
		Review:    NewReviewHandler(service.Review, log),
	}
}
