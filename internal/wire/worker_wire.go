package wire

import (
	"krishisetu/internal/adaptor"
	"krishisetu/internal/data/entity"
	"krishisetu/pkg/middleware"
	"krishisetu/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWorker(r chi.Router, handler *adaptor.Handler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/worker", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.RequireRole(string(entity.RoleWorker), log))

		r.Get("/profile", handler.Worker.GetProfile)
		r.Put("/profile", handler.Worker.UpdateProfile)

		r.Get("/bookings", handler.Booking.GetWorkerBookings)
		r.Get("/earnings", handler.Booking.GetEarnings)
	})
}
