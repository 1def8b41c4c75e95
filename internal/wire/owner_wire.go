package wire

import (
	"krishisetu/internal/adaptor"
	"krishisetu/internal/data/entity"
	"krishisetu/pkg/middleware"
	"krishisetu/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOwner(r chi.Router, handler *adaptor.Handler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/owner", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.RequireRole(string(entity.RoleOwner), log))

		r.Post("/machinery", handler.Machinery.Create)
		r.Put("/machinery/{id}", handler.Machinery.Update)
		r.Get("/machinery", handler.Machinery.GetOwn)

		r.Get("/bookings", handler.Booking.GetOwnerBookings)
		r.Get("/earnings", handler.Booking.GetEarnings)
	})
}
