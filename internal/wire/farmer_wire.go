package wire

import (
	"krishisetu/internal/adaptor"
	"krishisetu/internal/data/entity"
	"krishisetu/pkg/middleware"
	"krishisetu/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFarmer(r chi.Router, handler *adaptor.Handler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/farmer", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.RequireRole(string(entity.RoleFarmer), log))

		r.Get("/machinery/search", handler.Machinery.Search)
		r.Get("/workers/search", handler.Worker.Search)

		r.Post("/bookings", handler.Booking.CreateBooking)
		r.Get("/bookings", handler.Booking.GetFarmerBookings)
		r.Post("/bookings/{id}/pay", handler.Booking.ProcessPayment)
		r.Post("/bookings/{id}/review", handler.Review.CreateReview)
	})

	// Gateway callback verification; any authenticated user may confirm.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Post("/api/payments/verify", handler.Booking.VerifyPayment)
	})
}
