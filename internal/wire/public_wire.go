package wire

import (
	"krishisetu/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePublic(r chi.Router, handler *adaptor.Handler) {
	r.Get("/api/machinery/categories", handler.Machinery.GetCategories)
	r.Get("/api/machinery/{id}/reviews", handler.Review.GetMachineryReviews)
}
