package wire

import (
	"krishisetu/internal/adaptor"
	"krishisetu/internal/data/entity"
	"krishisetu/pkg/middleware"
	"krishisetu/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.RequireRole(string(entity.RoleAdmin), log))

		r.Get("/stats", adminHandler.GetStats)
		r.Get("/users", adminHandler.GetAllUsers)
		r.Post("/users/{id}/approve", adminHandler.ApproveUser)

		r.Get("/machinery/pending", adminHandler.GetPendingMachinery)
		r.Post("/machinery/{id}/approve", adminHandler.ApproveMachinery)

		r.Get("/workers/pending", adminHandler.GetPendingWorkers)
		r.Post("/workers/{id}/approve", adminHandler.ApproveWorker)
	})
}
