package wire

import (
	"net/http"

	"krishisetu/internal/adaptor"
	"krishisetu/internal/data/repository"
	"krishisetu/internal/usecase"
	"krishisetu/pkg/mailer"
	"krishisetu/pkg/middleware"
	"krishisetu/pkg/payment"
	"krishisetu/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	gateway payment.Gateway,
	mail mailer.Sender,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, gateway, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireFarmer(r, handler, config, logger)
	wireOwner(r, handler, config, logger)
	wireWorker(r, handler, config, logger)
	wireAdmin(r, handler.Admin, config, logger)
	wirePublic(r, handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
