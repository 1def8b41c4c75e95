package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"krishisetu/internal/dto/request"
	"krishisetu/internal/usecase"
	"krishisetu/pkg/utils"

	"go.uber.org/zap"
)

type WorkerHandler struct {
	service usecase.WorkerService
	log     *zap.Logger
}

func NewWorkerHandler(service usecase.WorkerService, log *zap.Logger) *WorkerHandler {
	return &WorkerHandler{
		service: service,
		log:     log.With(zap.String("handler", "worker")),
	}
}

// Search handles GET /api/farmer/workers/search?skill=&max_rate=
func (h *WorkerHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var skill *string
	if v := query.Get("skill"); v != "" {
		skill = &v
	}
	maxRate := utils.ParseFloat(query.Get("max_rate"))

	workers, err := h.service.Search(r.Context(), skill, maxRate)
	if err != nil {
		h.handleServiceError(w, err, "search workers")
		return
	}

	utils.ResponseSuccess(w, "success", workers)
}

// GetProfile handles GET /api/worker/profile
func (h *WorkerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	workerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), workerID)
	if err != nil {
		h.handleServiceError(w, err, "get worker profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateProfile handles PUT /api/worker/profile
func (h *WorkerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	workerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.WorkerProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), workerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update worker profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", profile)
}

func (h *WorkerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
