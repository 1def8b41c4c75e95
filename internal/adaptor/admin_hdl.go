package adaptor

import (
	"net/http"
	"strings"

	"krishisetu/internal/usecase"
	"krishisetu/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetAllUsers handles GET /api/admin/users
func (h *AdminHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// ApproveUser handles POST /api/admin/users/{id}/approve?approve=true|false
func (h *AdminHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	approve := r.URL.Query().Get("approve") == "true"
	if err := h.service.ApproveUser(r.Context(), userID, approve); err != nil {
		h.handleServiceError(w, err, "approve user")
		return
	}

	if approve {
		utils.ResponseSuccess(w, "User approved", nil)
		return
	}
	utils.ResponseSuccess(w, "User rejected", nil)
}

// ApproveMachinery handles POST /api/admin/machinery/{id}/approve?approve=true|false
func (h *AdminHandler) ApproveMachinery(w http.ResponseWriter, r *http.Request) {
	machineryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid machinery ID", nil)
		return
	}

	approve := r.URL.Query().Get("approve") == "true"
	if err := h.service.ApproveMachinery(r.Context(), machineryID, approve); err != nil {
		h.handleServiceError(w, err, "approve machinery")
		return
	}

	if approve {
		utils.ResponseSuccess(w, "Machinery approved", nil)
		return
	}
	utils.ResponseSuccess(w, "Machinery rejected", nil)
}

// ApproveWorker handles POST /api/admin/workers/{id}/approve?approve=true|false
func (h *AdminHandler) ApproveWorker(w http.ResponseWriter, r *http.Request) {
	workerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid worker ID", nil)
		return
	}

	approve := r.URL.Query().Get("approve") == "true"
	if err := h.service.ApproveWorker(r.Context(), workerID, approve); err != nil {
		h.handleServiceError(w, err, "approve worker")
		return
	}

	utils.ResponseSuccess(w, "Worker approval updated", nil)
}

// GetPendingMachinery handles GET /api/admin/machinery/pending
func (h *AdminHandler) GetPendingMachinery(w http.ResponseWriter, r *http.Request) {
	machineries, err := h.service.GetPendingMachinery(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get pending machinery")
		return
	}

	utils.ResponseSuccess(w, "success", machineries)
}

// GetPendingWorkers handles GET /api/admin/workers/pending
func (h *AdminHandler) GetPendingWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.service.GetPendingWorkers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get pending workers")
		return
	}

	utils.ResponseSuccess(w, "success", workers)
}

func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
