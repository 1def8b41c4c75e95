package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"krishisetu/internal/dto/request"
	"krishisetu/internal/usecase"
	"krishisetu/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MachineryHandler struct {
	service usecase.MachineryService
	log     *zap.Logger
}

func NewMachineryHandler(service usecase.MachineryService, log *zap.Logger) *MachineryHandler {
	return &MachineryHandler{
		service: service,
		log:     log.With(zap.String("handler", "machinery")),
	}
}

// Search handles GET /api/farmer/machinery/search?category=&max_rate=
func (h *MachineryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var category *string
	if v := query.Get("category"); v != "" {
		category = &v
	}
	maxRate := utils.ParseFloat(query.Get("max_rate"))

	machineries, err := h.service.Search(r.Context(), category, maxRate)
	if err != nil {
		h.handleServiceError(w, err, "search machinery")
		return
	}

	utils.ResponseSuccess(w, "success", machineries)
}

// GetCategories handles GET /api/machinery/categories (public)
func (h *MachineryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// Create handles POST /api/owner/machinery
func (h *MachineryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.MachineryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	machinery, err := h.service.Create(r.Context(), ownerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create machinery")
		return
	}

	utils.ResponseCreated(w, "Machinery listed for approval", machinery)
}

// Update handles PUT /api/owner/machinery/{id}
func (h *MachineryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	machineryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid machinery ID", nil)
		return
	}

	var req request.MachineryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	machinery, err := h.service.Update(r.Context(), ownerID, machineryID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update machinery")
		return
	}

	utils.ResponseSuccess(w, "Machinery updated", machinery)
}

// GetOwn handles GET /api/owner/machinery
func (h *MachineryHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	machineries, err := h.service.GetByOwner(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err, "get own machinery")
		return
	}

	utils.ResponseSuccess(w, "success", machineries)
}

func (h *MachineryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "not authorized"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
