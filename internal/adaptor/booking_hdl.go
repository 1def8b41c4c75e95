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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/farmer/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), farmerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// GetFarmerBookings handles GET /api/farmer/bookings
func (h *BookingHandler) GetFarmerBookings(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.GetFarmerBookings(r.Context(), farmerID)
	if err != nil {
		h.handleServiceError(w, err, "get farmer bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetOwnerBookings handles GET /api/owner/bookings
func (h *BookingHandler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.GetOwnerBookings(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err, "get owner bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetWorkerBookings handles GET /api/worker/bookings
func (h *BookingHandler) GetWorkerBookings(w http.ResponseWriter, r *http.Request) {
	workerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.GetWorkerBookings(r.Context(), workerID)
	if err != nil {
		h.handleServiceError(w, err, "get worker bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ProcessPayment handles POST /api/farmer/bookings/{id}/pay
func (h *BookingHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	var req request.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.ProcessPayment(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "process payment")
		return
	}

	utils.ResponseSuccess(w, "Payment successful", payment)
}

// VerifyPayment handles POST /api/payments/verify
func (h *BookingHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.VerifyGatewayPayment(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify payment")
		return
	}

	utils.ResponseSuccess(w, "Payment verified", payment)
}

// GetEarnings handles GET /api/owner/earnings and GET /api/worker/earnings
func (h *BookingHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	earnings, err := h.service.GetUserEarnings(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get earnings")
		return
	}

	utils.ResponseSuccess(w, "success", earnings)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "no longer available"),
		strings.Contains(errMsg, "already paid"):
		h.log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid payment signature"):
		h.log.Warn(operation+" failed - bad signature", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "payment gateway"):
		h.log.Error(operation+" failed - gateway", zap.Error(err))
		utils.ResponseBadGateway(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
