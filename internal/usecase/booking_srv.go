package usecase

import (
	"context"
	"fmt"
	"time"

	"krishisetu/internal/data/entity"
	"krishisetu/internal/data/repository"
	"krishisetu/internal/dto/request"
	"krishisetu/internal/dto/response"
	"krishisetu/pkg/payment"
	"krishisetu/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultWorkerHours = 8

type BookingService interface {
	CreateBooking(ctx context.Context, farmerID uuid.UUID, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	GetFarmerBookings(ctx context.Context, farmerID uuid.UUID) ([]response.BookingResponse, error)
	GetOwnerBookings(ctx context.Context, ownerID uuid.UUID) ([]response.BookingResponse, error)
	GetWorkerBookings(ctx context.Context, workerUserID uuid.UUID) ([]response.BookingResponse, error)
	ProcessPayment(ctx context.Context, bookingID uuid.UUID, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
	VerifyGatewayPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.PaymentResponse, error)
	GetUserEarnings(ctx context.Context, userID uuid.UUID) (*response.EarningsSummaryResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	gateway payment.Gateway
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, gateway payment.Gateway, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		gateway: gateway,
		log:     log.With(zap.String("service", "booking")),
	}
}

// rentalDays is the inclusive day span between two dates, never less than one.
func rentalDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

func (s *bookingService) CreateBooking(ctx context.Context, farmerID uuid.UUID, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.MachineryID == nil && req.WorkerID == nil {
		return nil, fmt.Errorf("validation failed: either machinery_id or worker_id is required")
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid start date")
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid end date")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("validation failed: end date before start date")
	}

	// Resolve both resources up front so a missing one persists nothing.
	var machinery *entity.Machinery
	if req.MachineryID != nil {
		id, err := uuid.Parse(*req.MachineryID)
		if err != nil {
			return nil, fmt.Errorf("validation failed: invalid machinery id")
		}
		machinery, err = s.repo.Machinery.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to load machinery", zap.Error(err), zap.String("machinery_id", id.String()))
			return nil, fmt.Errorf("failed to create booking")
		}
		if machinery == nil {
			return nil, fmt.Errorf("machinery not found")
		}
	}

	var profile *entity.WorkerProfile
	if req.WorkerID != nil {
		id, err := uuid.Parse(*req.WorkerID)
		if err != nil {
			return nil, fmt.Errorf("validation failed: invalid worker id")
		}
		profile, err = s.repo.Worker.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to load worker profile", zap.Error(err), zap.String("worker_id", id.String()))
			return nil, fmt.Errorf("failed to create booking")
		}
		if profile == nil {
			return nil, fmt.Errorf("worker not found")
		}
	}

	var total float64
	if machinery != nil {
		if machinery.AvailableDate != nil {
			// Provider pinned a single slot: the booking collapses to that
			// date and prices as one day.
			startDate = *machinery.AvailableDate
			endDate = *machinery.AvailableDate
			total = machinery.RatePerDay
		} else {
			total = machinery.RatePerDay * float64(rentalDays(startDate, endDate))
		}
	}

	if profile != nil {
		if profile.AvailableDate != nil {
			startDate = *profile.AvailableDate
			endDate = *profile.AvailableDate
		}
		hours := defaultWorkerHours
		if req.Hours != nil {
			hours = *req.Hours
		}
		// Labour pricing replaces any machinery amount for combined bookings.
		total = profile.HourlyRate * float64(hours)
	}

	if machinery != nil {
		locked, err := s.repo.Machinery.LockIfAvailable(ctx, machinery.ID)
		if err != nil {
			s.log.Error("Failed to lock machinery", zap.Error(err), zap.String("machinery_id", machinery.ID.String()))
			return nil, fmt.Errorf("failed to create booking")
		}
		if !locked {
			return nil, fmt.Errorf("machinery no longer available")
		}
	}

	if profile != nil {
		locked, err := s.repo.Worker.LockIfAvailable(ctx, profile.ID)
		if err != nil || !locked {
			// Release the machinery lock taken above before failing.
			if machinery != nil {
				if uerr := s.repo.Machinery.UpdateStatus(ctx, machinery.ID, entity.StatusAvailable); uerr != nil {
					s.log.Error("Failed to release machinery lock", zap.Error(uerr), zap.String("machinery_id", machinery.ID.String()))
				}
			}
			if err != nil {
				s.log.Error("Failed to lock worker", zap.Error(err), zap.String("worker_id", profile.ID.String()))
				return nil, fmt.Errorf("failed to create booking")
			}
			return nil, fmt.Errorf("worker no longer available")
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FarmerID:    farmerID,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalAmount: total,
		Status:      entity.BookingStatusPending,
		PayStatus:   entity.PaymentStatePending,
	}
	if machinery != nil {
		booking.MachineryID = &machinery.ID
	}
	if profile != nil {
		booking.WorkerID = &profile.ID
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to persist booking", zap.Error(err), zap.String("farmer_id", farmerID.String()))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("farmer_id", farmerID.String()),
		zap.Float64("total", total))

	// The booking stays on record even when the gateway rejects the order;
	// the farmer can retry payment through the direct path.
	orderID, err := s.gateway.CreateOrder(total, "rcpt_"+booking.ID.String())
	if err != nil {
		s.log.Error("Failed to create gateway order", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("payment gateway order failed")
	}

	if err := s.repo.Booking.SetOrderID(ctx, booking.ID, orderID); err != nil {
		s.log.Error("Failed to store order id", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to create booking")
	}
	booking.OrderID = &orderID

	resp := &response.CreateBookingResponse{
		Booking: s.toResponse(ctx, booking),
		Order: response.OrderResponse{
			BookingID: booking.ID.String(),
			OrderID:   orderID,
			Amount:    total,
			Currency:  "INR",
			KeyID:     s.gateway.KeyID(),
		},
	}
	return resp, nil
}

func (s *bookingService) GetFarmerBookings(ctx context.Context, farmerID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByFarmer(ctx, farmerID)
	if err != nil {
		s.log.Error("Failed to list farmer bookings", zap.Error(err), zap.String("farmer_id", farmerID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}
	return s.toResponses(ctx, bookings), nil
}

func (s *bookingService) GetOwnerBookings(ctx context.Context, ownerID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to list owner bookings", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}
	return s.toResponses(ctx, bookings), nil
}

func (s *bookingService) GetWorkerBookings(ctx context.Context, workerUserID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByWorkerUser(ctx, workerUserID)
	if err != nil {
		s.log.Error("Failed to list worker bookings", zap.Error(err), zap.String("worker_user_id", workerUserID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}
	return s.toResponses(ctx, bookings), nil
}

func (s *bookingService) ProcessPayment(ctx context.Context, bookingID uuid.UUID, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to process payment")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	return s.settle(ctx, booking, req.Method)
}

func (s *bookingService) VerifyGatewayPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !s.gateway.VerifySignature(req.PaymentID, req.OrderID, req.Signature) {
		s.log.Warn("Payment signature rejected", zap.String("order_id", req.OrderID))
		return nil, fmt.Errorf("invalid payment signature")
	}

	booking, err := s.repo.Booking.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		s.log.Error("Failed to resolve booking by order", zap.Error(err), zap.String("order_id", req.OrderID))
		return nil, fmt.Errorf("failed to process payment")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	return s.settle(ctx, booking, "Razorpay")
}

// settle performs the guarded Pending -> Paid transition, then records the
// payment and credits each provider exactly once.
func (s *bookingService) settle(ctx context.Context, booking *entity.Booking, method string) (*response.PaymentResponse, error) {
	paid, err := s.repo.Booking.MarkPaid(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to settle booking", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to process payment")
	}
	if !paid {
		return nil, fmt.Errorf("booking already paid")
	}

	now := time.Now()
	pay := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		BookingID:       booking.ID,
		Amount:          booking.TotalAmount,
		Method:          method,
		Status:          "Success",
		TransactionDate: now,
	}
	if err := s.repo.Payment.Create(ctx, pay); err != nil {
		s.log.Error("Failed to record payment", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to process payment")
	}

	if booking.MachineryID != nil {
		machinery, err := s.repo.Machinery.FindByID(ctx, *booking.MachineryID)
		if err == nil && machinery != nil {
			// Owner credit is recomputed from the listed day rate so a later
			// rate change never rewrites a settled amount retroactively.
			amount := machinery.RatePerDay * float64(rentalDays(booking.StartDate, booking.EndDate))
			s.credit(ctx, machinery.OwnerID, booking.ID, amount, now)
		} else if err != nil {
			s.log.Error("Failed to load machinery for earning", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		}
	}

	if booking.WorkerID != nil {
		profile, err := s.repo.Worker.FindByID(ctx, *booking.WorkerID)
		if err == nil && profile != nil {
			s.credit(ctx, profile.WorkerID, booking.ID, booking.TotalAmount, now)
		} else if err != nil {
			s.log.Error("Failed to load worker for earning", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		}
	}

	s.log.Info("Booking settled",
		zap.String("booking_id", booking.ID.String()),
		zap.Float64("amount", booking.TotalAmount),
		zap.String("method", method))

	resp := response.PaymentToResponse(pay)
	return &resp, nil
}

func (s *bookingService) credit(ctx context.Context, userID, bookingID uuid.UUID, amount float64, at time.Time) {
	earning := &entity.Earning{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: at,
		},
		UserID:    userID,
		BookingID: bookingID,
		Amount:    amount,
		EarnedAt:  at,
	}
	if err := s.repo.Earning.Create(ctx, earning); err != nil {
		s.log.Error("Failed to credit earning",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("booking_id", bookingID.String()))
	}
}

func (s *bookingService) GetUserEarnings(ctx context.Context, userID uuid.UUID) (*response.EarningsSummaryResponse, error) {
	earnings, err := s.repo.Earning.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list earnings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list earnings")
	}

	resp := &response.EarningsSummaryResponse{
		Earnings: make([]response.EarningResponse, 0, len(earnings)),
	}
	for _, e := range earnings {
		resp.Total += e.Amount
		resp.Earnings = append(resp.Earnings, response.EarningToResponse(e))
	}
	return resp, nil
}

// toResponse resolves the display names a booking row references.
func (s *bookingService) toResponse(ctx context.Context, b *entity.Booking) response.BookingResponse {
	resp := response.BookingToResponse(b)

	if farmer, err := s.repo.User.FindByID(ctx, b.FarmerID); err == nil && farmer != nil {
		resp.FarmerName = farmer.FullName
	}
	if b.MachineryID != nil {
		if machinery, err := s.repo.Machinery.FindByID(ctx, *b.MachineryID); err == nil && machinery != nil {
			resp.MachineryName = machinery.Name
		}
	}
	if b.WorkerID != nil {
		if profile, err := s.repo.Worker.FindByID(ctx, *b.WorkerID); err == nil && profile != nil {
			if worker, err := s.repo.User.FindByID(ctx, profile.WorkerID); err == nil && worker != nil {
				resp.WorkerName = worker.FullName
			}
		}
	}

	return resp
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	result := make([]response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, s.toResponse(ctx, b))
	}
	return result
}
