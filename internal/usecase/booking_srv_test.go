package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"krishisetu/internal/data/entity"
	"krishisetu/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strptr(s string) *string { return &s }

func intptr(i int) *int { return &i }

func dateptr(s string) *time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return &d
}

func testFarmer(id uuid.UUID) *entity.User {
	return &entity.User{
		Base:     entity.Base{ID: id},
		FullName: "Ravi Kumar",
		Role:     entity.RoleFarmer,
	}
}

func testMachinery(rate float64) *entity.Machinery {
	return &entity.Machinery{
		Base:       entity.Base{ID: uuid.New()},
		OwnerID:    uuid.New(),
		Name:       "Tractor",
		RatePerDay: rate,
		Status:     entity.StatusAvailable,
		IsApproved: true,
	}
}

func testWorkerProfile(hourly float64) *entity.WorkerProfile {
	return &entity.WorkerProfile{
		Base:       entity.Base{ID: uuid.New()},
		WorkerID:   uuid.New(),
		HourlyRate: hourly,
		Status:     entity.StatusAvailable,
		IsApproved: true,
	}
}

func TestCreateBooking_MachineryMultiDayPricing(t *testing.T) {
	repo, m := newTestRepo()
	gw := &fakeGateway{orderID: "order_abc"}
	svc := NewBookingService(repo, gw, zap.NewNop())

	farmerID := uuid.New()
	machinery := testMachinery(1000)

	m.machinery.On("FindByID", mock.Anything, machinery.ID).Return(machinery, nil)
	m.machinery.On("LockIfAvailable", mock.Anything, machinery.ID).Return(true, nil)
	m.booking.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	m.booking.On("SetOrderID", mock.Anything, mock.Anything, "order_abc").Return(nil)
	m.user.On("FindByID", mock.Anything, farmerID).Return(testFarmer(farmerID), nil)

	resp, err := svc.CreateBooking(context.Background(), farmerID, &request.CreateBookingRequest{
		MachineryID: strptr(machinery.ID.String()),
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-12",
	})

	require.NoError(t, err)
	// 3 inclusive days at 1000/day.
	assert.Equal(t, 3000.0, resp.Booking.TotalAmount)
	assert.Equal(t, "order_abc", resp.Order.OrderID)
	assert.Equal(t, "INR", resp.Order.Currency)
	assert.Equal(t, []float64{3000}, gw.orders)
}

func TestCreateBooking_AvailableDateCollapsesToOneDay(t *testing.T) {
	repo, m := newTestRepo()
	gw := &fakeGateway{orderID: "order_abc"}
	svc := NewBookingService(repo, gw, zap.NewNop())

	farmerID := uuid.New()
	machinery := testMachinery(1000)
	machinery.AvailableDate = dateptr("2026-02-01")

	m.machinery.On("FindByID", mock.Anything, machinery.ID).Return(machinery, nil)
	m.machinery.On("LockIfAvailable", mock.Anything, machinery.ID).Return(true, nil)
	m.booking.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	m.booking.On("SetOrderID", mock.Anything, mock.Anything, "order_abc").Return(nil)
	m.user.On("FindByID", mock.Anything, farmerID).Return(testFarmer(farmerID), nil)

	resp, err := svc.CreateBooking(context.Background(), farmerID, &request.CreateBookingRequest{
		MachineryID: strptr(machinery.ID.String()),
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-14",
	})

	require.NoError(t, err)
	// Requested range is ignored; the pinned slot prices as a single day.
	assert.Equal(t, 1000.0, resp.Booking.TotalAmount)
	assert.Equal(t, "2026-02-01", resp.Booking.StartDate)
	assert.Equal(t, "2026-02-01", resp.Booking.EndDate)
}

func TestCreateBooking_WorkerHourlyPricing(t *testing.T) {
	repo, m := newTestRepo()
	gw := &fakeGateway{orderID: "order_w"}
	svc := NewBookingService(repo, gw, zap.NewNop())

	farmerID := uuid.New()
	profile := testWorkerProfile(50)

	m.worker.On("FindByID", mock.Anything, profile.ID).Return(profile, nil)
	m.worker.On("LockIfAvailable", mock.Anything, profile.ID).Return(true, nil)
	m.booking.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	m.booking.On("SetOrderID", mock.Anything, mock.Anything, "order_w").Return(nil)
	m.user.On("FindByID", mock.Anything, mock.Anything).Return(testFarmer(farmerID), nil)

	resp, err := svc.CreateBooking(context.Background(), farmerID, &request.CreateBookingRequest{
		WorkerID:  strptr(profile.ID.String()),
		StartDate: "2026-01-10",
		EndDate:   "2026-01-10",
		Hours:     intptr(6),
	})

	require.NoError(t, err)
	assert.Equal(t, 300.0, resp.Booking.TotalAmount)
}

func TestCreateBooking_WorkerDefaultsToEightHours(t *testing.T) {
	repo, m := newTestRepo()
	gw := &fakeGateway{orderID: "order_w"}
	svc := NewBookingService(repo, gw, zap.NewNop())

	farmerID := uuid.New()
	profile := testWorkerProfile(50)

	m.worker.On("FindByID", mock.Anything, profile.ID).Return(profile, nil)
	m.worker.On("LockIfAvailable", mock.Anything, profile.ID).Return(true, nil)
	m.booking.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	m.booking.On("SetOrderID", mock.Anything, mock.Anything, "order_w").Return(nil)
	m.user.On("FindByID", mock.Anything, mock.Anything).Return(testFarmer(farmerID), nil)

	resp, err := svc.CreateBooking(context.Background(), farmerID, &request.CreateBookingRequest{
		WorkerID:  strptr(profile.ID.String()),
		StartDate: "2026-01-10",
		EndDate:   "2026-01-10",
	})

	require.NoError(t, err)
	assert.Equal(t, 400.0, resp.Booking.TotalAmount)
}

func TestCreateBooking_WorkerRateReplacesMachineryAmount(t *testing.T) {
	repo, m := newTestRepo()
	gw := &fakeGateway{orderID: "order_c"}
	svc := NewBookingService(repo, gw, zap.NewNop())

	farmerID := uuid.New()
	machinery := testMachinery(1000)
	profile := testWorkerProfile(50)

	m.machinery.On("FindByID", mock.Anything, machinery.ID).Return(machinery, nil)
	m.machinery.On("LockIfAvailable", mock.Anything, machinery.ID).Return(true, nil)
	m.worker.On("FindByID", mock.Anything, profile.ID).Return(profile, nil)
	m.worker.On("LockIfAvailable", mock.Anything, profile.ID).Return(true, nil)
	m.booking.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)
	m.booking.On("SetOrderID", mock.Anything, mock.Anything, "order_c").Return(nil)
	m.user.On("FindByID", mock.Anything, mock.Anything).Return(testFarmer(farmerID), nil)

	resp, err := svc.CreateBooking(context.Background(), farmerID, &request.CreateBookingRequest{
		MachineryID: strptr(machinery.ID.String()),
		WorkerID:    strptr(profile.ID.String()),
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-11",
		Hours:       intptr(6),
	})

	require.NoError(t, err)
	// Labour pricing overrides the two-day machinery charge entirely.
	assert.Equal(t, 300.0, resp.Booking.TotalAmount)
}

func TestCreateBooking_MachineryNotFoundPersistsNothing(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewBookingService(repo, &fakeGateway{orderID: "x"}, zap.NewNop())

	missing := uuid.New()
	m.machinery.On("FindByID", mock.Anything, missing).Return(nil, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		MachineryID: strptr(missing.String()),
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-12",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "machinery not found")
	m.booking.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.machinery.AssertNotCalled(t, "LockIfAvailable", mock.Anything, mock.Anything)
}

func TestCreateBooking_LockMissRejectsBooking(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewBookingService(repo, &fakeGateway{orderID: "x"}, zap.NewNop())

	machinery := testMachinery(1000)
	m.machinery.On("FindByID", mock.Anything, machinery.ID).Return(machinery, nil)
	m.machinery.On("LockIfAvailable", mock.Anything, machinery.ID).Return(false, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		MachineryID: strptr(machinery.ID.String()),
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-12",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer available")
	m.booking.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_WorkerLockMissReleasesMachinery(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewBookingService(repo, &fakeGateway{orderID: "x"}, zap.NewNop())

	machinery := testMachinery(1000)
	profile := testWorkerProfile(50)

	m.machinery.On("FindByID", mock.Anything, machinery.ID).Return(machinery, nil)
	m.machinery.On("LockIfAvailable", mock.Anything, machinery.ID).Return(true, nil)
	m.worker.On("FindByID", mock.Anything, profile.ID).Return(profile, nil)
	m.worker.On("LockIfAvailable", mock.Anything, profile.ID).Return(false, nil)
	m.machinery.On("UpdateStatus", mock.Anything, machinery.ID, entity.StatusAvailable).Return(nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		MachineryID: strptr(machinery.ID.String()),
		WorkerID:    strptr(profile.ID.String()),
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-10",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker no longer available")
	m.machinery.AssertCalled(t, "UpdateStatus", mock.Anything, machinery.ID, entity.StatusAvailable)
	m.booking.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_GatewayFailureKeepsBooking(t *testing.T) {
	repo, m := newTestRepo()
	gw := &fakeGateway{orderErr: errors.New("upstream down")}
	svc := NewBookingService(repo, gw, zap.NewNop())

	machinery := testMachinery(1000)
	m.machinery.On("FindByID", mock.Anything, machinery.ID).Return(machinery, nil)
	m.machinery.On("LockIfAvailable", mock.Anything, machinery.ID).Return(true, nil)
	m.booking.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		MachineryID: strptr(machinery.ID.String()),
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-12",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment gateway")
	// The booking row survives; only the order step failed.
	m.booking.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	m.booking.AssertNotCalled(t, "SetOrderID", mock.Anything, mock.Anything, mock.Anything)
}

func settledBooking(machineryID, workerID *uuid.UUID, total float64) *entity.Booking {
	start, _ := time.Parse("2006-01-02", "2026-01-10")
	end, _ := time.Parse("2006-01-02", "2026-01-11")
	return &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		FarmerID:    uuid.New(),
		MachineryID: machineryID,
		WorkerID:    workerID,
		StartDate:   start,
		EndDate:     end,
		TotalAmount: total,
		Status:      entity.BookingStatusPending,
		PayStatus:   entity.PaymentStatePending,
	}
}

func TestProcessPayment_SettlesAndCreditsOwner(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewBookingService(repo, &fakeGateway{}, zap.NewNop())

	machinery := testMachinery(1200)
	booking := settledBooking(&machinery.ID, nil, 2400)

	m.booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	m.booking.On("MarkPaid", mock.Anything, booking.ID).Return(true, nil)
	m.payment.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)
	m.machinery.On("FindByID", mock.Anything, machinery.ID).Return(machinery, nil)
	m.earning.On("Create", mock.Anything, mock.AnythingOfType("*entity.Earning")).Return(nil)

	pay, err := svc.ProcessPayment(context.Background(), booking.ID, &request.ProcessPaymentRequest{Method: "UPI"})

	require.NoError(t, err)
	assert.Equal(t, 2400.0, pay.Amount)
	assert.Equal(t, "UPI", pay.Method)

	// Owner earning is recomputed from the day rate over the 2-day span.
	m.earning.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(e *entity.Earning) bool {
		return e.UserID == machinery.OwnerID && e.Amount == 2400 && e.BookingID == booking.ID
	}))
}

func TestProcessPayment_WorkerEarningEqualsBookingTotal(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewBookingService(repo, &fakeGateway{}, zap.NewNop())

	profile := testWorkerProfile(50)
	booking := settledBooking(nil, &profile.ID, 300)

	m.booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	m.booking.On("MarkPaid", mock.Anything, booking.ID).Return(true, nil)
	m.payment.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)
	m.worker.On("FindByID", mock.Anything, profile.ID).Return(profile, nil)
	m.earning.On("Create", mock.Anything, mock.AnythingOfType("*entity.Earning")).Return(nil)

	_, err := svc.ProcessPayment(context.Background(), booking.ID, &request.ProcessPaymentRequest{Method: "Cash"})

	require.NoError(t, err)
	m.earning.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(e *entity.Earning) bool {
		return e.UserID == profile.WorkerID && e.Amount == 300
	}))
}

func TestProcessPayment_SecondAttemptRejected(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewBookingService(repo, &fakeGateway{}, zap.NewNop())

	booking := settledBooking(nil, nil, 500)
	booking.PayStatus = entity.PaymentStatePaid

	m.booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	m.booking.On("MarkPaid", mock.Anything, booking.ID).Return(false, nil)

	_, err := svc.ProcessPayment(context.Background(), booking.ID, &request.ProcessPaymentRequest{Method: "UPI"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already paid")
	m.payment.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.earning.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProcessPayment_BookingNotFound(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewBookingService(repo, &fakeGateway{}, zap.NewNop())

	missing := uuid.New()
	m.booking.On("FindByID", mock.Anything, missing).Return(nil, nil)

	_, err := svc.ProcessPayment(context.Background(), missing, &request.ProcessPaymentRequest{Method: "UPI"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking not found")
}

func TestVerifyGatewayPayment_BadSignatureChangesNothing(t *testing.T) {
	repo, m := newTestRepo()
	gw := &fakeGateway{valid: false}
	svc := NewBookingService(repo, gw, zap.NewNop())

	_, err := svc.VerifyGatewayPayment(context.Background(), &request.VerifyPaymentRequest{
		OrderID:   "order_x",
		PaymentID: "pay_x",
		Signature: "bad",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment signature")
	m.booking.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
	m.booking.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
}

func TestVerifyGatewayPayment_ResolvesBookingByOrderID(t *testing.T) {
	repo, m := newTestRepo()
	gw := &fakeGateway{valid: true}
	svc := NewBookingService(repo, gw, zap.NewNop())

	booking := settledBooking(nil, nil, 750)
	orderID := "order_750"
	booking.OrderID = &orderID

	m.booking.On("FindByOrderID", mock.Anything, orderID).Return(booking, nil)
	m.booking.On("MarkPaid", mock.Anything, booking.ID).Return(true, nil)
	m.payment.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

	pay, err := svc.VerifyGatewayPayment(context.Background(), &request.VerifyPaymentRequest{
		OrderID:   orderID,
		PaymentID: "pay_750",
		Signature: "good",
	})

	require.NoError(t, err)
	assert.Equal(t, 750.0, pay.Amount)
	assert.Equal(t, "Razorpay", pay.Method)
}

func TestGetUserEarnings_SumsCredits(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewBookingService(repo, &fakeGateway{}, zap.NewNop())

	userID := uuid.New()
	earnings := []*entity.Earning{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: userID, BookingID: uuid.New(), Amount: 2400},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: userID, BookingID: uuid.New(), Amount: 300},
	}
	m.earning.On("FindByUserID", mock.Anything, userID).Return(earnings, nil)

	resp, err := svc.GetUserEarnings(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 2700.0, resp.Total)
	assert.Len(t, resp.Earnings, 2)
}
