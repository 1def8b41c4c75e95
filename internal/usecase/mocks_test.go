package usecase

import (
	"context"

	"krishisetu/internal/data/entity"
	"krishisetu/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockOTPRepo
type MockOTPRepo struct {
	mock.Mock
}

func (m *MockOTPRepo) Create(ctx context.Context, otp *entity.OTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepo) FindValid(ctx context.Context, email, code string) (*entity.OTP, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.OTP), args.Error(1)
}

func (m *MockOTPRepo) MarkAsUsed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) FindAll(ctx context.Context) ([]*entity.MachineryCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MachineryCategory), args.Error(1)
}

func (m *MockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MachineryCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MachineryCategory), args.Error(1)
}

// MockMachineryRepo
type MockMachineryRepo struct {
	mock.Mock
}

func (m *MockMachineryRepo) Create(ctx context.Context, machinery *entity.Machinery) error {
	args := m.Called(ctx, machinery)
	return args.Error(0)
}

func (m *MockMachineryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Machinery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Machinery), args.Error(1)
}

func (m *MockMachineryRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Machinery, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Machinery), args.Error(1)
}

func (m *MockMachineryRepo) FindPending(ctx context.Context) ([]*entity.Machinery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Machinery), args.Error(1)
}

func (m *MockMachineryRepo) Search(ctx context.Context, category *string, maxRate *float64) ([]*entity.Machinery, error) {
	args := m.Called(ctx, category, maxRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Machinery), args.Error(1)
}

func (m *MockMachineryRepo) Update(ctx context.Context, machinery *entity.Machinery) error {
	args := m.Called(ctx, machinery)
	return args.Error(0)
}

func (m *MockMachineryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMachineryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AvailabilityStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMachineryRepo) LockIfAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMachineryRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockWorkerRepo
type MockWorkerRepo struct {
	mock.Mock
}

func (m *MockWorkerRepo) Create(ctx context.Context, profile *entity.WorkerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockWorkerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WorkerProfile), args.Error(1)
}

func (m *MockWorkerRepo) FindByWorkerID(ctx context.Context, workerID uuid.UUID) (*entity.WorkerProfile, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WorkerProfile), args.Error(1)
}

func (m *MockWorkerRepo) FindPending(ctx context.Context) ([]*entity.WorkerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WorkerProfile), args.Error(1)
}

func (m *MockWorkerRepo) Search(ctx context.Context, skill *string, maxRate *float64) ([]*entity.WorkerProfile, error) {
	args := m.Called(ctx, skill, maxRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WorkerProfile), args.Error(1)
}

func (m *MockWorkerRepo) Update(ctx context.Context, profile *entity.WorkerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockWorkerRepo) UpdateApproval(ctx context.Context, workerID uuid.UUID, approved bool) error {
	args := m.Called(ctx, workerID, approved)
	return args.Error(0)
}

func (m *MockWorkerRepo) LockIfAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByWorkerUser(ctx context.Context, workerUserID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, workerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) SetOrderID(ctx context.Context, id uuid.UUID, orderID string) error {
	args := m.Called(ctx, id, orderID)
	return args.Error(0)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepo) MarkPaid(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepo) SumAmount(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

// MockEarningRepo
type MockEarningRepo struct {
	mock.Mock
}

func (m *MockEarningRepo) Create(ctx context.Context, earning *entity.Earning) error {
	args := m.Called(ctx, earning)
	return args.Error(0)
}

func (m *MockEarningRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Earning, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Earning), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepo) FindByMachineryID(ctx context.Context, machineryID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, machineryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

// fakeGateway records orders and answers signature checks with a canned verdict.
type fakeGateway struct {
	orderID   string
	orderErr  error
	valid     bool
	orders    []float64
	lastRcpt  string
	lastOrder string
}

func (f *fakeGateway) CreateOrder(amount float64, receiptID string) (string, error) {
	if f.orderErr != nil {
		return "", f.orderErr
	}
	f.orders = append(f.orders, amount)
	f.lastRcpt = receiptID
	return f.orderID, nil
}

func (f *fakeGateway) VerifySignature(paymentID, orderID, signature string) bool {
	f.lastOrder = orderID
	return f.valid
}

func (f *fakeGateway) KeyID() string { return "rzp_test_key" }

// fakeSender swallows mail; register/approval paths send from goroutines.
type fakeSender struct{}

func (fakeSender) Send(to, subject, body string) error { return nil }

type testMocks struct {
	user      *MockUserRepo
	otp       *MockOTPRepo
	category  *MockCategoryRepo
	machinery *MockMachineryRepo
	worker    *MockWorkerRepo
	booking   *MockBookingRepo
	payment   *MockPaymentRepo
	earning   *MockEarningRepo
	review    *MockReviewRepo
}

func newTestRepo() (*repository.Repository, *testMocks) {
	m := &testMocks{
		user:      new(MockUserRepo),
		otp:       new(MockOTPRepo),
		category:  new(MockCategoryRepo),
		machinery: new(MockMachineryRepo),
		worker:    new(MockWorkerRepo),
		booking:   new(MockBookingRepo),
		payment:   new(MockPaymentRepo),
		earning:   new(MockEarningRepo),
		review:    new(MockReviewRepo),
	}

	repo := &repository.Repository{
		User:      m.user,
		OTP:       m.otp,
		Category:  m.category,
		Machinery: m.machinery,
		Worker:    m.worker,
		Booking:   m.booking,
		Payment:   m.payment,
		Earning:   m.earning,
		Review:    m.review,
	}
	return repo, m
}
