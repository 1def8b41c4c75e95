package repository

import (
	"krishisetu/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	OTP       OTPRepository
	Category  CategoryRepository
	Machinery MachineryRepository
	Worker    WorkerProfileRepository
	Booking   BookingRepository
	Payment   PaymentRepository
	Earning   EarningRepository
	Review    ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		OTP:       NewOTPRepository(db, log),
		Category:  NewCategoryRepository(db, log),
		Machinery: NewMachineryRepository(db, log),
		Worker:    NewWorkerProfileRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Payment:   NewPaymentRepository(db, log),
		Earning:   NewEarningRepository(db, log),
		Review:    NewReviewRepository(db, log),
	}
}
