package repository

import (
	"context"
	"fmt"

	"krishisetu/internal/data/entity"
	"krishisetu/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Booking, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Booking, error)
	FindByWorkerUser(ctx context.Context, workerUserID uuid.UUID) ([]*entity.Booking, error)
	SetOrderID(ctx context.Context, id uuid.UUID, orderID string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error

	// MarkPaid settles the booking as a guarded Pending -> Paid transition.
	// Returns false when the booking was not payment-pending.
	MarkPaid(ctx context.Context, id uuid.UUID) (bool, error)

	Count(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, farmer_id, machinery_id, worker_id, start_date, end_date, total_amount, status, payment_status, order_id, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.FarmerID,
		&b.MachineryID,
		&b.WorkerID,
		&b.StartDate,
		&b.EndDate,
		&b.TotalAmount,
		&b.Status,
		&b.PayStatus,
		&b.OrderID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) collect(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, farmer_id, machinery_id, worker_id, start_date, end_date,
		                      total_amount, status, payment_status, order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.FarmerID,
		booking.MachineryID,
		booking.WorkerID,
		booking.StartDate,
		booking.EndDate,
		booking.TotalAmount,
		booking.Status,
		booking.PayStatus,
		booking.OrderID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("farmer_id", booking.FarmerID.String()),
		)
		return fmt.Errorf("create booking for farmer %s: %w", booking.FarmerID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return b, nil
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, orderID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by order ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find booking by order ID %s: %w", orderID, err)
	}

	return b, nil
}

func (r *bookingRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE farmer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, farmerID)
	if err != nil {
		r.log.Error("Failed to find bookings by farmer",
			zap.Error(err),
			zap.String("farmer_id", farmerID.String()),
		)
		return nil, fmt.Errorf("find bookings by farmer %s: %w", farmerID.String(), err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT b.id, b.farmer_id, b.machinery_id, b.worker_id, b.start_date, b.end_date,
		       b.total_amount, b.status, b.payment_status, b.order_id, b.created_at, b.updated_at
		FROM bookings b
		JOIN machineries m ON m.id = b.machinery_id
		WHERE m.owner_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find bookings by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find bookings by owner %s: %w", ownerID.String(), err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) FindByWorkerUser(ctx context.Context, workerUserID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT b.id, b.farmer_id, b.machinery_id, b.worker_id, b.start_date, b.end_date,
		       b.total_amount, b.status, b.payment_status, b.order_id, b.created_at, b.updated_at
		FROM bookings b
		JOIN worker_profiles wp ON wp.id = b.worker_id
		WHERE wp.worker_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, workerUserID)
	if err != nil {
		r.log.Error("Failed to find bookings by worker",
			zap.Error(err),
			zap.String("worker_user_id", workerUserID.String()),
		)
		return nil, fmt.Errorf("find bookings by worker %s: %w", workerUserID.String(), err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) SetOrderID(ctx context.Context, id uuid.UUID, orderID string) error {
	query := `UPDATE bookings SET order_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, orderID)
	if err != nil {
		r.log.Error("Failed to set booking order ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("order_id", orderID),
		)
		return fmt.Errorf("set booking %s order ID: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) MarkPaid(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE bookings SET payment_status = 'Paid', status = 'Completed', updated_at = NOW()
		WHERE id = $1 AND payment_status = 'Pending'
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, fmt.Errorf("mark booking %s paid: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}
