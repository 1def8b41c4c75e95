package repository

import (
	"context"
	"fmt"

	"krishisetu/internal/data/entity"
	"krishisetu/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EarningRepository interface {
	Create(ctx context.Context, earning *entity.Earning) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Earning, error)
}

type earningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEarningRepository(db database.PgxIface, log *zap.Logger) EarningRepository {
	return &earningRepository{
		db:  db,
		log: log.With(zap.String("repository", "earning")),
	}
}

func (r *earningRepository) Create(ctx context.Context, earning *entity.Earning) error {
	query := `
		INSERT INTO earnings (id, user_id, booking_id, amount, earned_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		earning.ID,
		earning.UserID,
		earning.BookingID,
		earning.Amount,
		earning.EarnedAt,
		earning.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create earning",
			zap.Error(err),
			zap.String("user_id", earning.UserID.String()),
			zap.String("booking_id", earning.BookingID.String()),
		)
		return fmt.Errorf("create earning for user %s: %w", earning.UserID.String(), err)
	}

	return nil
}

func (r *earningRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Earning, error) {
	query := `
		SELECT id, user_id, booking_id, amount, earned_at, created_at
		FROM earnings WHERE user_id = $1 ORDER BY earned_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find earnings by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find earnings by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var earnings []*entity.Earning
	for rows.Next() {
		var e entity.Earning
		if err := rows.Scan(&e.ID, &e.UserID, &e.BookingID, &e.Amount, &e.EarnedAt, &e.CreatedAt); err != nil {
			r.log.Error("Failed to scan earning row", zap.Error(err))
			return nil, fmt.Errorf("scan earning row: %w", err)
		}
		earnings = append(earnings, &e)
	}

	return earnings, nil
}
