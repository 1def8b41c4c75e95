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

type MachineryRepository interface {
	Create(ctx context.Context, machinery *entity.Machinery) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Machinery, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Machinery, error)
	FindPending(ctx context.Context) ([]*entity.Machinery, error)
	Search(ctx context.Context, category *string, maxRate *float64) ([]*entity.Machinery, error)
	Update(ctx context.Context, machinery *entity.Machinery) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AvailabilityStatus) error

	// LockIfAvailable flips Available -> Booked as a single guarded update.
	// Returns false when the row was not Available (or missing).
	LockIfAvailable(ctx context.Context, id uuid.UUID) (bool, error)

	Count(ctx context.Context) (int64, error)
}

type machineryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMachineryRepository(db database.PgxIface, log *zap.Logger) MachineryRepository {
	return &machineryRepository{
		db:  db,
		log: log.With(zap.String("repository", "machinery")),
	}
}

const machineryColumns = `id, owner_id, category_id, name, description, rate_per_hour, rate_per_day, availability_status, available_date, image_url, is_approved, created_at, updated_at`

func scanMachinery(row pgx.Row) (*entity.Machinery, error) {
	var m entity.Machinery
	err := row.Scan(
		&m.ID,
		&m.OwnerID,
		&m.CategoryID,
		&m.Name,
		&m.Description,
		&m.RatePerHour,
		&m.RatePerDay,
		&m.Status,
		&m.AvailableDate,
		&m.ImageURL,
		&m.IsApproved,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *machineryRepository) collect(rows pgx.Rows) ([]*entity.Machinery, error) {
	defer rows.Close()

	var machineries []*entity.Machinery
	for rows.Next() {
		m, err := scanMachinery(rows)
		if err != nil {
			r.log.Error("Failed to scan machinery row", zap.Error(err))
			return nil, fmt.Errorf("scan machinery row: %w", err)
		}
		machineries = append(machineries, m)
	}

	return machineries, nil
}

func (r *machineryRepository) Create(ctx context.Context, machinery *entity.Machinery) error {
	query := `
		INSERT INTO machineries (id, owner_id, category_id, name, description, rate_per_hour, rate_per_day,
		                         availability_status, available_date, image_url, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		machinery.ID,
		machinery.OwnerID,
		machinery.CategoryID,
		machinery.Name,
		machinery.Description,
		machinery.RatePerHour,
		machinery.RatePerDay,
		machinery.Status,
		machinery.AvailableDate,
		machinery.ImageURL,
		machinery.IsApproved,
		machinery.CreatedAt,
		machinery.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create machinery",
			zap.Error(err),
			zap.String("name", machinery.Name),
			zap.String("owner_id", machinery.OwnerID.String()),
		)
		return fmt.Errorf("create machinery %s: %w", machinery.Name, err)
	}

	return nil
}

func (r *machineryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Machinery, error) {
	query := `SELECT ` + machineryColumns + ` FROM machineries WHERE id = $1`

	m, err := scanMachinery(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find machinery by ID",
			zap.Error(err),
			zap.String("machinery_id", id.String()),
		)
		return nil, fmt.Errorf("find machinery by ID %s: %w", id.String(), err)
	}

	return m, nil
}

func (r *machineryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Machinery, error) {
	query := `SELECT ` + machineryColumns + ` FROM machineries WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find machineries by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find machineries by owner %s: %w", ownerID.String(), err)
	}

	return r.collect(rows)
}

func (r *machineryRepository) FindPending(ctx context.Context) ([]*entity.Machinery, error) {
	query := `SELECT ` + machineryColumns + ` FROM machineries WHERE is_approved = false ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find pending machineries", zap.Error(err))
		return nil, fmt.Errorf("find pending machineries: %w", err)
	}

	return r.collect(rows)
}

func (r *machineryRepository) Search(ctx context.Context, category *string, maxRate *float64) ([]*entity.Machinery, error) {
	// Only approved, currently available listings surface in search.
	query := `
		SELECT m.id, m.owner_id, m.category_id, m.name, m.description, m.rate_per_hour, m.rate_per_day,
		       m.availability_status, m.available_date, m.image_url, m.is_approved, m.created_at, m.updated_at
		FROM machineries m
		JOIN machinery_categories c ON c.id = m.category_id
		WHERE m.is_approved = true AND m.availability_status = 'Available'
	`

	args := []any{}
	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND c.name = $%d", len(args))
	}
	if maxRate != nil {
		args = append(args, *maxRate)
		query += fmt.Sprintf(" AND m.rate_per_hour <= $%d", len(args))
	}
	query += " ORDER BY m.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search machineries", zap.Error(err))
		return nil, fmt.Errorf("search machineries: %w", err)
	}

	return r.collect(rows)
}

func (r *machineryRepository) Update(ctx context.Context, machinery *entity.Machinery) error {
	query := `
		UPDATE machineries
		SET category_id = $2, name = $3, description = $4, rate_per_hour = $5, rate_per_day = $6,
		    availability_status = $7, available_date = $8, image_url = $9, is_approved = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		machinery.ID,
		machinery.CategoryID,
		machinery.Name,
		machinery.Description,
		machinery.RatePerHour,
		machinery.RatePerDay,
		machinery.Status,
		machinery.AvailableDate,
		machinery.ImageURL,
		machinery.IsApproved,
		machinery.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update machinery",
			zap.Error(err),
			zap.String("machinery_id", machinery.ID.String()),
		)
		return fmt.Errorf("update machinery %s: %w", machinery.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("machinery %s not found", machinery.ID.String())
	}

	return nil
}

func (r *machineryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM machineries WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete machinery",
			zap.Error(err),
			zap.String("machinery_id", id.String()),
		)
		return fmt.Errorf("delete machinery %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("machinery %s not found", id.String())
	}

	r.log.Info("Machinery deleted", zap.String("machinery_id", id.String()))
	return nil
}

func (r *machineryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AvailabilityStatus) error {
	query := `UPDATE machineries SET availability_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update machinery status",
			zap.Error(err),
			zap.String("machinery_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update machinery %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("machinery %s not found", id.String())
	}

	return nil
}

func (r *machineryRepository) LockIfAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE machineries SET availability_status = 'Booked', updated_at = NOW()
		WHERE id = $1 AND availability_status = 'Available'
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to lock machinery",
			zap.Error(err),
			zap.String("machinery_id", id.String()),
		)
		return false, fmt.Errorf("lock machinery %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *machineryRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM machineries`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count machineries", zap.Error(err))
		return 0, fmt.Errorf("count machineries: %w", err)
	}

	return count, nil
}
