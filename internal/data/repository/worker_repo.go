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

type WorkerProfileRepository interface {
	Create(ctx context.Context, profile *entity.WorkerProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkerProfile, error)
	FindByWorkerID(ctx context.Context, workerID uuid.UUID) (*entity.WorkerProfile, error)
	FindPending(ctx context.Context) ([]*entity.WorkerProfile, error)
	Search(ctx context.Context, skill *string, maxRate *float64) ([]*entity.WorkerProfile, error)
	Update(ctx context.Context, profile *entity.WorkerProfile) error
	UpdateApproval(ctx context.Context, workerID uuid.UUID, approved bool) error

	// LockIfAvailable flips Available -> Booked as a single guarded update.
	LockIfAvailable(ctx context.Context, id uuid.UUID) (bool, error)
}

type workerProfileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWorkerProfileRepository(db database.PgxIface, log *zap.Logger) WorkerProfileRepository {
	return &workerProfileRepository{
		db:  db,
		log: log.With(zap.String("repository", "worker_profile")),
	}
}

const workerColumns = `id, worker_id, skills, experience_years, hourly_rate, availability_status, bio, available_date, is_approved, created_at, updated_at`

func scanWorkerProfile(row pgx.Row) (*entity.WorkerProfile, error) {
	var wp entity.WorkerProfile
	err := row.Scan(
		&wp.ID,
		&wp.WorkerID,
		&wp.Skills,
		&wp.ExperienceYears,
		&wp.HourlyRate,
		&wp.Status,
		&wp.Bio,
		&wp.AvailableDate,
		&wp.IsApproved,
		&wp.CreatedAt,
		&wp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &wp, nil
}

func (r *workerProfileRepository) collect(rows pgx.Rows) ([]*entity.WorkerProfile, error) {
	defer rows.Close()

	var profiles []*entity.WorkerProfile
	for rows.Next() {
		wp, err := scanWorkerProfile(rows)
		if err != nil {
			r.log.Error("Failed to scan worker profile row", zap.Error(err))
			return nil, fmt.Errorf("scan worker profile row: %w", err)
		}
		profiles = append(profiles, wp)
	}

	return profiles, nil
}

func (r *workerProfileRepository) Create(ctx context.Context, profile *entity.WorkerProfile) error {
	query := `
		INSERT INTO worker_profiles (id, worker_id, skills, experience_years, hourly_rate,
		                             availability_status, bio, available_date, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.WorkerID,
		profile.Skills,
		profile.ExperienceYears,
		profile.HourlyRate,
		profile.Status,
		profile.Bio,
		profile.AvailableDate,
		profile.IsApproved,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create worker profile",
			zap.Error(err),
			zap.String("worker_id", profile.WorkerID.String()),
		)
		return fmt.Errorf("create worker profile for %s: %w", profile.WorkerID.String(), err)
	}

	return nil
}

func (r *workerProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkerProfile, error) {
	query := `SELECT ` + workerColumns + ` FROM worker_profiles WHERE id = $1`

	wp, err := scanWorkerProfile(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find worker profile by ID",
			zap.Error(err),
			zap.String("profile_id", id.String()),
		)
		return nil, fmt.Errorf("find worker profile by ID %s: %w", id.String(), err)
	}

	return wp, nil
}

func (r *workerProfileRepository) FindByWorkerID(ctx context.Context, workerID uuid.UUID) (*entity.WorkerProfile, error) {
	query := `SELECT ` + workerColumns + ` FROM worker_profiles WHERE worker_id = $1`

	wp, err := scanWorkerProfile(r.db.QueryRow(ctx, query, workerID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find worker profile by worker ID",
			zap.Error(err),
			zap.String("worker_id", workerID.String()),
		)
		return nil, fmt.Errorf("find worker profile by worker ID %s: %w", workerID.String(), err)
	}

	return wp, nil
}

func (r *workerProfileRepository) FindPending(ctx context.Context) ([]*entity.WorkerProfile, error) {
	query := `SELECT ` + workerColumns + ` FROM worker_profiles WHERE is_approved = false ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find pending worker profiles", zap.Error(err))
		return nil, fmt.Errorf("find pending worker profiles: %w", err)
	}

	return r.collect(rows)
}

func (r *workerProfileRepository) Search(ctx context.Context, skill *string, maxRate *float64) ([]*entity.WorkerProfile, error) {
	// Approved and Available only, matching the machinery search policy.
	query := `
		SELECT ` + workerColumns + `
		FROM worker_profiles
		WHERE is_approved = true AND availability_status = 'Available'
	`

	args := []any{}
	if skill != nil {
		args = append(args, "%"+*skill+"%")
		query += fmt.Sprintf(" AND skills ILIKE $%d", len(args))
	}
	if maxRate != nil {
		args = append(args, *maxRate)
		query += fmt.Sprintf(" AND hourly_rate <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search worker profiles", zap.Error(err))
		return nil, fmt.Errorf("search worker profiles: %w", err)
	}

	return r.collect(rows)
}

func (r *workerProfileRepository) Update(ctx context.Context, profile *entity.WorkerProfile) error {
	query := `
		UPDATE worker_profiles
		SET skills = $2, experience_years = $3, hourly_rate = $4, availability_status = $5,
		    bio = $6, available_date = $7, is_approved = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Skills,
		profile.ExperienceYears,
		profile.HourlyRate,
		profile.Status,
		profile.Bio,
		profile.AvailableDate,
		profile.IsApproved,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update worker profile",
			zap.Error(err),
			zap.String("profile_id", profile.ID.String()),
		)
		return fmt.Errorf("update worker profile %s: %w", profile.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("worker profile %s not found", profile.ID.String())
	}

	return nil
}

func (r *workerProfileRepository) UpdateApproval(ctx context.Context, workerID uuid.UUID, approved bool) error {
	query := `UPDATE worker_profiles SET is_approved = $2, updated_at = NOW() WHERE worker_id = $1`

	result, err := r.db.Exec(ctx, query, workerID, approved)
	if err != nil {
		r.log.Error("Failed to update worker profile approval",
			zap.Error(err),
			zap.String("worker_id", workerID.String()),
		)
		return fmt.Errorf("update worker profile approval for %s: %w", workerID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("worker profile for %s not found", workerID.String())
	}

	return nil
}

func (r *workerProfileRepository) LockIfAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE worker_profiles SET availability_status = 'Booked', updated_at = NOW()
		WHERE id = $1 AND availability_status = 'Available'
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to lock worker profile",
			zap.Error(err),
			zap.String("profile_id", id.String()),
		)
		return false, fmt.Errorf("lock worker profile %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
