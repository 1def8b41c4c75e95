package usecase

import (
	"context"
	"fmt"
	"time"

	"krishisetu/internal/data/entity"
	"krishisetu/internal/data/repository"
	"krishisetu/internal/dto/request"
	"krishisetu/internal/dto/response"
	"krishisetu/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WorkerService interface {
	Search(ctx context.Context, skill *string, maxRate *float64) ([]response.WorkerProfileResponse, error)
	GetProfile(ctx context.Context, workerUserID uuid.UUID) (*response.WorkerProfileResponse, error)
	UpdateProfile(ctx context.Context, workerUserID uuid.UUID, req *request.WorkerProfileUpdateRequest) (*response.WorkerProfileResponse, error)
}

type workerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWorkerService(repo *repository.Repository, log *zap.Logger) WorkerService {
	return &workerService{
		repo: repo,
		log:  log.With(zap.String("service", "worker")),
	}
}

func (s *workerService) Search(ctx context.Context, skill *string, maxRate *float64) ([]response.WorkerProfileResponse, error) {
	profiles, err := s.repo.Worker.Search(ctx, skill, maxRate)
	if err != nil {
		s.log.Error("Failed to search workers", zap.Error(err))
		return nil, fmt.Errorf("failed to search workers")
	}

	result := make([]response.WorkerProfileResponse, 0, len(profiles))
	for _, wp := range profiles {
		resp := response.WorkerProfileToResponse(wp)
		if user, err := s.repo.User.FindByID(ctx, wp.WorkerID); err == nil && user != nil {
			resp.WorkerName = user.FullName
		}
		result = append(result, resp)
	}

	return result, nil
}

func (s *workerService) GetProfile(ctx context.Context, workerUserID uuid.UUID) (*response.WorkerProfileResponse, error) {
	profile, err := s.repo.Worker.FindByWorkerID(ctx, workerUserID)
	if err != nil {
		s.log.Error("Failed to load worker profile", zap.Error(err), zap.String("worker_id", workerUserID.String()))
		return nil, fmt.Errorf("failed to load profile")
	}
	if profile == nil {
		return nil, fmt.Errorf("worker profile not found")
	}

	resp := response.WorkerProfileToResponse(profile)
	return &resp, nil
}

func (s *workerService) UpdateProfile(ctx context.Context, workerUserID uuid.UUID, req *request.WorkerProfileUpdateRequest) (*response.WorkerProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	profile, err := s.repo.Worker.FindByWorkerID(ctx, workerUserID)
	if err != nil {
		s.log.Error("Failed to load worker profile", zap.Error(err), zap.String("worker_id", workerUserID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}
	if profile == nil {
		return nil, fmt.Errorf("worker profile not found")
	}

	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = *req.HourlyRate
	}
	if req.Status != nil {
		profile.Status = entity.AvailabilityStatus(*req.Status)
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.AvailableDate != nil {
		date, err := time.Parse("2006-01-02", *req.AvailableDate)
		if err != nil {
			return nil, fmt.Errorf("validation failed: invalid available date")
		}
		profile.AvailableDate = &date
		// A fresh slot releases any booking lock.
		profile.Status = entity.StatusAvailable
	}
	profile.UpdatedAt = time.Now()

	if err := s.repo.Worker.Update(ctx, profile); err != nil {
		s.log.Error("Failed to update worker profile", zap.Error(err), zap.String("worker_id", workerUserID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	resp := response.WorkerProfileToResponse(profile)
	return &resp, nil
}
