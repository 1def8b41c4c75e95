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

type MachineryService interface {
	Search(ctx context.Context, category *string, maxRate *float64) ([]response.MachineryResponse, error)
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *request.MachineryRequest) (*response.MachineryResponse, error)
	Update(ctx context.Context, ownerID, machineryID uuid.UUID, req *request.MachineryUpdateRequest) (*response.MachineryResponse, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]response.MachineryResponse, error)
}

type machineryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMachineryService(repo *repository.Repository, log *zap.Logger) MachineryService {
	return &machineryService{
		repo: repo,
		log:  log.With(zap.String("service", "machinery")),
	}
}

func (s *machineryService) Search(ctx context.Context, category *string, maxRate *float64) ([]response.MachineryResponse, error) {
	machineries, err := s.repo.Machinery.Search(ctx, category, maxRate)
	if err != nil {
		s.log.Error("Failed to search machinery", zap.Error(err))
		return nil, fmt.Errorf("failed to search machinery")
	}

	return s.toResponses(ctx, machineries), nil
}

func (s *machineryService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list categories")
	}

	result := make([]response.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, response.CategoryToResponse(c))
	}
	return result, nil
}

func (s *machineryService) Create(ctx context.Context, ownerID uuid.UUID, req *request.MachineryRequest) (*response.MachineryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid category id")
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to check category", zap.Error(err), zap.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to create machinery")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	now := time.Now()
	machinery := &entity.Machinery{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:     ownerID,
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		RatePerHour: req.RatePerHour,
		RatePerDay:  req.RatePerDay,
		Status:      entity.StatusAvailable,
		ImageURL:    req.ImageURL,
		// Listings stay hidden from search until an admin approves them.
		IsApproved: false,
	}

	if req.AvailableDate != nil {
		date, err := time.Parse("2006-01-02", *req.AvailableDate)
		if err != nil {
			return nil, fmt.Errorf("validation failed: invalid available date")
		}
		machinery.AvailableDate = &date
	}

	if err := s.repo.Machinery.Create(ctx, machinery); err != nil {
		s.log.Error("Failed to create machinery", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("failed to create machinery")
	}

	s.log.Info("Machinery listed",
		zap.String("machinery_id", machinery.ID.String()),
		zap.String("owner_id", ownerID.String()))

	resp := response.MachineryToResponse(machinery)
	resp.CategoryName = category.Name
	return &resp, nil
}

func (s *machineryService) Update(ctx context.Context, ownerID, machineryID uuid.UUID, req *request.MachineryUpdateRequest) (*response.MachineryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	machinery, err := s.repo.Machinery.FindByID(ctx, machineryID)
	if err != nil {
		s.log.Error("Failed to load machinery", zap.Error(err), zap.String("machinery_id", machineryID.String()))
		return nil, fmt.Errorf("failed to update machinery")
	}
	if machinery == nil {
		return nil, fmt.Errorf("machinery not found")
	}
	if machinery.OwnerID != ownerID {
		return nil, fmt.Errorf("not authorized to modify this machinery")
	}

	if req.Name != nil {
		machinery.Name = *req.Name
	}
	if req.Description != nil {
		machinery.Description = *req.Description
	}
	if req.RatePerHour != nil {
		machinery.RatePerHour = *req.RatePerHour
	}
	if req.RatePerDay != nil {
		machinery.RatePerDay = *req.RatePerDay
	}
	if req.Status != nil {
		machinery.Status = entity.AvailabilityStatus(*req.Status)
	}
	if req.ImageURL != nil {
		machinery.ImageURL = req.ImageURL
	}
	if req.AvailableDate != nil {
		date, err := time.Parse("2006-01-02", *req.AvailableDate)
		if err != nil {
			return nil, fmt.Errorf("validation failed: invalid available date")
		}
		machinery.AvailableDate = &date
		// A fresh slot releases any booking lock.
		machinery.Status = entity.StatusAvailable
	}
	machinery.UpdatedAt = time.Now()

	if err := s.repo.Machinery.Update(ctx, machinery); err != nil {
		s.log.Error("Failed to update machinery", zap.Error(err), zap.String("machinery_id", machineryID.String()))
		return nil, fmt.Errorf("failed to update machinery")
	}

	resp := response.MachineryToResponse(machinery)
	return &resp, nil
}

func (s *machineryService) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]response.MachineryResponse, error) {
	machineries, err := s.repo.Machinery.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to list owner machinery", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("failed to list machinery")
	}

	return s.toResponses(ctx, machineries), nil
}

// toResponses resolves category and owner names per row. Lookup results are
// memoized within the call to keep the extra queries bounded.
func (s *machineryService) toResponses(ctx context.Context, machineries []*entity.Machinery) []response.MachineryResponse {
	categoryNames := map[uuid.UUID]string{}
	ownerNames := map[uuid.UUID]string{}

	result := make([]response.MachineryResponse, 0, len(machineries))
	for _, m := range machineries {
		resp := response.MachineryToResponse(m)

		if name, ok := categoryNames[m.CategoryID]; ok {
			resp.CategoryName = name
		} else if category, err := s.repo.Category.FindByID(ctx, m.CategoryID); err == nil && category != nil {
			categoryNames[m.CategoryID] = category.Name
			resp.CategoryName = category.Name
		}

		if name, ok := ownerNames[m.OwnerID]; ok {
			resp.OwnerName = name
		} else if owner, err := s.repo.User.FindByID(ctx, m.OwnerID); err == nil && owner != nil {
			ownerNames[m.OwnerID] = owner.FullName
			resp.OwnerName = owner.FullName
		}

		result = append(result, resp)
	}

	return result
}
