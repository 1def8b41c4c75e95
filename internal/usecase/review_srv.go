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

type ReviewService interface {
	CreateReview(ctx context.Context, reviewerID, bookingID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetMachineryReviews(ctx context.Context, machineryID uuid.UUID) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, reviewerID, bookingID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to create review")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}
	if booking.FarmerID != reviewerID {
		return nil, fmt.Errorf("not authorized to review this booking")
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("booking not completed")
	}

	existing, err := s.repo.Review.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to create review")
	}
	if existing != nil {
		return nil, fmt.Errorf("review already exists for this booking")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:  bookingID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to create review")
	}

	s.log.Info("Review created",
		zap.String("booking_id", bookingID.String()),
		zap.Int("rating", req.Rating))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetMachineryReviews(ctx context.Context, machineryID uuid.UUID) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByMachineryID(ctx, machineryID)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("machinery_id", machineryID.String()))
		return nil, fmt.Errorf("failed to list reviews")
	}

	names := map[uuid.UUID]string{}
	result := make([]response.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		resp := response.ReviewToResponse(rv)
		if name, ok := names[rv.ReviewerID]; ok {
			resp.ReviewerName = name
		} else if user, err := s.repo.User.FindByID(ctx, rv.ReviewerID); err == nil && user != nil {
			names[rv.ReviewerID] = user.FullName
			resp.ReviewerName = user.FullName
		}
		result = append(result, resp)
	}
	return result, nil
}
