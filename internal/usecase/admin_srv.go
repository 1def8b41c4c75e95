package usecase

import (
	"context"
	"fmt"
	"time"

	"krishisetu/internal/data/entity"
	"krishisetu/internal/data/repository"
	"krishisetu/internal/dto/response"
	"krishisetu/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	GetStats(ctx context.Context) (*response.DashboardStatsResponse, error)
	GetAllUsers(ctx context.Context) ([]response.UserResponse, error)
	ApproveUser(ctx context.Context, userID uuid.UUID, approve bool) error
	ApproveMachinery(ctx context.Context, machineryID uuid.UUID, approve bool) error
	ApproveWorker(ctx context.Context, workerUserID uuid.UUID, approve bool) error
	GetPendingMachinery(ctx context.Context) ([]response.MachineryResponse, error)
	GetPendingWorkers(ctx context.Context) ([]response.WorkerProfileResponse, error)
}

type adminService struct {
	repo *repository.Repository
	mail mailer.Sender
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, mail mailer.Sender, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	stats := &response.DashboardStatsResponse{}

	var err error
	if stats.TotalFarmers, err = s.repo.User.CountByRole(ctx, entity.RoleFarmer); err != nil {
		return nil, fmt.Errorf("failed to load stats")
	}
	if stats.TotalOwners, err = s.repo.User.CountByRole(ctx, entity.RoleOwner); err != nil {
		return nil, fmt.Errorf("failed to load stats")
	}
	if stats.TotalWorkers, err = s.repo.User.CountByRole(ctx, entity.RoleWorker); err != nil {
		return nil, fmt.Errorf("failed to load stats")
	}
	if stats.TotalMachinery, err = s.repo.Machinery.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to load stats")
	}
	if stats.TotalBookings, err = s.repo.Booking.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to load stats")
	}
	if stats.TotalCollection, err = s.repo.Payment.SumAmount(ctx); err != nil {
		return nil, fmt.Errorf("failed to load stats")
	}

	return stats, nil
}

func (s *adminService) GetAllUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	result := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, response.UserToResponse(u))
	}
	return result, nil
}

func (s *adminService) ApproveUser(ctx context.Context, userID uuid.UUID, approve bool) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to process approval")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if !approve {
		// Rejection removes the account outright.
		if err := s.repo.User.Delete(ctx, userID); err != nil {
			s.log.Error("Failed to delete rejected user", zap.Error(err), zap.String("user_id", userID.String()))
			return fmt.Errorf("failed to process approval")
		}
		go s.notify(user.Email, "KrishiSetu registration rejected",
			"Your KrishiSetu registration was not approved.")
		s.log.Info("User rejected", zap.String("user_id", userID.String()))
		return nil
	}

	user.IsApproved = true
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to approve user", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to process approval")
	}

	if user.Role == entity.RoleWorker {
		if err := s.repo.Worker.UpdateApproval(ctx, userID, true); err != nil {
			s.log.Error("Failed to approve worker profile", zap.Error(err), zap.String("user_id", userID.String()))
			return fmt.Errorf("failed to process approval")
		}
	}

	go s.notify(user.Email, "KrishiSetu account approved",
		"Your KrishiSetu account has been approved. You can now sign in.")

	s.log.Info("User approved", zap.String("user_id", userID.String()), zap.String("role", string(user.Role)))
	return nil
}

func (s *adminService) ApproveMachinery(ctx context.Context, machineryID uuid.UUID, approve bool) error {
	machinery, err := s.repo.Machinery.FindByID(ctx, machineryID)
	if err != nil {
		s.log.Error("Failed to load machinery", zap.Error(err), zap.String("machinery_id", machineryID.String()))
		return fmt.Errorf("failed to process approval")
	}
	if machinery == nil {
		return fmt.Errorf("machinery not found")
	}

	if !approve {
		if err := s.repo.Machinery.Delete(ctx, machineryID); err != nil {
			s.log.Error("Failed to delete rejected machinery", zap.Error(err), zap.String("machinery_id", machineryID.String()))
			return fmt.Errorf("failed to process approval")
		}
		s.log.Info("Machinery rejected", zap.String("machinery_id", machineryID.String()))
		return nil
	}

	machinery.IsApproved = true
	machinery.UpdatedAt = time.Now()
	if err := s.repo.Machinery.Update(ctx, machinery); err != nil {
		s.log.Error("Failed to approve machinery", zap.Error(err), zap.String("machinery_id", machineryID.String()))
		return fmt.Errorf("failed to process approval")
	}

	s.log.Info("Machinery approved", zap.String("machinery_id", machineryID.String()))
	return nil
}

func (s *adminService) ApproveWorker(ctx context.Context, workerUserID uuid.UUID, approve bool) error {
	profile, err := s.repo.Worker.FindByWorkerID(ctx, workerUserID)
	if err != nil {
		s.log.Error("Failed to load worker profile", zap.Error(err), zap.String("worker_id", workerUserID.String()))
		return fmt.Errorf("failed to process approval")
	}
	if profile == nil {
		return fmt.Errorf("worker profile not found")
	}

	if err := s.repo.Worker.UpdateApproval(ctx, workerUserID, approve); err != nil {
		s.log.Error("Failed to update worker approval", zap.Error(err), zap.String("worker_id", workerUserID.String()))
		return fmt.Errorf("failed to process approval")
	}

	s.log.Info("Worker profile approval updated",
		zap.String("worker_id", workerUserID.String()),
		zap.Bool("approved", approve))
	return nil
}

func (s *adminService) GetPendingMachinery(ctx context.Context) ([]response.MachineryResponse, error) {
	machineries, err := s.repo.Machinery.FindPending(ctx)
	if err != nil {
		s.log.Error("Failed to list pending machinery", zap.Error(err))
		return nil, fmt.Errorf("failed to list pending machinery")
	}

	result := make([]response.MachineryResponse, 0, len(machineries))
	for _, m := range machineries {
		resp := response.MachineryToResponse(m)
		if owner, err := s.repo.User.FindByID(ctx, m.OwnerID); err == nil && owner != nil {
			resp.OwnerName = owner.FullName
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *adminService) GetPendingWorkers(ctx context.Context) ([]response.WorkerProfileResponse, error) {
	profiles, err := s.repo.Worker.FindPending(ctx)
	if err != nil {
		s.log.Error("Failed to list pending workers", zap.Error(err))
		return nil, fmt.Errorf("failed to list pending workers")
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

func (s *adminService) notify(to, subject, body string) {
	if err := s.mail.Send(to, subject, body); err != nil {
		s.log.Warn("Failed to send notification email", zap.Error(err), zap.String("to", to))
	}
}
