package usecase

import (
	"context"
	"testing"

	"krishisetu/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApproveUser_SetsFlagAndApprovesWorkerProfile(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAdminService(repo, fakeSender{}, zap.NewNop())

	user := &entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Email: "worker@example.com",
		Role:  entity.RoleWorker,
	}

	m.user.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	m.user.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	m.worker.On("UpdateApproval", mock.Anything, user.ID, true).Return(nil)

	err := svc.ApproveUser(context.Background(), user.ID, true)

	require.NoError(t, err)
	m.user.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.IsApproved
	}))
	m.worker.AssertCalled(t, "UpdateApproval", mock.Anything, user.ID, true)
}

func TestApproveUser_RejectionDeletesAccount(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAdminService(repo, fakeSender{}, zap.NewNop())

	user := &entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Email: "owner@example.com",
		Role:  entity.RoleOwner,
	}

	m.user.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	m.user.On("Delete", mock.Anything, user.ID).Return(nil)

	err := svc.ApproveUser(context.Background(), user.ID, false)

	require.NoError(t, err)
	m.user.AssertCalled(t, "Delete", mock.Anything, user.ID)
	m.user.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestApproveUser_NotFound(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAdminService(repo, fakeSender{}, zap.NewNop())

	missing := uuid.New()
	m.user.On("FindByID", mock.Anything, missing).Return(nil, nil)

	err := svc.ApproveUser(context.Background(), missing, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}

func TestApproveMachinery_RejectionDeletesListing(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAdminService(repo, fakeSender{}, zap.NewNop())

	machinery := testMachinery(1000)
	machinery.IsApproved = false

	m.machinery.On("FindByID", mock.Anything, machinery.ID).Return(machinery, nil)
	m.machinery.On("Delete", mock.Anything, machinery.ID).Return(nil)

	err := svc.ApproveMachinery(context.Background(), machinery.ID, false)

	require.NoError(t, err)
	m.machinery.AssertCalled(t, "Delete", mock.Anything, machinery.ID)
}

func TestApproveMachinery_ApprovalSetsFlag(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAdminService(repo, fakeSender{}, zap.NewNop())

	machinery := testMachinery(1000)
	machinery.IsApproved = false

	m.machinery.On("FindByID", mock.Anything, machinery.ID).Return(machinery, nil)
	m.machinery.On("Update", mock.Anything, mock.AnythingOfType("*entity.Machinery")).Return(nil)

	err := svc.ApproveMachinery(context.Background(), machinery.ID, true)

	require.NoError(t, err)
	m.machinery.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(mm *entity.Machinery) bool {
		return mm.IsApproved
	}))
	m.machinery.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetStats_AggregatesCounts(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAdminService(repo, fakeSender{}, zap.NewNop())

	m.user.On("CountByRole", mock.Anything, entity.RoleFarmer).Return(int64(12), nil)
	m.user.On("CountByRole", mock.Anything, entity.RoleOwner).Return(int64(4), nil)
	m.user.On("CountByRole", mock.Anything, entity.RoleWorker).Return(int64(7), nil)
	m.machinery.On("Count", mock.Anything).Return(int64(9), nil)
	m.booking.On("Count", mock.Anything).Return(int64(31), nil)
	m.payment.On("SumAmount", mock.Anything).Return(48500.0, nil)

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalFarmers)
	assert.Equal(t, int64(4), stats.TotalOwners)
	assert.Equal(t, int64(7), stats.TotalWorkers)
	assert.Equal(t, int64(9), stats.TotalMachinery)
	assert.Equal(t, int64(31), stats.TotalBookings)
	assert.Equal(t, 48500.0, stats.TotalCollection)
}
