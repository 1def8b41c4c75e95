package usecase

import (
	"context"
	"testing"

	"krishisetu/internal/data/entity"
	"krishisetu/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpdateWorkerProfile_NewDateReleasesBookingLock(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewWorkerService(repo, zap.NewNop())

	profile := testWorkerProfile(50)
	profile.Status = entity.StatusBooked

	m.worker.On("FindByWorkerID", mock.Anything, profile.WorkerID).Return(profile, nil)
	m.worker.On("Update", mock.Anything, mock.AnythingOfType("*entity.WorkerProfile")).Return(nil)

	resp, err := svc.UpdateProfile(context.Background(), profile.WorkerID, &request.WorkerProfileUpdateRequest{
		AvailableDate: strptr("2026-04-01"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailable, resp.Status)
}

func TestUpdateWorkerProfile_NotFound(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewWorkerService(repo, zap.NewNop())

	missing := uuid.New()
	m.worker.On("FindByWorkerID", mock.Anything, missing).Return(nil, nil)

	_, err := svc.UpdateProfile(context.Background(), missing, &request.WorkerProfileUpdateRequest{
		Bio: strptr("Experienced harvest hand"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSearchWorkers_ResolvesNames(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewWorkerService(repo, zap.NewNop())

	profile := testWorkerProfile(60)
	worker := &entity.User{Base: entity.Base{ID: profile.WorkerID}, FullName: "Sita Devi"}

	skill := "harvest"
	m.worker.On("Search", mock.Anything, &skill, (*float64)(nil)).Return([]*entity.WorkerProfile{profile}, nil)
	m.user.On("FindByID", mock.Anything, profile.WorkerID).Return(worker, nil)

	results, err := svc.Search(context.Background(), &skill, nil)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Sita Devi", results[0].WorkerName)
}
