package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vieclam/jobboard/internal/entities"
)

type mockTracking struct {
	mock.Mock
}

func (m *mockTracking) SaveJob(ctx context.Context, userID int64, jobID uint) error {
	return m.Called(ctx, userID, jobID).Error(0)
}

func (m *mockTracking) UnsaveJob(ctx context.Context, userID int64, jobID uint) error {
	return m.Called(ctx, userID, jobID).Error(0)
}

func (m *mockTracking) GetSavedByUser(ctx context.Context, userID int64) ([]entities.SavedJob, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entities.SavedJob), args.Error(1)
}

func (m *mockTracking) HasApplied(ctx context.Context, userID int64, jobID uint) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTracking) RecordApplication(ctx context.Context, userID int64, jobID uint) error {
	return m.Called(ctx, userID, jobID).Error(0)
}

func (m *mockTracking) GetApplicationsByUser(ctx context.Context, userID int64) ([]entities.Application, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entities.Application), args.Error(1)
}

func Test_Apply_RecordsOncePerUserAndJob(t *testing.T) {

	tracking := &mockTracking{}
	tracking.On("HasApplied", mock.Anything, int64(1), uint(2)).Return(false, nil).Once()
	tracking.On("RecordApplication", mock.Anything, int64(1), uint(2)).Return(nil).Once()

	service := NewTrackingService(tracking, EventBus.New())
	assert.NoError(t, service.Apply(context.Background(), 1, 2))

	tracking.On("HasApplied", mock.Anything, int64(1), uint(2)).Return(true, nil).Once()
	assert.NoError(t, service.Apply(context.Background(), 1, 2))

	tracking.AssertExpectations(t)
}
