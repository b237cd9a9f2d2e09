package server

import (
	"context"

	"octoview/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) GetUserActivity(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockGistService struct {
	mock.Mock
}

func (m *MockGistService) GetUserGists(ctx context.Context, username string) ([]models.Gist, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Gist), args.Error(1)
}
