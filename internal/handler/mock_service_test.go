package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kvanta/lockpulse/internal/analytics"
	"github.com/kvanta/lockpulse/internal/domain"
)

// MockAnalyticsService mocks the analytics.Service interface
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetDashboard(ctx context.Context, req analytics.DashboardRequest) (*domain.DashboardPayload, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardPayload), args.Error(1)
}

func (m *MockAnalyticsService) GetLeaderboards(ctx context.Context, req analytics.LeaderboardRequest) (*analytics.Leaderboards, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Leaderboards), args.Error(1)
}

func (m *MockAnalyticsService) GetUserProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockAnalyticsService) GetSeasonProgress(ctx context.Context, seasonKey, username string) (*domain.SeasonProgress, error) {
	args := m.Called(ctx, seasonKey, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeasonProgress), args.Error(1)
}

func (m *MockAnalyticsService) Seasons() []domain.Season {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Season)
}
