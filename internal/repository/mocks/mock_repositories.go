package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"salespage/internal/model"
	"salespage/internal/repository"
	"salespage/internal/sections"
)

type MockLandingPageRepository struct {
	mock.Mock
}

var _ repository.LandingPageRepository = (*MockLandingPageRepository)(nil)

func (m *MockLandingPageRepository) Create(ctx context.Context, page *model.LandingPage) (*model.LandingPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LandingPage), args.Error(1)
}

func (m *MockLandingPageRepository) Update(ctx context.Context, page *model.LandingPage) (*model.LandingPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LandingPage), args.Error(1)
}

func (m *MockLandingPageRepository) FindByID(ctx context.Context, id string) (*model.LandingPage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LandingPage), args.Error(1)
}

func (m *MockLandingPageRepository) FindPublishedBySlug(ctx context.Context, slug string) (*model.LandingPage, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LandingPage), args.Error(1)
}

func (m *MockLandingPageRepository) ListByOwner(ctx context.Context, userID string) ([]model.PageSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PageSummary), args.Error(1)
}

func (m *MockLandingPageRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.PageSummary], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.PageSummary]), args.Error(1)
}

func (m *MockLandingPageRepository) Counts(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockLandingPageRepository) CountByOwner(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockLandingPageRepository) SlugsWithPrefix(ctx context.Context, prefix string) ([]model.SlugRef, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SlugRef), args.Error(1)
}

func (m *MockLandingPageRepository) SetPublished(ctx context.Context, id string, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

func (m *MockLandingPageRepository) UpdateSectionOrder(ctx context.Context, id string, order sections.Order) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

func (m *MockLandingPageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

var _ repository.ProfileRepository = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Ensure(ctx context.Context, p *model.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

type MockRoleRepository struct {
	mock.Mock
}

var _ repository.RoleRepository = (*MockRoleRepository)(nil)

func (m *MockRoleRepository) HasRole(ctx context.Context, userID string, role model.Role) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleRepository) UserIDsWithRole(ctx context.Context, role model.Role) ([]string, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

var _ repository.StatsRepository = (*MockStatsRepository)(nil)

func (m *MockStatsRepository) Get(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) Set(ctx context.Context, key string, value int) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
