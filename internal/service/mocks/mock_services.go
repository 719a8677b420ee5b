package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"salespage/internal/auth"
	"salespage/internal/model"
	"salespage/internal/repository"
	"salespage/internal/sections"
	"salespage/internal/service"
	"salespage/internal/slug"
	"salespage/internal/storage"
)

type MockPageService struct {
	mock.Mock
}

var _ service.PageService = (*MockPageService)(nil)

func (m *MockPageService) Defaults() model.LandingPage {
	args := m.Called()
	return args.Get(0).(model.LandingPage)
}

func (m *MockPageService) Create(ctx context.Context, owner *auth.Session, in *model.LandingPage) (*model.LandingPage, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LandingPage), args.Error(1)
}

func (m *MockPageService) Update(ctx context.Context, userID, id string, in *model.LandingPage) (*model.LandingPage, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LandingPage), args.Error(1)
}

func (m *MockPageService) Get(ctx context.Context, userID, id string) (*model.LandingPage, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LandingPage), args.Error(1)
}

func (m *MockPageService) ListMine(ctx context.Context, userID string) ([]model.PageSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PageSummary), args.Error(1)
}

func (m *MockPageService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockPageService) UpdateSections(ctx context.Context, userID, id string, change service.SectionChange) (sections.Order, error) {
	args := m.Called(ctx, userID, id, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(sections.Order), args.Error(1)
}

func (m *MockPageService) SuggestSlug(ctx context.Context, title, excludeID string) (*slug.Suggestion, error) {
	args := m.Called(ctx, title, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slug.Suggestion), args.Error(1)
}

func (m *MockPageService) CheckSlug(ctx context.Context, value, excludeID string) (bool, error) {
	args := m.Called(ctx, value, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPageService) PublicPage(ctx context.Context, value string) ([]byte, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

var _ service.ImageService = (*MockImageService)(nil)

func (m *MockImageService) Upload(ctx context.Context, userID string, r io.Reader, filename string, size int64) (*model.Image, error) {
	args := m.Called(ctx, userID, r, filename, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

type MockAdminService struct {
	mock.Mock
}

var _ service.AdminService = (*MockAdminService)(nil)

func (m *MockAdminService) Dashboard(ctx context.Context, pq repository.PageQuery) (*model.Dashboard, error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}

func (m *MockAdminService) SetPublished(ctx context.Context, id string, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

func (m *MockAdminService) DeletePage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

var _ service.StatsService = (*MockStatsService)(nil)

func (m *MockStatsService) CustomersCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsService) SetCustomersCount(ctx context.Context, n int) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
