package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"salespage/internal/cache"
)

type MockPageCache struct {
	mock.Mock
}

var _ cache.PageCache = (*MockPageCache)(nil)

func (m *MockPageCache) Get(ctx context.Context, slug string) ([]byte, bool, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockPageCache) Set(ctx context.Context, slug string, html []byte) error {
	args := m.Called(ctx, slug, html)
	return args.Error(0)
}

func (m *MockPageCache) Invalidate(ctx context.Context, slugs ...string) error {
	args := m.Called(ctx, slugs)
	return args.Error(0)
}
