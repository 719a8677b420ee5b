package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"salespage/internal/model"
	"salespage/internal/repository"
)

// StatsService reads and sets the public site counters.
type StatsService interface {
	// CustomersCount returns 0 when the counter was never set.
	CustomersCount(ctx context.Context) (int, error)
	SetCustomersCount(ctx context.Context, n int) error
}

type statsService struct {
	repo repository.StatsRepository
}

func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) CustomersCount(ctx context.Context) (int, error) {
	n, err := s.repo.Get(ctx, model.StatCustomersCount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

func (s *statsService) SetCustomersCount(ctx context.Context, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: customers count must not be negative", ErrInvalidInput)
	}
	return s.repo.Set(ctx, model.StatCustomersCount, n)
}
