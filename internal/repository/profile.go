package repository

import (
	"context"

	"salespage/internal/model"
)

// ProfileRepository stores the local mirror of authenticated users.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*model.Profile, error)

	// Ensure inserts the profile unless one with the same ID exists.
	Ensure(ctx context.Context, p *model.Profile) error

	// List returns every profile, newest first.
	List(ctx context.Context) ([]model.Profile, error)
}

// RoleRepository reads role assignments.
type RoleRepository interface {
	HasRole(ctx context.Context, userID string, role model.Role) (bool, error)
	UserIDsWithRole(ctx context.Context, role model.Role) ([]string, error)
}

// StatsRepository stores named integer site counters.
type StatsRepository interface {
	// Get returns sql.ErrNoRows when the counter was never set.
	Get(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, value int) error
}
