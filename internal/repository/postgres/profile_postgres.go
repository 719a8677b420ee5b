package postgres

import (
	"context"
	"database/sql"

	"salespage/internal/model"
	"salespage/internal/repository"
)

// ProfilePostgres implements repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

// FindByID fetches a profile by user id.
func (r *ProfilePostgres) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	const q = `SELECT id, email, full_name, created_at FROM profiles WHERE id = $1`
	var p model.Profile
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Email, &p.FullName, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Ensure inserts the profile, leaving an existing row untouched.
func (r *ProfilePostgres) Ensure(ctx context.Context, p *model.Profile) error {
	const q = `
		INSERT INTO profiles (id, email, full_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, q, p.ID, p.Email, p.FullName)
	return err
}

// List returns every profile, newest first.
func (r *ProfilePostgres) List(ctx context.Context) ([]model.Profile, error) {
	const q = `SELECT id, email, full_name, created_at FROM profiles ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Profile, 0)
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// RolePostgres implements repository.RoleRepository over user_roles.
type RolePostgres struct {
	db *sql.DB
}

func NewRolePostgres(db *sql.DB) *RolePostgres {
	return &RolePostgres{db: db}
}

var _ repository.RoleRepository = (*RolePostgres)(nil)

// HasRole reports whether the user holds role.
func (r *RolePostgres) HasRole(ctx context.Context, userID string, role model.Role) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, userID, string(role)).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// UserIDsWithRole lists the users holding role.
func (r *RolePostgres) UserIDsWithRole(ctx context.Context, role model.Role) ([]string, error) {
	const q = `SELECT user_id FROM user_roles WHERE role = $1`
	rows, err := r.db.QueryContext(ctx, q, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// StatsPostgres implements repository.StatsRepository over site_stats.
type StatsPostgres struct {
	db *sql.DB
}

func NewStatsPostgres(db *sql.DB) *StatsPostgres {
	return &StatsPostgres{db: db}
}

var _ repository.StatsRepository = (*StatsPostgres)(nil)

// Get returns the value of a counter.
func (r *StatsPostgres) Get(ctx context.Context, key string) (int, error) {
	const q = `SELECT value FROM site_stats WHERE key = $1`
	var v int
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}

// Set upserts a counter.
func (r *StatsPostgres) Set(ctx context.Context, key string, value int) error {
	const q = `
		INSERT INTO site_stats (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}
