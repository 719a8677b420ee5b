package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is the last table created by steps; its presence means the schema exists.
const sentinelTable = "public.landing_pages"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
  id         UUID        PRIMARY KEY,
  email      TEXT        NOT NULL DEFAULT '',
  full_name  TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_user_roles",
		SQL: `CREATE TABLE IF NOT EXISTS user_roles (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
  role       TEXT        NOT NULL CHECK (role IN ('admin', 'user')),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (user_id, role)
);`,
	},
	{
		Name: "create_table_site_stats",
		SQL: `CREATE TABLE IF NOT EXISTS site_stats (
  key        TEXT        PRIMARY KEY,
  value      INTEGER     NOT NULL DEFAULT 0 CHECK (value >= 0),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "seed_site_stats_customers_count",
		SQL:  `INSERT INTO site_stats (key, value) VALUES ('customers_count', 0) ON CONFLICT (key) DO NOTHING;`,
	},
	{
		Name: "create_table_landing_pages",
		SQL: `CREATE TABLE IF NOT EXISTS landing_pages (
  id                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id           UUID        NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
  slug              TEXT        NOT NULL UNIQUE CHECK (char_length(slug) >= 3),
  hero_title        TEXT        NOT NULL DEFAULT '',
  hero_subtitle     TEXT        NOT NULL DEFAULT '',
  hero_badge        TEXT        NOT NULL DEFAULT '',
  hero_image_url    TEXT        NOT NULL DEFAULT '',
  offer_text        TEXT        NOT NULL DEFAULT '',
  bonus_text        TEXT        NOT NULL DEFAULT '',
  delivery_time     TEXT        NOT NULL DEFAULT '',
  cta_text          TEXT        NOT NULL DEFAULT '',
  whatsapp_number   TEXT        NOT NULL DEFAULT '',
  channel_url       TEXT        NOT NULL DEFAULT '',
  channel_name      TEXT        NOT NULL DEFAULT '',
  is_published      BOOLEAN     NOT NULL DEFAULT FALSE,
  meta_title        TEXT        NOT NULL DEFAULT '',
  meta_description  TEXT        NOT NULL DEFAULT '',
  about_name        TEXT        NOT NULL DEFAULT '',
  about_title       TEXT        NOT NULL DEFAULT '',
  about_description TEXT        NOT NULL DEFAULT '',
  about_image_url   TEXT        NOT NULL DEFAULT '',
  about_highlights  JSONB       NOT NULL DEFAULT '[]'::jsonb,
  why_buy_items     JSONB       NOT NULL DEFAULT '[]'::jsonb,
  how_to_steps      JSONB       NOT NULL DEFAULT '[]'::jsonb,
  benefits_receive  JSONB       NOT NULL DEFAULT '[]'::jsonb,
  security_items    JSONB       NOT NULL DEFAULT '[]'::jsonb,
  pricing_plans     JSONB       NOT NULL DEFAULT '[]'::jsonb,
  testimonials      JSONB       NOT NULL DEFAULT '[]'::jsonb,
  faq_items         JSONB       NOT NULL DEFAULT '[]'::jsonb,
  pix_enabled       BOOLEAN     NOT NULL DEFAULT FALSE,
  pix_key           TEXT        NOT NULL DEFAULT '',
  pix_name          TEXT        NOT NULL DEFAULT '',
  pix_color         TEXT        NOT NULL DEFAULT '',
  donation_title    TEXT        NOT NULL DEFAULT '',
  theme_color       TEXT        NOT NULL DEFAULT 'red',
  section_order     JSONB       NOT NULL DEFAULT '[]'::jsonb,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_landing_pages_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_landing_pages_user_id ON landing_pages (user_id);`,
	},
	{
		Name: "create_index_landing_pages_published",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_landing_pages_published ON landing_pages (slug) WHERE is_published;`,
	},
	{
		Name: "create_index_landing_pages_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_landing_pages_created_at ON landing_pages (created_at);`,
	},
}

// EnsureMigrated checks if the landing_pages table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", sentinelTable)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("msg", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
