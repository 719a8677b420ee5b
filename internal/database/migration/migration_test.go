package migration

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func sentinelQuery() string {
	return regexp.QuoteMeta("SELECT to_regclass('public.landing_pages') IS NOT NULL")
}

func TestEnsureMigrated_SkipsWhenSchemaExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	log, logs := newObservedLogger()

	mock.ExpectQuery(sentinelQuery()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = EnsureMigrated(context.Background(), db, log, "localhost")

	assert.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("db_migration_skip").Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_RunsAllSteps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	log, logs := newObservedLogger()

	mock.ExpectQuery(sentinelQuery()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	for _, step := range steps {
		mock.ExpectExec(regexp.QuoteMeta(step.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = EnsureMigrated(context.Background(), db, log, "localhost")

	assert.NoError(t, err)
	assert.Equal(t, len(steps), logs.FilterMessage("db_migration_step").Len())
	assert.Equal(t, 1, logs.FilterMessage("db_migration_success").Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_StepFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	log, logs := newObservedLogger()

	mock.ExpectQuery(sentinelQuery()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(steps[0].SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(steps[1].SQL)).WillReturnError(errors.New("permission denied"))

	err = EnsureMigrated(context.Background(), db, log, "localhost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration step create_table_profiles failed")
	failed := logs.FilterMessage("db_migration_failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "create_table_profiles", failed[0].ContextMap()["migration_step"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_SentinelError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	log, _ := newObservedLogger()

	mock.ExpectQuery(sentinelQuery()).WillReturnError(errors.New("connection refused"))

	err = EnsureMigrated(context.Background(), db, log, "localhost")

	assert.ErrorContains(t, err, "failed to check sentinel table")
}

func TestSteps_CreateSentinelLast(t *testing.T) {
	var lastTable string
	for _, s := range steps {
		if regexp.MustCompile(`^create_table_`).MatchString(s.Name) {
			lastTable = s.Name
		}
	}
	assert.Equal(t, "create_table_landing_pages", lastTable)
}
