package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewPool needs a live PostgreSQL and is covered by running the service;
// the migration and health check only need the Pool surface.

func TestMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS admin_audit_logs").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, Migrate(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	err = Migrate(context.Background(), mock)
	assert.ErrorContains(t, err, "migrating audit schema")
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	t.Run("audit table present", func(t *testing.T) {
		mock.ExpectQuery("to_regclass").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		assert.NoError(t, hc.Ping(context.Background()))
	})

	t.Run("audit table missing", func(t *testing.T) {
		mock.ExpectQuery("to_regclass").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		assert.ErrorIs(t, hc.Ping(context.Background()), errAuditTableMissing)
	})

	t.Run("server down", func(t *testing.T) {
		mock.ExpectQuery("to_regclass").WillReturnError(errors.New("down"))
		assert.EqualError(t, hc.Ping(context.Background()), "down")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
