package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"sso-anythingllm-srv/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "sso"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=sso sslmode=disable search_path=public", dsn)

	dsn = DSN(config.PostgresConfig{Host: "db", Port: 5432, User: "u", DBName: "sso", SSLMode: "require", Schema: "sso"})
	assert.Contains(t, dsn, "sslmode=require search_path=sso")
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS anythingllm_user")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))
	err = Migrate(context.Background(), db)
	assert.ErrorContains(t, err, "001_init.sql")
}

func TestHealthCheckBeforeConnect(t *testing.T) {
	assert.Error(t, HealthCheck(context.Background()))
	assert.NoError(t, Disconnect())
}
