package migrations

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lopezator/migrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Order(t *testing.T) {
	require.Len(t, Migrations, 2)

	names := make([]string, 0, len(Migrations))
	for _, m := range Migrations {
		mg, ok := m.(*migrator.Migration)
		require.True(t, ok)
		require.NotNil(t, mg.Func)
		names = append(names, mg.Name)
	}

	assert.Equal(t, []string{"Init subscriptions table", "Add subscriptions renewal date index"}, names)
}

func TestMigrationFuncs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS subscriptions")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS idx_subscriptions_renewal_date")).
		WillReturnError(errors.New("index failed"))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	assert.NoError(t, initSubscriptionsTable(tx))
	assert.EqualError(t, addSubscriptionsRenewalDateIndex(tx), "index failed")
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}
