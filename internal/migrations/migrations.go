package migrations

import (
	"database/sql"

	"github.com/lopezator/migrator"
)

// Migrations lists schema changes in apply order. Append only.
var Migrations = []any{
	&migrator.Migration{
		Name: "Init subscriptions table",
		Func: initSubscriptionsTable,
	},
	&migrator.Migration{
		Name: "Add subscriptions renewal date index",
		Func: addSubscriptionsRenewalDateIndex,
	},
}

func initSubscriptionsTable(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS subscriptions (
			id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			name TEXT NOT NULL,
			provider TEXT NOT NULL,
			status TEXT NOT NULL,
			monthly_cost NUMERIC NOT NULL DEFAULT 0,
			renewal_date TIMESTAMPTZ NOT NULL,
			owner TEXT NOT NULL,
			category TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)

	return err
}

func addSubscriptionsRenewalDateIndex(tx *sql.Tx) error {
	_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_subscriptions_renewal_date ON subscriptions (renewal_date);`)

	return err
}
