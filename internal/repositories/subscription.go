package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
)

// ErrNoTransaction is returned by operations that must run inside a request transaction.
var ErrNoTransaction = errors.New("no transaction in context")

// batchSize caps rows per INSERT statement. Eight bind parameters per row
// keeps a full chunk well under the PostgreSQL limit of 65535.
const batchSize = 1000

// seedLockKey identifies the advisory lock serializing seed operations.
const seedLockKey int64 = 0x5eed

var insertColumns = []string{
	"name", "provider", "status", "monthly_cost", "renewal_date", "owner", "category", "created_at",
}

var selectColumns = append([]string{"id"}, insertColumns...)

var returning = "RETURNING " + strings.Join(selectColumns, ", ")

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// toUTC re-labels timestamps read from the driver as UTC.
func toUTC(s *models.Subscription) {
	s.RenewalDate = s.RenewalDate.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
}

// SubscriptionReadRepository handles subscription read operations
type SubscriptionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSubscriptionReadRepository(db *sqlx.DB, txGetter TxGetter) *SubscriptionReadRepository {
	return &SubscriptionReadRepository{db: db, txGetter: txGetter}
}

// List returns all subscriptions ordered by id.
func (r *SubscriptionReadRepository) List(ctx context.Context) ([]models.Subscription, error) {
	query := `
		SELECT ` + strings.Join(selectColumns, ", ") + `
		FROM subscriptions
		ORDER BY id
	`

	subs := []models.Subscription{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &subs, query)

	logQuery(query, nil, len(subs), err)

	if err != nil {
		return nil, err
	}
	for i := range subs {
		toUTC(&subs[i])
	}
	return subs, nil
}

// GetByID returns the subscription with the given id or sql.ErrNoRows.
func (r *SubscriptionReadRepository) GetByID(ctx context.Context, id int64) (*models.Subscription, error) {
	query := `
		SELECT ` + strings.Join(selectColumns, ", ") + `
		FROM subscriptions
		WHERE id = $1
	`

	var sub models.Subscription
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &sub, query, id)

	logQuery(query, []any{id}, sub, err)

	if err != nil {
		return nil, err
	}
	toUTC(&sub)
	return &sub, nil
}

// Count returns the number of stored subscriptions.
func (r *SubscriptionReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM subscriptions`

	var count int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query)

	logQuery(query, nil, count, err)

	return count, err
}

// SubscriptionWriteRepository handles subscription write operations
type SubscriptionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSubscriptionWriteRepository(db *sqlx.DB, txGetter TxGetter) *SubscriptionWriteRepository {
	return &SubscriptionWriteRepository{db: db, txGetter: txGetter}
}

// Insert stores a draft and returns it with the assigned id.
func (r *SubscriptionWriteRepository) Insert(ctx context.Context, sub models.Subscription) (*models.Subscription, error) {
	query := `
		INSERT INTO subscriptions (` + strings.Join(insertColumns, ", ") + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		` + returning

	args := insertArgs(sub)

	var created models.Subscription
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	toUTC(&created)
	return &created, nil
}

// InsertBatch stores all drafts and returns them with assigned ids in input order.
// Statements run on the context transaction when present, so the batch commits as a unit.
func (r *SubscriptionWriteRepository) InsertBatch(ctx context.Context, subs []models.Subscription) ([]models.Subscription, error) {
	created := make([]models.Subscription, 0, len(subs))
	exec := executor(ctx, r.db, r.txGetter)

	for start := 0; start < len(subs); start += batchSize {
		end := min(start+batchSize, len(subs))

		stmt := sq.StatementBuilder.
			PlaceholderFormat(sq.Dollar).
			Insert("subscriptions").
			Columns(insertColumns...).
			Suffix(returning)
		for _, sub := range subs[start:end] {
			stmt = stmt.Values(insertArgs(sub)...)
		}

		query, args, err := stmt.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build insert subscriptions query: %w", err)
		}

		var chunk []models.Subscription
		err = sqlx.SelectContext(ctx, exec, &chunk, query, args...)

		logQuery(query, []any{len(args)}, len(chunk), err)

		if err != nil {
			return nil, err
		}
		for i := range chunk {
			toUTC(&chunk[i])
		}
		created = append(created, chunk...)
	}

	return created, nil
}

// Replace overwrites every column of the subscription with sub.ID.
// Returns sql.ErrNoRows when no such subscription exists.
func (r *SubscriptionWriteRepository) Replace(ctx context.Context, sub models.Subscription) error {
	query := `
		UPDATE subscriptions
		SET name = $1, provider = $2, status = $3, monthly_cost = $4,
		    renewal_date = $5, owner = $6, category = $7, created_at = $8
		WHERE id = $9
	`
	args := append(insertArgs(sub), sub.ID)

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByID removes the subscription with the given id.
// Returns sql.ErrNoRows when no such subscription exists.
func (r *SubscriptionWriteRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM subscriptions WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// LockSeed takes the transaction-scoped advisory lock guarding seeding.
// The lock is held until the context transaction commits or rolls back.
func (r *SubscriptionWriteRepository) LockSeed(ctx context.Context) error {
	const query = `SELECT pg_advisory_xact_lock($1)`

	if r.txGetter == nil || r.txGetter(ctx) == nil {
		return ErrNoTransaction
	}

	_, err := r.txGetter(ctx).ExecContext(ctx, query, seedLockKey)

	logQuery(query, []any{seedLockKey}, "locked", err)

	return err
}

func insertArgs(sub models.Subscription) []any {
	return []any{
		sub.Name, sub.Provider, sub.Status, sub.MonthlyCost,
		sub.RenewalDate, sub.Owner, sub.Category, sub.CreatedAt,
	}
}
