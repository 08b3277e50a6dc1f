package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
)

// LedgerRepo implements the ledger repository on PostgreSQL
type LedgerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(cfg *models.Config, db *sqlx.DB) *LedgerRepo {
	return &LedgerRepo{
		cfg: cfg,
		db:  db,
	}
}

// PostEntry appends a ledger entry and updates the driver's cached balance in
// a single transaction. The UPDATE takes the driver row lock first, so entries
// for the same driver serialize while different drivers proceed in parallel.
func (r *LedgerRepo) PostEntry(ctx context.Context, entry *models.PointEntry) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if entry.EntryID == uuid.Nil {
		entry.EntryID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	var balance int
	updateQuery := `
		UPDATE drivers
		SET points = points + $1, updated_at = $2
		WHERE driver_id = $3
		RETURNING points
	`
	err = tx.QueryRowContext(ctx, updateQuery, entry.Change, entry.CreatedAt, entry.DriverID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrDriverNotFound
		}
		return 0, fmt.Errorf("failed to update driver balance: %w", err)
	}

	insertQuery := `
		INSERT INTO point_entries (entry_id, driver_id, change, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, insertQuery, entry.EntryID, entry.DriverID, entry.Change, entry.Reason, entry.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return balance, nil
}

// GetBalance returns the driver's cached balance and last ledger activity
func (r *LedgerRepo) GetBalance(ctx context.Context, driverID string) (*models.PointBalance, error) {
	query := `
		SELECT d.points, MAX(e.created_at) AS last_activity
		FROM drivers d
		LEFT JOIN point_entries e ON e.driver_id = d.driver_id
		WHERE d.driver_id = $1
		GROUP BY d.points
	`

	var points int
	var lastActivity sql.NullTime
	err := r.db.QueryRowContext(ctx, query, driverID).Scan(&points, &lastActivity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	balance := &models.PointBalance{
		DriverID: driverID,
		Points:   points,
	}
	if lastActivity.Valid {
		balance.LastActivity = &lastActivity.Time
	}
	return balance, nil
}

// GetHistory returns ledger entries for a driver, most recent first
func (r *LedgerRepo) GetHistory(ctx context.Context, driverID string, limit int) ([]*models.PointEntry, error) {
	query := `
		SELECT entry_id, driver_id, change, reason, created_at
		FROM point_entries
		WHERE driver_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, driverID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger history: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.PointEntry, 0)
	for rows.Next() {
		var e models.PointEntry
		if err := rows.Scan(&e.EntryID, &e.DriverID, &e.Change, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}

	return entries, nil
}
