package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestPostEntry_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLedgerRepository(&models.Config{}, db)

	entry := &models.PointEntry{
		DriverID: "driver-001",
		Change:   -100,
		Reason:   models.PointReasonRideCompleted,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE drivers")).
		WithArgs(-100, sqlmock.AnyArg(), "driver-001").
		WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(50))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO point_entries")).
		WithArgs(sqlmock.AnyArg(), "driver-001", -100, models.PointReasonRideCompleted, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	balance, err := repo.PostEntry(context.Background(), entry)
	assert.NoError(t, err)
	assert.Equal(t, 50, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostEntry_UnknownDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLedgerRepository(&models.Config{}, db)

	entry := &models.PointEntry{
		DriverID: "missing",
		Change:   10,
		Reason:   models.PointReasonBonus,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE drivers")).
		WithArgs(10, sqlmock.AnyArg(), "missing").
		WillReturnRows(sqlmock.NewRows([]string{"points"}))
	mock.ExpectRollback()

	_, err := repo.PostEntry(context.Background(), entry)
	assert.ErrorIs(t, err, errs.ErrDriverNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBalance_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLedgerRepository(&models.Config{}, db)

	lastActivity := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT d.points")).
		WithArgs("driver-001").
		WillReturnRows(sqlmock.NewRows([]string{"points", "last_activity"}).AddRow(150, lastActivity))

	balance, err := repo.GetBalance(context.Background(), "driver-001")
	assert.NoError(t, err)
	assert.Equal(t, 150, balance.Points)
	assert.NotNil(t, balance.LastActivity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBalance_UnknownDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLedgerRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT d.points")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"points", "last_activity"}))

	_, err := repo.GetBalance(context.Background(), "missing")
	assert.ErrorIs(t, err, errs.ErrDriverNotFound)
}

func TestGetHistory_OrderedMostRecentFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLedgerRepository(&models.Config{}, db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"entry_id", "driver_id", "change", "reason", "created_at"}).
		AddRow("0d4f8a9e-3f20-4f6a-9f5e-111111111111", "driver-001", -100, "rideCompleted", now).
		AddRow("0d4f8a9e-3f20-4f6a-9f5e-222222222222", "driver-001", 100, "newRegister", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT entry_id, driver_id, change, reason, created_at")).
		WithArgs("driver-001", 100).
		WillReturnRows(rows)

	entries, err := repo.GetHistory(context.Background(), "driver-001", 100)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, -100, entries[0].Change)
	assert.Equal(t, models.PointReasonNewRegister, entries[1].Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}
