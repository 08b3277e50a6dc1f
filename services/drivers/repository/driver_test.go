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

func TestUpsertDriver_Creates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	driver := &models.Driver{
		DriverID:    "driver-001",
		Name:        "Budi Santoso",
		PhoneNumber: "+6281234567890",
		Cars: []models.Car{
			{LicensePlate: "B 1234 ABC", Color: models.CarColorRed, CarType: "sedan"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO drivers")).
		WithArgs("driver-001", "Budi Santoso", "+6281234567890", "", models.DriverStatusPending, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"status", "points", "created_at", "inserted"}).
			AddRow(models.DriverStatusPending, 0, time.Now(), true))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cars")).
		WithArgs("driver-001").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cars")).
		WithArgs("driver-001", 0, "B 1234 ABC", models.CarColorRed, "sedan").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result, created, err := repo.UpsertDriver(context.Background(), driver)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.DriverStatusPending, result.Status)
	assert.Equal(t, 0, result.Points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDriver_UpdatesExisting(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	driver := &models.Driver{
		DriverID:    "driver-001",
		Name:        "Budi S.",
		PhoneNumber: "+6281234567890",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO drivers")).
		WithArgs("driver-001", "Budi S.", "+6281234567890", "", models.DriverStatusPending, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"status", "points", "created_at", "inserted"}).
			AddRow(models.DriverStatusActive, 120, time.Now().Add(-24*time.Hour), false))
	mock.ExpectCommit()

	result, created, err := repo.UpsertDriver(context.Background(), driver)
	assert.NoError(t, err)
	assert.False(t, created)
	// existing status and balance survive the update
	assert.Equal(t, models.DriverStatusActive, result.Status)
	assert.Equal(t, 120, result.Points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriver_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, name, phone_number, id_photo_url, status, points, created_at, updated_at")).
		WithArgs("driver-001").
		WillReturnRows(sqlmock.NewRows([]string{
			"driver_id", "name", "phone_number", "id_photo_url", "status", "points", "created_at", "updated_at",
		}).AddRow("driver-001", "Budi Santoso", "+6281234567890", "", models.DriverStatusActive, 100, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT license_plate, color, car_type")).
		WithArgs("driver-001").
		WillReturnRows(sqlmock.NewRows([]string{"license_plate", "color", "car_type"}).
			AddRow("B 1234 ABC", models.CarColorRed, "sedan").
			AddRow("B 5678 DEF", models.CarColorBlue, "suv"))

	driver, err := repo.GetDriver(context.Background(), "driver-001")
	assert.NoError(t, err)
	assert.Equal(t, "Budi Santoso", driver.Name)
	assert.Equal(t, models.DriverStatusActive, driver.Status)
	if assert.Len(t, driver.Cars, 2) {
		assert.Equal(t, "B 1234 ABC", driver.Cars[0].LicensePlate)
		assert.Equal(t, "B 5678 DEF", driver.Cars[1].LicensePlate)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriver_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"driver_id", "name", "phone_number", "id_photo_url", "status", "points", "created_at", "updated_at",
		}))

	_, err := repo.GetDriver(context.Background(), "ghost")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDrivers_StitchesFleets(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, name, phone_number, id_photo_url, status, points, created_at, updated_at")).
		WillReturnRows(sqlmock.NewRows([]string{
			"driver_id", "name", "phone_number", "id_photo_url", "status", "points", "created_at", "updated_at",
		}).
			AddRow("driver-001", "Budi Santoso", "+6281234567890", "", models.DriverStatusPending, 100, now.Add(-time.Hour), now).
			AddRow("driver-002", "Agus Wijaya", "+6281234567891", "", models.DriverStatusActive, 250, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, license_plate, color, car_type")).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "license_plate", "color", "car_type"}).
			AddRow("driver-002", "B 5678 DEF", models.CarColorBlue, "suv"))

	result, err := repo.ListDrivers(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, result, 2) {
		assert.Equal(t, "driver-001", result[0].DriverID)
		assert.Empty(t, result[0].Cars)
		assert.Equal(t, "driver-002", result[1].DriverID)
		if assert.Len(t, result[1].Cars, 1) {
			assert.Equal(t, "B 5678 DEF", result[1].Cars[0].LicensePlate)
		}
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceCars(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	cars := []models.Car{
		{LicensePlate: "B 9999 XYZ", Color: models.CarColorGreen, CarType: "hatchback"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cars")).
		WithArgs("driver-001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cars")).
		WithArgs("driver-001", 0, "B 9999 XYZ", models.CarColorGreen, "hatchback").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplaceCars(context.Background(), "driver-001", cars)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
