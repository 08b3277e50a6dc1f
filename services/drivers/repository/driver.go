package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
)

// DriverRepo implements the driver profile repository on PostgreSQL
type DriverRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(cfg *models.Config, db *sqlx.DB) *DriverRepo {
	return &DriverRepo{
		cfg: cfg,
		db:  db,
	}
}

// UpsertDriver creates or updates a driver profile, replacing the fleet in the
// same transaction. Idempotent on driver id.
func (r *DriverRepo) UpsertDriver(ctx context.Context, driver *models.Driver) (*models.Driver, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	query := `
		INSERT INTO drivers (driver_id, name, phone_number, id_photo_url, status, points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $6)
		ON CONFLICT (driver_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone_number = EXCLUDED.phone_number,
			id_photo_url = COALESCE(NULLIF(EXCLUDED.id_photo_url, ''), drivers.id_photo_url),
			updated_at = EXCLUDED.updated_at
		RETURNING status, points, created_at, (xmax = 0) AS inserted
	`

	var status models.DriverStatus
	var points int
	var createdAt time.Time
	var inserted bool
	err = tx.QueryRowContext(ctx, query,
		driver.DriverID, driver.Name, driver.PhoneNumber, driver.IDPhotoURL,
		models.DriverStatusPending, now,
	).Scan(&status, &points, &createdAt, &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert driver: %w", err)
	}

	if err := replaceCarsTx(ctx, tx, driver.DriverID, driver.Cars); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	driver.Status = status
	driver.Points = points
	driver.CreatedAt = createdAt
	driver.UpdatedAt = now
	return driver, inserted, nil
}

// GetDriver retrieves a driver profile with its fleet
func (r *DriverRepo) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	query := `
		SELECT driver_id, name, phone_number, id_photo_url, status, points, created_at, updated_at
		FROM drivers
		WHERE driver_id = $1
	`

	var driver models.Driver
	err := r.db.QueryRowContext(ctx, query, driverID).Scan(
		&driver.DriverID, &driver.Name, &driver.PhoneNumber, &driver.IDPhotoURL,
		&driver.Status, &driver.Points, &driver.CreatedAt, &driver.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	cars, err := r.getCars(ctx, driverID)
	if err != nil {
		return nil, err
	}
	driver.Cars = cars

	return &driver, nil
}

// ListDrivers returns all registered driver profiles with their fleets,
// oldest registration first.
func (r *DriverRepo) ListDrivers(ctx context.Context) ([]*models.Driver, error) {
	query := `
		SELECT driver_id, name, phone_number, id_photo_url, status, points, created_at, updated_at
		FROM drivers
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	drivers := make([]*models.Driver, 0)
	byID := make(map[string]*models.Driver)
	for rows.Next() {
		var driver models.Driver
		if err := rows.Scan(
			&driver.DriverID, &driver.Name, &driver.PhoneNumber, &driver.IDPhotoURL,
			&driver.Status, &driver.Points, &driver.CreatedAt, &driver.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		driver.Cars = make([]models.Car, 0)
		drivers = append(drivers, &driver)
		byID[driver.DriverID] = &driver
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	carsQuery := `
		SELECT driver_id, license_plate, color, car_type
		FROM cars
		ORDER BY driver_id, position
	`
	carRows, err := r.db.QueryContext(ctx, carsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list fleets: %w", err)
	}
	defer carRows.Close()

	for carRows.Next() {
		var driverID string
		var car models.Car
		if err := carRows.Scan(&driverID, &car.LicensePlate, &car.Color, &car.CarType); err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		if driver, ok := byID[driverID]; ok {
			driver.Cars = append(driver.Cars, car)
		}
	}
	return drivers, carRows.Err()
}

// ReplaceCars replaces the driver's fleet
func (r *DriverRepo) ReplaceCars(ctx context.Context, driverID string, cars []models.Car) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := replaceCarsTx(ctx, tx, driverID, cars); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceCarsTx(ctx context.Context, tx *sqlx.Tx, driverID string, cars []models.Car) error {
	if cars == nil {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cars WHERE driver_id = $1`, driverID); err != nil {
		return fmt.Errorf("failed to clear fleet: %w", err)
	}

	insertQuery := `
		INSERT INTO cars (driver_id, position, license_plate, color, car_type)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i, car := range cars {
		if _, err := tx.ExecContext(ctx, insertQuery, driverID, i, car.LicensePlate, car.Color, car.CarType); err != nil {
			return fmt.Errorf("failed to insert car: %w", err)
		}
	}

	return nil
}

func (r *DriverRepo) getCars(ctx context.Context, driverID string) ([]models.Car, error) {
	query := `
		SELECT license_plate, color, car_type
		FROM cars
		WHERE driver_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fleet: %w", err)
	}
	defer rows.Close()

	cars := make([]models.Car, 0)
	for rows.Next() {
		var car models.Car
		if err := rows.Scan(&car.LicensePlate, &car.Color, &car.CarType); err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}
