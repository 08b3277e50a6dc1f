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

const rideColumns = `request_id, client_name, client_phone, driver_id, status,
		pickup_latitude, pickup_longitude, destination_latitude, destination_longitude,
		required_points, car_type, remarks, canceled_by, created_at, updated_at`

// RideRepo implements the ride request repository on PostgreSQL
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRequest stores a new ride request in the requested state
func (r *RideRepo) CreateRequest(ctx context.Context, request *models.RideRequest) error {
	if request.RequestID == uuid.Nil {
		request.RequestID = uuid.New()
	}
	request.Status = models.RideStatusRequested
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	query := `
		INSERT INTO ride_requests (` + rideColumns + `)
		VALUES (:request_id, :client_name, :client_phone, :driver_id, :status,
			:pickup_latitude, :pickup_longitude, :destination_latitude, :destination_longitude,
			:required_points, :car_type, :remarks, :canceled_by, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, request.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert ride request: %w", err)
	}
	return nil
}

// GetRequest retrieves a ride request by id
func (r *RideRepo) GetRequest(ctx context.Context, requestID string) (*models.RideRequest, error) {
	query := `SELECT ` + rideColumns + ` FROM ride_requests WHERE request_id = $1`

	var dto models.RideRequestDTO
	if err := r.db.GetContext(ctx, &dto, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ride request: %w", err)
	}
	return dto.ToRideRequest(), nil
}

// AcceptRequest claims a requested ride for driverID. The guarded update
// succeeds for exactly one caller per request, and only while the driver
// holds no other accepted ride; everyone else is classified against the
// row's current state.
func (r *RideRepo) AcceptRequest(ctx context.Context, requestID, driverID string) (*models.RideRequest, error) {
	query := `
		UPDATE ride_requests
		SET status = $1, driver_id = $2, updated_at = $3
		WHERE request_id = $4 AND status = $5
		AND NOT EXISTS (
			SELECT 1 FROM ride_requests
			WHERE driver_id = $2 AND status = $1
		)
		RETURNING ` + rideColumns

	var dto models.RideRequestDTO
	err := r.db.GetContext(ctx, &dto, query,
		models.RideStatusAccepted, driverID, time.Now(), requestID, models.RideStatusRequested,
	)
	if err == nil {
		return dto.ToRideRequest(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to accept ride request: %w", err)
	}

	return nil, r.classifyConflict(ctx, requestID, models.RideStatusAccepted)
}

// CompleteRequest finishes an accepted ride. Only the driver holding the
// acceptance may complete it.
func (r *RideRepo) CompleteRequest(ctx context.Context, requestID, driverID string) (*models.RideRequest, error) {
	query := `
		UPDATE ride_requests
		SET status = $1, updated_at = $2
		WHERE request_id = $3 AND status = $4 AND driver_id = $5
		RETURNING ` + rideColumns

	var dto models.RideRequestDTO
	err := r.db.GetContext(ctx, &dto, query,
		models.RideStatusCompleted, time.Now(), requestID, models.RideStatusAccepted, driverID,
	)
	if err == nil {
		return dto.ToRideRequest(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to complete ride request: %w", err)
	}

	// a missing row surfaces as ErrNotFound; a wrong driver or wrong state
	// is an invalid transition either way
	if _, getErr := r.GetRequest(ctx, requestID); getErr != nil {
		return nil, getErr
	}
	return nil, errs.ErrInvalidState
}

// CancelRequest cancels a requested or accepted ride, recording the actor
func (r *RideRepo) CancelRequest(ctx context.Context, requestID string, actor models.CancelActor) (*models.RideRequest, error) {
	query := `
		UPDATE ride_requests
		SET status = $1, canceled_by = $2, updated_at = $3
		WHERE request_id = $4 AND status IN ($5, $6)
		RETURNING ` + rideColumns

	var dto models.RideRequestDTO
	err := r.db.GetContext(ctx, &dto, query,
		models.RideStatusCanceled, string(actor), time.Now(), requestID,
		models.RideStatusRequested, models.RideStatusAccepted,
	)
	if err == nil {
		return dto.ToRideRequest(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to cancel ride request: %w", err)
	}

	if _, getErr := r.GetRequest(ctx, requestID); getErr != nil {
		return nil, getErr
	}
	return nil, errs.ErrInvalidState
}

// ExpireOlderThan times out every requested ride created before cutoff and
// returns the affected request ids.
func (r *RideRepo) ExpireOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `
		UPDATE ride_requests
		SET status = $1, updated_at = $2
		WHERE status = $3 AND created_at < $4
		RETURNING request_id
	`

	rows, err := r.db.QueryContext(ctx, query,
		models.RideStatusExpired, time.Now(), models.RideStatusRequested, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to expire ride requests: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan expired id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListOpenRequests returns all rides still waiting for a driver, oldest first
func (r *RideRepo) ListOpenRequests(ctx context.Context) ([]*models.RideRequest, error) {
	query := `SELECT ` + rideColumns + ` FROM ride_requests WHERE status = $1 ORDER BY created_at`

	var dtos []models.RideRequestDTO
	if err := r.db.SelectContext(ctx, &dtos, query, models.RideStatusRequested); err != nil {
		return nil, fmt.Errorf("failed to list open requests: %w", err)
	}

	requests := make([]*models.RideRequest, 0, len(dtos))
	for i := range dtos {
		requests = append(requests, dtos[i].ToRideRequest())
	}
	return requests, nil
}

// ListRequests returns every ride request regardless of state, newest first
func (r *RideRepo) ListRequests(ctx context.Context) ([]*models.RideRequest, error) {
	query := `SELECT ` + rideColumns + ` FROM ride_requests ORDER BY created_at DESC`

	var dtos []models.RideRequestDTO
	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list ride requests: %w", err)
	}

	requests := make([]*models.RideRequest, 0, len(dtos))
	for i := range dtos {
		requests = append(requests, dtos[i].ToRideRequest())
	}
	return requests, nil
}

// ListAcceptedDriverIDs returns the drivers currently holding an accepted ride
func (r *RideRepo) ListAcceptedDriverIDs(ctx context.Context) ([]string, error) {
	query := `SELECT driver_id FROM ride_requests WHERE status = $1 AND driver_id IS NOT NULL`

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, models.RideStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to list accepted drivers: %w", err)
	}
	return ids, nil
}

// GetActiveRideByDriver returns the driver's accepted ride, if any
func (r *RideRepo) GetActiveRideByDriver(ctx context.Context, driverID string) (*models.RideRequest, error) {
	query := `SELECT ` + rideColumns + ` FROM ride_requests WHERE driver_id = $1 AND status = $2`

	var dto models.RideRequestDTO
	if err := r.db.GetContext(ctx, &dto, query, driverID, models.RideStatusAccepted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active ride: %w", err)
	}
	return dto.ToRideRequest(), nil
}

// classifyConflict re-reads the row after a guarded update matched nothing
// and maps its state to the right error kind.
func (r *RideRepo) classifyConflict(ctx context.Context, requestID string, attempted models.RideStatus) error {
	current, err := r.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}

	if attempted == models.RideStatusAccepted && current.Status == models.RideStatusAccepted {
		return errs.ErrAlreadyTaken
	}
	if attempted == models.RideStatusAccepted && current.Status == models.RideStatusRequested {
		// the row is still open, so the driver guard blocked the update
		return errs.ErrDriverBusy
	}
	return errs.ErrInvalidState
}
