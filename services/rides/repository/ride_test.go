package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
)

var rideRowColumns = []string{
	"request_id", "client_name", "client_phone", "driver_id", "status",
	"pickup_latitude", "pickup_longitude", "destination_latitude", "destination_longitude",
	"required_points", "car_type", "remarks", "canceled_by", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func rideRow(requestID uuid.UUID, status models.RideStatus, driverID interface{}) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(rideRowColumns).AddRow(
		requestID.String(), "Siti", "+628111", driverID, status,
		-6.175392, 106.827153, -6.265392, 106.917153,
		150, "sedan", "", nil, now, now,
	)
}

func TestCreateRequest(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	request := &models.RideRequest{
		ClientName:     "Siti",
		ClientPhone:    "+628111",
		Pickup:         models.Location{Latitude: -6.175392, Longitude: 106.827153},
		Destination:    models.Location{Latitude: -6.265392, Longitude: 106.917153},
		RequiredPoints: 150,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_requests")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRequest(context.Background(), request)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, request.RequestID)
	assert.Equal(t, models.RideStatusRequested, request.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequest_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(rideRowColumns))

	_, err := repo.GetRequest(context.Background(), "ghost")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAcceptRequest_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	requestID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WithArgs(models.RideStatusAccepted, "driver-001", sqlmock.AnyArg(), requestID.String(), models.RideStatusRequested).
		WillReturnRows(rideRow(requestID, models.RideStatusAccepted, "driver-001"))

	result, err := repo.AcceptRequest(context.Background(), requestID.String(), "driver-001")
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, result.Status)
	assert.Equal(t, "driver-001", result.DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRequest_LosesRace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	requestID := uuid.New()
	// the guarded update matches nothing because another driver won
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WillReturnRows(sqlmock.NewRows(rideRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(requestID.String()).
		WillReturnRows(rideRow(requestID, models.RideStatusAccepted, "winner"))

	_, err := repo.AcceptRequest(context.Background(), requestID.String(), "loser")
	assert.ErrorIs(t, err, errs.ErrAlreadyTaken)
}

func TestAcceptRequest_TerminalState(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	requestID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WillReturnRows(sqlmock.NewRows(rideRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(requestID.String()).
		WillReturnRows(rideRow(requestID, models.RideStatusCompleted, "driver-001"))

	_, err := repo.AcceptRequest(context.Background(), requestID.String(), "driver-002")
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestAcceptRequest_DriverHoldsAnotherRide(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	requestID := uuid.New()
	// the request is still open, so the update was blocked by the
	// accepted-ride guard on the driver
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WillReturnRows(sqlmock.NewRows(rideRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(requestID.String()).
		WillReturnRows(rideRow(requestID, models.RideStatusRequested, nil))

	_, err := repo.AcceptRequest(context.Background(), requestID.String(), "busy-driver")
	assert.ErrorIs(t, err, errs.ErrDriverBusy)
}

func TestAcceptRequest_GuardsAgainstSecondAcceptedRide(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	requestID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("AND NOT EXISTS (")).
		WithArgs(models.RideStatusAccepted, "driver-001", sqlmock.AnyArg(), requestID.String(), models.RideStatusRequested).
		WillReturnRows(rideRow(requestID, models.RideStatusAccepted, "driver-001"))

	result, err := repo.AcceptRequest(context.Background(), requestID.String(), "driver-001")
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRequest_UnknownRequest(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WillReturnRows(sqlmock.NewRows(rideRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(rideRowColumns))

	_, err := repo.AcceptRequest(context.Background(), "ghost", "driver-001")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCompleteRequest_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	requestID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WithArgs(models.RideStatusCompleted, sqlmock.AnyArg(), requestID.String(), models.RideStatusAccepted, "driver-001").
		WillReturnRows(rideRow(requestID, models.RideStatusCompleted, "driver-001"))

	result, err := repo.CompleteRequest(context.Background(), requestID.String(), "driver-001")
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRequest_WrongDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	requestID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WillReturnRows(sqlmock.NewRows(rideRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(requestID.String()).
		WillReturnRows(rideRow(requestID, models.RideStatusAccepted, "driver-001"))

	_, err := repo.CompleteRequest(context.Background(), requestID.String(), "intruder")
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCancelRequest_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	requestID := uuid.New()
	row := rideRow(requestID, models.RideStatusCanceled, nil)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WithArgs(models.RideStatusCanceled, "client", sqlmock.AnyArg(), requestID.String(),
			models.RideStatusRequested, models.RideStatusAccepted).
		WillReturnRows(row)

	result, err := repo.CancelRequest(context.Background(), requestID.String(), models.CancelActorClient)
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusCanceled, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRequest_AlreadyTerminal(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	requestID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WillReturnRows(sqlmock.NewRows(rideRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(requestID.String()).
		WillReturnRows(rideRow(requestID, models.RideStatusExpired, nil))

	_, err := repo.CancelRequest(context.Background(), requestID.String(), models.CancelActorDriver)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestExpireOlderThan(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	cutoff := time.Now().Add(-5 * time.Minute)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_requests")).
		WithArgs(models.RideStatusExpired, sqlmock.AnyArg(), models.RideStatusRequested, cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"request_id"}).
			AddRow("req-1").
			AddRow("req-2"))

	ids, err := repo.ExpireOlderThan(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, []string{"req-1", "req-2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRequests_NewestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	newest := uuid.New()
	oldest := uuid.New()
	rows := rideRow(newest, models.RideStatusCompleted, "driver-001")
	now := time.Now()
	rows.AddRow(
		oldest.String(), "Wati", "+628222", nil, models.RideStatusRequested,
		-6.175392, 106.827153, -6.265392, 106.917153,
		120, "", "", nil, now.Add(-time.Hour), now.Add(-time.Hour),
	)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WillReturnRows(rows)

	requests, err := repo.ListRequests(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, requests, 2) {
		assert.Equal(t, newest, requests[0].RequestID)
		assert.Equal(t, oldest, requests[1].RequestID)
	}
}

func TestListAcceptedDriverIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id FROM ride_requests")).
		WithArgs(models.RideStatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}).
			AddRow("driver-001").
			AddRow("driver-002"))

	ids, err := repo.ListAcceptedDriverIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"driver-001", "driver-002"}, ids)
}

func TestGetActiveRideByDriver_None(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("driver-001", models.RideStatusAccepted).
		WillReturnRows(sqlmock.NewRows(rideRowColumns))

	_, err := repo.GetActiveRideByDriver(context.Background(), "driver-001")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
