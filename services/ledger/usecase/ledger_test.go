package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/services/ledger/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Ledger: models.LedgerConfig{
			PointsPerKm:    10,
			RegisterBonus:  100,
			HistoryPageMax: 100,
		},
	}
}

func TestComputeRequiredPoints_TenKm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewLedgerUC(testConfig(), mocks.NewMockLedgerRepo(ctrl))

	// 0.09 degrees of longitude on the equator is roughly 10 km
	pickup := &models.Location{Latitude: 0, Longitude: 0}
	destination := &models.Location{Latitude: 0, Longitude: 0.09}

	points, err := uc.ComputeRequiredPoints(pickup, destination)
	assert.NoError(t, err)
	assert.Equal(t, 100, points)
}

func TestComputeRequiredPoints_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewLedgerUC(testConfig(), mocks.NewMockLedgerRepo(ctrl))

	pickup := &models.Location{Latitude: -6.175392, Longitude: 106.827153}
	destination := &models.Location{Latitude: -6.914744, Longitude: 107.609810}

	first, err := uc.ComputeRequiredPoints(pickup, destination)
	assert.NoError(t, err)

	second, err := uc.ComputeRequiredPoints(pickup, destination)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeRequiredPoints_SamePoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewLedgerUC(testConfig(), mocks.NewMockLedgerRepo(ctrl))

	loc := &models.Location{Latitude: 1.0, Longitude: 1.0}
	points, err := uc.ComputeRequiredPoints(loc, loc)
	assert.NoError(t, err)
	assert.Equal(t, 0, points)
}

func TestComputeRequiredPoints_MissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewLedgerUC(testConfig(), mocks.NewMockLedgerRepo(ctrl))

	_, err := uc.ComputeRequiredPoints(nil, &models.Location{Latitude: 1, Longitude: 1})
	assert.ErrorIs(t, err, errs.ErrInvalidCoordinates)

	_, err = uc.ComputeRequiredPoints(&models.Location{Latitude: 1, Longitude: 1}, nil)
	assert.ErrorIs(t, err, errs.ErrInvalidCoordinates)
}

func TestPostEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo)

	mockRepo.EXPECT().
		PostEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.PointEntry) (int, error) {
			assert.Equal(t, "driver-001", entry.DriverID)
			assert.Equal(t, -100, entry.Change)
			assert.Equal(t, models.PointReasonRideCompleted, entry.Reason)
			return 20, nil
		})

	balance, err := uc.PostEntry(context.Background(), "driver-001", -100, models.PointReasonRideCompleted)
	assert.NoError(t, err)
	assert.Equal(t, 20, balance)
}

func TestPostEntry_NegativeBalanceAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo)

	mockRepo.EXPECT().
		PostEntry(gomock.Any(), gomock.Any()).
		Return(-30, nil)

	balance, err := uc.PostEntry(context.Background(), "driver-001", -100, models.PointReasonRideCompleted)
	assert.NoError(t, err)
	assert.Equal(t, -30, balance)
}

func TestPostEntry_UnknownDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo)

	mockRepo.EXPECT().
		PostEntry(gomock.Any(), gomock.Any()).
		Return(0, errs.ErrDriverNotFound)

	_, err := uc.PostEntry(context.Background(), "missing", 10, models.PointReasonBonus)
	assert.ErrorIs(t, err, errs.ErrDriverNotFound)
}

func TestGetHistory_UsesConfiguredPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo)

	mockRepo.EXPECT().
		GetHistory(gomock.Any(), "driver-001", 100).
		Return([]*models.PointEntry{}, nil)

	entries, err := uc.GetHistory(context.Background(), "driver-001")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
