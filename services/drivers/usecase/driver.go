package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/jwt"
	"github.com/fastaxi/dispatch/internal/pkg/logger"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/internal/utils"
	"github.com/fastaxi/dispatch/services/drivers"
	"github.com/fastaxi/dispatch/services/ledger"
)

const disconnectTimeout = 5 * time.Second

// DriverUC implements the drivers.DriverUC interface
type DriverUC struct {
	cfg          *models.Config
	driverRepo   drivers.DriverRepo
	presenceRepo drivers.PresenceRepo
	rideLookup   drivers.RideLookup
	ledgerUC     ledger.LedgerUC
	driverGW     drivers.DriverGW
}

// NewDriverUC creates a new driver registry use case
func NewDriverUC(
	cfg *models.Config,
	driverRepo drivers.DriverRepo,
	presenceRepo drivers.PresenceRepo,
	rideLookup drivers.RideLookup,
	ledgerUC ledger.LedgerUC,
	driverGW drivers.DriverGW,
) *DriverUC {
	return &DriverUC{
		cfg:          cfg,
		driverRepo:   driverRepo,
		presenceRepo: presenceRepo,
		rideLookup:   rideLookup,
		ledgerUC:     ledgerUC,
		driverGW:     driverGW,
	}
}

// RegisterOrUpdateDriver upserts a driver profile. A newly registered driver
// receives the signup point bonus. The returned token authenticates the
// driver's websocket session.
func (uc *DriverUC) RegisterOrUpdateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, string, error) {
	result, created, err := uc.driverRepo.UpsertDriver(ctx, driver)
	if err != nil {
		return nil, "", err
	}

	if created {
		balance, err := uc.ledgerUC.PostEntry(ctx, result.DriverID, uc.cfg.Ledger.RegisterBonus, models.PointReasonNewRegister)
		if err != nil {
			// profile exists but the bonus is missing, surface it loudly
			logger.Error("Failed to credit registration bonus", logrus.Fields{
				"driver_id": result.DriverID,
				"error":     err.Error(),
			})
		} else {
			result.Points = balance
		}

		logger.Info("New driver registered", logrus.Fields{
			"driver_id": result.DriverID,
			"bonus":     uc.cfg.Ledger.RegisterBonus,
		})
	}

	token, _, err := jwt.GenerateToken(result.DriverID, uc.cfg.JWT)
	if err != nil {
		return nil, "", err
	}

	return result, token, nil
}

// SetOnline marks a driver available for matching. The fleet may be replaced
// in the same call.
func (uc *DriverUC) SetOnline(ctx context.Context, driverID string, cars []models.Car) error {
	driver, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		return err
	}

	if cars != nil {
		if err := uc.driverRepo.ReplaceCars(ctx, driverID, cars); err != nil {
			return err
		}
	}

	if err := uc.presenceRepo.SetOnline(ctx, driverID, driver.Status, nil); err != nil {
		return err
	}

	logger.Info("Driver online", logrus.Fields{
		"driver_id": driverID,
		"status":    driver.Status,
	})

	if err := uc.driverGW.PublishPresence(ctx, driverID, true, nil); err != nil {
		logger.Warn("Failed to publish presence event", logrus.Fields{
			"driver_id": driverID,
			"error":     err.Error(),
		})
	}

	return nil
}

// SetOffline removes a driver from the matching pool
func (uc *DriverUC) SetOffline(ctx context.Context, driverID string) error {
	if err := uc.presenceRepo.SetOffline(ctx, driverID); err != nil {
		return err
	}

	logger.Info("Driver offline", logrus.Fields{"driver_id": driverID})

	if err := uc.driverGW.PublishPresence(ctx, driverID, false, nil); err != nil {
		logger.Warn("Failed to publish presence event", logrus.Fields{
			"driver_id": driverID,
			"error":     err.Error(),
		})
	}

	return nil
}

// UpdateLocation records a driver's live position. Unknown drivers are logged
// and skipped rather than failing the stream of updates.
func (uc *DriverUC) UpdateLocation(ctx context.Context, driverID string, latitude, longitude float64) error {
	if !utils.ValidCoordinates(latitude, longitude) {
		return errs.ErrInvalidCoordinates
	}

	if _, err := uc.driverRepo.GetDriver(ctx, driverID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			logger.Warn("Location update for unknown driver, skipping", logrus.Fields{
				"driver_id": driverID,
			})
			return nil
		}
		return err
	}

	location := models.Location{
		Latitude:  latitude,
		Longitude: longitude,
		Timestamp: time.Now(),
	}
	return uc.presenceRepo.UpdateLocation(ctx, driverID, location)
}

// FindNearbyOnline returns online, matchable drivers within radiusKm of
// point, ascending by distance, skipping the excluded ids. The result is
// capped at the configured candidate limit.
func (uc *DriverUC) FindNearbyOnline(ctx context.Context, point models.Location, radiusKm float64, exclude map[string]struct{}) ([]*models.NearbyDriver, error) {
	candidates, err := uc.presenceRepo.FindNearby(ctx, point, radiusKm)
	if err != nil {
		return nil, err
	}

	maxCandidates := uc.cfg.Match.MaxCandidates
	eligible := make([]*models.NearbyDriver, 0, len(candidates))
	for _, candidate := range candidates {
		if _, skip := exclude[candidate.DriverID]; skip {
			continue
		}

		presence, err := uc.presenceRepo.GetPresence(ctx, candidate.DriverID)
		if err != nil {
			if errors.Is(err, errs.ErrDriverNotFound) {
				continue
			}
			return nil, err
		}
		if !presence.IsOnline || !presence.Status.Matchable() {
			continue
		}

		eligible = append(eligible, candidate)
		if maxCandidates > 0 && len(eligible) >= maxCandidates {
			break
		}
	}

	return eligible, nil
}

// AvailableSummary reports how many drivers are online and how many of those
// are free to take a ride.
func (uc *DriverUC) AvailableSummary(ctx context.Context) (*models.DriverSummary, error) {
	online, err := uc.presenceRepo.OnlineCount(ctx)
	if err != nil {
		return nil, err
	}

	busyIDs, err := uc.rideLookup.ListAcceptedDriverIDs(ctx)
	if err != nil {
		return nil, err
	}

	busyOnline := 0
	for _, driverID := range busyIDs {
		isOnline, err := uc.presenceRepo.IsOnline(ctx, driverID)
		if err != nil {
			return nil, err
		}
		if isOnline {
			busyOnline++
		}
	}

	return &models.DriverSummary{
		OnlineCount:    online,
		AvailableCount: online - busyOnline,
	}, nil
}

// GetDriver retrieves a driver profile with its fleet
func (uc *DriverUC) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	return uc.driverRepo.GetDriver(ctx, driverID)
}

// ListDrivers returns all registered driver profiles
func (uc *DriverUC) ListDrivers(ctx context.Context) ([]*models.Driver, error) {
	return uc.driverRepo.ListDrivers(ctx)
}

// Disconnect handles a dropped websocket connection by taking the driver
// offline. Runs on its own context since the connection's is already gone.
func (uc *DriverUC) Disconnect(driverID string) {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := uc.SetOffline(ctx, driverID); err != nil {
		logger.Error("Failed to take disconnected driver offline", logrus.Fields{
			"driver_id": driverID,
			"error":     err.Error(),
		})
	}
}
