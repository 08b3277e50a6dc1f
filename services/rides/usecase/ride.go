package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/logger"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/internal/utils"
	"github.com/fastaxi/dispatch/services/drivers"
	"github.com/fastaxi/dispatch/services/ledger"
	"github.com/fastaxi/dispatch/services/rides"
)

// RideUC implements the rides.RideUC interface
type RideUC struct {
	cfg      *models.Config
	rideRepo rides.RideRepo
	driverUC drivers.DriverUC
	ledgerUC ledger.LedgerUC
	rideGW   rides.RideGW
	matcher  *matcher
}

// NewRideUC creates a new ride lifecycle use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	driverUC drivers.DriverUC,
	ledgerUC ledger.LedgerUC,
	rideGW rides.RideGW,
) *RideUC {
	return &RideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		driverUC: driverUC,
		ledgerUC: ledgerUC,
		rideGW:   rideGW,
		matcher:  newMatcher(cfg, driverUC, rideGW),
	}
}

// CreateRequest validates and stores a new ride request, then offers it to
// nearby drivers. The point cost is fixed here and never recomputed.
func (uc *RideUC) CreateRequest(ctx context.Context, input *models.RideRequestInput) (*models.RideRequest, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	requiredPoints, err := uc.ledgerUC.ComputeRequiredPoints(input.Pickup, input.Destination)
	if err != nil {
		return nil, err
	}

	request := &models.RideRequest{
		ClientName:     input.ClientName,
		ClientPhone:    input.ClientPhone,
		Pickup:         *input.Pickup,
		Destination:    *input.Destination,
		RequiredPoints: requiredPoints,
		CarType:        input.CarType,
		Remarks:        input.Remarks,
	}

	if err := uc.rideRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	logger.Info("Ride request created", logrus.Fields{
		"request_id":      request.RequestID.String(),
		"required_points": requiredPoints,
	})

	if err := uc.rideGW.PublishRideRequested(ctx, request); err != nil {
		logger.Warn("Failed to publish ride requested event", logrus.Fields{
			"request_id": request.RequestID.String(),
			"error":      err.Error(),
		})
	}

	busyDriverIDs, err := uc.rideRepo.ListAcceptedDriverIDs(ctx)
	if err != nil {
		logger.Error("Failed to list busy drivers, dispatching without exclusions", logrus.Fields{
			"request_id": request.RequestID.String(),
			"error":      err.Error(),
		})
		busyDriverIDs = nil
	}
	uc.matcher.dispatch(ctx, request, busyDriverIDs)

	return request, nil
}

// GetRequest retrieves a ride request by id
func (uc *RideUC) GetRequest(ctx context.Context, requestID string) (*models.RideRequest, error) {
	return uc.rideRepo.GetRequest(ctx, requestID)
}

// ListOpenRequests returns all rides still waiting for a driver
func (uc *RideUC) ListOpenRequests(ctx context.Context) ([]*models.RideRequest, error) {
	return uc.rideRepo.ListOpenRequests(ctx)
}

// ListRequests returns the full ride request history, newest first
func (uc *RideUC) ListRequests(ctx context.Context) ([]*models.RideRequest, error) {
	return uc.rideRepo.ListRequests(ctx)
}

// AcceptRide claims a requested ride for a driver. A driver already holding
// an accepted ride is refused; otherwise the store settles the race and at
// most one caller succeeds.
func (uc *RideUC) AcceptRide(ctx context.Context, requestID, driverID string) (*models.RideRequest, error) {
	if _, err := uc.rideRepo.GetActiveRideByDriver(ctx, driverID); err == nil {
		return nil, errs.ErrDriverBusy
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	request, err := uc.rideRepo.AcceptRequest(ctx, requestID, driverID)
	if err != nil {
		return nil, err
	}

	logger.Info("Ride request accepted", logrus.Fields{
		"request_id": requestID,
		"driver_id":  driverID,
	})

	uc.matcher.settle(requestID, driverID)

	if err := uc.rideGW.PublishRideAccepted(ctx, request); err != nil {
		logger.Warn("Failed to publish ride accepted event", logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		})
	}

	return request, nil
}

// CompleteRide finishes an accepted ride and debits the driver's points
func (uc *RideUC) CompleteRide(ctx context.Context, requestID, driverID string) (*models.RideRequest, error) {
	request, err := uc.rideRepo.CompleteRequest(ctx, requestID, driverID)
	if err != nil {
		return nil, err
	}

	balance, err := uc.ledgerUC.PostEntry(ctx, driverID, -request.RequiredPoints, models.PointReasonRideCompleted)
	if err != nil {
		// the ride is already completed, the missing debit needs followup
		logger.Error("Failed to debit points for completed ride", logrus.Fields{
			"request_id": requestID,
			"driver_id":  driverID,
			"points":     request.RequiredPoints,
			"error":      err.Error(),
		})
	} else {
		logger.Info("Ride completed", logrus.Fields{
			"request_id": requestID,
			"driver_id":  driverID,
			"points":     request.RequiredPoints,
			"balance":    balance,
		})
	}

	if err := uc.rideGW.PublishRideCompleted(ctx, request); err != nil {
		logger.Warn("Failed to publish ride completed event", logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		})
	}

	return request, nil
}

// CancelRide cancels a requested or accepted ride on behalf of the actor
func (uc *RideUC) CancelRide(ctx context.Context, requestID string, actor models.CancelActor) (*models.RideRequest, error) {
	request, err := uc.rideRepo.CancelRequest(ctx, requestID, actor)
	if err != nil {
		return nil, err
	}

	logger.Info("Ride request canceled", logrus.Fields{
		"request_id":  requestID,
		"canceled_by": string(actor),
	})

	// a still-open request may have live offers out
	for _, candidateID := range uc.matcher.forget(requestID) {
		uc.rideGW.NotifyRideCanceled(candidateID, requestID)
	}

	if request.DriverID != "" {
		uc.rideGW.NotifyRideCanceled(request.DriverID, requestID)
	}

	if err := uc.rideGW.PublishRideCanceled(ctx, request); err != nil {
		logger.Warn("Failed to publish ride canceled event", logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		})
	}

	return request, nil
}

// StartExpirySweep periodically times out requested rides older than the
// configured timeout. Blocks until ctx is canceled.
func (uc *RideUC) StartExpirySweep(ctx context.Context) {
	interval := time.Duration(uc.cfg.Rides.SweepIntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Ride expiry sweep started", logrus.Fields{
		"interval_sec": uc.cfg.Rides.SweepIntervalSec,
		"timeout_sec":  uc.cfg.Rides.ExpiryTimeoutSec,
	})

	for {
		select {
		case <-ctx.Done():
			logger.Info("Ride expiry sweep stopped", nil)
			return
		case <-ticker.C:
			uc.sweepExpired(ctx)
		}
	}
}

func (uc *RideUC) sweepExpired(ctx context.Context) {
	cutoff := time.Now().Add(-time.Duration(uc.cfg.Rides.ExpiryTimeoutSec) * time.Second)

	expiredIDs, err := uc.rideRepo.ExpireOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("Failed to expire stale ride requests", logrus.Fields{
			"error": err.Error(),
		})
		return
	}

	for _, requestID := range expiredIDs {
		logger.Info("Ride request expired", logrus.Fields{"request_id": requestID})
		for _, driverID := range uc.matcher.forget(requestID) {
			uc.rideGW.NotifyRideExpired(driverID, requestID)
		}
		if err := uc.rideGW.PublishRideExpired(ctx, requestID); err != nil {
			logger.Warn("Failed to publish ride expired event", logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			})
		}
	}
}

func validateInput(input *models.RideRequestInput) error {
	if input.Pickup == nil || input.Destination == nil {
		return errs.ErrInvalidCoordinates
	}
	if !utils.ValidCoordinates(input.Pickup.Latitude, input.Pickup.Longitude) {
		return errs.ErrInvalidCoordinates
	}
	if !utils.ValidCoordinates(input.Destination.Latitude, input.Destination.Longitude) {
		return errs.ErrInvalidCoordinates
	}
	return nil
}
