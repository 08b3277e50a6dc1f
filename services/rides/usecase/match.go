package usecase

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/logger"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/services/drivers"
	"github.com/fastaxi/dispatch/services/rides"
)

// matcher broadcasts new ride requests to every eligible nearby driver and
// remembers who was offered what, so losing candidates can be told when the
// request is taken. First acceptance wins; the race is settled by the store,
// not here.
type matcher struct {
	cfg      *models.Config
	driverUC drivers.DriverUC
	rideGW   rides.RideGW

	mu     sync.Mutex
	offers map[string][]string // request id -> notified driver ids
}

func newMatcher(cfg *models.Config, driverUC drivers.DriverUC, rideGW rides.RideGW) *matcher {
	return &matcher{
		cfg:      cfg,
		driverUC: driverUC,
		rideGW:   rideGW,
		offers:   make(map[string][]string),
	}
}

// dispatch offers the request to eligible drivers near the pickup point,
// skipping drivers who already hold an accepted ride.
func (m *matcher) dispatch(ctx context.Context, request *models.RideRequest, busyDriverIDs []string) int {
	exclude := make(map[string]struct{}, len(busyDriverIDs))
	for _, id := range busyDriverIDs {
		exclude[id] = struct{}{}
	}

	candidates, err := m.driverUC.FindNearbyOnline(ctx, request.Pickup, m.cfg.Match.SearchRadiusKm, exclude)
	if err != nil {
		logger.Error("Failed to find nearby drivers", logrus.Fields{
			"request_id": request.RequestID.String(),
			"error":      err.Error(),
		})
		return 0
	}

	if len(candidates) == 0 {
		logger.Info("No drivers available for ride request", logrus.Fields{
			"request_id": request.RequestID.String(),
			"radius_km":  m.cfg.Match.SearchRadiusKm,
		})
		return 0
	}

	notified := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		m.rideGW.NotifyRideOffer(candidate.DriverID, request, candidate.DistanceKm)
		notified = append(notified, candidate.DriverID)
	}

	m.mu.Lock()
	m.offers[request.RequestID.String()] = notified
	m.mu.Unlock()

	logger.Info("Ride request dispatched", logrus.Fields{
		"request_id": request.RequestID.String(),
		"candidates": len(notified),
	})
	return len(notified)
}

// settle tells every candidate except the winner that the request is gone
// and drops the offer record.
func (m *matcher) settle(requestID, winnerDriverID string) {
	for _, driverID := range m.forget(requestID) {
		if driverID == winnerDriverID {
			continue
		}
		m.rideGW.NotifyRideTaken(driverID, requestID)
	}
}

// forget drops and returns the offer record for a request
func (m *matcher) forget(requestID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	notified := m.offers[requestID]
	delete(m.offers, requestID)
	return notified
}
