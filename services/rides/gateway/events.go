package gateway

import (
	"context"

	"github.com/fastaxi/dispatch/internal/pkg/constants"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/internal/pkg/nsq"
	"github.com/fastaxi/dispatch/internal/pkg/websocket"
)

// RideGW fans ride lifecycle events out over websocket pushes to connected
// drivers and NSQ topics for external consumers
type RideGW struct {
	producer  nsq.Publisher
	wsManager *websocket.Manager
}

// NewRideGW creates a new ride gateway
func NewRideGW(producer nsq.Publisher, wsManager *websocket.Manager) *RideGW {
	return &RideGW{
		producer:  producer,
		wsManager: wsManager,
	}
}

// rideOffer is the websocket payload for a new ride offer
type rideOffer struct {
	Request    *models.RideRequest `json:"request"`
	DistanceKm float64             `json:"distance_km"`
}

// rideRef is the websocket payload for events that only carry a request id
type rideRef struct {
	RequestID string `json:"request_id"`
}

// NotifyRideOffer pushes a new ride offer to a connected driver
func (gw *RideGW) NotifyRideOffer(driverID string, request *models.RideRequest, distanceKm float64) {
	gw.wsManager.NotifyClient(driverID, constants.EventNewRideRequest, rideOffer{
		Request:    request,
		DistanceKm: distanceKm,
	})
}

// NotifyRideTaken tells a losing candidate the offer is gone
func (gw *RideGW) NotifyRideTaken(driverID, requestID string) {
	gw.wsManager.NotifyClient(driverID, constants.EventRideTaken, rideRef{RequestID: requestID})
}

// NotifyRideCanceled tells the accepted driver the ride was canceled
func (gw *RideGW) NotifyRideCanceled(driverID, requestID string) {
	gw.wsManager.NotifyClient(driverID, constants.EventRideCanceled, rideRef{RequestID: requestID})
}

// NotifyRideExpired tells an outstanding candidate the offer timed out
func (gw *RideGW) NotifyRideExpired(driverID, requestID string) {
	gw.wsManager.NotifyClient(driverID, constants.EventRideExpired, rideRef{RequestID: requestID})
}

// PublishRideRequested publishes a ride.requested event
func (gw *RideGW) PublishRideRequested(_ context.Context, request *models.RideRequest) error {
	return gw.producer.Publish(constants.TopicRideRequested, request)
}

// PublishRideAccepted publishes a ride.accepted event
func (gw *RideGW) PublishRideAccepted(_ context.Context, request *models.RideRequest) error {
	return gw.producer.Publish(constants.TopicRideAccepted, request)
}

// PublishRideCompleted publishes a ride.completed event
func (gw *RideGW) PublishRideCompleted(_ context.Context, request *models.RideRequest) error {
	return gw.producer.Publish(constants.TopicRideCompleted, request)
}

// PublishRideCanceled publishes a ride.canceled event
func (gw *RideGW) PublishRideCanceled(_ context.Context, request *models.RideRequest) error {
	return gw.producer.Publish(constants.TopicRideCanceled, request)
}

// PublishRideExpired publishes a ride.expired event
func (gw *RideGW) PublishRideExpired(_ context.Context, requestID string) error {
	return gw.producer.Publish(constants.TopicRideExpired, rideRef{RequestID: requestID})
}
