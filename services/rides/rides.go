package rides

import (
	"context"
	"time"

	"github.com/fastaxi/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fastaxi/dispatch/services/rides RideRepo

// RideRepo defines the ride request repository interface. Acceptance,
// completion and cancellation are compare-and-swap operations: the store
// transitions the row only from the expected status and reports a conflict
// otherwise.
type RideRepo interface {
	CreateRequest(ctx context.Context, request *models.RideRequest) error
	GetRequest(ctx context.Context, requestID string) (*models.RideRequest, error)
	// AcceptRequest transitions requested -> accepted for driverID. At most
	// one caller can win, and a driver already holding an accepted ride is
	// refused with errs.ErrDriverBusy; other losers get errs.ErrAlreadyTaken
	// or errs.ErrInvalidState depending on the request's current status.
	AcceptRequest(ctx context.Context, requestID, driverID string) (*models.RideRequest, error)
	// CompleteRequest transitions accepted -> completed, only for the driver
	// holding the acceptance.
	CompleteRequest(ctx context.Context, requestID, driverID string) (*models.RideRequest, error)
	// CancelRequest transitions requested|accepted -> canceled recording the actor.
	CancelRequest(ctx context.Context, requestID string, actor models.CancelActor) (*models.RideRequest, error)
	// ExpireOlderThan transitions every requested ride created before cutoff
	// to expired and returns the affected request ids.
	ExpireOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
	ListOpenRequests(ctx context.Context) ([]*models.RideRequest, error)
	ListRequests(ctx context.Context) ([]*models.RideRequest, error)
	ListAcceptedDriverIDs(ctx context.Context) ([]string, error)
	// GetActiveRideByDriver returns the driver's accepted ride, or
	// errs.ErrNotFound when the driver holds none.
	GetActiveRideByDriver(ctx context.Context, driverID string) (*models.RideRequest, error)
}

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fastaxi/dispatch/services/rides RideGW

// RideGW fans ride lifecycle events out to drivers and external consumers
type RideGW interface {
	// NotifyRideOffer pushes a new ride offer to a connected driver
	NotifyRideOffer(driverID string, request *models.RideRequest, distanceKm float64)
	// NotifyRideTaken tells losing candidates the offer is gone
	NotifyRideTaken(driverID string, requestID string)
	// NotifyRideCanceled tells the accepted driver the ride was canceled
	NotifyRideCanceled(driverID string, requestID string)
	// NotifyRideExpired tells outstanding candidates the offer timed out
	NotifyRideExpired(driverID string, requestID string)
	PublishRideRequested(ctx context.Context, request *models.RideRequest) error
	PublishRideAccepted(ctx context.Context, request *models.RideRequest) error
	PublishRideCompleted(ctx context.Context, request *models.RideRequest) error
	PublishRideCanceled(ctx context.Context, request *models.RideRequest) error
	PublishRideExpired(ctx context.Context, requestID string) error
}

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fastaxi/dispatch/services/rides RideUC

// RideUC defines the ride lifecycle business logic interface
type RideUC interface {
	// CreateRequest validates and stores a new ride request, then dispatches
	// it to nearby candidates.
	CreateRequest(ctx context.Context, input *models.RideRequestInput) (*models.RideRequest, error)
	GetRequest(ctx context.Context, requestID string) (*models.RideRequest, error)
	ListOpenRequests(ctx context.Context) ([]*models.RideRequest, error)
	ListRequests(ctx context.Context) ([]*models.RideRequest, error)
	AcceptRide(ctx context.Context, requestID, driverID string) (*models.RideRequest, error)
	CompleteRide(ctx context.Context, requestID, driverID string) (*models.RideRequest, error)
	CancelRide(ctx context.Context, requestID string, actor models.CancelActor) (*models.RideRequest, error)
	// StartExpirySweep runs the background expiry loop until ctx is canceled
	StartExpirySweep(ctx context.Context)
}
