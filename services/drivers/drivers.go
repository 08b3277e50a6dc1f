package drivers

import (
	"context"

	"github.com/fastaxi/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fastaxi/dispatch/services/drivers DriverRepo,PresenceRepo,RideLookup

// DriverRepo defines the driver profile repository interface
type DriverRepo interface {
	// UpsertDriver creates or updates a driver profile keyed by driver id.
	// The returned flag is true when the driver was newly created.
	UpsertDriver(ctx context.Context, driver *models.Driver) (*models.Driver, bool, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	ListDrivers(ctx context.Context) ([]*models.Driver, error)
	ReplaceCars(ctx context.Context, driverID string, cars []models.Car) error
}

// PresenceRepo defines the live presence store interface
type PresenceRepo interface {
	SetOnline(ctx context.Context, driverID string, status models.DriverStatus, location *models.Location) error
	SetOffline(ctx context.Context, driverID string) error
	UpdateLocation(ctx context.Context, driverID string, location models.Location) error
	GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error)
	// FindNearby returns candidates within radiusKm of point, ascending by
	// distance. Callers filter eligibility.
	FindNearby(ctx context.Context, point models.Location, radiusKm float64) ([]*models.NearbyDriver, error)
	OnlineCount(ctx context.Context) (int, error)
	IsOnline(ctx context.Context, driverID string) (bool, error)
}

// RideLookup is the narrow view of ride state the registry needs to compute
// availability. Implemented by the rides repository.
type RideLookup interface {
	ListAcceptedDriverIDs(ctx context.Context) ([]string, error)
}

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fastaxi/dispatch/services/drivers DriverGW

// DriverGW publishes driver presence events for external consumers
type DriverGW interface {
	PublishPresence(ctx context.Context, driverID string, online bool, location *models.Location) error
}

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fastaxi/dispatch/services/drivers DriverUC

// DriverUC defines the driver registry business logic interface
type DriverUC interface {
	RegisterOrUpdateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, string, error)
	SetOnline(ctx context.Context, driverID string, cars []models.Car) error
	SetOffline(ctx context.Context, driverID string) error
	UpdateLocation(ctx context.Context, driverID string, latitude, longitude float64) error
	FindNearbyOnline(ctx context.Context, point models.Location, radiusKm float64, exclude map[string]struct{}) ([]*models.NearbyDriver, error)
	AvailableSummary(ctx context.Context) (*models.DriverSummary, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	ListDrivers(ctx context.Context) ([]*models.Driver, error)
	// Disconnect is reported by the websocket manager on connection loss and
	// behaves like SetOffline.
	Disconnect(driverID string)
}
