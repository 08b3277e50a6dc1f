package ledger

import (
	"context"

	"github.com/fastaxi/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fastaxi/dispatch/services/ledger LedgerRepo

// LedgerRepo defines the points ledger repository interface
type LedgerRepo interface {
	// PostEntry appends a ledger entry and atomically updates the driver's
	// cached balance, returning the new balance.
	PostEntry(ctx context.Context, entry *models.PointEntry) (int, error)
	GetBalance(ctx context.Context, driverID string) (*models.PointBalance, error)
	GetHistory(ctx context.Context, driverID string, limit int) ([]*models.PointEntry, error)
}

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fastaxi/dispatch/services/ledger LedgerUC

// LedgerUC defines the points ledger business logic interface
type LedgerUC interface {
	ComputeRequiredPoints(pickup, destination *models.Location) (int, error)
	PostEntry(ctx context.Context, driverID string, change int, reason models.PointReason) (int, error)
	GetBalance(ctx context.Context, driverID string) (*models.PointBalance, error)
	GetHistory(ctx context.Context, driverID string) ([]*models.PointEntry, error)
}
