package usecase

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/logger"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/internal/utils"
	"github.com/fastaxi/dispatch/services/ledger"
)

// LedgerUC implements the ledger.LedgerUC interface
type LedgerUC struct {
	cfg        *models.Config
	ledgerRepo ledger.LedgerRepo
}

// NewLedgerUC creates a new ledger use case
func NewLedgerUC(cfg *models.Config, ledgerRepo ledger.LedgerRepo) *LedgerUC {
	return &LedgerUC{
		cfg:        cfg,
		ledgerRepo: ledgerRepo,
	}
}

// ComputeRequiredPoints converts the pickup-to-destination distance into a
// point cost: ceil(distanceKm * pointsPerKm). The cost is fixed at request
// creation and never recomputed.
func (uc *LedgerUC) ComputeRequiredPoints(pickup, destination *models.Location) (int, error) {
	if pickup == nil || destination == nil {
		return 0, errs.ErrInvalidCoordinates
	}

	distance := utils.CalculateDistance(
		utils.GeoPointFromLocation(*pickup),
		utils.GeoPointFromLocation(*destination),
	)

	return int(math.Ceil(distance * float64(uc.cfg.Ledger.PointsPerKm))), nil
}

// PostEntry records a signed point delta against a driver's running balance.
// Negative balances are allowed; a debit past zero emits a warning so the
// business can follow up, matching the permissive historical behavior.
func (uc *LedgerUC) PostEntry(ctx context.Context, driverID string, change int, reason models.PointReason) (int, error) {
	entry := &models.PointEntry{
		DriverID: driverID,
		Change:   change,
		Reason:   reason,
	}

	balance, err := uc.ledgerRepo.PostEntry(ctx, entry)
	if err != nil {
		return 0, err
	}

	if balance < 0 {
		logger.Warn("Driver point balance went negative", logrus.Fields{
			"driver_id": driverID,
			"balance":   balance,
			"change":    change,
			"reason":    reason,
		})
	}

	return balance, nil
}

// GetBalance returns the driver's current balance and last ledger activity
func (uc *LedgerUC) GetBalance(ctx context.Context, driverID string) (*models.PointBalance, error) {
	return uc.ledgerRepo.GetBalance(ctx, driverID)
}

// GetHistory returns the driver's ledger entries, most recent first
func (uc *LedgerUC) GetHistory(ctx context.Context, driverID string) ([]*models.PointEntry, error) {
	return uc.ledgerRepo.GetHistory(ctx, driverID, uc.cfg.Ledger.HistoryPageMax)
}
