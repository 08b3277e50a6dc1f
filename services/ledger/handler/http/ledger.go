package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/utils"
	"github.com/fastaxi/dispatch/services/ledger"
)

// LedgerHandler handles HTTP requests for points ledger operations
type LedgerHandler struct {
	ledgerUC ledger.LedgerUC
}

// NewLedgerHandler creates a new ledger HTTP handler
func NewLedgerHandler(ledgerUC ledger.LedgerUC) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
	}
}

// RegisterRoutes registers the ledger handler routes
func (h *LedgerHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/drivers/:driverID/points", h.GetPoints)
	e.GET("/drivers/:driverID/points/history", h.GetHistory)
}

// GetPoints returns a driver's current point balance
func (h *LedgerHandler) GetPoints(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	balance, err := h.ledgerUC.GetBalance(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, errs.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get point balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Point balance retrieved", balance)
}

// GetHistory returns a driver's ledger history, most recent first
func (h *LedgerHandler) GetHistory(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	entries, err := h.ledgerUC.GetHistory(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, errs.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get ledger history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ledger history retrieved", entries)
}
