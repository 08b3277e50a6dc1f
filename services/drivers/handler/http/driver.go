package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/internal/utils"
	"github.com/fastaxi/dispatch/services/drivers"
)

// DriverHandler handles HTTP requests for driver registry operations
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
	}
}

// RegisterRoutes registers the driver handler routes
func (h *DriverHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/drivers/register", h.Register)
	e.POST("/drivers/:driverID/online", h.SetOnline)
	e.POST("/drivers/:driverID/offline", h.SetOffline)
	e.PUT("/drivers/:driverID/location", h.UpdateLocation)
	e.GET("/drivers", h.ListDrivers)
	e.GET("/drivers/summary", h.GetSummary)
	e.GET("/drivers/:driverID", h.GetDriver)
}

type registerRequest struct {
	DriverID    string       `json:"driver_id"`
	Name        string       `json:"name"`
	PhoneNumber string       `json:"phone_number"`
	IDPhotoURL  string       `json:"id_photo_url"`
	Cars        []models.Car `json:"cars"`
}

type registerResponse struct {
	Driver *models.Driver `json:"driver"`
	Token  string         `json:"token"`
}

type onlineRequest struct {
	Cars []models.Car `json:"cars"`
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Register creates or updates a driver profile
func (h *DriverHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.DriverID == "" || req.Name == "" || req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "driver_id, name and phone_number are required")
	}

	driver := &models.Driver{
		DriverID:    req.DriverID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		IDPhotoURL:  req.IDPhotoURL,
		Cars:        req.Cars,
	}

	result, token, err := h.driverUC.RegisterOrUpdateDriver(c.Request().Context(), driver)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to register driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver registered", registerResponse{
		Driver: result,
		Token:  token,
	})
}

// SetOnline marks a driver available for matching
func (h *DriverHandler) SetOnline(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req onlineRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.driverUC.SetOnline(c.Request().Context(), driverID, req.Cars); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to set driver online")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver online", nil)
}

// SetOffline removes a driver from the matching pool
func (h *DriverHandler) SetOffline(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	if err := h.driverUC.SetOffline(c.Request().Context(), driverID); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to set driver offline")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver offline", nil)
}

// UpdateLocation records a driver's live position
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return utils.BadRequestResponse(c, "latitude and longitude are required")
	}

	if err := h.driverUC.UpdateLocation(c.Request().Context(), driverID, *req.Latitude, *req.Longitude); err != nil {
		if errors.Is(err, errs.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, "Invalid coordinates")
		}
		return utils.InternalServerErrorResponse(c, "Failed to update location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// ListDrivers returns every registered driver profile
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	result, err := h.driverUC.ListDrivers(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved", result)
}

// GetSummary reports fleet-wide driver availability
func (h *DriverHandler) GetSummary(c echo.Context) error {
	summary, err := h.driverUC.AvailableSummary(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get driver summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver summary retrieved", summary)
}

// GetDriver returns a driver profile with its fleet
func (h *DriverHandler) GetDriver(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved", driver)
}
