package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/internal/utils"
	"github.com/fastaxi/dispatch/services/rides"
)

// RideHandler handles HTTP requests for ride lifecycle operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// RegisterRoutes registers the ride handler routes
func (h *RideHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/rides", h.CreateRequest)
	e.GET("/rides", h.ListRequests)
	e.GET("/rides/open", h.ListOpen)
	e.GET("/rides/:requestID", h.GetRequest)
	e.POST("/rides/:requestID/accept", h.Accept)
	e.POST("/rides/:requestID/complete", h.Complete)
	e.POST("/rides/:requestID/cancel", h.Cancel)
}

type driverActionRequest struct {
	DriverID string `json:"driver_id"`
}

type cancelRequest struct {
	Actor string `json:"actor"`
}

// CreateRequest submits a new ride request
func (h *RideHandler) CreateRequest(c echo.Context) error {
	var input models.RideRequestInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if input.ClientName == "" || input.ClientPhone == "" {
		return utils.BadRequestResponse(c, "client_name and client_phone are required")
	}

	request, err := h.rideUC.CreateRequest(c.Request().Context(), &input)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, "Invalid pickup or destination coordinates")
		}
		return utils.InternalServerErrorResponse(c, "Failed to create ride request")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride request created", request)
}

// ListRequests returns the full ride request history
func (h *RideHandler) ListRequests(c echo.Context) error {
	requests, err := h.rideUC.ListRequests(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list ride requests")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride requests retrieved", requests)
}

// ListOpen returns all rides still waiting for a driver
func (h *RideHandler) ListOpen(c echo.Context) error {
	requests, err := h.rideUC.ListOpenRequests(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list open requests")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Open ride requests retrieved", requests)
}

// GetRequest returns a ride request by id
func (h *RideHandler) GetRequest(c echo.Context) error {
	requestID := c.Param("requestID")

	request, err := h.rideUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Ride request not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get ride request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride request retrieved", request)
}

// Accept claims a ride request for a driver
func (h *RideHandler) Accept(c echo.Context) error {
	requestID := c.Param("requestID")

	var req driverActionRequest
	if err := c.Bind(&req); err != nil || req.DriverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	request, err := h.rideUC.AcceptRide(c.Request().Context(), requestID, req.DriverID)
	if err != nil {
		return h.rideError(c, err, "Failed to accept ride request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride request accepted", request)
}

// Complete finishes an accepted ride
func (h *RideHandler) Complete(c echo.Context) error {
	requestID := c.Param("requestID")

	var req driverActionRequest
	if err := c.Bind(&req); err != nil || req.DriverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	request, err := h.rideUC.CompleteRide(c.Request().Context(), requestID, req.DriverID)
	if err != nil {
		return h.rideError(c, err, "Failed to complete ride request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride request completed", request)
}

// Cancel cancels a requested or accepted ride
func (h *RideHandler) Cancel(c echo.Context) error {
	requestID := c.Param("requestID")

	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	actor := models.CancelActor(req.Actor)
	if actor != models.CancelActorClient && actor != models.CancelActorDriver {
		return utils.BadRequestResponse(c, "actor must be client or driver")
	}

	request, err := h.rideUC.CancelRide(c.Request().Context(), requestID, actor)
	if err != nil {
		return h.rideError(c, err, "Failed to cancel ride request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride request canceled", request)
}

func (h *RideHandler) rideError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return utils.NotFoundResponse(c, "Ride request not found")
	case errors.Is(err, errs.ErrAlreadyTaken):
		return utils.ConflictResponse(c, "Ride request already taken")
	case errors.Is(err, errs.ErrDriverBusy):
		return utils.ConflictResponse(c, "Driver already has an active ride")
	case errors.Is(err, errs.ErrInvalidState):
		return utils.ConflictResponse(c, "Operation not valid for current ride state")
	default:
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
