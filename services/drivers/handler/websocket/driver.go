package websocket

import (
	"context"
	"encoding/json"
	"errors"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/constants"
	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/logger"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	ws "github.com/fastaxi/dispatch/internal/pkg/websocket"
	"github.com/fastaxi/dispatch/services/drivers"
	"github.com/fastaxi/dispatch/services/rides"
)

// DriverWSHandler owns the driver-facing websocket channel. A connected
// driver streams location updates in and receives ride offers and lifecycle
// notifications out; accept and complete actions ride the same connection.
type DriverWSHandler struct {
	manager  *ws.Manager
	driverUC drivers.DriverUC
	rideUC   rides.RideUC
}

// NewDriverWSHandler creates a new driver websocket handler
func NewDriverWSHandler(manager *ws.Manager, driverUC drivers.DriverUC, rideUC rides.RideUC) *DriverWSHandler {
	return &DriverWSHandler{
		manager:  manager,
		driverUC: driverUC,
		rideUC:   rideUC,
	}
}

// RegisterRoutes registers the websocket endpoint
func (h *DriverWSHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/drivers", h.HandleConnection)
}

// HandleConnection authenticates and upgrades a driver connection
func (h *DriverWSHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *DriverWSHandler) handleClient(client *models.WebSocketClient, conn *gorillaws.Conn) error {
	ctx := context.Background()

	// connecting implies availability
	if err := h.driverUC.SetOnline(ctx, client.DriverID, nil); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			_ = h.manager.SendErrorMessage(client, constants.ErrorUnauthorized, "Unknown driver")
			return err
		}
		logger.Error("Failed to set driver online on connect", logrus.Fields{
			"driver_id": client.DriverID,
			"error":     err.Error(),
		})
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Malformed message")
			continue
		}

		h.routeMessage(ctx, client, msg)
	}
}

func (h *DriverWSHandler) routeMessage(ctx context.Context, client *models.WebSocketClient, msg models.WSMessage) {
	switch msg.Event {
	case constants.EventPing:
		_ = h.manager.SendMessage(client, constants.EventPong, nil)
	case constants.EventLocationUpdate:
		h.handleLocationUpdate(ctx, client, msg.Data)
	case constants.EventRideAccept:
		h.handleRideAccept(ctx, client, msg.Data)
	case constants.EventRideComplete:
		h.handleRideComplete(ctx, client, msg.Data)
	default:
		_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
	}
}

func (h *DriverWSHandler) handleLocationUpdate(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) {
	var location models.Location
	if err := json.Unmarshal(data, &location); err != nil {
		_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Malformed location")
		return
	}

	if err := h.driverUC.UpdateLocation(ctx, client.DriverID, location.Latitude, location.Longitude); err != nil {
		if errors.Is(err, errs.ErrInvalidCoordinates) {
			_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid coordinates")
			return
		}
		logger.Error("Failed to update driver location", logrus.Fields{
			"driver_id": client.DriverID,
			"error":     err.Error(),
		})
		_ = h.manager.SendErrorMessage(client, constants.ErrorInternalError, "Failed to update location")
	}
}

func (h *DriverWSHandler) handleRideAccept(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) {
	var action models.RideActionRequest
	if err := json.Unmarshal(data, &action); err != nil || action.RequestID == "" {
		_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Malformed ride accept")
		return
	}

	request, err := h.rideUC.AcceptRide(ctx, action.RequestID, client.DriverID)
	if err != nil {
		h.sendRideError(client, err, "Failed to accept ride")
		return
	}

	_ = h.manager.SendMessage(client, constants.EventRideAccepted, request)
}

func (h *DriverWSHandler) handleRideComplete(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) {
	var action models.RideActionRequest
	if err := json.Unmarshal(data, &action); err != nil || action.RequestID == "" {
		_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Malformed ride complete")
		return
	}

	request, err := h.rideUC.CompleteRide(ctx, action.RequestID, client.DriverID)
	if err != nil {
		h.sendRideError(client, err, "Failed to complete ride")
		return
	}

	_ = h.manager.SendMessage(client, constants.EventRideCompleted, request)
}

func (h *DriverWSHandler) sendRideError(client *models.WebSocketClient, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrAlreadyTaken):
		_ = h.manager.SendErrorMessage(client, constants.ErrorRideTaken, "Ride already taken")
	case errors.Is(err, errs.ErrNotFound):
		_ = h.manager.SendErrorMessage(client, constants.ErrorRideNotFound, "Ride not found")
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrDriverBusy):
		_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidState, err.Error())
	default:
		_ = h.manager.SendErrorMessage(client, constants.ErrorInternalError, fallback)
	}
}
