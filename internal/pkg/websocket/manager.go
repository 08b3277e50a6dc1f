package websocket

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/constants"
	"github.com/fastaxi/dispatch/internal/pkg/jwt"
	"github.com/fastaxi/dispatch/internal/pkg/logger"
	"github.com/fastaxi/dispatch/internal/pkg/models"
)

// clientConn pairs a connection with a write lock; gorilla connections do not
// allow concurrent writers.
type clientConn struct {
	client *models.WebSocketClient
	mu     sync.Mutex
}

// Manager manages driver WebSocket connections and client state
type Manager struct {
	mu       sync.RWMutex
	clients  map[string]*clientConn
	cfg      models.JWTConfig
	upgrader websocket.Upgrader

	// onDisconnect reports connection loss into the driver registry
	onDisconnect func(driverID string)
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*clientConn),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// SetDisconnectHandler registers the callback invoked when a driver connection closes
func (m *Manager) SetDisconnectHandler(fn func(driverID string)) {
	m.onDisconnect = fn
}

// HandleConnection authenticates and handles a new WebSocket connection.
// handleClient runs the read loop and returns when the connection is done.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	m.addClient(client)
	defer m.removeClient(client.DriverID)

	logger.Info("Driver connected", logrus.Fields{"driver_id": client.DriverID})
	return handleClient(client, ws)
}

// authenticateClient validates the bearer token from header or query param
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	token := c.QueryParam("token")
	if token == "" {
		auth := c.Request().Header.Get("Authorization")
		token = strings.TrimPrefix(auth, "Bearer ")
	}
	if token == "" {
		return nil, fmt.Errorf("missing auth token")
	}

	driverID, err := jwt.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("invalid auth token: %w", err)
	}

	return &models.WebSocketClient{DriverID: driverID}, nil
}

func (m *Manager) addClient(client *models.WebSocketClient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// A reconnect replaces any stale connection for the same driver
	m.clients[client.DriverID] = &clientConn{client: client}
}

func (m *Manager) removeClient(driverID string) {
	m.mu.Lock()
	delete(m.clients, driverID)
	m.mu.Unlock()

	logger.Info("Driver disconnected", logrus.Fields{"driver_id": driverID})
	if m.onDisconnect != nil {
		m.onDisconnect(driverID)
	}
}

// GetClient returns the connected client for a driver, if any
func (m *Manager) GetClient(driverID string) (*models.WebSocketClient, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cc, ok := m.clients[driverID]
	if !ok {
		return nil, false
	}
	return cc.client, true
}

// IsConnected reports whether a driver currently has a live connection
func (m *Manager) IsConnected(driverID string) bool {
	_, ok := m.GetClient(driverID)
	return ok
}

// NotifyClient sends an event to a connected driver. Delivery is best-effort:
// a send failure is logged and does not block the caller's flow.
func (m *Manager) NotifyClient(driverID, event string, data interface{}) {
	m.mu.RLock()
	cc, ok := m.clients[driverID]
	m.mu.RUnlock()
	if !ok {
		return
	}

	if err := m.writeMessage(cc, event, data); err != nil {
		logger.Warn("Failed to notify driver", logrus.Fields{
			"driver_id": driverID,
			"event":     event,
			"error":     err.Error(),
		})
	}
}

// SendMessage writes an event to a specific connection
func (m *Manager) SendMessage(client *models.WebSocketClient, event string, data interface{}) error {
	m.mu.RLock()
	cc, ok := m.clients[client.DriverID]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("driver %s not connected", client.DriverID)
	}
	return m.writeMessage(cc, event, data)
}

// SendErrorMessage writes an error event to a specific connection
func (m *Manager) SendErrorMessage(client *models.WebSocketClient, code, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

func (m *Manager) writeMessage(cc *clientConn, event string, data interface{}) error {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.client.Conn.WriteJSON(map[string]interface{}{
		"event": event,
		"data":  data,
	})
}
