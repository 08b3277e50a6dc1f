package models

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// WebSocketClient represents an authenticated driver connection
type WebSocketClient struct {
	DriverID string
	Conn     *websocket.Conn
}

// WSMessage is the envelope for all websocket traffic
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// WSErrorMessage is the payload for error events
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RideActionRequest is the payload for ride_accept / ride_complete events
type RideActionRequest struct {
	RequestID string `json:"request_id"`
}
