package models

import "time"

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}

// LocationUpdate represents a driver location update event
type LocationUpdate struct {
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
