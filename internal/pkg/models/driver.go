package models

import "time"

// DriverStatus controls matching eligibility independent of presence
type DriverStatus string

const (
	DriverStatusPending   DriverStatus = "pending"
	DriverStatusActive    DriverStatus = "active"
	DriverStatusSuspended DriverStatus = "suspended"
	DriverStatusDeleted   DriverStatus = "deleted"
)

// Matchable reports whether a driver in this status may receive ride offers.
// Registration leaves drivers pending until verification, but only moderation
// (suspension or deletion) blocks matching.
func (s DriverStatus) Matchable() bool {
	return s != DriverStatusSuspended && s != DriverStatusDeleted
}

// CarColor is restricted to the fleet palette
type CarColor string

const (
	CarColorRed   CarColor = "red"
	CarColorGreen CarColor = "green"
	CarColorBlue  CarColor = "blue"
)

// Car represents a single vehicle in a driver's fleet
type Car struct {
	LicensePlate string   `json:"license_plate" db:"license_plate"`
	Color        CarColor `json:"color" db:"color"`
	CarType      string   `json:"car_type" db:"car_type"`
}

// Driver represents a registered driver profile
type Driver struct {
	DriverID    string       `json:"driver_id" db:"driver_id"`
	Name        string       `json:"name" db:"name"`
	PhoneNumber string       `json:"phone_number" db:"phone_number"`
	IDPhotoURL  string       `json:"id_photo_url,omitempty" db:"id_photo_url"`
	Status      DriverStatus `json:"status" db:"status"`
	Points      int          `json:"points" db:"points"`
	Cars        []Car        `json:"cars"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// DriverPresence is the live presence state kept in Redis
type DriverPresence struct {
	DriverID string       `json:"driver_id"`
	IsOnline bool         `json:"is_online"`
	Status   DriverStatus `json:"status"`
	Location *Location    `json:"location,omitempty"`
	Geohash  string       `json:"geohash,omitempty"`
}

// NearbyDriver is a matching candidate with its distance from the pickup point
type NearbyDriver struct {
	DriverID   string   `json:"driver_id"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
}

// DriverSummary reports fleet-wide availability
type DriverSummary struct {
	OnlineCount    int `json:"online_count"`
	AvailableCount int `json:"available_count"`
}
