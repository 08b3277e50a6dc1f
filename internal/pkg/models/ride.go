package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle state of a ride request
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCanceled  RideStatus = "canceled"
	RideStatusExpired   RideStatus = "expired"
)

// Terminal reports whether no further transitions are allowed from s.
func (s RideStatus) Terminal() bool {
	switch s {
	case RideStatusCompleted, RideStatusCanceled, RideStatusExpired:
		return true
	}
	return false
}

// CancelActor identifies who requested a cancellation
type CancelActor string

const (
	CancelActorClient CancelActor = "client"
	CancelActorDriver CancelActor = "driver"
)

// RideRequest represents a single ride request through its lifecycle.
// RequiredPoints is computed once at creation and never recomputed.
type RideRequest struct {
	RequestID      uuid.UUID  `json:"request_id" db:"request_id"`
	ClientName     string     `json:"client_name" db:"client_name"`
	ClientPhone    string     `json:"client_phone" db:"client_phone"`
	DriverID       string     `json:"driver_id,omitempty" db:"driver_id"`
	Status         RideStatus `json:"status" db:"status"`
	Pickup         Location   `json:"pickup_location"`
	Destination    Location   `json:"destination_location"`
	RequiredPoints int        `json:"required_points" db:"required_points"`
	CarType        string     `json:"car_type,omitempty" db:"car_type"`
	Remarks        string     `json:"remarks,omitempty" db:"remarks"`
	CanceledBy     string     `json:"canceled_by,omitempty" db:"canceled_by"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// RideRequestInput carries a validated ride submission into the core.
// Pickup and Destination are pointers so the boundary can distinguish
// a missing point from a zero coordinate.
type RideRequestInput struct {
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	Pickup      *Location `json:"pickup_location"`
	Destination *Location `json:"destination_location"`
	Remarks     string    `json:"remarks,omitempty"`
	CarType     string    `json:"car_type,omitempty"`
}

// RideRequestDTO flattens locations for database operations
type RideRequestDTO struct {
	RequestID      uuid.UUID  `db:"request_id"`
	ClientName     string     `db:"client_name"`
	ClientPhone    string     `db:"client_phone"`
	DriverID       *string    `db:"driver_id"`
	Status         RideStatus `db:"status"`
	PickupLat      float64    `db:"pickup_latitude"`
	PickupLon      float64    `db:"pickup_longitude"`
	DestLat        float64    `db:"destination_latitude"`
	DestLon        float64    `db:"destination_longitude"`
	RequiredPoints int        `db:"required_points"`
	CarType        string     `db:"car_type"`
	Remarks        string     `db:"remarks"`
	CanceledBy     *string    `db:"canceled_by"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// ToRideRequest converts a DTO back to the domain model
func (dto *RideRequestDTO) ToRideRequest() *RideRequest {
	req := &RideRequest{
		RequestID:      dto.RequestID,
		ClientName:     dto.ClientName,
		ClientPhone:    dto.ClientPhone,
		Status:         dto.Status,
		Pickup:         Location{Latitude: dto.PickupLat, Longitude: dto.PickupLon},
		Destination:    Location{Latitude: dto.DestLat, Longitude: dto.DestLon},
		RequiredPoints: dto.RequiredPoints,
		CarType:        dto.CarType,
		Remarks:        dto.Remarks,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}
	if dto.DriverID != nil {
		req.DriverID = *dto.DriverID
	}
	if dto.CanceledBy != nil {
		req.CanceledBy = *dto.CanceledBy
	}
	return req
}

// ToDTO converts a RideRequest to its database representation
func (r *RideRequest) ToDTO() *RideRequestDTO {
	dto := &RideRequestDTO{
		RequestID:      r.RequestID,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		Status:         r.Status,
		PickupLat:      r.Pickup.Latitude,
		PickupLon:      r.Pickup.Longitude,
		DestLat:        r.Destination.Latitude,
		DestLon:        r.Destination.Longitude,
		RequiredPoints: r.RequiredPoints,
		CarType:        r.CarType,
		Remarks:        r.Remarks,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.DriverID != "" {
		dto.DriverID = &r.DriverID
	}
	if r.CanceledBy != "" {
		dto.CanceledBy = &r.CanceledBy
	}
	return dto
}
