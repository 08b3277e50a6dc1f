package models

import (
	"time"

	"github.com/google/uuid"
)

// PointReason categorizes a ledger entry
type PointReason string

const (
	PointReasonNewRegister         PointReason = "newRegister"
	PointReasonRideRequestAccepted PointReason = "rideRequestAccepted"
	PointReasonRideCompleted       PointReason = "rideCompleted"
	PointReasonBonus               PointReason = "bonus"
)

// PointEntry is a single append-only ledger record.
// Change is signed: positive credits, negative debits.
type PointEntry struct {
	EntryID   uuid.UUID   `json:"entry_id" db:"entry_id"`
	DriverID  string      `json:"driver_id" db:"driver_id"`
	Change    int         `json:"change" db:"change"`
	Reason    PointReason `json:"reason" db:"reason"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// PointBalance reports a driver's current balance and last ledger activity
type PointBalance struct {
	DriverID     string     `json:"driver_id"`
	Points       int        `json:"points"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}
