package gateway

import (
	"context"
	"time"

	"github.com/fastaxi/dispatch/internal/pkg/constants"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/internal/pkg/nsq"
)

// DriverGW publishes driver presence events to NSQ
type DriverGW struct {
	producer nsq.Publisher
}

// NewDriverGW creates a new driver gateway
func NewDriverGW(producer nsq.Publisher) *DriverGW {
	return &DriverGW{
		producer: producer,
	}
}

// presenceEvent is the driver.presence message payload
type presenceEvent struct {
	DriverID  string           `json:"driver_id"`
	Online    bool             `json:"online"`
	Location  *models.Location `json:"location,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// PublishPresence publishes a driver.presence event
func (gw *DriverGW) PublishPresence(_ context.Context, driverID string, online bool, location *models.Location) error {
	return gw.producer.Publish(constants.TopicDriverPresence, presenceEvent{
		DriverID:  driverID,
		Online:    online,
		Location:  location,
		Timestamp: time.Now(),
	})
}
