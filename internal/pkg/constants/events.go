package constants

// NSQ topics
const (
	TopicRideRequested  = "ride.requested"
	TopicRideAccepted   = "ride.accepted"
	TopicRideCompleted  = "ride.completed"
	TopicRideCanceled   = "ride.canceled"
	TopicRideExpired    = "ride.expired"
	TopicDriverPresence = "driver.presence"
)

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Inbound driver events
	EventLocationUpdate = "location_update"
	EventRideAccept     = "ride_accept"
	EventRideComplete   = "ride_complete"

	// Outbound driver events
	EventNewRideRequest = "new_ride_request"
	EventRideAccepted   = "ride_accepted"
	EventRideTaken      = "ride_taken"
	EventRideCompleted  = "ride_completed"
	EventRideCanceled   = "ride_canceled"
	EventRideExpired    = "ride_expired"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
	ErrorRideTaken     = "ride_taken"
	ErrorRideNotFound  = "ride_not_found"
	ErrorInvalidState  = "invalid_state"
)
