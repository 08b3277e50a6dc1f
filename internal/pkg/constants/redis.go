package constants

// Redis key formats
const (
	// Driver presence
	KeyDriverPresence = "driver:presence:%s" // Format: driver:presence:{driver_id}
	KeyDriverGeo      = "drivers:geo"        // GEO set of online driver locations
	KeyOnlineDrivers  = "drivers:online"     // Set of online driver IDs
)

// Redis hash fields
const (
	FieldOnline    = "online"
	FieldStatus    = "status"
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
