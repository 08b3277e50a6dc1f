package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fastaxi/dispatch/internal/pkg/constants"
	"github.com/fastaxi/dispatch/internal/pkg/database"
	"github.com/fastaxi/dispatch/internal/pkg/errs"
	"github.com/fastaxi/dispatch/internal/pkg/models"
	"github.com/fastaxi/dispatch/internal/utils"
)

// geohashPrecision gives roughly 5m cells, enough for presence bookkeeping
const geohashPrecision = 9

// PresenceRepo implements the live presence store on Redis
type PresenceRepo struct {
	redisClient *database.RedisClient
}

// NewPresenceRepository creates a new presence repository
func NewPresenceRepository(redisClient *database.RedisClient) *PresenceRepo {
	return &PresenceRepo{
		redisClient: redisClient,
	}
}

// SetOnline marks a driver online and registers its last known location in
// the geo index when one exists.
func (r *PresenceRepo) SetOnline(ctx context.Context, driverID string, status models.DriverStatus, location *models.Location) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	fields := map[string]interface{}{
		constants.FieldOnline: "1",
		constants.FieldStatus: string(status),
	}
	if location != nil {
		addLocationFields(fields, *location)
	}

	if err := r.redisClient.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store presence: %w", err)
	}
	if err := r.redisClient.SAdd(ctx, constants.KeyOnlineDrivers, driverID); err != nil {
		return fmt.Errorf("failed to add to online set: %w", err)
	}

	loc := location
	if loc == nil {
		// Fall back to the retained location from a previous session
		if p, err := r.GetPresence(ctx, driverID); err == nil && p.Location != nil {
			loc = p.Location
		}
	}
	if loc != nil {
		if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, driverID); err != nil {
			return fmt.Errorf("failed to add to geo index: %w", err)
		}
	}

	return nil
}

// SetOffline marks a driver offline. The last known location is retained for
// the next session.
func (r *PresenceRepo) SetOffline(ctx context.Context, driverID string) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	if err := r.redisClient.HSet(ctx, key, map[string]interface{}{constants.FieldOnline: "0"}); err != nil {
		return fmt.Errorf("failed to store presence: %w", err)
	}
	if err := r.redisClient.SRem(ctx, constants.KeyOnlineDrivers, driverID); err != nil {
		return fmt.Errorf("failed to remove from online set: %w", err)
	}
	if err := r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove from geo index: %w", err)
	}

	return nil
}

// UpdateLocation records a driver's live location. While online the geo index
// entry is refreshed as well.
func (r *PresenceRepo) UpdateLocation(ctx context.Context, driverID string, location models.Location) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	fields := map[string]interface{}{}
	addLocationFields(fields, location)
	if err := r.redisClient.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}

	online, err := r.redisClient.SIsMember(ctx, constants.KeyOnlineDrivers, driverID)
	if err != nil {
		return fmt.Errorf("failed to check online set: %w", err)
	}
	if online {
		if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID); err != nil {
			return fmt.Errorf("failed to refresh geo index: %w", err)
		}
	}

	return nil
}

// GetPresence returns the stored presence state for a driver
func (r *PresenceRepo) GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get presence: %w", err)
	}
	if len(fields) == 0 {
		return nil, errs.ErrDriverNotFound
	}

	presence := &models.DriverPresence{
		DriverID: driverID,
		IsOnline: fields[constants.FieldOnline] == "1",
		Status:   models.DriverStatus(fields[constants.FieldStatus]),
		Geohash:  fields[constants.FieldGeohash],
	}

	latStr, okLat := fields[constants.FieldLatitude]
	lngStr, okLng := fields[constants.FieldLongitude]
	if okLat && okLng {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat == nil && errLng == nil {
			loc := &models.Location{Latitude: lat, Longitude: lng}
			if tsStr, ok := fields[constants.FieldTimestamp]; ok {
				if ts, err := strconv.ParseInt(tsStr, 10, 64); err == nil {
					loc.Timestamp = time.Unix(ts, 0)
				}
			}
			presence.Location = loc
		}
	}

	return presence, nil
}

// FindNearby returns drivers in the geo index within radiusKm of point,
// ascending by distance.
func (r *PresenceRepo) FindNearby(ctx context.Context, point models.Location, radiusKm float64) ([]*models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, point.Longitude, point.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	nearby := make([]*models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		nearby = append(nearby, &models.NearbyDriver{
			DriverID:   loc.Name,
			Location:   models.Location{Latitude: loc.Latitude, Longitude: loc.Longitude},
			DistanceKm: loc.Dist,
		})
	}

	return nearby, nil
}

// OnlineCount returns the number of online drivers
func (r *PresenceRepo) OnlineCount(ctx context.Context) (int, error) {
	count, err := r.redisClient.SCard(ctx, constants.KeyOnlineDrivers)
	if err != nil {
		return 0, fmt.Errorf("failed to count online drivers: %w", err)
	}
	return int(count), nil
}

// IsOnline reports whether a driver is currently online
func (r *PresenceRepo) IsOnline(ctx context.Context, driverID string) (bool, error) {
	return r.redisClient.SIsMember(ctx, constants.KeyOnlineDrivers, driverID)
}

func addLocationFields(fields map[string]interface{}, location models.Location) {
	ts := location.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	fields[constants.FieldLatitude] = strconv.FormatFloat(location.Latitude, 'f', -1, 64)
	fields[constants.FieldLongitude] = strconv.FormatFloat(location.Longitude, 'f', -1, 64)
	fields[constants.FieldGeohash] = utils.EncodeLocation(location, geohashPrecision)
	fields[constants.FieldTimestamp] = strconv.FormatInt(ts.Unix(), 10)
}
