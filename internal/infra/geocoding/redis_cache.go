package geocoding

import (
	"context"
	"strconv"
	"time"

	"attendance/internal/domain/entity"
	"attendance/internal/domain/geo"
	"attendance/internal/errors"
	"attendance/internal/infra/cache"
	"attendance/internal/util"

	"github.com/redis/go-redis/v9"
)

const geocodeKeyspace = "geocode"

// RedisResultCache keeps successful lookups in Redis as "lat,lng" strings.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultCache creates a cache whose entries expire after ttl.
func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{client: client, ttl: ttl}
}

// Get returns the cached coordinates for address.
func (c *RedisResultCache) Get(ctx context.Context, address string) (entity.Coordinates, bool, error) {
	value, err := c.client.Get(ctx, geocodeKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return entity.Coordinates{}, false, nil
	}
	if err != nil {
		return entity.Coordinates{}, false, errors.Wrap(err, "read geocode cache")
	}

	coords, ok := decodeCoordinates(value)
	if !ok {
		return entity.Coordinates{}, false, errors.Errorf("corrupt geocode cache entry %q", value)
	}

	return coords, true, nil
}

// Set stores coords for address.
func (c *RedisResultCache) Set(ctx context.Context, address string, coords entity.Coordinates) error {
	err := c.client.Set(ctx, geocodeKey(address), encodeCoordinates(coords), c.ttl).Err()

	return errors.Wrap(err, "write geocode cache")
}

func geocodeKey(address string) string {
	return cache.Key(geocodeKeyspace, util.NormalizeAddress(address))
}

func encodeCoordinates(coords entity.Coordinates) string {
	return strconv.FormatFloat(coords.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(coords.Lng, 'f', -1, 64)
}

func decodeCoordinates(value string) (entity.Coordinates, bool) {
	point, ok := geo.ParseLiteral(value)
	if !ok {
		return entity.Coordinates{}, false
	}

	return entity.CoordinatesFromPoint(point), true
}
