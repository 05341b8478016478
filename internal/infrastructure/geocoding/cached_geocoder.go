package geocoding

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// geocodeKeyPrefix namespaces cached geocoding results in Redis
const geocodeKeyPrefix = "geocode:"

// CachedGeocoder is a read-through Redis cache in front of another
// Geocoder. Only successful lookups are cached; cache failures degrade to
// the upstream provider and are never fatal.
type CachedGeocoder struct {
	upstream    Geocoder
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewCachedGeocoder(upstream Geocoder, redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		upstream:    upstream,
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, location string) (*Coordinates, error) {
	key := geocodeKeyPrefix + strings.ToLower(strings.TrimSpace(location))

	cached, err := c.redisClient.Get(ctx, key).Result()
	if err == nil {
		var coords Coordinates
		if err := json.Unmarshal([]byte(cached), &coords); err == nil {
			return &coords, nil
		}
		c.log.Warnf("Discarding malformed geocode cache entry for %q", location)
	} else if err != redis.Nil {
		c.log.Warnf("Geocode cache read failed for %q (non-fatal): %+v", location, err)
	}

	coords, err := c.upstream.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(coords)
	if err == nil {
		if err := c.redisClient.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warnf("Geocode cache write failed for %q (non-fatal): %+v", location, err)
		}
	}

	return coords, nil
}
