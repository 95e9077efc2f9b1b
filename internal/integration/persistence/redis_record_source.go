package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fleet-dashboard/backend/internal/application/adapter"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
)

// DefaultRedisKeyPrefix is used when no prefix is configured.
const DefaultRedisKeyPrefix = "fleet"

// redisRecordSource implements the adapter.RecordSource interface over Redis
// keys holding JSON arrays.
type redisRecordSource struct {
	client *redis.Client
	prefix string
}

// NewRedisRecordSource creates a record source reading <prefix>:<collection> keys.
func NewRedisRecordSource(client *redis.Client, prefix string) adapter.RecordSource {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &redisRecordSource{
		client: client,
		prefix: prefix,
	}
}

// RedisKey returns the key holding a collection.
func RedisKey(prefix, collection string) string {
	return prefix + ":" + collection
}

// Bookings reads <prefix>:bookings.
func (s *redisRecordSource) Bookings(ctx context.Context) ([]entity.Booking, error) {
	return readRedisKey[entity.Booking](ctx, s.client, RedisKey(s.prefix, entity.CollectionBookings))
}

// Occupation reads <prefix>:occupation.
func (s *redisRecordSource) Occupation(ctx context.Context) ([]entity.OccupationRecord, error) {
	return readRedisKey[entity.OccupationRecord](ctx, s.client, RedisKey(s.prefix, entity.CollectionOccupation))
}

// Fleet reads <prefix>:fleet.
func (s *redisRecordSource) Fleet(ctx context.Context) ([]entity.FleetUnit, error) {
	return readRedisKey[entity.FleetUnit](ctx, s.client, RedisKey(s.prefix, entity.CollectionFleet))
}

// ServiceEvents reads <prefix>:service.
func (s *redisRecordSource) ServiceEvents(ctx context.Context) ([]entity.ServiceEvent, error) {
	return readRedisKey[entity.ServiceEvent](ctx, s.client, RedisKey(s.prefix, entity.CollectionService))
}

// Incidents reads <prefix>:incidents.
func (s *redisRecordSource) Incidents(ctx context.Context) ([]entity.Incident, error) {
	return readRedisKey[entity.Incident](ctx, s.client, RedisKey(s.prefix, entity.CollectionIncidents))
}

func readRedisKey[T any](ctx context.Context, client *redis.Client, key string) ([]T, error) {
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("key %s not found", key)
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return decodeRecords[T](raw, key)
}
