package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ironforge/footylab/internal/sim"
)

// TableTTL bounds how long a cached league table is served before the store
// is consulted again.
const TableTTL = 5 * time.Minute

// RedisCache handles caching of dashboard query results
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// Set stores a key-value pair with TTL
func (rc *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return rc.client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves a value by key
func (rc *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return rc.client.Get(ctx, key).Result()
}

// Delete removes a key
func (rc *RedisCache) Delete(ctx context.Context, keys ...string) error {
	return rc.client.Del(ctx, keys...).Err()
}

func tableKey(season string) string {
	return fmt.Sprintf("footylab:table:%s", season)
}

// GetTable returns a cached league table, or (nil, nil) on a cache miss.
func (rc *RedisCache) GetTable(ctx context.Context, season string) ([]*sim.TableRow, error) {
	raw, err := rc.Get(ctx, tableKey(season))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var table []*sim.TableRow
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		return nil, fmt.Errorf("decoding cached table: %w", err)
	}
	return table, nil
}

// SetTable caches a season's league table.
func (rc *RedisCache) SetTable(ctx context.Context, season string, table []*sim.TableRow) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("encoding table: %w", err)
	}
	return rc.Set(ctx, tableKey(season), raw, TableTTL)
}

// InvalidateSeason drops cached entries for a season after a regeneration.
func (rc *RedisCache) InvalidateSeason(ctx context.Context, season string) error {
	return rc.Delete(ctx, tableKey(season))
}

// DatasetGenerated drops stale cache entries once the job worker has loaded
// a fresh dataset.
func (rc *RedisCache) DatasetGenerated(jobID, runID, season string, seed int64, numClubs, numPlayers int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.InvalidateSeason(ctx, season); err != nil {
		log.Printf("invalidating cache for %s: %v", season, err)
	}
}
