package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/museum-guide/internal/logger"
)

// MuseumInfoCacheRepository caches Wikipedia extracts in Redis so repeated
// lookups for the same museum do not hit the external API.
type MuseumInfoCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached extracts
}

// NewMuseumInfoCacheRepository creates a new repository instance with the given TTL.
func NewMuseumInfoCacheRepository(client *redis.Client, expiration time.Duration) *MuseumInfoCacheRepository {
	return &MuseumInfoCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func museumInfoKey(name string) string {
	return fmt.Sprintf("museum_info:%s", strings.ToLower(name))
}

// GetExtract fetches a cached extract for the museum name.
func (r *MuseumInfoCacheRepository) GetExtract(ctx context.Context, name string) (string, error) {
	key := museumInfoKey(name)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return "", fmt.Errorf("museum info not found in cache for %s", name)
		}
		return "", err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return val, nil
}

// SetExtract caches an extract for the museum name with expiration.
func (r *MuseumInfoCacheRepository) SetExtract(ctx context.Context, name, extract string) error {
	key := museumInfoKey(name)
	err := r.client.Set(ctx, key, extract, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
