package helpers

import "github.com/redis/go-redis/v9"

// NewRedisClient initializes a redis client. Used by the auth-endpoint
// throttling middleware; the API works without it (middleware is nil-safe).
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
