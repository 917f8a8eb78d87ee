package db

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis builds the client used for one-time login codes. A dead Redis is
// logged, not fatal: only the two-step login path depends on it.
func InitRedis(addr, password string, dbNum int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[Redis] Warning: could not connect: %v", err)
	} else {
		log.Println("[Redis] Connected")
	}
	return client
}
