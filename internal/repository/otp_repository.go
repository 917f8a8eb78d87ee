package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPRepository keeps one-time login codes in Redis, keyed by email, with a
// short TTL. A missing or expired key reads back as an empty string.
type OTPRepository struct {
	client *redis.Client
}

func NewOTPRepository(client *redis.Client) *OTPRepository {
	return &OTPRepository{client: client}
}

func otpKey(email string) string {
	return "otp:" + email
}

func (r *OTPRepository) SaveCode(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := r.client.Set(ctx, otpKey(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("saving one-time code: %w", err)
	}
	return nil
}

func (r *OTPRepository) GetCode(ctx context.Context, email string) (string, error) {
	code, err := r.client.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading one-time code: %w", err)
	}
	return code, nil
}

func (r *OTPRepository) DeleteCode(ctx context.Context, email string) error {
	return r.client.Del(ctx, otpKey(email)).Err()
}
