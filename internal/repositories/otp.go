package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
)

// OTPRepository keeps one-time passwords in Redis with an expiry.
type OTPRepository struct {
	client *redis.Client
	exp    time.Duration // lifetime of a stored code
}

// NewOTPRepository creates a repository whose codes expire after expiration.
func NewOTPRepository(client *redis.Client, expiration time.Duration) *OTPRepository {
	return &OTPRepository{
		client: client,
		exp:    expiration,
	}
}

func otpKey(mobile string) string {
	return fmt.Sprintf("otp:%s", mobile)
}

// Set stores code for mobile, replacing any previous code.
func (r *OTPRepository) Set(ctx context.Context, mobile, code string) error {
	key := otpKey(mobile)
	err := r.client.Set(ctx, key, code, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Get returns the code stored for mobile, or "" when none is stored or it expired.
func (r *OTPRepository) Get(ctx context.Context, mobile string) (string, error) {
	key := otpKey(mobile)
	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Delete removes the code stored for mobile.
func (r *OTPRepository) Delete(ctx context.Context, mobile string) error {
	key := otpKey(mobile)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
