package cache

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const attemptsKeyPrefix = "login:attempts:"

// LoginAttempts counts failed logins per email in redis. Once an email reaches
// max failures it stays blocked until the window since the first failure
// elapses.
type LoginAttempts struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewRedisClient parses url and checks the server answers
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

// NewLoginAttempts creates a limiter on top of client
func NewLoginAttempts(client *redis.Client, max int, window time.Duration) *LoginAttempts {
	return &LoginAttempts{client: client, max: max, window: window}
}

func attemptsKey(email string) string {
	return attemptsKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// Blocked reports whether email has used up its failed attempts
func (l *LoginAttempts) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, attemptsKey(email)).Int()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read login attempts for %s", email)
	}
	return n >= l.max, nil
}

// Failure records a failed attempt for email. The window starts at the first
// failure.
func (l *LoginAttempts) Failure(ctx context.Context, email string) error {
	key := attemptsKey(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to record login attempt for %s", email)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return errors.Wrapf(err, "failed to set login attempt window for %s", email)
		}
	}
	return nil
}

// Reset clears the failures of email
func (l *LoginAttempts) Reset(ctx context.Context, email string) error {
	return errors.Wrapf(l.client.Del(ctx, attemptsKey(email)).Err(), "failed to reset login attempts for %s", email)
}

// Close releases the redis connection
func (l *LoginAttempts) Close() error {
	return l.client.Close()
}
