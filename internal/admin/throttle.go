// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/constants"
)

// LoginThrottle counts failed logins per client IP in Redis and blocks
// further attempts once the budget for the sliding window is spent.
//
// # Failure Mode
//
// Redis being down must never lock operators out: every Redis error here
// degrades to "allow" and is logged.
type LoginThrottle struct {
	client *redis.Client
	logger *slog.Logger
}

// NewLoginThrottle creates a throttle on the shared Redis client.
func NewLoginThrottle(client *redis.Client, logger *slog.Logger) *LoginThrottle {
	return &LoginThrottle{client: client, logger: logger}
}

// Check returns a RateLimited error when the IP has exhausted its failed
// login budget.
func (t *LoginThrottle) Check(ctx context.Context, clientIP string) error {
	key := constants.RedisPrefixLoginAttempts + clientIP

	count, err := t.client.Get(ctx, key).Int()
	if err != nil {
		if err != redis.Nil {
			t.logger.WarnContext(ctx, "login throttle read failed", slog.Any("error", err))
		}
		return nil
	}

	if count < constants.LoginMaxAttempts {
		return nil
	}

	retryAfter := int(constants.LoginAttemptWindow / time.Second)
	if ttl, err := t.client.TTL(ctx, key).Result(); err == nil && ttl > 0 {
		retryAfter = int(ttl / time.Second)
	}
	return apperr.RateLimited(retryAfter)
}

// RecordFailure increments the IP's failure counter, starting the window
// on the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, clientIP string) {
	key := constants.RedisPrefixLoginAttempts + clientIP

	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		t.logger.WarnContext(ctx, "login throttle increment failed", slog.Any("error", err))
		return
	}
	if count == 1 {
		t.client.Expire(ctx, key, constants.LoginAttemptWindow)
	}
}

// Reset clears the IP's failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, clientIP string) {
	key := constants.RedisPrefixLoginAttempts + clientIP
	if err := t.client.Del(ctx, key).Err(); err != nil {
		t.logger.WarnContext(ctx, "login throttle reset failed", slog.Any("error", err))
	}
}
