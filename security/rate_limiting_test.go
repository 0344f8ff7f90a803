package security

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowWithinLimit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(db, 2, time.Minute)

	mock.ExpectIncr("ratelimit:booking:10.0.0.1").SetVal(1)
	mock.ExpectExpire("ratelimit:booking:10.0.0.1", time.Minute).SetVal(true)

	assert.True(t, limiter.allow(context.Background(), "10.0.0.1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_RejectOverLimit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(db, 2, time.Minute)

	mock.ExpectIncr("ratelimit:booking:10.0.0.1").SetVal(3)

	assert.False(t, limiter.allow(context.Background(), "10.0.0.1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_ExpireOnlySetOnFirstAttempt(t *testing.T) {
	db, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(db, 5, time.Minute)

	mock.ExpectIncr("ratelimit:booking:10.0.0.2").SetVal(2)

	assert.True(t, limiter.allow(context.Background(), "10.0.0.2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_FailsOpenOnRedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(db, 1, time.Minute)

	mock.ExpectIncr("ratelimit:booking:10.0.0.3").SetErr(errors.New("connection refused"))

	assert.True(t, limiter.allow(context.Background(), "10.0.0.3"))
}

func TestRateLimiter_NilClientAllowsEverything(t *testing.T) {
	limiter := NewRateLimiter(nil, 1, time.Minute)

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.allow(context.Background(), "10.0.0.4"))
	}
}
