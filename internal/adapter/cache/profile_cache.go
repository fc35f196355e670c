// Package cache keeps recently resolved user profiles in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const (
	profileKeyPrefix  = "profile:"
	DefaultProfileTTL = 5 * time.Minute
)

// ErrMiss is returned by a Store when the key does not exist.
var ErrMiss = errors.New("cache miss")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return data, err
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

type cachedProfile struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Role           string `json:"role"`
}

// ProfileCache wraps a ProfileLookup. Only found profiles are cached; a
// failing store falls through to the wrapped lookup.
type ProfileCache struct {
	next   ports.ProfileLookup
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

func NewProfileCache(next ports.ProfileLookup, store Store, ttl time.Duration, logger *zap.Logger) *ProfileCache {
	if ttl <= 0 {
		ttl = DefaultProfileTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileCache{next: next, store: store, ttl: ttl, logger: logger}
}

func (c *ProfileCache) GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	key := profileKeyPrefix + userID

	if profile, ok := c.read(ctx, key); ok {
		return profile, nil
	}

	profile, err := c.next.GetUserByID(ctx, userID)
	if err != nil || profile == nil {
		return profile, err
	}

	c.write(ctx, key, profile)
	return profile, nil
}

func (c *ProfileCache) read(ctx context.Context, key string) (*domain.UserProfile, bool) {
	data, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrMiss) {
		return nil, false
	}
	if err != nil {
		c.logger.Debug("profile cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var cached cachedProfile
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Debug("profile cache entry undecodable", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &domain.UserProfile{
		ID:             cached.ID,
		DisplayName:    cached.DisplayName,
		DepartmentID:   cached.DepartmentID,
		DepartmentName: cached.DepartmentName,
		TeamID:         cached.TeamID,
		TeamName:       cached.TeamName,
		Role:           cached.Role,
	}, true
}

func (c *ProfileCache) write(ctx context.Context, key string, profile *domain.UserProfile) {
	data, err := json.Marshal(cachedProfile{
		ID:             profile.ID,
		DisplayName:    profile.DisplayName,
		DepartmentID:   profile.DepartmentID,
		DepartmentName: profile.DepartmentName,
		TeamID:         profile.TeamID,
		TeamName:       profile.TeamName,
		Role:           profile.Role,
	})
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Debug("profile cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// redisPinger exposes the Redis connection to the health report.
type redisPinger struct {
	client redis.UniversalClient
}

func NewHealthChecker(client redis.UniversalClient) ports.HealthChecker {
	return &redisPinger{client: client}
}

func (p *redisPinger) Name() string {
	return "redis"
}

func (p *redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

var _ ports.ProfileLookup = (*ProfileCache)(nil)
