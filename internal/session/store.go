package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-shop-storefront/internal/domain/entity"
	"github.com/oksasatya/go-shop-storefront/pkg/helpers"
)

// Store persists sessions keyed by their id.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, id string, s *Session) error
}

// NewID returns a fresh opaque session id.
func NewID() string {
	return uuid.NewString()
}

func redisKey(id string) string {
	return "session:" + id
}

// RedisStore keeps sessions as JSON blobs in Redis with a sliding TTL.
type RedisStore struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{RDB: rdb, TTL: ttl}
}

// Load returns the stored session, or a fresh empty one when the id is
// unknown or expired. A nil cart is normalized so callers can mutate it.
func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	s := &Session{}
	found, err := helpers.RedisGetJSON(ctx, r.RDB, redisKey(id), s)
	if err != nil {
		return nil, err
	}
	if !found {
		return New(), nil
	}
	if s.Cart == nil {
		s.Cart = entity.Cart{}
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, s *Session) error {
	return helpers.RedisSetJSON(ctx, r.RDB, redisKey(id), s, r.TTL)
}

var _ Store = (*RedisStore)(nil)
