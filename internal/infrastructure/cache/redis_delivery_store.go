package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/farmlink/backend/internal/domain/trade"
	"github.com/farmlink/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisDeliveryStore implements trade.DeliverySessionStore using Redis.
// Suitable for distributed deployments where multiple instances need to
// see the same checkout session.
type RedisDeliveryStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisDeliveryStore creates a new Redis-backed delivery session store
func NewRedisDeliveryStore(cfg config.RedisConfig, ttl time.Duration) (*RedisDeliveryStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisDeliveryStoreWithClient(client, "", ttl), nil
}

// NewRedisDeliveryStoreWithClient creates a store with an existing Redis
// client. Useful for testing or when sharing a client across components.
func NewRedisDeliveryStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisDeliveryStore {
	if keyPrefix == "" {
		keyPrefix = "checkout:delivery:"
	}
	return &RedisDeliveryStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Save stores the buyer's delivery info, resetting the TTL
func (s *RedisDeliveryStore) Save(ctx context.Context, buyerID uuid.UUID, info trade.DeliveryInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode delivery info: %w", err)
	}

	if err := s.client.Set(ctx, s.keyPrefix+buyerID.String(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save delivery info: %w", err)
	}
	return nil
}

// Get returns the buyer's delivery info, or nil if none is stored
func (s *RedisDeliveryStore) Get(ctx context.Context, buyerID uuid.UUID) (*trade.DeliveryInfo, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+buyerID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load delivery info: %w", err)
	}

	var info trade.DeliveryInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to decode delivery info: %w", err)
	}
	return &info, nil
}

// Delete removes the buyer's delivery info
func (s *RedisDeliveryStore) Delete(ctx context.Context, buyerID uuid.UUID) error {
	if err := s.client.Del(ctx, s.keyPrefix+buyerID.String()).Err(); err != nil {
		return fmt.Errorf("failed to delete delivery info: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisDeliveryStore) Close() error {
	return s.client.Close()
}

// Ensure RedisDeliveryStore implements DeliverySessionStore
var _ trade.DeliverySessionStore = (*RedisDeliveryStore)(nil)
