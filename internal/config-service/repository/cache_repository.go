package repository

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const HealthyServicesKey = "healthy_services"

func ServiceInfoKey(serviceName string) string {
	return fmt.Sprintf("service_info:%s", serviceName)
}

func ConfigKey(environment string, serviceName string, key string) string {
	return fmt.Sprintf("config:%s:%s:%s", environment, serviceName, key)
}

func FeatureFlagKey(name string, environment string) string {
	return fmt.Sprintf("feature_flag:%s:%s", name, environment)
}

func serviceInstancesKey(serviceName string) string {
	return fmt.Sprintf("service:%s:instances", serviceName)
}

func serviceActiveKey(serviceName string) string {
	return fmt.Sprintf("service:%s:active", serviceName)
}

type CacheRepository interface {
	// Get decodes the cached JSON value into dest, returning apperrors.ErrCacheMiss when the key is absent.
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	// SetServiceInstance writes the presence record and the "1"/"0" active flag for the instance.
	SetServiceInstance(ctx context.Context, serviceName string, instance model.ServiceInstance, ttl time.Duration) error
	DeleteServiceInstance(ctx context.Context, serviceName string) error
	Ping(ctx context.Context) error
}

type cacheRepository struct {
	redis *redis.Client
}

func (c *cacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("cacheRepository.Get: %w", apperrors.ErrCacheMiss)
		}
		return fmt.Errorf("cacheRepository.Get: %w", err)
	}
	if err = json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cacheRepository.Get decode %s: %w", key, err)
	}
	return nil
}

func (c *cacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cacheRepository.Set encode %s: %w", key, err)
	}
	if err = c.redis.Set(ctx, key, string(data), ttl).Err(); err != nil {
		return fmt.Errorf("cacheRepository.Set: %w", err)
	}
	return nil
}

func (c *cacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cacheRepository.Delete: %w", err)
	}
	return nil
}

// DeletePattern walks the keyspace with SCAN so large caches never block the server.
func (c *cacheRepository) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.redis.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("cacheRepository.DeletePattern: %w", err)
		}
		if len(keys) > 0 {
			if err = c.redis.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cacheRepository.DeletePattern: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (c *cacheRepository) SetServiceInstance(ctx context.Context, serviceName string, instance model.ServiceInstance, ttl time.Duration) error {
	data, err := json.Marshal(instance)
	if err != nil {
		return fmt.Errorf("cacheRepository.SetServiceInstance encode: %w", err)
	}
	active := "0"
	if instance.Active() {
		active = "1"
	}
	_, err = c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, serviceInstancesKey(serviceName), string(data), ttl)
		pipe.Set(ctx, serviceActiveKey(serviceName), active, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cacheRepository.SetServiceInstance: %w", err)
	}
	return nil
}

func (c *cacheRepository) DeleteServiceInstance(ctx context.Context, serviceName string) error {
	if err := c.redis.Del(ctx, serviceInstancesKey(serviceName), serviceActiveKey(serviceName)).Err(); err != nil {
		return fmt.Errorf("cacheRepository.DeleteServiceInstance: %w", err)
	}
	return nil
}

func (c *cacheRepository) Ping(ctx context.Context) error {
	if err := c.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cacheRepository.Ping: %w", err)
	}
	return nil
}

func NewCacheRepository(redis *redis.Client) CacheRepository {
	return &cacheRepository{
		redis: redis,
	}
}
