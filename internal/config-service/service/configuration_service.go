package service

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/notification"
	"Config_Service_Microservice/internal/config-service/repository"
	"Config_Service_Microservice/pkg/secret"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const redactedValue = "[REDACTED]"

type ConfigurationService interface {
	// CreateConfiguration stores a new entry or bumps the version of an existing one. created reports which.
	CreateConfiguration(ctx context.Context, cfg model.Configuration, changedBy string) (saved model.Configuration, created bool, err error)
	GetConfiguration(ctx context.Context, key string, environment string, serviceName string) (model.Configuration, error)
	GetServiceConfigurations(ctx context.Context, serviceName string, environment string) ([]model.Configuration, error)
	SearchConfigurations(ctx context.Context, filter model.ConfigurationFilter) ([]model.Configuration, int64, error)
	UpdateConfiguration(ctx context.Context, update model.ConfigurationUpdate) (model.Configuration, error)
	DeleteConfiguration(ctx context.Context, id uint) error
	GetConfigurationHistory(ctx context.Context, id uint, limit int) ([]model.ConfigurationHistory, error)
}

type ConfigurationOptions struct {
	ConfigTopic string
	CacheTTL    time.Duration
}

type configurationService struct {
	configRepo repository.ConfigurationRepository
	cacheRepo  repository.CacheRepository
	publisher  notification.Publisher
	box        secret.Box
	options    ConfigurationOptions
	logger     *zap.Logger
}

func (c *configurationService) seal(plaintext string, encrypt bool) (string, error) {
	if !encrypt {
		return plaintext, nil
	}
	return c.box.Encrypt(plaintext)
}

func (c *configurationService) reveal(cfg model.Configuration) (model.Configuration, error) {
	if !cfg.IsEncrypted {
		return cfg, nil
	}
	if c.box == nil {
		return model.Configuration{}, apperrors.ErrDecryptionFailed
	}
	plaintext, err := c.box.Decrypt(cfg.Value)
	if err != nil {
		return model.Configuration{}, fmt.Errorf("%w: %w", apperrors.ErrDecryptionFailed, err)
	}
	cfg.Value = plaintext
	return cfg, nil
}

// encryptionAvailable downgrades an encryption request when no key is configured.
func (c *configurationService) encryptionAvailable(requested bool, key string) bool {
	if requested && c.box == nil {
		c.logger.Warn("encryption requested but no encryption key is configured, storing plaintext", zap.String("key", key))
		return false
	}
	return requested
}

func (c *configurationService) sideEffects(action string, cfg model.Configuration, plaintext string) []Hook {
	cacheKey := repository.ConfigKey(cfg.Environment, cfg.ServiceName, cfg.Key)
	return []Hook{
		{
			Name: "invalidate_cache",
			Run: func(ctx context.Context) error {
				return c.cacheRepo.Delete(ctx, cacheKey)
			},
		},
		{
			Name: "publish_event",
			Run: func(ctx context.Context) error {
				event := notification.NewChangeEvent(action, model.ResourceTypeConfiguration, strconv.FormatUint(uint64(cfg.ID), 10), map[string]interface{}{
					"key":          cfg.Key,
					"environment":  cfg.Environment,
					"service_name": cfg.ServiceName,
					"value":        secret.Redact(plaintext, cfg.IsEncrypted),
				}, cfg.Environment)
				return c.publisher.Publish(ctx, c.options.ConfigTopic, cacheKey, event)
			},
		},
	}
}

func (c *configurationService) CreateConfiguration(ctx context.Context, cfg model.Configuration, changedBy string) (model.Configuration, bool, error) {
	plaintext := cfg.Value
	cfg.IsEncrypted = c.encryptionAvailable(cfg.IsEncrypted, cfg.Key)
	stored, err := c.seal(plaintext, cfg.IsEncrypted)
	if err != nil {
		return model.Configuration{}, false, fmt.Errorf("ConfigurationService.CreateConfiguration: %w", err)
	}
	cfg.Value = stored

	saved, created, err := c.configRepo.Upsert(ctx, cfg, changedBy)
	if err != nil {
		return model.Configuration{}, false, fmt.Errorf("ConfigurationService.CreateConfiguration: %w", err)
	}
	action := model.EventActionUpdate
	if created {
		action = model.EventActionCreate
	}
	RunHooks(ctx, c.logger, "create_configuration", c.sideEffects(action, saved, plaintext)...)
	saved.Value = plaintext
	return saved, created, nil
}

func (c *configurationService) GetConfiguration(ctx context.Context, key string, environment string, serviceName string) (model.Configuration, error) {
	cacheKey := repository.ConfigKey(environment, serviceName, key)
	var cfg model.Configuration
	err := c.cacheRepo.Get(ctx, cacheKey, &cfg)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCacheMiss) {
			c.logger.Warn("configuration cache read failed", zap.String("cache_key", cacheKey), zap.Error(err))
		}
		cfg, err = c.configRepo.GetByKey(ctx, key, environment, serviceName)
		if err != nil {
			return model.Configuration{}, fmt.Errorf("ConfigurationService.GetConfiguration: %w", err)
		}
		// Cached as stored, so encrypted values stay encrypted in redis.
		if err = c.cacheRepo.Set(ctx, cacheKey, cfg, c.options.CacheTTL); err != nil {
			c.logger.Warn("configuration cache write failed", zap.String("cache_key", cacheKey), zap.Error(err))
		}
	}
	cfg, err = c.reveal(cfg)
	if err != nil {
		return model.Configuration{}, fmt.Errorf("ConfigurationService.GetConfiguration: %w", err)
	}
	return cfg, nil
}

func (c *configurationService) GetServiceConfigurations(ctx context.Context, serviceName string, environment string) ([]model.Configuration, error) {
	configs, err := c.configRepo.GetByService(ctx, serviceName, environment)
	if err != nil {
		return nil, fmt.Errorf("ConfigurationService.GetServiceConfigurations: %w", err)
	}
	for i := range configs {
		configs[i], err = c.reveal(configs[i])
		if err != nil {
			return nil, fmt.Errorf("ConfigurationService.GetServiceConfigurations: %w", err)
		}
	}
	return configs, nil
}

func (c *configurationService) SearchConfigurations(ctx context.Context, filter model.ConfigurationFilter) ([]model.Configuration, int64, error) {
	configs, total, err := c.configRepo.Search(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("ConfigurationService.SearchConfigurations: %w", err)
	}
	for i := range configs {
		if configs[i].IsEncrypted {
			configs[i].Value = redactedValue
		}
	}
	return configs, total, nil
}

func (c *configurationService) UpdateConfiguration(ctx context.Context, update model.ConfigurationUpdate) (model.Configuration, error) {
	current, err := c.configRepo.GetByID(ctx, update.ID)
	if err != nil {
		return model.Configuration{}, fmt.Errorf("ConfigurationService.UpdateConfiguration: %w", err)
	}

	encrypt := current.IsEncrypted
	if update.IsEncrypted != nil {
		encrypt = *update.IsEncrypted
	}
	if encrypt && c.box == nil {
		encrypt = c.encryptionAvailable(encrypt, current.Key)
		update.IsEncrypted = &encrypt
	}

	var plaintext *string
	if update.Value != nil {
		v := *update.Value
		plaintext = &v
	} else if encrypt != current.IsEncrypted {
		// Toggling encryption rewrites the existing value.
		revealed, err := c.reveal(current)
		if err != nil {
			return model.Configuration{}, fmt.Errorf("ConfigurationService.UpdateConfiguration: %w", err)
		}
		plaintext = &revealed.Value
	}
	if plaintext != nil {
		stored, err := c.seal(*plaintext, encrypt)
		if err != nil {
			return model.Configuration{}, fmt.Errorf("ConfigurationService.UpdateConfiguration: %w", err)
		}
		update.Value = &stored
	}

	saved, err := c.configRepo.Update(ctx, update)
	if err != nil {
		return model.Configuration{}, fmt.Errorf("ConfigurationService.UpdateConfiguration: %w", err)
	}
	if plaintext != nil {
		saved.Value = *plaintext
	} else if saved, err = c.reveal(saved); err != nil {
		return model.Configuration{}, fmt.Errorf("ConfigurationService.UpdateConfiguration: %w", err)
	}
	RunHooks(ctx, c.logger, "update_configuration", c.sideEffects(model.EventActionUpdate, saved, saved.Value)...)
	return saved, nil
}

func (c *configurationService) DeleteConfiguration(ctx context.Context, id uint) error {
	deleted, err := c.configRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("ConfigurationService.DeleteConfiguration: %w", err)
	}
	RunHooks(ctx, c.logger, "delete_configuration", c.sideEffects(model.EventActionDelete, deleted, deleted.Value)...)
	return nil
}

func (c *configurationService) GetConfigurationHistory(ctx context.Context, id uint, limit int) ([]model.ConfigurationHistory, error) {
	cfg, err := c.configRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ConfigurationService.GetConfigurationHistory: %w", err)
	}
	history, err := c.configRepo.GetHistory(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("ConfigurationService.GetConfigurationHistory: %w", err)
	}
	if cfg.IsEncrypted {
		redacted := redactedValue
		for i := range history {
			if history[i].OldValue != nil {
				history[i].OldValue = &redacted
			}
			if history[i].NewValue != nil {
				history[i].NewValue = &redacted
			}
		}
	}
	return history, nil
}

// NewConfigurationService accepts a nil box when encryption is disabled.
func NewConfigurationService(
	configRepo repository.ConfigurationRepository,
	cacheRepo repository.CacheRepository,
	publisher notification.Publisher,
	box secret.Box,
	options ConfigurationOptions,
	logger *zap.Logger,
) ConfigurationService {
	return &configurationService{
		configRepo: configRepo,
		cacheRepo:  cacheRepo,
		publisher:  publisher,
		box:        box,
		options:    options,
		logger:     logger,
	}
}
