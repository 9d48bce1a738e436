package repository

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigurationRepository interface {
	// Upsert creates the (key, environment, service_name) triple or bumps the version of the existing row.
	// The returned bool is true when a new row was inserted.
	Upsert(ctx context.Context, cfg model.Configuration, changedBy string) (model.Configuration, bool, error)
	GetByKey(ctx context.Context, key string, environment string, serviceName string) (model.Configuration, error)
	GetByID(ctx context.Context, id uint) (model.Configuration, error)
	GetByService(ctx context.Context, serviceName string, environment string) ([]model.Configuration, error)
	Search(ctx context.Context, filter model.ConfigurationFilter) ([]model.Configuration, int64, error)
	Update(ctx context.Context, update model.ConfigurationUpdate) (model.Configuration, error)
	Delete(ctx context.Context, id uint) (model.Configuration, error)
	GetHistory(ctx context.Context, configurationID uint, limit int) ([]model.ConfigurationHistory, error)
}

type configurationRepository struct {
	db *gorm.DB
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (c *configurationRepository) Upsert(ctx context.Context, cfg model.Configuration, changedBy string) (model.Configuration, bool, error) {
	saved, created, err := c.upsert(ctx, cfg, changedBy)
	// two concurrent creates of the same triple: the loser retries and takes the update branch
	if err != nil && isUniqueViolation(err) {
		saved, created, err = c.upsert(ctx, cfg, changedBy)
	}
	if err != nil {
		return saved, false, fmt.Errorf("ConfigurationRepository.Upsert: %w", err)
	}
	return saved, created, nil
}

func (c *configurationRepository) upsert(ctx context.Context, cfg model.Configuration, changedBy string) (model.Configuration, bool, error) {
	var (
		saved   model.Configuration
		created bool
	)
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Configuration
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("key = ? AND environment = ? AND service_name = ?", cfg.Key, cfg.Environment, cfg.ServiceName).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			saved = cfg
			saved.Version = 1
			if err = tx.Create(&saved).Error; err != nil {
				return err
			}
			created = true
			return tx.Create(&model.ConfigurationHistory{
				ConfigurationID: saved.ID,
				NewValue:        &saved.Value,
				ChangedBy:       changedBy,
				ChangedAt:       time.Now(),
			}).Error
		}
		if err != nil {
			return err
		}

		oldValue := existing.Value
		fields := map[string]interface{}{
			"value":        cfg.Value,
			"is_encrypted": cfg.IsEncrypted,
			"version":      gorm.Expr("version + 1"),
		}
		if cfg.Description != nil {
			fields["description"] = *cfg.Description
		}
		saved = existing
		if err = tx.Model(&saved).Clauses(clause.Returning{}).Updates(fields).Error; err != nil {
			return err
		}
		return tx.Create(&model.ConfigurationHistory{
			ConfigurationID: saved.ID,
			OldValue:        &oldValue,
			NewValue:        &saved.Value,
			ChangedBy:       changedBy,
			ChangedAt:       time.Now(),
		}).Error
	})
	return saved, created, err
}

func (c *configurationRepository) GetByKey(ctx context.Context, key string, environment string, serviceName string) (model.Configuration, error) {
	var cfg model.Configuration
	result := c.db.WithContext(ctx).First(&cfg, "key = ? AND environment = ? AND service_name = ?", key, environment, serviceName)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return cfg, fmt.Errorf("ConfigurationRepository.GetByKey: %w", apperrors.ErrConfigurationNotFound)
		}
		return cfg, fmt.Errorf("ConfigurationRepository.GetByKey: %w", result.Error)
	}
	return cfg, nil
}

func (c *configurationRepository) GetByID(ctx context.Context, id uint) (model.Configuration, error) {
	var cfg model.Configuration
	result := c.db.WithContext(ctx).First(&cfg, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return cfg, fmt.Errorf("ConfigurationRepository.GetByID: %w", apperrors.ErrConfigurationNotFound)
		}
		return cfg, fmt.Errorf("ConfigurationRepository.GetByID: %w", result.Error)
	}
	return cfg, nil
}

func (c *configurationRepository) GetByService(ctx context.Context, serviceName string, environment string) ([]model.Configuration, error) {
	configs := make([]model.Configuration, 0)
	result := c.db.WithContext(ctx).
		Where("service_name = ? AND environment = ?", serviceName, environment).
		Order("key ASC").
		Find(&configs)
	if result.Error != nil {
		return nil, fmt.Errorf("ConfigurationRepository.GetByService: %w", result.Error)
	}
	return configs, nil
}

func (c *configurationRepository) Search(ctx context.Context, filter model.ConfigurationFilter) ([]model.Configuration, int64, error) {
	query := c.db.WithContext(ctx).Model(&model.Configuration{})
	if filter.Environment != "" {
		query = query.Where("environment = ?", filter.Environment)
	}
	if filter.ServiceName != "" {
		query = query.Where("service_name = ?", filter.ServiceName)
	}
	if filter.KeyPattern != "" {
		query = query.Where("key LIKE ?", "%"+filter.KeyPattern+"%")
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("ConfigurationRepository.Search count: %w", err)
	}

	configs := make([]model.Configuration, 0)
	result := query.Order("key ASC").Limit(filter.Limit).Offset(filter.Offset).Find(&configs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("ConfigurationRepository.Search: %w", result.Error)
	}
	return configs, total, nil
}

// Update writes the supplied fields; a new value also bumps the version and appends a history row.
func (c *configurationRepository) Update(ctx context.Context, update model.ConfigurationUpdate) (model.Configuration, error) {
	var saved model.Configuration
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&saved, "id = ?", update.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrConfigurationNotFound
			}
			return err
		}

		oldValue := saved.Value
		fields := make(map[string]interface{})
		if update.Value != nil {
			fields["value"] = *update.Value
			fields["version"] = gorm.Expr("version + 1")
		}
		if update.IsEncrypted != nil {
			fields["is_encrypted"] = *update.IsEncrypted
		}
		if update.Description != nil {
			fields["description"] = *update.Description
		}
		if len(fields) == 0 {
			return nil
		}
		if err = tx.Model(&saved).Clauses(clause.Returning{}).Updates(fields).Error; err != nil {
			return err
		}
		if update.Value == nil {
			return nil
		}
		return tx.Create(&model.ConfigurationHistory{
			ConfigurationID: saved.ID,
			OldValue:        &oldValue,
			NewValue:        &saved.Value,
			ChangedBy:       update.ChangedBy,
			ChangedAt:       time.Now(),
		}).Error
	})
	if err != nil {
		return saved, fmt.Errorf("ConfigurationRepository.Update: %w", err)
	}
	return saved, nil
}

func (c *configurationRepository) Delete(ctx context.Context, id uint) (model.Configuration, error) {
	var cfg model.Configuration
	result := c.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&cfg)
	if result.Error != nil {
		return cfg, fmt.Errorf("ConfigurationRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return cfg, fmt.Errorf("ConfigurationRepository.Delete: %w", apperrors.ErrConfigurationNotFound)
	}
	return cfg, nil
}

func (c *configurationRepository) GetHistory(ctx context.Context, configurationID uint, limit int) ([]model.ConfigurationHistory, error) {
	history := make([]model.ConfigurationHistory, 0)
	query := c.db.WithContext(ctx).
		Where("configuration_id = ?", configurationID).
		Order("changed_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&history); result.Error != nil {
		return nil, fmt.Errorf("ConfigurationRepository.GetHistory: %w", result.Error)
	}
	return history, nil
}

func NewConfigurationRepository(db *gorm.DB) ConfigurationRepository {
	return &configurationRepository{
		db: db,
	}
}
