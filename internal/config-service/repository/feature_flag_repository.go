package repository

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeatureFlagRepository interface {
	Create(ctx context.Context, flag model.FeatureFlag) (model.FeatureFlag, error)
	GetByName(ctx context.Context, name string, environment string) (model.FeatureFlag, error)
	GetByID(ctx context.Context, id uint) (model.FeatureFlag, error)
	List(ctx context.Context, environment string, limit int, offset int) ([]model.FeatureFlag, int64, error)
	Update(ctx context.Context, update model.FeatureFlagUpdate) (model.FeatureFlag, error)
	Delete(ctx context.Context, id uint) (model.FeatureFlag, error)
}

type featureFlagRepository struct {
	db *gorm.DB
}

func (f *featureFlagRepository) Create(ctx context.Context, flag model.FeatureFlag) (model.FeatureFlag, error) {
	if flag.TargetUsers == nil {
		flag.TargetUsers = model.StringList{}
	}
	result := f.db.WithContext(ctx).Create(&flag)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return flag, fmt.Errorf("FeatureFlagRepository.Create: %w", apperrors.ErrFeatureFlagAlreadyExists)
		}
		return flag, fmt.Errorf("FeatureFlagRepository.Create: %w", result.Error)
	}
	return flag, nil
}

func (f *featureFlagRepository) GetByName(ctx context.Context, name string, environment string) (model.FeatureFlag, error) {
	var flag model.FeatureFlag
	result := f.db.WithContext(ctx).First(&flag, "name = ? AND environment = ?", name, environment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return flag, fmt.Errorf("FeatureFlagRepository.GetByName: %w", apperrors.ErrFeatureFlagNotFound)
		}
		return flag, fmt.Errorf("FeatureFlagRepository.GetByName: %w", result.Error)
	}
	return flag, nil
}

func (f *featureFlagRepository) GetByID(ctx context.Context, id uint) (model.FeatureFlag, error) {
	var flag model.FeatureFlag
	result := f.db.WithContext(ctx).First(&flag, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return flag, fmt.Errorf("FeatureFlagRepository.GetByID: %w", apperrors.ErrFeatureFlagNotFound)
		}
		return flag, fmt.Errorf("FeatureFlagRepository.GetByID: %w", result.Error)
	}
	return flag, nil
}

func (f *featureFlagRepository) List(ctx context.Context, environment string, limit int, offset int) ([]model.FeatureFlag, int64, error) {
	query := f.db.WithContext(ctx).Model(&model.FeatureFlag{})
	if environment != "" {
		query = query.Where("environment = ?", environment)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("FeatureFlagRepository.List count: %w", err)
	}
	flags := make([]model.FeatureFlag, 0)
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&flags).Error; err != nil {
		return nil, 0, fmt.Errorf("FeatureFlagRepository.List: %w", err)
	}
	return flags, total, nil
}

func (f *featureFlagRepository) Update(ctx context.Context, update model.FeatureFlagUpdate) (model.FeatureFlag, error) {
	fields := make(map[string]interface{})
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.IsEnabled != nil {
		fields["is_enabled"] = *update.IsEnabled
	}
	if update.RolloutPercentage != nil {
		fields["rollout_percentage"] = *update.RolloutPercentage
	}
	if update.TargetUsers != nil {
		fields["target_users"] = model.StringList(*update.TargetUsers)
	}
	if len(fields) == 0 {
		flag, err := f.GetByID(ctx, update.ID)
		if err != nil {
			return flag, fmt.Errorf("FeatureFlagRepository.Update: %w", err)
		}
		return flag, nil
	}

	var flag model.FeatureFlag
	result := f.db.WithContext(ctx).Model(&flag).Clauses(clause.Returning{}).Where("id = ?", update.ID).Updates(fields)
	if result.Error != nil {
		return flag, fmt.Errorf("FeatureFlagRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return flag, fmt.Errorf("FeatureFlagRepository.Update: %w", apperrors.ErrFeatureFlagNotFound)
	}
	return flag, nil
}

func (f *featureFlagRepository) Delete(ctx context.Context, id uint) (model.FeatureFlag, error) {
	var flag model.FeatureFlag
	result := f.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&flag)
	if result.Error != nil {
		return flag, fmt.Errorf("FeatureFlagRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return flag, fmt.Errorf("FeatureFlagRepository.Delete: %w", apperrors.ErrFeatureFlagNotFound)
	}
	return flag, nil
}

func NewFeatureFlagRepository(db *gorm.DB) FeatureFlagRepository {
	return &featureFlagRepository{
		db: db,
	}
}
