package service

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/notification"
	"Config_Service_Microservice/internal/config-service/repository"
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"math"
	"math/big"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	ReasonFlagNotFound      = "flag_not_found"
	ReasonGloballyDisabled  = "globally_disabled"
	ReasonUserTargeted      = "user_targeted"
	ReasonGloballyEnabled   = "globally_enabled"
	ReasonNotInRollout      = "not_in_rollout"
	reasonRolloutPercentage = "rollout_percentage_"
)

type FeatureFlagService interface {
	CreateFeatureFlag(ctx context.Context, flag model.FeatureFlag) (model.FeatureFlag, error)
	GetFeatureFlag(ctx context.Context, name string, environment string) (model.FeatureFlag, error)
	ListFeatureFlags(ctx context.Context, environment string, limit int, offset int) ([]model.FeatureFlag, int64, error)
	UpdateFeatureFlag(ctx context.Context, update model.FeatureFlagUpdate) (model.FeatureFlag, error)
	DeleteFeatureFlag(ctx context.Context, id uint) error
	EvaluateFeatureFlag(ctx context.Context, name string, environment string, userID string) (model.FlagEvaluation, error)
}

type FeatureFlagOptions struct {
	FeatureFlagTopic string
	CacheTTL         time.Duration
}

type featureFlagService struct {
	flagRepo  repository.FeatureFlagRepository
	cacheRepo repository.CacheRepository
	publisher notification.Publisher
	options   FeatureFlagOptions
	logger    *zap.Logger
}

func (f *featureFlagService) eventHook(action string, flag model.FeatureFlag) Hook {
	return Hook{
		Name: "publish_event",
		Run: func(ctx context.Context) error {
			event := notification.NewChangeEvent(action, model.ResourceTypeFeatureFlag, strconv.FormatUint(uint64(flag.ID), 10), map[string]interface{}{
				"name":        flag.Name,
				"environment": flag.Environment,
				"is_enabled":  flag.IsEnabled,
			}, flag.Environment)
			return f.publisher.Publish(ctx, f.options.FeatureFlagTopic, flag.Name, event)
		},
	}
}

func (f *featureFlagService) invalidateHook(flag model.FeatureFlag) Hook {
	return Hook{
		Name: "invalidate_cache",
		Run: func(ctx context.Context) error {
			return f.cacheRepo.Delete(ctx, repository.FeatureFlagKey(flag.Name, flag.Environment))
		},
	}
}

func (f *featureFlagService) CreateFeatureFlag(ctx context.Context, flag model.FeatureFlag) (model.FeatureFlag, error) {
	saved, err := f.flagRepo.Create(ctx, flag)
	if err != nil {
		return model.FeatureFlag{}, fmt.Errorf("FeatureFlagService.CreateFeatureFlag: %w", err)
	}
	RunHooks(ctx, f.logger, "create_feature_flag",
		Hook{
			Name: "cache_flag",
			Run: func(ctx context.Context) error {
				return f.cacheRepo.Set(ctx, repository.FeatureFlagKey(saved.Name, saved.Environment), saved, f.options.CacheTTL)
			},
		},
		f.eventHook(model.EventActionCreate, saved),
	)
	return saved, nil
}

func (f *featureFlagService) GetFeatureFlag(ctx context.Context, name string, environment string) (model.FeatureFlag, error) {
	key := repository.FeatureFlagKey(name, environment)
	var flag model.FeatureFlag
	err := f.cacheRepo.Get(ctx, key, &flag)
	if err == nil {
		return flag, nil
	}
	if !errors.Is(err, apperrors.ErrCacheMiss) {
		f.logger.Warn("feature flag cache read failed", zap.String("cache_key", key), zap.Error(err))
	}

	flag, err = f.flagRepo.GetByName(ctx, name, environment)
	if err != nil {
		return model.FeatureFlag{}, fmt.Errorf("FeatureFlagService.GetFeatureFlag: %w", err)
	}
	if err = f.cacheRepo.Set(ctx, key, flag, f.options.CacheTTL); err != nil {
		f.logger.Warn("feature flag cache write failed", zap.String("cache_key", key), zap.Error(err))
	}
	return flag, nil
}

func (f *featureFlagService) ListFeatureFlags(ctx context.Context, environment string, limit int, offset int) ([]model.FeatureFlag, int64, error) {
	flags, total, err := f.flagRepo.List(ctx, environment, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("FeatureFlagService.ListFeatureFlags: %w", err)
	}
	return flags, total, nil
}

func (f *featureFlagService) UpdateFeatureFlag(ctx context.Context, update model.FeatureFlagUpdate) (model.FeatureFlag, error) {
	saved, err := f.flagRepo.Update(ctx, update)
	if err != nil {
		return model.FeatureFlag{}, fmt.Errorf("FeatureFlagService.UpdateFeatureFlag: %w", err)
	}
	RunHooks(ctx, f.logger, "update_feature_flag", f.invalidateHook(saved), f.eventHook(model.EventActionUpdate, saved))
	return saved, nil
}

func (f *featureFlagService) DeleteFeatureFlag(ctx context.Context, id uint) error {
	deleted, err := f.flagRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("FeatureFlagService.DeleteFeatureFlag: %w", err)
	}
	RunHooks(ctx, f.logger, "delete_feature_flag", f.invalidateHook(deleted), f.eventHook(model.EventActionDelete, deleted))
	return nil
}

func (f *featureFlagService) EvaluateFeatureFlag(ctx context.Context, name string, environment string, userID string) (model.FlagEvaluation, error) {
	evaluation := model.FlagEvaluation{FlagName: name, Environment: environment}
	flag, err := f.GetFeatureFlag(ctx, name, environment)
	if err != nil {
		if errors.Is(err, apperrors.ErrFeatureFlagNotFound) {
			evaluation.Reason = ReasonFlagNotFound
			return evaluation, nil
		}
		return model.FlagEvaluation{}, fmt.Errorf("FeatureFlagService.EvaluateFeatureFlag: %w", err)
	}
	evaluation.Enabled, evaluation.Reason = Evaluate(flag, userID)
	return evaluation, nil
}

// Evaluate applies, in order: global switch, user targeting, percentage rollout, full rollout.
func Evaluate(flag model.FeatureFlag, userID string) (bool, string) {
	if !flag.IsEnabled {
		return false, ReasonGloballyDisabled
	}
	if userID != "" && slices.Contains(flag.TargetUsers, userID) {
		return true, ReasonUserTargeted
	}
	if userID != "" && float64(RolloutBucket(flag.Name, userID)) < flag.RolloutPercentage {
		return true, reasonRolloutPercentage + formatPercentage(flag.RolloutPercentage)
	}
	if flag.RolloutPercentage >= 100 {
		return true, ReasonGloballyEnabled
	}
	return false, ReasonNotInRollout
}

// RolloutBucket maps (flag, user) to [0, 100) using md5 read as a big-endian unsigned integer.
func RolloutBucket(flagName string, userID string) int64 {
	sum := md5.Sum([]byte(flagName + userID))
	n := new(big.Int).SetBytes(sum[:])
	return n.Mod(n, big.NewInt(100)).Int64()
}

func formatPercentage(pct float64) string {
	if pct == math.Trunc(pct) {
		return strconv.FormatFloat(pct, 'f', 1, 64)
	}
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

func NewFeatureFlagService(
	flagRepo repository.FeatureFlagRepository,
	cacheRepo repository.CacheRepository,
	publisher notification.Publisher,
	options FeatureFlagOptions,
	logger *zap.Logger,
) FeatureFlagService {
	return &featureFlagService{
		flagRepo:  flagRepo,
		cacheRepo: cacheRepo,
		publisher: publisher,
		options:   options,
		logger:    logger,
	}
}
