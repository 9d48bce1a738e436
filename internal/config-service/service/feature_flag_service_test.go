package service

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	mocknotification "Config_Service_Microservice/internal/config-service/mocks/notification"
	mockrepository "Config_Service_Microservice/internal/config-service/mocks/repository"
	"Config_Service_Microservice/internal/config-service/model"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type featureFlagMocks struct {
	flagRepo  *mockrepository.MockFeatureFlagRepository
	cacheRepo *mockrepository.MockCacheRepository
	publisher *mocknotification.MockPublisher
}

func newFeatureFlagMocks(ctrl *gomock.Controller) featureFlagMocks {
	return featureFlagMocks{
		flagRepo:  mockrepository.NewMockFeatureFlagRepository(ctrl),
		cacheRepo: mockrepository.NewMockCacheRepository(ctrl),
		publisher: mocknotification.NewMockPublisher(ctrl),
	}
}

func (m featureFlagMocks) service() FeatureFlagService {
	return NewFeatureFlagService(m.flagRepo, m.cacheRepo, m.publisher, FeatureFlagOptions{
		FeatureFlagTopic: "feature-flag-updates",
		CacheTTL:         5 * time.Minute,
	}, zap.NewNop())
}

func testFlag() model.FeatureFlag {
	return model.FeatureFlag{
		ID:                3,
		Name:              "new_checkout",
		IsEnabled:         true,
		RolloutPercentage: 30,
		TargetUsers:       model.StringList{"user-2"},
		Environment:       "production",
	}
}

func expectFlagEvent(publisher *mocknotification.MockPublisher, action string, enabled bool) *gomock.Call {
	return publisher.EXPECT().
		Publish(gomock.Any(), "feature-flag-updates", "new_checkout", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, payload any) error {
			event := payload.(model.ChangeEvent)
			if event.Action != action || event.ResourceType != model.ResourceTypeFeatureFlag || event.ResourceID != "3" {
				return fmt.Errorf("unexpected event %+v", event)
			}
			if event.Data["name"] != "new_checkout" || event.Data["environment"] != "production" || event.Data["is_enabled"] != enabled {
				return fmt.Errorf("unexpected event data %+v", event.Data)
			}
			return nil
		})
}

func TestFeatureFlagService_CreateFeatureFlag(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		setupMocks  func(m featureFlagMocks)
		expectedErr error
	}{
		{
			name: "Success Caches and emits create",
			setupMocks: func(m featureFlagMocks) {
				m.flagRepo.EXPECT().Create(ctx, testFlag()).Return(testFlag(), nil)
				m.cacheRepo.EXPECT().Set(ctx, "feature_flag:new_checkout:production", testFlag(), 5*time.Minute).Return(nil)
				expectFlagEvent(m.publisher, model.EventActionCreate, true)
			},
		},
		{
			name: "Error Duplicate name",
			setupMocks: func(m featureFlagMocks) {
				m.flagRepo.EXPECT().Create(ctx, testFlag()).
					Return(model.FeatureFlag{}, fmt.Errorf("FeatureFlagRepository.Create: %w", apperrors.ErrFeatureFlagAlreadyExists))
			},
			expectedErr: apperrors.ErrFeatureFlagAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newFeatureFlagMocks(ctrl)
			tc.setupMocks(m)

			_, err := m.service().CreateFeatureFlag(ctx, testFlag())

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeatureFlagService_GetFeatureFlag(t *testing.T) {
	ctx := context.Background()
	key := "feature_flag:new_checkout:production"

	testCases := []struct {
		name        string
		setupMocks  func(m featureFlagMocks)
		output      model.FeatureFlag
		expectedErr error
	}{
		{
			name: "Success Cache hit",
			setupMocks: func(m featureFlagMocks) {
				m.cacheRepo.EXPECT().Get(ctx, key, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dest any) error {
						*dest.(*model.FeatureFlag) = testFlag()
						return nil
					})
			},
			output: testFlag(),
		},
		{
			name: "Success Cache miss",
			setupMocks: func(m featureFlagMocks) {
				m.cacheRepo.EXPECT().Get(ctx, key, gomock.Any()).Return(apperrors.ErrCacheMiss)
				m.flagRepo.EXPECT().GetByName(ctx, "new_checkout", "production").Return(testFlag(), nil)
				m.cacheRepo.EXPECT().Set(ctx, key, testFlag(), 5*time.Minute).Return(nil)
			},
			output: testFlag(),
		},
		{
			name: "Error Not found",
			setupMocks: func(m featureFlagMocks) {
				m.cacheRepo.EXPECT().Get(ctx, key, gomock.Any()).Return(apperrors.ErrCacheMiss)
				m.flagRepo.EXPECT().GetByName(ctx, "new_checkout", "production").
					Return(model.FeatureFlag{}, fmt.Errorf("FeatureFlagRepository.GetByName: %w", apperrors.ErrFeatureFlagNotFound))
			},
			output:      model.FeatureFlag{},
			expectedErr: apperrors.ErrFeatureFlagNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newFeatureFlagMocks(ctrl)
			tc.setupMocks(m)

			got, err := m.service().GetFeatureFlag(ctx, "new_checkout", "production")

			assert.Equal(t, tc.output, got)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeatureFlagService_UpdateFeatureFlag(t *testing.T) {
	ctx := context.Background()
	disabled := false
	update := model.FeatureFlagUpdate{ID: 3, IsEnabled: &disabled}
	updated := testFlag()
	updated.IsEnabled = false

	testCases := []struct {
		name        string
		setupMocks  func(m featureFlagMocks)
		expectedErr error
	}{
		{
			name: "Success Invalidates and emits update",
			setupMocks: func(m featureFlagMocks) {
				m.flagRepo.EXPECT().Update(ctx, update).Return(updated, nil)
				m.cacheRepo.EXPECT().Delete(ctx, "feature_flag:new_checkout:production").Return(nil)
				expectFlagEvent(m.publisher, model.EventActionUpdate, false)
			},
		},
		{
			name: "Error Not found",
			setupMocks: func(m featureFlagMocks) {
				m.flagRepo.EXPECT().Update(ctx, update).
					Return(model.FeatureFlag{}, fmt.Errorf("FeatureFlagRepository.Update: %w", apperrors.ErrFeatureFlagNotFound))
			},
			expectedErr: apperrors.ErrFeatureFlagNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newFeatureFlagMocks(ctrl)
			tc.setupMocks(m)

			_, err := m.service().UpdateFeatureFlag(ctx, update)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeatureFlagService_DeleteFeatureFlag(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMocks func(m featureFlagMocks)
		expectErr  bool
	}{
		{
			name: "Success",
			setupMocks: func(m featureFlagMocks) {
				m.flagRepo.EXPECT().Delete(ctx, uint(3)).Return(testFlag(), nil)
				m.cacheRepo.EXPECT().Delete(ctx, "feature_flag:new_checkout:production").Return(nil)
				expectFlagEvent(m.publisher, model.EventActionDelete, true)
			},
		},
		{
			name: "Error Repository fails",
			setupMocks: func(m featureFlagMocks) {
				m.flagRepo.EXPECT().Delete(ctx, uint(3)).Return(model.FeatureFlag{}, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newFeatureFlagMocks(ctrl)
			tc.setupMocks(m)

			err := m.service().DeleteFeatureFlag(ctx, 3)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeatureFlagService_EvaluateFeatureFlag(t *testing.T) {
	ctx := context.Background()
	key := "feature_flag:new_checkout:production"

	testCases := []struct {
		name       string
		setupMocks func(m featureFlagMocks)
		output     model.FlagEvaluation
		expectErr  bool
	}{
		{
			name: "Success Flag not found",
			setupMocks: func(m featureFlagMocks) {
				m.cacheRepo.EXPECT().Get(ctx, key, gomock.Any()).Return(apperrors.ErrCacheMiss)
				m.flagRepo.EXPECT().GetByName(ctx, "new_checkout", "production").
					Return(model.FeatureFlag{}, apperrors.ErrFeatureFlagNotFound)
			},
			output: model.FlagEvaluation{Enabled: false, Reason: ReasonFlagNotFound, FlagName: "new_checkout", Environment: "production"},
		},
		{
			name: "Success Rollout",
			setupMocks: func(m featureFlagMocks) {
				m.cacheRepo.EXPECT().Get(ctx, key, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dest any) error {
						*dest.(*model.FeatureFlag) = testFlag()
						return nil
					})
			},
			output: model.FlagEvaluation{Enabled: true, Reason: "rollout_percentage_30.0", FlagName: "new_checkout", Environment: "production"},
		},
		{
			name: "Error Store failure",
			setupMocks: func(m featureFlagMocks) {
				m.cacheRepo.EXPECT().Get(ctx, key, gomock.Any()).Return(apperrors.ErrCacheMiss)
				m.flagRepo.EXPECT().GetByName(ctx, "new_checkout", "production").Return(model.FeatureFlag{}, errors.New("db error"))
			},
			output:    model.FlagEvaluation{},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newFeatureFlagMocks(ctrl)
			tc.setupMocks(m)

			got, err := m.service().EvaluateFeatureFlag(ctx, "new_checkout", "production", "user-1")

			assert.Equal(t, tc.output, got)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	flag := func(enabled bool, pct float64) model.FeatureFlag {
		return model.FeatureFlag{
			Name:              "new_checkout",
			IsEnabled:         enabled,
			RolloutPercentage: pct,
			TargetUsers:       model.StringList{"user-2"},
		}
	}

	testCases := []struct {
		name    string
		flag    model.FeatureFlag
		userID  string
		enabled bool
		reason  string
	}{
		{name: "Disabled flag wins over targeting", flag: flag(false, 100), userID: "user-2", enabled: false, reason: ReasonGloballyDisabled},
		{name: "Targeted user", flag: flag(true, 0), userID: "user-2", enabled: true, reason: ReasonUserTargeted},
		{name: "Bucket below rollout", flag: flag(true, 30), userID: "user-1", enabled: true, reason: "rollout_percentage_30.0"},
		{name: "Bucket equal to rollout is excluded", flag: flag(true, 26), userID: "user-1", enabled: false, reason: ReasonNotInRollout},
		{name: "Fractional rollout", flag: flag(true, 26.5), userID: "user-1", enabled: true, reason: "rollout_percentage_26.5"},
		{name: "Bucket above rollout", flag: flag(true, 30), userID: "user-3", enabled: false, reason: ReasonNotInRollout},
		{name: "Full rollout with user", flag: flag(true, 100), userID: "user-3", enabled: true, reason: "rollout_percentage_100.0"},
		{name: "Full rollout without user", flag: flag(true, 100), userID: "", enabled: true, reason: ReasonGloballyEnabled},
		{name: "Partial rollout without user", flag: flag(true, 50), userID: "", enabled: false, reason: ReasonNotInRollout},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enabled, reason := Evaluate(tc.flag, tc.userID)
			assert.Equal(t, tc.enabled, enabled)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestRolloutBucket(t *testing.T) {
	assert.Equal(t, int64(26), RolloutBucket("new_checkout", "user-1"))
	assert.Equal(t, int64(53), RolloutBucket("new_checkout", "user-2"))
	assert.Equal(t, int64(0), RolloutBucket("dark_mode", "alice"))
	assert.Equal(t, int64(92), RolloutBucket("dark_mode", "bob"))
	assert.Equal(t, RolloutBucket("dark_mode", "bob"), RolloutBucket("dark_mode", "bob"))
}
