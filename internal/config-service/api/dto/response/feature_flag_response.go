package response

import (
	"Config_Service_Microservice/internal/config-service/model"
	"time"
)

type FeatureFlagResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	IsEnabled         bool      `json:"is_enabled"`
	RolloutPercentage float64   `json:"rollout_percentage"`
	TargetUsers       []string  `json:"target_users"`
	Environment       string    `json:"environment"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func NewFeatureFlagResponse(flag model.FeatureFlag) FeatureFlagResponse {
	targets := []string(flag.TargetUsers)
	if targets == nil {
		targets = make([]string, 0)
	}
	return FeatureFlagResponse{
		ID:                flag.ID,
		Name:              flag.Name,
		Description:       flag.Description,
		IsEnabled:         flag.IsEnabled,
		RolloutPercentage: flag.RolloutPercentage,
		TargetUsers:       targets,
		Environment:       flag.Environment,
		CreatedAt:         flag.CreatedAt,
		UpdatedAt:         flag.UpdatedAt,
	}
}

type FeatureFlagListResponse struct {
	FeatureFlags []FeatureFlagResponse `json:"feature_flags"`
	Total        int64                 `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

type FlagEvaluationResponse struct {
	Enabled     bool   `json:"enabled"`
	Reason      string `json:"reason"`
	FlagName    string `json:"flag_name"`
	Environment string `json:"environment"`
}
