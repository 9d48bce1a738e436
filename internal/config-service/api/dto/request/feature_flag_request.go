package request

type CreateFeatureFlagRequest struct {
	Name              string   `json:"name" binding:"required,flag_name"`
	Description       *string  `json:"description" binding:"omitempty,max=1000"`
	IsEnabled         bool     `json:"is_enabled"`
	RolloutPercentage *float64 `json:"rollout_percentage" binding:"omitempty,gte=0,lte=100"`
	TargetUsers       []string `json:"target_users"`
	Environment       string   `json:"environment" binding:"required,environment"`
}

type UpdateFeatureFlagRequest struct {
	Description       *string   `json:"description" binding:"omitempty,max=1000"`
	IsEnabled         *bool     `json:"is_enabled"`
	RolloutPercentage *float64  `json:"rollout_percentage" binding:"omitempty,gte=0,lte=100"`
	TargetUsers       *[]string `json:"target_users"`
}

type EvaluateFeatureFlagRequest struct {
	FlagName    string `json:"flag_name" binding:"required,flag_name"`
	Environment string `json:"environment" binding:"required,environment"`
	UserID      string `json:"user_id"`
}
