package response

import (
	"Config_Service_Microservice/internal/config-service/model"
	"time"
)

type ConfigurationResponse struct {
	ID          uint      `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Environment string    `json:"environment"`
	ServiceName string    `json:"service_name"`
	Description *string   `json:"description"`
	IsEncrypted bool      `json:"is_encrypted"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewConfigurationResponse(cfg model.Configuration) ConfigurationResponse {
	return ConfigurationResponse{
		ID:          cfg.ID,
		Key:         cfg.Key,
		Value:       cfg.Value,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
		Description: cfg.Description,
		IsEncrypted: cfg.IsEncrypted,
		Version:     cfg.Version,
		CreatedAt:   cfg.CreatedAt,
		UpdatedAt:   cfg.UpdatedAt,
	}
}

type ConfigurationListResponse struct {
	Configurations []ConfigurationResponse `json:"configurations"`
	Total          int64                   `json:"total"`
	Limit          int                     `json:"limit"`
	Offset         int                     `json:"offset"`
}

type ConfigurationHistoryResponse struct {
	ID              uint      `json:"id"`
	ConfigurationID uint      `json:"configuration_id"`
	OldValue        *string   `json:"old_value"`
	NewValue        *string   `json:"new_value"`
	ChangedBy       string    `json:"changed_by"`
	ChangedAt       time.Time `json:"changed_at"`
}
