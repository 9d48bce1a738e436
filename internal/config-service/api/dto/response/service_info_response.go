package response

import (
	"Config_Service_Microservice/internal/config-service/model"
	"time"
)

type ServiceInfoResponse struct {
	ServiceName     string         `json:"service_name"`
	ServiceURL      string         `json:"service_url"`
	HealthCheckURL  string         `json:"health_check_url,omitempty"`
	Status          string         `json:"status"`
	LastHealthCheck *time.Time     `json:"last_health_check"`
	Metadata        model.Metadata `json:"metadata"`
	RegisteredAt    time.Time      `json:"registered_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func NewServiceInfoResponse(entry model.ServiceEntry) ServiceInfoResponse {
	return ServiceInfoResponse{
		ServiceName:     entry.ServiceName,
		ServiceURL:      entry.ServiceURL,
		HealthCheckURL:  entry.HealthCheckURL,
		Status:          string(entry.Status),
		LastHealthCheck: entry.LastHealthCheck,
		Metadata:        entry.Metadata,
		RegisteredAt:    entry.RegisteredAt,
		UpdatedAt:       entry.UpdatedAt,
	}
}

type UptimeResponse struct {
	ServiceName      string  `json:"service_name"`
	UptimePercentage float64 `json:"uptime_percentage"`
}
