package model

import "time"

type ServiceStatus string

const (
	ServiceStatusUnknown   ServiceStatus = "unknown"
	ServiceStatusHealthy   ServiceStatus = "healthy"
	ServiceStatusUnhealthy ServiceStatus = "unhealthy"
)

func (s ServiceStatus) Valid() bool {
	return s == ServiceStatusUnknown || s == ServiceStatusHealthy || s == ServiceStatusUnhealthy
}

type ServiceEntry struct {
	ServiceName     string        `gorm:"primaryKey;size:100"`
	ServiceURL      string        `gorm:"size:255;not null"`
	HealthCheckURL  string        `gorm:"size:255"`
	Status          ServiceStatus `gorm:"size:20;not null;index"`
	LastHealthCheck *time.Time
	Metadata        Metadata  `gorm:"type:jsonb"`
	RegisteredAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time
}

func (ServiceEntry) TableName() string {
	return "service_registry"
}

// HealthUpdate is the narrow set of columns written by a health reconciliation.
type HealthUpdate struct {
	ServiceName string
	Status      ServiceStatus
	LatencyMs   *float64
	CheckedAt   time.Time
}

// ServiceInstance is the presence record gateways read from service:{name}:instances.
type ServiceInstance struct {
	InstanceID          string        `json:"instance_id"`
	URL                 string        `json:"url"`
	HealthStatus        ServiceStatus `json:"health_status"`
	LastCheckTimestamp  *time.Time    `json:"last_check_timestamp"`
	AvgResponseTime     float64       `json:"avg_response_time"`
	ConsecutiveFailures int           `json:"consecutive_failures"`
}

func NewServiceInstance(entry ServiceEntry) ServiceInstance {
	avg, _ := entry.Metadata.Float(MetadataKeyAvgResponseTime)
	return ServiceInstance{
		InstanceID:         entry.ServiceName + "-1",
		URL:                entry.ServiceURL,
		HealthStatus:       entry.Status,
		LastCheckTimestamp: entry.LastHealthCheck,
		AvgResponseTime:    avg,
	}
}

// Active is false only once the instance has been seen unhealthy. A fresh registration is routable.
func (s ServiceInstance) Active() bool {
	return s.HealthStatus != ServiceStatusUnhealthy
}
