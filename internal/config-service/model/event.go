package model

import "time"

const (
	ResourceTypeService       = "service"
	ResourceTypeConfiguration = "configuration"
	ResourceTypeFeatureFlag   = "feature_flag"

	EventActionRegister   = "register"
	EventActionUpdate     = "update"
	EventActionDeregister = "deregister"
	EventActionCreate     = "create"
	EventActionDelete     = "delete"
)

type ChangeEvent struct {
	EventID      string                 `json:"event_id"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	Data         map[string]interface{} `json:"data"`
	Timestamp    time.Time              `json:"timestamp"`
	Environment  string                 `json:"environment,omitempty"`
}

// HealthCheckRecord is one probe outcome, the unit of the probe history.
type HealthCheckRecord struct {
	ServiceName                    string    `json:"service_name"`
	Status                         string    `json:"status"`
	StatusNumeric                  int       `json:"status_numeric"` // 1 for healthy, 0 otherwise
	LatencyMs                      float64   `json:"latency_ms"`
	Timestamp                      time.Time `json:"timestamp"`
	IntervalSinceLastHealthCheckMs int64     `json:"interval_since_last_health_check_ms"`
}
