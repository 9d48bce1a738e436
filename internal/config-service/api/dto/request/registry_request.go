package request

type RegisterServiceRequest struct {
	ServiceName    string                 `json:"service_name" binding:"required,service_name"`
	ServiceURL     string                 `json:"service_url" binding:"required,max=255,endpoint_url"`
	HealthCheckURL string                 `json:"health_check_url" binding:"omitempty,max=255,endpoint_url"`
	Metadata       map[string]interface{} `json:"metadata"`
}

type UpdateHealthRequest struct {
	ServiceName  string   `json:"service_name" binding:"required,service_name"`
	Status       string   `json:"status" binding:"required,oneof=unknown healthy unhealthy"`
	ResponseTime *float64 `json:"response_time" binding:"omitempty,gte=0"`
}
