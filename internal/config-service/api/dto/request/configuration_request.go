package request

type CreateConfigurationRequest struct {
	Key         string  `json:"key" binding:"required,config_key"`
	Value       string  `json:"value" binding:"required"`
	Environment string  `json:"environment" binding:"required,environment"`
	ServiceName string  `json:"service_name" binding:"required,service_name"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	IsEncrypted bool    `json:"is_encrypted"`
}

// UpdateConfigurationRequest only touches the fields that are present.
type UpdateConfigurationRequest struct {
	Value       *string `json:"value"`
	IsEncrypted *bool   `json:"is_encrypted"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}
