package model

import "time"

const (
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)

var SupportedEnvironments = []string{EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction}

type Configuration struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"size:255;not null;uniqueIndex:idx_configurations_key_env_service"`
	Value       string `gorm:"type:text;not null"`
	Environment string `gorm:"size:50;not null;uniqueIndex:idx_configurations_key_env_service"`
	ServiceName string `gorm:"size:100;not null;uniqueIndex:idx_configurations_key_env_service"`
	Description *string
	IsEncrypted bool
	Version     int `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ConfigurationHistory struct {
	ID              uint    `gorm:"primaryKey"`
	ConfigurationID uint    `gorm:"not null;index"`
	OldValue        *string `gorm:"type:text"`
	NewValue        *string `gorm:"type:text"`
	ChangedBy       string  `gorm:"size:100"`
	ChangedAt       time.Time
	Configuration   *Configuration `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (ConfigurationHistory) TableName() string {
	return "configuration_history"
}

type ConfigurationFilter struct {
	Environment string
	ServiceName string
	KeyPattern  string
	Limit       int
	Offset      int
}

type ConfigurationUpdate struct {
	ID          uint
	Value       *string
	IsEncrypted *bool
	Description *string
	ChangedBy   string
}
