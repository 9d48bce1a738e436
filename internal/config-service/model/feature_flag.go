package model

import (
	"database/sql/driver"
	"encoding/json"
	"slices"
	"time"
)

type FeatureFlag struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:255;not null;uniqueIndex"`
	Description       *string
	IsEnabled         bool
	RolloutPercentage float64    `gorm:"type:numeric(5,2);not null"`
	TargetUsers       StringList `gorm:"type:jsonb"`
	Environment       string     `gorm:"size:50;not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type FeatureFlagUpdate struct {
	ID                uint
	Description       *string
	IsEnabled         *bool
	RolloutPercentage *float64
	TargetUsers       *[]string
}

type FlagEvaluation struct {
	Enabled     bool
	Reason      string
	FlagName    string
	Environment string
}

// StringList is a []string persisted as a jsonb array.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		*s = nil
		return nil
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		*s = nil
		return nil
	}
	*s = out
	return nil
}

func (StringList) GormDataType() string {
	return "jsonb"
}

func (s StringList) Contains(v string) bool {
	return slices.Contains(s, v)
}
