package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServiceNotFound          = errors.New("service not found")
	ErrConfigurationNotFound    = errors.New("configuration not found")
	ErrFeatureFlagNotFound      = errors.New("feature flag not found")
	ErrFeatureFlagAlreadyExists = errors.New("feature flag already exists")
	ErrCacheMiss                = errors.New("cache miss")
	ErrDecryptionFailed         = errors.New("failed to decrypt configuration value")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
