package monitor

import (
	"Config_Service_Microservice/internal/config-service/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveProbeTarget(t *testing.T) {
	options := TargetOptions{
		DefaultPath:          "/health",
		PathOverrides:        map[string]string{"asr-service": "/api/v1/asr/health", "legacy": "status"},
		DeriveFromServiceURL: true,
	}

	testCases := []struct {
		name      string
		entry     model.ServiceEntry
		options   TargetOptions
		expected  string
		expectsOk bool
	}{
		{
			name:      "Explicit health check URL wins",
			entry:     model.ServiceEntry{ServiceName: "asr-service", ServiceURL: "http://asr:8000", HealthCheckURL: "http://asr:9000/ready"},
			options:   options,
			expected:  "http://asr:9000/ready",
			expectsOk: true,
		},
		{
			name:      "Derived from service URL with default path",
			entry:     model.ServiceEntry{ServiceName: "billing", ServiceURL: "http://billing:8080/"},
			options:   options,
			expected:  "http://billing:8080/health",
			expectsOk: true,
		},
		{
			name:      "Derived with per-service override",
			entry:     model.ServiceEntry{ServiceName: "asr-service", ServiceURL: "http://asr:8000"},
			options:   options,
			expected:  "http://asr:8000/api/v1/asr/health",
			expectsOk: true,
		},
		{
			name:      "Override without leading slash",
			entry:     model.ServiceEntry{ServiceName: "legacy", ServiceURL: "https://legacy.example.com//"},
			options:   options,
			expected:  "https://legacy.example.com/status",
			expectsOk: true,
		},
		{
			name:      "Derivation disabled",
			entry:     model.ServiceEntry{ServiceName: "billing", ServiceURL: "http://billing:8080"},
			options:   TargetOptions{DefaultPath: "/health"},
			expectsOk: false,
		},
		{
			name:      "No URL at all",
			entry:     model.ServiceEntry{ServiceName: "billing"},
			options:   options,
			expectsOk: false,
		},
		{
			name:      "Empty default path falls back to /health",
			entry:     model.ServiceEntry{ServiceName: "billing", ServiceURL: "http://billing"},
			options:   TargetOptions{DeriveFromServiceURL: true},
			expected:  "http://billing/health",
			expectsOk: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target, ok := ResolveProbeTarget(tc.entry, tc.options)
			assert.Equal(t, tc.expectsOk, ok)
			assert.Equal(t, tc.expected, target)
		})
	}
}
