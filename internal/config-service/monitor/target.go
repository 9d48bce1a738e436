package monitor

import (
	"Config_Service_Microservice/internal/config-service/model"
	"strings"
)

type TargetOptions struct {
	DefaultPath          string
	PathOverrides        map[string]string
	DeriveFromServiceURL bool
}

// ResolveProbeTarget returns the URL to probe for entry. ok is false when the entry has no usable target.
func ResolveProbeTarget(entry model.ServiceEntry, options TargetOptions) (target string, ok bool) {
	if entry.HealthCheckURL != "" {
		return entry.HealthCheckURL, true
	}
	if !options.DeriveFromServiceURL || entry.ServiceURL == "" {
		return "", false
	}
	path, found := options.PathOverrides[entry.ServiceName]
	if !found {
		path = options.DefaultPath
	}
	if path == "" {
		path = "/health"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(entry.ServiceURL, "/") + path, true
}
