package monitor

import (
	"Config_Service_Microservice/internal/config-service/model"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxProbeBodyBytes = 64 << 10

type ProbeResult struct {
	Status    model.ServiceStatus
	LatencyMs float64
	CheckedAt time.Time
}

type Prober interface {
	// Probe never fails: every problem is reported as an unhealthy result.
	Probe(ctx context.Context, target string) ProbeResult
}

type httpProber struct {
	client  *http.Client
	timeout time.Duration
}

func (p *httpProber) Probe(ctx context.Context, target string) ProbeResult {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	result := ProbeResult{Status: model.ServiceStatusUnhealthy, CheckedAt: start}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return result
	}
	req.Header.Set("Accept", "application/json")
	resp, err := p.client.Do(req)
	if err != nil {
		result.LatencyMs = p.failureLatency(ctx, start)
		return result
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBodyBytes))
	if err != nil {
		result.LatencyMs = p.failureLatency(ctx, start)
		return result
	}
	result.LatencyMs = elapsedMs(start)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 && !reportsUnhealthy(body) {
		result.Status = model.ServiceStatusHealthy
	}
	return result
}

func (p *httpProber) failureLatency(ctx context.Context, start time.Time) float64 {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return float64(p.timeout) / float64(time.Millisecond)
	}
	return elapsedMs(start)
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

// reportsUnhealthy looks for "status" or "detail.status" set to unhealthy, error or down.
func reportsUnhealthy(body []byte) bool {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	if badStatus(payload["status"]) {
		return true
	}
	if detail, ok := payload["detail"].(map[string]interface{}); ok {
		return badStatus(detail["status"])
	}
	return false
}

func badStatus(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	switch strings.ToLower(s) {
	case "unhealthy", "error", "down":
		return true
	}
	return false
}

func NewHTTPProber(timeout time.Duration) Prober {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpProber{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		timeout: timeout,
	}
}
