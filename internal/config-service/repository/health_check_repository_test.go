package repository

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoundTripper struct {
	Response *http.Response
	Err      error
	Request  *http.Request
	Body     string
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Request = req
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		m.Body = string(b)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func newMockEsClient(statusCode int, body string, err error) (*elasticsearch.Client, *mockRoundTripper, error) {
	if err != nil {
		rt := &mockRoundTripper{Err: err}
		es, e := elasticsearch.NewClient(elasticsearch.Config{Transport: rt})
		return es, rt, e
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")

	rt := &mockRoundTripper{
		Response: &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     header,
		},
	}
	es, e := elasticsearch.NewClient(elasticsearch.Config{Transport: rt})
	return es, rt, e
}

const esErrorBody = `{
	"error": {
		"type": "search_phase_exception",
		"reason": "bad query"
	}
}`

func TestHealthCheckRepository_IndexHealthChecks(t *testing.T) {
	now := time.Now().UTC()
	records := []model.HealthCheckRecord{
		{ServiceName: "asr-service", Status: "healthy", StatusNumeric: 1, LatencyMs: 12, Timestamp: now, IntervalSinceLastHealthCheckMs: 30000},
		{ServiceName: "nmt-service", Status: "unhealthy", StatusNumeric: 0, LatencyMs: 5000, Timestamp: now, IntervalSinceLastHealthCheckMs: 30000},
	}

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		expectErr      bool
		esErr          bool
	}{
		{
			name:           "Success All documents indexed",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"errors": false, "items": [{"index": {"status": 201}}, {"index": {"status": 201}}]}`,
		},
		{
			name:           "Error One item rejected",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"errors": true, "items": [{"index": {"status": 201}}, {"index": {"status": 400, "error": {"type": "mapper_parsing_exception", "reason": "failed to parse"}}}]}`,
			expectErr:      true,
			esErr:          true,
		},
		{
			name:      "Error Transport error",
			mockErr:   errors.New("network connection failed"),
			expectErr: true,
		},
		{
			name:           "Error Elasticsearch API returns an error",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       esErrorBody,
			expectErr:      true,
			esErr:          true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockEsClient, rt, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewHealthCheckRepository(mockEsClient)
			err = repo.IndexHealthChecks(context.Background(), records...)

			if tc.expectErr {
				assert.Error(t, err)
				var esErr *apperrors.ElasticSearchError
				assert.Equal(t, tc.esErr, errors.As(err, &esErr))
			} else {
				require.NoError(t, err)
				lines := strings.Split(strings.TrimSpace(rt.Body), "\n")
				require.Len(t, lines, 4)
				assert.Contains(t, lines[0], `"_index":"health_checks"`)
				assert.Contains(t, lines[1], `"service_name":"asr-service"`)
				assert.Contains(t, lines[3], `"status_numeric":0`)
				assert.Contains(t, rt.Request.URL.Path, "_bulk")
			}
		})
	}
}

func TestHealthCheckRepository_IndexHealthChecks_Empty(t *testing.T) {
	mockEsClient, rt, err := newMockEsClient(http.StatusOK, `{}`, nil)
	require.NoError(t, err)

	assert.NoError(t, NewHealthCheckRepository(mockEsClient).IndexHealthChecks(context.Background()))
	assert.Nil(t, rt.Request)
}

func TestHealthCheckRepository_GetServiceUptimePercentage(t *testing.T) {
	startTime := time.Now().Add(-1 * time.Hour)
	endTime := time.Now()

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		output         float64
		expectErr      bool
	}{
		{
			name:           "Success Should return service uptime percentage",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"aggregations": {"uptime_percentage": {"value": 0.75}}}`,
			output:         75,
		},
		{
			name:           "Success Should return 0 if value is null",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"aggregations": {"uptime_percentage": {"value": null}}}`,
			output:         0,
		},
		{
			name:      "Error Elasticsearch client transport error",
			mockErr:   errors.New("network connection failed"),
			expectErr: true,
		},
		{
			name:           "Error Elasticsearch API returns an error",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       esErrorBody,
			expectErr:      true,
		},
		{
			name:           "Error Failed to decode Elasticsearch error response",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       `{"error": "invalid json"`,
			expectErr:      true,
		},
		{
			name:           "Error Failed to decode success response",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"aggregations": "invalid json"`,
			expectErr:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockEsClient, rt, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewHealthCheckRepository(mockEsClient)
			got, err := repo.GetServiceUptimePercentage(context.Background(), "asr-service", startTime, endTime)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Contains(t, rt.Body, `"service_name":"asr-service"`)
			}
			assert.InDelta(t, tc.output, got, 1e-9)
		})
	}
}

func TestHealthCheckRepository_GetRegistryHealthSummary(t *testing.T) {
	startTime := time.Now().Add(-24 * time.Hour)
	endTime := time.Now()

	successBody := `{
		"aggregations": {
			"avg_uptime": {"value": 0.5},
			"services": {
				"buckets": [
					{
						"key": "asr-service",
						"doc_count": 10,
						"uptime": {"value": 1},
						"avg_latency": {"value": 20.5},
						"latest_check": { "hits": { "hits": [ { "_source": { "status": "healthy" } } ] } }
					},
					{
						"key": "nmt-service",
						"doc_count": 8,
						"uptime": {"value": 0},
						"avg_latency": {"value": 5000},
						"latest_check": { "hits": { "hits": [ { "_source": { "status": "unhealthy" } } ] } }
					},
					{
						"key": "tts-service",
						"doc_count": 0,
						"uptime": {"value": null},
						"avg_latency": {"value": null},
						"latest_check": { "hits": { "hits": [] } }
					}
				]
			}
		}
	}`

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		output         RegistryHealthSummary
		expectErr      bool
	}{
		{
			name:           "Success Should aggregate per service",
			mockStatusCode: http.StatusOK,
			mockBody:       successBody,
			output: RegistryHealthSummary{
				TotalServicesCnt:        3,
				HealthyServicesCnt:      1,
				UnhealthyServicesCnt:    1,
				AverageUptimePercentage: 50,
				Services: []ServiceUptime{
					{ServiceName: "asr-service", LatestStatus: "healthy", UptimePercentage: 100, AvgLatencyMs: 20.5, ChecksCnt: 10},
					{ServiceName: "nmt-service", LatestStatus: "unhealthy", UptimePercentage: 0, AvgLatencyMs: 5000, ChecksCnt: 8},
					{ServiceName: "tts-service", LatestStatus: "unknown", UptimePercentage: 0, AvgLatencyMs: 0, ChecksCnt: 0},
				},
			},
		},
		{
			name:      "Error Transport error",
			mockErr:   errors.New("network connection failed"),
			expectErr: true,
		},
		{
			name:           "Error Elasticsearch API returns an error",
			mockStatusCode: http.StatusInternalServerError,
			mockBody:       esErrorBody,
			expectErr:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockEsClient, _, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewHealthCheckRepository(mockEsClient)
			got, err := repo.GetRegistryHealthSummary(context.Background(), startTime, endTime)

			if tc.expectErr {
				assert.Error(t, err)
				assert.Equal(t, RegistryHealthSummary{}, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.output, got)
			}
		})
	}
}
