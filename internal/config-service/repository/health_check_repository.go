package repository

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
)

const HealthCheckIndexName = "health_checks"

// HealthCheckIndexMapping is applied when the health_checks index is created.
const HealthCheckIndexMapping = `{
  "mappings": {
    "properties": {
      "service_name": {"type": "keyword"},
      "status": {"type": "keyword"},
      "status_numeric": {"type": "integer"},
      "latency_ms": {"type": "double"},
      "timestamp": {"type": "date"},
      "interval_since_last_health_check_ms": {"type": "long"}
    }
  }
}`

type ServiceUptime struct {
	ServiceName      string
	LatestStatus     string
	UptimePercentage float64
	AvgLatencyMs     float64
	ChecksCnt        int64
}

type RegistryHealthSummary struct {
	TotalServicesCnt        int
	HealthyServicesCnt      int
	UnhealthyServicesCnt    int
	AverageUptimePercentage float64
	Services                []ServiceUptime
}

type HealthCheckRepository interface {
	IndexHealthChecks(ctx context.Context, records ...model.HealthCheckRecord) error
	GetServiceUptimePercentage(ctx context.Context, serviceName string, startTime time.Time, endTime time.Time) (float64, error)
	GetRegistryHealthSummary(ctx context.Context, startTime time.Time, endTime time.Time) (RegistryHealthSummary, error)
}

type healthCheckRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esBulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		Status int `json:"status"`
		Error  struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

func decodeESError(res io.Reader, statusCode int) error {
	var e esErrorResponse
	if err := json.NewDecoder(res).Decode(&e); err != nil {
		return fmt.Errorf("decode err response: %w", err)
	}
	return apperrors.NewElasticSearchError(statusCode, e.Error.Type, e.Error.Reason)
}

func (h *healthCheckRepository) IndexHealthChecks(ctx context.Context, records ...model.HealthCheckRecord) error {
	if len(records) == 0 {
		return nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, record := range records {
		if err := enc.Encode(map[string]interface{}{"index": map[string]interface{}{"_index": HealthCheckIndexName}}); err != nil {
			return fmt.Errorf("HealthCheckRepo.IndexHealthChecks encode action: %w", err)
		}
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("HealthCheckRepo.IndexHealthChecks encode record: %w", err)
		}
	}
	res, err := h.es.Bulk(&buf,
		h.es.Bulk.WithContext(ctx),
		h.es.Bulk.WithIndex(HealthCheckIndexName))
	if err != nil {
		return fmt.Errorf("HealthCheckRepo.IndexHealthChecks: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("HealthCheckRepo.IndexHealthChecks: %w", decodeESError(res.Body, res.StatusCode))
	}
	var bulkRes esBulkResponse
	if err = json.NewDecoder(res.Body).Decode(&bulkRes); err != nil {
		return fmt.Errorf("HealthCheckRepo.IndexHealthChecks decode response: %w", err)
	}
	if !bulkRes.Errors {
		return nil
	}
	for _, item := range bulkRes.Items {
		for _, result := range item {
			if result.Status >= 300 {
				return fmt.Errorf("HealthCheckRepo.IndexHealthChecks: %w", apperrors.NewElasticSearchError(result.Status, result.Error.Type, result.Error.Reason))
			}
		}
	}
	return nil
}

func uptimeAggregation() map[string]interface{} {
	return map[string]interface{}{
		"weighted_avg": map[string]interface{}{
			"value": map[string]interface{}{
				"field": "status_numeric",
			},
			"weight": map[string]interface{}{
				"field": "interval_since_last_health_check_ms",
			},
		},
	}
}

func timeRangeFilter(startTime time.Time, endTime time.Time) map[string]interface{} {
	return map[string]interface{}{
		"range": map[string]interface{}{
			"timestamp": map[string]interface{}{
				"gte": startTime,
				"lt":  endTime,
			},
		},
	}
}

func (h *healthCheckRepository) search(ctx context.Context, query map[string]interface{}, dest interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return fmt.Errorf("encode query: %w", err)
	}
	res, err := h.es.Search(
		h.es.Search.WithContext(ctx),
		h.es.Search.WithIndex(HealthCheckIndexName),
		h.es.Search.WithBody(&buf))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return decodeESError(res.Body, res.StatusCode)
	}
	if err = json.NewDecoder(res.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

// GetServiceUptimePercentage weights every probe by the time elapsed since the previous one.
func (h *healthCheckRepository) GetServiceUptimePercentage(ctx context.Context, serviceName string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"service_name": serviceName,
						},
					},
					timeRangeFilter(startTime, endTime),
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": uptimeAggregation(),
		},
	}
	var uptimeResponse esUptimePercentageResponse
	if err := h.search(ctx, query, &uptimeResponse); err != nil {
		return 0, fmt.Errorf("HealthCheckRepo.GetServiceUptimePercentage: %w", err)
	}
	return uptimeResponse.Aggregations.UptimePercentage.Value * 100, nil
}

type esRegistryHealthResponse struct {
	Aggregations struct {
		AvgUptime struct {
			Value float64 `json:"value"`
		} `json:"avg_uptime"`
		Services struct {
			Buckets []struct {
				Key         string                  `json:"key"`
				DocCount    int64                   `json:"doc_count"`
				Uptime      struct{ Value float64 } `json:"uptime"`
				AvgLatency  struct{ Value float64 } `json:"avg_latency"`
				LatestCheck struct {
					Hits struct {
						Hits []struct {
							Source struct {
								Status string `json:"status"`
							} `json:"_source"`
						} `json:"hits"`
					} `json:"hits"`
				} `json:"latest_check"`
			} `json:"buckets"`
		} `json:"services"`
	} `json:"aggregations"`
}

func (h *healthCheckRepository) GetRegistryHealthSummary(ctx context.Context, startTime time.Time, endTime time.Time) (RegistryHealthSummary, error) {
	query := map[string]interface{}{
		"size":  0,
		"query": timeRangeFilter(startTime, endTime),
		"aggs": map[string]interface{}{
			"avg_uptime": uptimeAggregation(),
			"services": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "service_name",
					"size":  10000,
					"order": map[string]interface{}{"_key": "asc"},
				},
				"aggs": map[string]interface{}{
					"uptime": uptimeAggregation(),
					"avg_latency": map[string]interface{}{
						"avg": map[string]interface{}{"field": "latency_ms"},
					},
					"latest_check": map[string]interface{}{
						"top_hits": map[string]interface{}{
							"size": 1,
							"sort": []map[string]interface{}{
								{
									"timestamp": map[string]interface{}{
										"order": "desc",
									},
								},
							},
							"_source": map[string]interface{}{
								"includes": "status",
							},
						},
					},
				},
			},
		},
	}
	var esRes esRegistryHealthResponse
	if err := h.search(ctx, query, &esRes); err != nil {
		return RegistryHealthSummary{}, fmt.Errorf("HealthCheckRepo.GetRegistryHealthSummary: %w", err)
	}

	buckets := esRes.Aggregations.Services.Buckets
	summary := RegistryHealthSummary{
		TotalServicesCnt:        len(buckets),
		AverageUptimePercentage: esRes.Aggregations.AvgUptime.Value * 100,
		Services:                make([]ServiceUptime, 0, len(buckets)),
	}
	for _, bucket := range buckets {
		status := string(model.ServiceStatusUnknown)
		if len(bucket.LatestCheck.Hits.Hits) > 0 {
			status = bucket.LatestCheck.Hits.Hits[0].Source.Status
		}
		switch model.ServiceStatus(status) {
		case model.ServiceStatusHealthy:
			summary.HealthyServicesCnt++
		case model.ServiceStatusUnhealthy:
			summary.UnhealthyServicesCnt++
		}
		summary.Services = append(summary.Services, ServiceUptime{
			ServiceName:      bucket.Key,
			LatestStatus:     status,
			UptimePercentage: bucket.Uptime.Value * 100,
			AvgLatencyMs:     bucket.AvgLatency.Value,
			ChecksCnt:        bucket.DocCount,
		})
	}
	return summary, nil
}

func NewHealthCheckRepository(esClient *elasticsearch.Client) HealthCheckRepository {
	return &healthCheckRepository{
		es: esClient,
	}
}
