package monitor

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/service"
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	testRegistryTopic = "service-registry-updates"
	testChecksTopic   = "service-health-checks"
)

// memServiceRepository is an in-memory repository.ServiceRepository with the same narrow-update semantics as the SQL one.
type memServiceRepository struct {
	mu      sync.Mutex
	entries map[string]model.ServiceEntry
}

func newMemServiceRepository() *memServiceRepository {
	return &memServiceRepository{entries: make(map[string]model.ServiceEntry)}
}

func (r *memServiceRepository) Upsert(_ context.Context, entry model.ServiceEntry) (model.ServiceEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if existing, ok := r.entries[entry.ServiceName]; ok {
		existing.ServiceURL = entry.ServiceURL
		existing.HealthCheckURL = entry.HealthCheckURL
		if entry.Metadata != nil {
			existing.Metadata = entry.Metadata
		}
		existing.UpdatedAt = now
		r.entries[entry.ServiceName] = existing
		return existing, nil
	}
	entry.Status = model.ServiceStatusUnknown
	entry.RegisteredAt = now
	entry.UpdatedAt = now
	r.entries[entry.ServiceName] = entry
	return entry, nil
}

func (r *memServiceRepository) GetByName(_ context.Context, serviceName string) (model.ServiceEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[serviceName]
	if !ok {
		return model.ServiceEntry{}, fmt.Errorf("memServiceRepository.GetByName: %w", apperrors.ErrServiceNotFound)
	}
	return entry, nil
}

func (r *memServiceRepository) List(_ context.Context, status model.ServiceStatus) ([]model.ServiceEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ServiceEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		if status == "" || entry.Status == status {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ServiceName < out[j].ServiceName })
	return out, nil
}

func (r *memServiceRepository) UpdateFields(_ context.Context, serviceName string, fields map[string]interface{}) (model.ServiceEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[serviceName]
	if !ok {
		return model.ServiceEntry{}, fmt.Errorf("memServiceRepository.UpdateFields: %w", apperrors.ErrServiceNotFound)
	}
	if v, ok := fields["status"].(model.ServiceStatus); ok {
		entry.Status = v
	}
	entry.UpdatedAt = time.Now()
	r.entries[serviceName] = entry
	return entry, nil
}

func (r *memServiceRepository) UpdateHealth(_ context.Context, update model.HealthUpdate) (model.ServiceEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[update.ServiceName]
	if !ok {
		return model.ServiceEntry{}, fmt.Errorf("memServiceRepository.UpdateHealth: %w", apperrors.ErrServiceNotFound)
	}
	checkedAt := update.CheckedAt
	entry.Status = update.Status
	entry.LastHealthCheck = &checkedAt
	if update.LatencyMs != nil {
		metadata := make(model.Metadata, len(entry.Metadata)+1)
		maps.Copy(metadata, entry.Metadata)
		metadata[model.MetadataKeyAvgResponseTime] = *update.LatencyMs
		entry.Metadata = metadata
	}
	entry.UpdatedAt = time.Now()
	r.entries[update.ServiceName] = entry
	return entry, nil
}

func (r *memServiceRepository) Delete(_ context.Context, serviceName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[serviceName]; !ok {
		return fmt.Errorf("memServiceRepository.Delete: %w", apperrors.ErrServiceNotFound)
	}
	delete(r.entries, serviceName)
	return nil
}

func (r *memServiceRepository) get(serviceName string) (model.ServiceEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[serviceName]
	return entry, ok
}

type noopCacheRepository struct{}

func (noopCacheRepository) Get(context.Context, string, interface{}) error {
	return apperrors.ErrCacheMiss
}
func (noopCacheRepository) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (noopCacheRepository) Delete(context.Context, ...string) error             { return nil }
func (noopCacheRepository) DeletePattern(context.Context, string) error         { return nil }
func (noopCacheRepository) DeleteServiceInstance(context.Context, string) error { return nil }
func (noopCacheRepository) Ping(context.Context) error                          { return nil }
func (noopCacheRepository) SetServiceInstance(context.Context, string, model.ServiceInstance, time.Duration) error {
	return nil
}

type publishedMessage struct {
	topic   string
	key     string
	payload interface{}
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []publishedMessage
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, key string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, publishedMessage{topic: topic, key: key, payload: payload})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) onTopic(topic string) []publishedMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []publishedMessage
	for _, m := range p.messages {
		if m.topic == topic {
			out = append(out, m)
		}
	}
	return out
}

// transitions returns "service:status" for every registry update event, in publish order.
func (p *recordingPublisher) transitions() []string {
	var out []string
	for _, m := range p.onTopic(testRegistryTopic) {
		event := m.payload.(model.ChangeEvent)
		if event.Action != model.EventActionUpdate {
			continue
		}
		out = append(out, fmt.Sprintf("%s:%s", event.Data["service_name"], event.Data["status"]))
	}
	return out
}

type countingRegistry struct {
	Registry
	lists atomic.Int64
}

func (c *countingRegistry) ListServices(ctx context.Context, status model.ServiceStatus) ([]model.ServiceEntry, error) {
	c.lists.Add(1)
	return c.Registry.ListServices(ctx, status)
}

type testHarness struct {
	repo      *memServiceRepository
	publisher *recordingPublisher
	registry  service.RegistryService
}

func newTestHarness() *testHarness {
	repo := newMemServiceRepository()
	publisher := &recordingPublisher{}
	registry := service.NewRegistryService(repo, noopCacheRepository{}, nil, publisher, nil, service.RegistryOptions{
		RegistryTopic: testRegistryTopic,
	}, zap.NewNop())
	return &testHarness{repo: repo, publisher: publisher, registry: registry}
}

func (h *testHarness) register(name string, healthCheckURL string) {
	_, _ = h.repo.Upsert(context.Background(), model.ServiceEntry{
		ServiceName:    name,
		ServiceURL:     "http://" + name + ".invalid",
		HealthCheckURL: healthCheckURL,
	})
}

func (h *testHarness) monitor(registry Registry, options Options, probeTimeout time.Duration) *monitor {
	if options.HealthCheckTopic == "" {
		options.HealthCheckTopic = testChecksTopic
	}
	return NewMonitor(registry, NewHTTPProber(probeTimeout), h.publisher, options, zap.NewNop()).(*monitor)
}

// stalledWriter is a kafka writer whose broker never answers: every write waits for its deadline.
type stalledWriter struct {
	release chan struct{}
	writes  atomic.Int64
}

func newStalledWriter() *stalledWriter {
	return &stalledWriter{release: make(chan struct{})}
}

func (w *stalledWriter) WriteMessages(ctx context.Context, _ ...kafka.Message) error {
	w.writes.Add(1)
	select {
	case <-w.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *stalledWriter) Close() error { return nil }

// pacedProber reports healthy after a per-call delay and records when each probe began.
type pacedProber struct {
	mu     sync.Mutex
	starts []time.Time
	delay  func(call int) time.Duration
}

func (p *pacedProber) Probe(_ context.Context, _ string) ProbeResult {
	p.mu.Lock()
	call := len(p.starts)
	p.starts = append(p.starts, time.Now())
	p.mu.Unlock()
	time.Sleep(p.delay(call))
	return ProbeResult{Status: model.ServiceStatusHealthy, CheckedAt: time.Now()}
}

func (p *pacedProber) startTimes() []time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]time.Time(nil), p.starts...)
}
