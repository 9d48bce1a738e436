package monitor

import (
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/notification"
	"Config_Service_Microservice/internal/config-service/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type switchableServer struct {
	*httptest.Server
	healthy atomic.Bool
}

func newSwitchableServer(healthy bool) *switchableServer {
	s := &switchableServer{}
	s.healthy.Store(healthy)
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	return s
}

func TestMonitor_RunCycle_NewServiceBecomesHealthy(t *testing.T) {
	server := newSwitchableServer(true)
	defer server.Close()
	h := newTestHarness()
	h.register("billing", server.URL+"/health")

	entry, _ := h.repo.get("billing")
	require.Equal(t, model.ServiceStatusUnknown, entry.Status)
	require.Nil(t, entry.LastHealthCheck)

	m := h.monitor(h.registry, Options{Interval: 30 * time.Second}, time.Second)
	cycleStart := time.Now()
	m.runCycle(context.Background())

	entry, _ = h.repo.get("billing")
	assert.Equal(t, model.ServiceStatusHealthy, entry.Status)
	require.NotNil(t, entry.LastHealthCheck)
	assert.False(t, entry.LastHealthCheck.Before(cycleStart))
	_, hasLatency := entry.Metadata.Float(model.MetadataKeyAvgResponseTime)
	assert.True(t, hasLatency)
	assert.Equal(t, []string{"billing:healthy"}, h.publisher.transitions())

	records := h.publisher.onTopic(testChecksTopic)
	require.Len(t, records, 1)
	record := records[0].payload.(model.HealthCheckRecord)
	assert.Equal(t, "billing", records[0].key)
	assert.Equal(t, 1, record.StatusNumeric)
	assert.Equal(t, (30 * time.Second).Milliseconds(), record.IntervalSinceLastHealthCheckMs)

	status := m.Status()
	assert.Equal(t, int64(1), status.CyclesCompleted)
	assert.Equal(t, 1, status.LastCycleProbed)
}

func TestMonitor_RunCycle_HealthyServiceGoesDown(t *testing.T) {
	server := newSwitchableServer(true)
	defer server.Close()
	h := newTestHarness()
	h.register("billing", server.URL+"/health")
	m := h.monitor(h.registry, Options{Interval: time.Minute}, time.Second)

	m.runCycle(context.Background())
	first, _ := h.repo.get("billing")
	require.Equal(t, model.ServiceStatusHealthy, first.Status)

	server.healthy.Store(false)
	m.runCycle(context.Background())

	entry, _ := h.repo.get("billing")
	assert.Equal(t, model.ServiceStatusUnhealthy, entry.Status)
	assert.True(t, entry.LastHealthCheck.After(*first.LastHealthCheck))
	assert.Equal(t, []string{"billing:healthy", "billing:unhealthy"}, h.publisher.transitions())

	records := h.publisher.onTopic(testChecksTopic)
	require.Len(t, records, 2)
	second := records[1].payload.(model.HealthCheckRecord)
	assert.Equal(t, 0, second.StatusNumeric)
	assert.Less(t, second.IntervalSinceLastHealthCheckMs, time.Minute.Milliseconds())
}

func TestMonitor_RunCycle_EmitsOnlyTransitions(t *testing.T) {
	server := newSwitchableServer(true)
	defer server.Close()
	h := newTestHarness()
	h.register("billing", server.URL)
	m := h.monitor(h.registry, Options{Interval: time.Minute}, time.Second)

	for i := 0; i < 5; i++ {
		m.runCycle(context.Background())
	}

	assert.Equal(t, []string{"billing:healthy"}, h.publisher.transitions())
	assert.Len(t, h.publisher.onTopic(testChecksTopic), 5)
	assert.Equal(t, int64(5), m.Status().CyclesCompleted)
}

func TestMonitor_RunCycle_TimeoutMarksUnhealthy(t *testing.T) {
	server := newProbeServer()
	defer server.Close()
	h := newTestHarness()
	h.register("slow", server.URL+"/slow")
	m := h.monitor(h.registry, Options{Interval: time.Minute}, 100*time.Millisecond)

	m.runCycle(context.Background())

	entry, _ := h.repo.get("slow")
	assert.Equal(t, model.ServiceStatusUnhealthy, entry.Status)
	latency, _ := entry.Metadata.Float(model.MetadataKeyAvgResponseTime)
	assert.Equal(t, 100.0, latency)
}

func TestMonitor_RunCycle_SkipsEntriesWithoutTarget(t *testing.T) {
	h := newTestHarness()
	h.register("no-target", "")
	m := h.monitor(h.registry, Options{Interval: time.Minute, Target: TargetOptions{DeriveFromServiceURL: false}}, time.Second)

	m.runCycle(context.Background())

	entry, _ := h.repo.get("no-target")
	assert.Equal(t, model.ServiceStatusUnknown, entry.Status)
	assert.Nil(t, entry.LastHealthCheck)
	assert.Empty(t, h.publisher.messages)
	assert.Equal(t, 0, m.Status().LastCycleProbed)
}

func TestMonitor_RunCycle_ProbesConcurrently(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	h := newTestHarness()
	for i := 0; i < 50; i++ {
		h.register(fmt.Sprintf("svc-%02d", i), server.URL+"/health")
	}
	m := h.monitor(h.registry, Options{Interval: time.Minute, MaxConcurrentProbes: 100}, time.Second)

	start := time.Now()
	m.runCycle(context.Background())
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second)
	entries, err := h.repo.List(context.Background(), model.ServiceStatusHealthy)
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}

func TestMonitor_RunCycle_RespectsConcurrencyLimit(t *testing.T) {
	var inFlight, maxInFlight atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			current := maxInFlight.Load()
			if n <= current || maxInFlight.CompareAndSwap(current, n) {
				break
			}
		}
		time.Sleep(50 * time.Millisecond)
		inFlight.Add(-1)
	}))
	defer server.Close()
	h := newTestHarness()
	for i := 0; i < 6; i++ {
		h.register(fmt.Sprintf("svc-%d", i), server.URL)
	}
	m := h.monitor(h.registry, Options{Interval: time.Minute, MaxConcurrentProbes: 2}, time.Second)

	start := time.Now()
	m.runCycle(context.Background())

	assert.LessOrEqual(t, maxInFlight.Load(), int64(2))
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestMonitor_RunCycle_ConcurrentUpdateHealth(t *testing.T) {
	server := newSwitchableServer(true)
	defer server.Close()
	h := newTestHarness()
	h.register("billing", server.URL)
	m := h.monitor(h.registry, Options{Interval: time.Minute}, time.Second)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.runCycle(ctx)
		}()
		go func() {
			defer wg.Done()
			_, err := h.registry.UpdateHealth(ctx, model.HealthUpdate{ServiceName: "billing", Status: model.ServiceStatusUnhealthy})
			assert.NoError(t, err)
		}()
		wg.Wait()

		entry, ok := h.repo.get("billing")
		require.True(t, ok)
		assert.Contains(t, []model.ServiceStatus{model.ServiceStatusHealthy, model.ServiceStatusUnhealthy}, entry.Status)
		assert.NotNil(t, entry.LastHealthCheck)
	}
}

func TestMonitor_RunCycle_DeregisteredDuringCycle(t *testing.T) {
	h := newTestHarness()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone" {
			_ = h.registry.Deregister(r.Context(), "gone")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	h.register("gone", server.URL+"/gone")
	h.register("kept", server.URL+"/kept")
	m := h.monitor(h.registry, Options{Interval: time.Minute}, time.Second)

	m.runCycle(context.Background())

	_, exists := h.repo.get("gone")
	assert.False(t, exists)
	kept, _ := h.repo.get("kept")
	assert.Equal(t, model.ServiceStatusHealthy, kept.Status)
	assert.Equal(t, []string{"kept:healthy"}, h.publisher.transitions())
	records := h.publisher.onTopic(testChecksTopic)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].key)
}

type failingRegistry struct {
	Registry
}

func (failingRegistry) ListServices(context.Context, model.ServiceStatus) ([]model.ServiceEntry, error) {
	return nil, errors.New("db error")
}

func TestMonitor_RunCycle_ListFailure(t *testing.T) {
	h := newTestHarness()
	m := h.monitor(failingRegistry{}, Options{Interval: time.Minute}, time.Second)

	m.runCycle(context.Background())

	assert.Equal(t, int64(0), m.Status().CyclesCompleted)
}

func TestMonitor_StartupDelayOnlyOnFirstStart(t *testing.T) {
	h := newTestHarness()
	registry := &countingRegistry{Registry: h.registry}
	m := NewMonitor(registry, NewHTTPProber(time.Second), nil, Options{
		Interval:     time.Hour,
		StartupDelay: 300 * time.Millisecond,
	}, zap.NewNop())

	m.Start()
	assert.Equal(t, StateArmed, m.Status().State)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(0), registry.lists.Load())

	stopStart := time.Now()
	m.Stop()
	assert.Less(t, time.Since(stopStart), 200*time.Millisecond)
	assert.Equal(t, StateStopped, m.Status().State)
	assert.Equal(t, int64(0), registry.lists.Load())

	m.Start()
	assert.Equal(t, StateRunning, m.Status().State)
	require.Eventually(t, func() bool { return registry.lists.Load() == 1 }, 200*time.Millisecond, 5*time.Millisecond)
	m.Stop()
	assert.Equal(t, StateStopped, m.Status().State)
}

func TestMonitor_StartTwiceRunsSingleLoop(t *testing.T) {
	h := newTestHarness()
	registry := &countingRegistry{Registry: h.registry}
	m := NewMonitor(registry, NewHTTPProber(time.Second), nil, Options{Interval: 50 * time.Millisecond}, zap.NewNop())

	m.Start()
	m.Start()
	m.Start()
	time.Sleep(275 * time.Millisecond)
	m.Stop()

	cycles := registry.lists.Load()
	assert.GreaterOrEqual(t, cycles, int64(3))
	assert.LessOrEqual(t, cycles, int64(8))

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, cycles, registry.lists.Load())

	m.Start()
	require.Eventually(t, func() bool { return registry.lists.Load() > cycles }, time.Second, 5*time.Millisecond)
	m.Stop()
}

func TestMonitor_StopWaitsForInFlightCycle(t *testing.T) {
	entered := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case entered <- struct{}{}:
		default:
		}
		time.Sleep(150 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	h := newTestHarness()
	h.register("billing", server.URL)
	m := h.monitor(h.registry, Options{Interval: time.Hour}, time.Second)

	m.Start()
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("probe never started")
	}
	m.Stop()

	entry, _ := h.repo.get("billing")
	assert.Equal(t, model.ServiceStatusHealthy, entry.Status)
	assert.Equal(t, int64(1), m.Status().CyclesCompleted)
	assert.Equal(t, StateStopped, m.Status().State)
}

func TestMonitor_StopWhenIdle(t *testing.T) {
	h := newTestHarness()
	m := h.monitor(h.registry, Options{}, time.Second)

	m.Stop()

	assert.Equal(t, StateIdle, m.Status().State)
	assert.Equal(t, 30*time.Second, m.options.Interval)
	assert.Equal(t, 100, m.options.MaxConcurrentProbes)
}

func TestMonitor_IntervalIsMeasuredBetweenCycleStarts(t *testing.T) {
	h := newTestHarness()
	h.register("billing", "http://billing.invalid/health")
	prober := &pacedProber{delay: func(int) time.Duration { return 60 * time.Millisecond }}
	m := NewMonitor(h.registry, prober, h.publisher, Options{Interval: 100 * time.Millisecond}, zap.NewNop())

	m.Start()
	time.Sleep(450 * time.Millisecond)
	m.Stop()

	starts := prober.startTimes()
	// Cycles start at 0, 100, 200, 300 and 400ms. Waiting a full interval after each 60ms cycle would fit only three.
	assert.GreaterOrEqual(t, len(starts), 4)
	assert.LessOrEqual(t, len(starts), 5)
	for i := 1; i < len(starts); i++ {
		assert.GreaterOrEqual(t, starts[i].Sub(starts[i-1]), 80*time.Millisecond)
	}
}

func TestMonitor_SlowCycleDropsMissedTicks(t *testing.T) {
	h := newTestHarness()
	h.register("billing", "http://billing.invalid/health")
	prober := &pacedProber{delay: func(call int) time.Duration {
		if call == 0 {
			return 300 * time.Millisecond
		}
		return 0
	}}
	m := NewMonitor(h.registry, prober, h.publisher, Options{Interval: 50 * time.Millisecond}, zap.NewNop())

	m.Start()
	require.Eventually(t, func() bool { return len(prober.startTimes()) >= 5 }, 2*time.Second, 5*time.Millisecond)
	m.Stop()

	starts := prober.startTimes()
	assert.GreaterOrEqual(t, starts[1].Sub(starts[0]), 300*time.Millisecond)
	// Six ticks were missed during the first cycle. None of them may be replayed back to back.
	for i := 2; i < len(starts); i++ {
		assert.GreaterOrEqual(t, starts[i].Sub(starts[i-1]), 30*time.Millisecond)
	}
}

func TestMonitor_RunCycle_StalledBrokerDoesNotDelayCycle(t *testing.T) {
	server := newSwitchableServer(true)
	defer server.Close()
	writer := newStalledWriter()
	publisher := notification.NewKafkaPublisher(writer, 2*time.Second, 16, zap.NewNop())
	t.Cleanup(func() {
		close(writer.release)
		_ = publisher.Close()
	})

	repo := newMemServiceRepository()
	registry := service.NewRegistryService(repo, noopCacheRepository{}, nil, publisher, nil, service.RegistryOptions{
		RegistryTopic: testRegistryTopic,
	}, zap.NewNop())
	m := NewMonitor(registry, NewHTTPProber(100*time.Millisecond), publisher, Options{
		Interval:         time.Minute,
		HealthCheckTopic: testChecksTopic,
	}, zap.NewNop()).(*monitor)

	start := time.Now()
	_, err := registry.Register(context.Background(), model.ServiceEntry{
		ServiceName:    "billing",
		ServiceURL:     server.URL,
		HealthCheckURL: server.URL + "/health",
	})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 200*time.Millisecond)

	start = time.Now()
	m.runCycle(context.Background())
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	entry, ok := repo.get("billing")
	require.True(t, ok)
	assert.Equal(t, model.ServiceStatusHealthy, entry.Status)
	require.Eventually(t, func() bool { return writer.writes.Load() >= 1 }, time.Second, 5*time.Millisecond)
}
