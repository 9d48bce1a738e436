package monitor

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/notification"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	StateIdle    = "idle"
	StateArmed   = "armed"
	StateRunning = "running"
	StateStopped = "stopped"
)

// Registry is the part of the registry service the monitor reads from and writes to.
type Registry interface {
	ListServices(ctx context.Context, status model.ServiceStatus) ([]model.ServiceEntry, error)
	ReconcileHealth(ctx context.Context, snapshot model.ServiceEntry, update model.HealthUpdate) (model.ServiceEntry, error)
}

type Options struct {
	Interval            time.Duration
	StartupDelay        time.Duration
	MaxConcurrentProbes int
	Target              TargetOptions
	// HealthCheckTopic receives one HealthCheckRecord per probe. Empty disables publishing.
	HealthCheckTopic string
}

type Status struct {
	State              string
	CyclesCompleted    int64
	LastCycleStartedAt *time.Time
	LastCycleDuration  time.Duration
	LastCycleProbed    int
}

type Monitor interface {
	Start()
	// Stop cancels the wait between cycles, lets an in-flight cycle finish and returns once the loop has exited.
	Stop()
	Status() Status
}

type monitor struct {
	registry  Registry
	prober    Prober
	publisher notification.Publisher
	options   Options
	logger    *zap.Logger

	lifecycle sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	delayUsed bool

	mu     sync.RWMutex
	status Status
}

func (m *monitor) Start() {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()
	state := m.Status().State
	if state == StateArmed || state == StateRunning {
		return
	}

	var delay time.Duration
	if !m.delayUsed {
		delay = m.options.StartupDelay
		m.delayUsed = true
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})
	if delay > 0 {
		m.setState(StateArmed)
	} else {
		m.setState(StateRunning)
	}
	m.logger.Info("health monitor started", zap.Duration("startup_delay", delay), zap.Duration("interval", m.options.Interval))
	go m.loop(ctx, delay, m.done)
}

func (m *monitor) Stop() {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()
	state := m.Status().State
	if state != StateArmed && state != StateRunning {
		return
	}
	m.cancel()
	<-m.done
	m.setState(StateStopped)
	m.logger.Info("health monitor stopped")
}

func (m *monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *monitor) setState(state string) {
	m.mu.Lock()
	m.status.State = state
	m.mu.Unlock()
}

func (m *monitor) loop(ctx context.Context, delay time.Duration, done chan struct{}) {
	defer close(done)
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		m.setState(StateRunning)
	}

	ticker := time.NewTicker(m.options.Interval)
	defer ticker.Stop()
	for {
		// Stop only interrupts the wait, so the cycle runs on a context that ignores cancellation.
		m.runCycle(context.WithoutCancel(ctx))
		select {
		case <-ticker.C:
		default:
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *monitor) runCycle(ctx context.Context) {
	start := time.Now()
	entries, err := m.registry.ListServices(ctx, "")
	if err != nil {
		m.logger.Error("failed to list services for health check", zap.Error(fmt.Errorf("Monitor.runCycle: %w", err)))
		return
	}

	var g errgroup.Group
	g.SetLimit(m.options.MaxConcurrentProbes)
	probed := 0
	for _, entry := range entries {
		target, ok := ResolveProbeTarget(entry, m.options.Target)
		if !ok {
			m.logger.Debug("no probe target, skipping", zap.String("service_name", entry.ServiceName))
			continue
		}
		probed++
		g.Go(func() error {
			m.checkService(ctx, entry, target)
			return nil
		})
	}
	_ = g.Wait()

	duration := time.Since(start)
	m.mu.Lock()
	m.status.CyclesCompleted++
	m.status.LastCycleStartedAt = &start
	m.status.LastCycleDuration = duration
	m.status.LastCycleProbed = probed
	m.mu.Unlock()
	m.logger.Debug("health check cycle finished", zap.Int("services", len(entries)), zap.Int("probed", probed), zap.Duration("duration", duration))
}

func (m *monitor) checkService(ctx context.Context, entry model.ServiceEntry, target string) {
	result := m.prober.Probe(ctx, target)
	latency := result.LatencyMs
	_, err := m.registry.ReconcileHealth(ctx, entry, model.HealthUpdate{
		ServiceName: entry.ServiceName,
		Status:      result.Status,
		LatencyMs:   &latency,
		CheckedAt:   result.CheckedAt,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceNotFound) {
			m.logger.Debug("service deregistered during health check", zap.String("service_name", entry.ServiceName))
			return
		}
		m.logger.Error("failed to update service health",
			zap.String("service_name", entry.ServiceName),
			zap.Error(fmt.Errorf("Monitor.checkService: %w", err)))
	}
	m.publishRecord(ctx, entry, result)
}

func (m *monitor) publishRecord(ctx context.Context, entry model.ServiceEntry, result ProbeResult) {
	if m.publisher == nil || m.options.HealthCheckTopic == "" {
		return
	}
	interval := m.options.Interval.Milliseconds()
	if entry.LastHealthCheck != nil {
		interval = result.CheckedAt.Sub(*entry.LastHealthCheck).Milliseconds()
	}
	record := model.HealthCheckRecord{
		ServiceName:                    entry.ServiceName,
		Status:                         string(result.Status),
		LatencyMs:                      result.LatencyMs,
		Timestamp:                      result.CheckedAt,
		IntervalSinceLastHealthCheckMs: interval,
	}
	if result.Status == model.ServiceStatusHealthy {
		record.StatusNumeric = 1
	}
	if err := m.publisher.Publish(ctx, m.options.HealthCheckTopic, entry.ServiceName, record); err != nil {
		m.logger.Warn("failed to publish health check record",
			zap.String("service_name", entry.ServiceName),
			zap.Error(fmt.Errorf("Monitor.publishRecord: %w", err)))
	}
}

// NewMonitor accepts a nil publisher when the probe history is not collected.
func NewMonitor(registry Registry, prober Prober, publisher notification.Publisher, options Options, logger *zap.Logger) Monitor {
	if options.Interval <= 0 {
		options.Interval = 30 * time.Second
	}
	if options.MaxConcurrentProbes <= 0 {
		options.MaxConcurrentProbes = 100
	}
	return &monitor{
		registry:  registry,
		prober:    prober,
		publisher: publisher,
		options:   options,
		logger:    logger.With(zap.String("component", "health_monitor")),
		status:    Status{State: StateIdle},
	}
}
