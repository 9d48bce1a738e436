package service

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/notification"
	"Config_Service_Microservice/internal/config-service/repository"
	"Config_Service_Microservice/pkg/mail"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type RegistryService interface {
	Register(ctx context.Context, entry model.ServiceEntry) (model.ServiceEntry, error)
	GetService(ctx context.Context, serviceName string) (model.ServiceEntry, error)
	ListServices(ctx context.Context, status model.ServiceStatus) ([]model.ServiceEntry, error)
	GetHealthyServices(ctx context.Context) ([]model.ServiceEntry, error)
	UpdateHealth(ctx context.Context, update model.HealthUpdate) (model.ServiceEntry, error)
	Deregister(ctx context.Context, serviceName string) error
	// ReconcileHealth writes a probe outcome. A change event is emitted only when the status differs from snapshot.
	ReconcileHealth(ctx context.Context, snapshot model.ServiceEntry, update model.HealthUpdate) (model.ServiceEntry, error)
	GetServiceUptimePercentage(ctx context.Context, serviceName string, startTime time.Time, endTime time.Time) (float64, error)
	ReportRegistryHealth(ctx context.Context, startTime time.Time, endTime time.Time, email string) error
	ExportServices(ctx context.Context, status model.ServiceStatus) (*excelize.File, error)
}

type RegistryOptions struct {
	RegistryTopic      string
	ServiceInfoTTL     time.Duration
	HealthyServicesTTL time.Duration
	InstanceTTL        time.Duration
}

type registryService struct {
	serviceRepo     repository.ServiceRepository
	cacheRepo       repository.CacheRepository
	healthCheckRepo repository.HealthCheckRepository
	publisher       notification.Publisher
	mailSender      mail.Sender
	options         RegistryOptions
	logger          *zap.Logger
	// generations counts invalidations per cache key so a read-through fill can tell it raced one.
	generations sync.Map
}

func (r *registryService) generation(key string) *atomic.Uint64 {
	gen, _ := r.generations.LoadOrStore(key, new(atomic.Uint64))
	return gen.(*atomic.Uint64)
}

func (r *registryService) invalidateHook(serviceName string) Hook {
	return Hook{
		Name: "invalidate_cache",
		Run: func(ctx context.Context) error {
			keys := []string{repository.ServiceInfoKey(serviceName), repository.HealthyServicesKey}
			for _, key := range keys {
				r.generation(key).Add(1)
			}
			return r.cacheRepo.Delete(ctx, keys...)
		},
	}
}

// fillCache stores a value read from the store under key. When an invalidation ran since seen was
// taken the value may predate it, so the entry is dropped again.
func (r *registryService) fillCache(ctx context.Context, key string, value interface{}, ttl time.Duration, seen uint64) {
	gen := r.generation(key)
	if gen.Load() != seen {
		return
	}
	if err := r.cacheRepo.Set(ctx, key, value, ttl); err != nil {
		r.logger.Warn("cache fill failed", zap.String("key", key), zap.Error(err))
		return
	}
	if gen.Load() != seen {
		if err := r.cacheRepo.Delete(ctx, key); err != nil {
			r.logger.Warn("stale cache fill not removed", zap.String("key", key), zap.Error(err))
		}
	}
}

func (r *registryService) instanceHook(entry model.ServiceEntry) Hook {
	return Hook{
		Name: "set_instance",
		Run: func(ctx context.Context) error {
			return r.cacheRepo.SetServiceInstance(ctx, entry.ServiceName, model.NewServiceInstance(entry), r.options.InstanceTTL)
		},
	}
}

func (r *registryService) eventHook(action string, serviceName string, status model.ServiceStatus) Hook {
	return Hook{
		Name: "publish_event",
		Run: func(ctx context.Context) error {
			event := notification.NewChangeEvent(action, model.ResourceTypeService, serviceName, map[string]interface{}{
				"service_name": serviceName,
				"status":       string(status),
			}, "")
			return r.publisher.Publish(ctx, r.options.RegistryTopic, serviceName, event)
		},
	}
}

func (r *registryService) Register(ctx context.Context, entry model.ServiceEntry) (model.ServiceEntry, error) {
	saved, err := r.serviceRepo.Upsert(ctx, entry)
	if err != nil {
		return model.ServiceEntry{}, fmt.Errorf("RegistryService.Register: %w", err)
	}
	RunHooks(ctx, r.logger, "register",
		r.invalidateHook(saved.ServiceName),
		r.instanceHook(saved),
		r.eventHook(model.EventActionRegister, saved.ServiceName, saved.Status),
	)
	return saved, nil
}

func (r *registryService) GetService(ctx context.Context, serviceName string) (model.ServiceEntry, error) {
	key := repository.ServiceInfoKey(serviceName)
	seen := r.generation(key).Load()
	var cached model.ServiceEntry
	err := r.cacheRepo.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrCacheMiss) {
		r.logger.Warn("service cache read failed", zap.String("service_name", serviceName), zap.Error(err))
	}

	entry, err := r.serviceRepo.GetByName(ctx, serviceName)
	if err != nil {
		return model.ServiceEntry{}, fmt.Errorf("RegistryService.GetService: %w", err)
	}
	r.fillCache(ctx, key, entry, r.options.ServiceInfoTTL, seen)
	return entry, nil
}

func (r *registryService) ListServices(ctx context.Context, status model.ServiceStatus) ([]model.ServiceEntry, error) {
	entries, err := r.serviceRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("RegistryService.ListServices: %w", err)
	}
	return entries, nil
}

func (r *registryService) GetHealthyServices(ctx context.Context) ([]model.ServiceEntry, error) {
	seen := r.generation(repository.HealthyServicesKey).Load()
	var cached []model.ServiceEntry
	err := r.cacheRepo.Get(ctx, repository.HealthyServicesKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrCacheMiss) {
		r.logger.Warn("healthy services cache read failed", zap.Error(err))
	}

	entries, err := r.serviceRepo.List(ctx, model.ServiceStatusHealthy)
	if err != nil {
		return nil, fmt.Errorf("RegistryService.GetHealthyServices: %w", err)
	}
	r.fillCache(ctx, repository.HealthyServicesKey, entries, r.options.HealthyServicesTTL, seen)
	return entries, nil
}

func (r *registryService) UpdateHealth(ctx context.Context, update model.HealthUpdate) (model.ServiceEntry, error) {
	if update.CheckedAt.IsZero() {
		update.CheckedAt = time.Now()
	}
	entry, err := r.serviceRepo.UpdateHealth(ctx, update)
	if err != nil {
		return model.ServiceEntry{}, fmt.Errorf("RegistryService.UpdateHealth: %w", err)
	}
	RunHooks(ctx, r.logger, "update_health",
		r.invalidateHook(entry.ServiceName),
		r.instanceHook(entry),
		r.eventHook(model.EventActionUpdate, entry.ServiceName, entry.Status),
	)
	return entry, nil
}

func (r *registryService) ReconcileHealth(ctx context.Context, snapshot model.ServiceEntry, update model.HealthUpdate) (model.ServiceEntry, error) {
	entry, err := r.serviceRepo.UpdateHealth(ctx, update)
	if err != nil {
		return model.ServiceEntry{}, fmt.Errorf("RegistryService.ReconcileHealth: %w", err)
	}
	hooks := []Hook{r.invalidateHook(update.ServiceName), r.instanceHook(entry)}
	if snapshot.Status != update.Status {
		hooks = append(hooks, r.eventHook(model.EventActionUpdate, update.ServiceName, update.Status))
	}
	RunHooks(ctx, r.logger, "reconcile_health", hooks...)
	return entry, nil
}

func (r *registryService) Deregister(ctx context.Context, serviceName string) error {
	if err := r.serviceRepo.Delete(ctx, serviceName); err != nil {
		return fmt.Errorf("RegistryService.Deregister: %w", err)
	}
	RunHooks(ctx, r.logger, "deregister",
		r.invalidateHook(serviceName),
		Hook{
			Name: "delete_instance",
			Run: func(ctx context.Context) error {
				return r.cacheRepo.DeleteServiceInstance(ctx, serviceName)
			},
		},
		r.eventHook(model.EventActionDeregister, serviceName, ""),
	)
	return nil
}

func (r *registryService) GetServiceUptimePercentage(ctx context.Context, serviceName string, startTime time.Time, endTime time.Time) (float64, error) {
	res, err := r.healthCheckRepo.GetServiceUptimePercentage(ctx, serviceName, startTime, endTime)
	if err != nil {
		return 0, fmt.Errorf("RegistryService.GetServiceUptimePercentage: %w", err)
	}
	return res, nil
}

func (r *registryService) ReportRegistryHealth(ctx context.Context, startTime time.Time, endTime time.Time, email string) error {
	summary, err := r.healthCheckRepo.GetRegistryHealthSummary(ctx, startTime, endTime)
	if err != nil {
		return fmt.Errorf("RegistryService.ReportRegistryHealth: %w", err)
	}
	entries, err := r.serviceRepo.List(ctx, "")
	if err != nil {
		return fmt.Errorf("RegistryService.ReportRegistryHealth: %w", err)
	}
	uptimes := make(map[string]repository.ServiceUptime, len(summary.Services))
	for _, s := range summary.Services {
		uptimes[s.ServiceName] = s
	}
	f, err := newRegistryWorkbook(entries, uptimes)
	if err != nil {
		return fmt.Errorf("RegistryService.ReportRegistryHealth: %w", err)
	}
	defer f.Close()
	workbook, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("RegistryService.ReportRegistryHealth: %w", err)
	}

	subject := fmt.Sprintf("Service Registry Health Report From %s To %s",
		startTime.Format(time.DateTime), endTime.Add(-1*time.Second).Format(time.DateTime))
	attachment := mail.Attachment{
		Name:    fmt.Sprintf("registry-%s.xlsx", endTime.Format("2006-01-02")),
		Content: workbook,
	}
	err = r.mailSender.SendMail([]string{email}, subject, generateHTMLBody(summary), generateTextMailBody(summary), []mail.Attachment{attachment})
	if err != nil {
		return fmt.Errorf("RegistryService.ReportRegistryHealth: %w", err)
	}
	return nil
}

func (r *registryService) ExportServices(ctx context.Context, status model.ServiceStatus) (*excelize.File, error) {
	entries, err := r.serviceRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("RegistryService.ExportServices: %w", err)
	}
	f, err := newRegistryWorkbook(entries, nil)
	if err != nil {
		return nil, fmt.Errorf("RegistryService.ExportServices: %w", err)
	}
	return f, nil
}

func NewRegistryService(
	serviceRepo repository.ServiceRepository,
	cacheRepo repository.CacheRepository,
	healthCheckRepo repository.HealthCheckRepository,
	publisher notification.Publisher,
	mailSender mail.Sender,
	options RegistryOptions,
	logger *zap.Logger,
) RegistryService {
	return &registryService{
		serviceRepo:     serviceRepo,
		cacheRepo:       cacheRepo,
		healthCheckRepo: healthCheckRepo,
		publisher:       publisher,
		mailSender:      mailSender,
		options:         options,
		logger:          logger,
	}
}
