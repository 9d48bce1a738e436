package repository

import (
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ServiceRepository interface {
	Upsert(ctx context.Context, entry model.ServiceEntry) (model.ServiceEntry, error)
	GetByName(ctx context.Context, serviceName string) (model.ServiceEntry, error)
	List(ctx context.Context, status model.ServiceStatus) ([]model.ServiceEntry, error)
	UpdateFields(ctx context.Context, serviceName string, fields map[string]interface{}) (model.ServiceEntry, error)
	UpdateHealth(ctx context.Context, update model.HealthUpdate) (model.ServiceEntry, error)
	Delete(ctx context.Context, serviceName string) error
}

type serviceRepository struct {
	db *gorm.DB
}

// Upsert inserts the entry or, on a name conflict, overwrites the urls and the metadata (when given)
// while keeping registered_at and status.
func (s *serviceRepository) Upsert(ctx context.Context, entry model.ServiceEntry) (model.ServiceEntry, error) {
	if entry.Status == "" {
		entry.Status = model.ServiceStatusUnknown
	}
	doUpdates := clause.AssignmentColumns([]string{"service_url", "health_check_url", "updated_at"})
	doUpdates = append(doUpdates, clause.Assignment{
		Column: clause.Column{Name: "metadata"},
		Value:  gorm.Expr(`COALESCE(EXCLUDED.metadata, "service_registry"."metadata")`),
	})
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_name"}},
		DoUpdates: doUpdates,
	}, clause.Returning{}).Create(&entry)
	if result.Error != nil {
		return entry, fmt.Errorf("ServiceRepository.Upsert: %w", result.Error)
	}
	return entry, nil
}

func (s *serviceRepository) GetByName(ctx context.Context, serviceName string) (model.ServiceEntry, error) {
	var entry model.ServiceEntry
	result := s.db.WithContext(ctx).First(&entry, "service_name = ?", serviceName)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entry, fmt.Errorf("ServiceRepository.GetByName: %w", apperrors.ErrServiceNotFound)
		}
		return entry, fmt.Errorf("ServiceRepository.GetByName: %w", result.Error)
	}
	return entry, nil
}

func (s *serviceRepository) List(ctx context.Context, status model.ServiceStatus) ([]model.ServiceEntry, error) {
	query := s.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	entries := make([]model.ServiceEntry, 0)
	result := query.Order("service_name ASC").Find(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("ServiceRepository.List: %w", result.Error)
	}
	return entries, nil
}

// UpdateFields writes only the given columns; updated_at is always refreshed.
func (s *serviceRepository) UpdateFields(ctx context.Context, serviceName string, fields map[string]interface{}) (model.ServiceEntry, error) {
	var entry model.ServiceEntry
	result := s.db.WithContext(ctx).Model(&entry).Clauses(clause.Returning{}).Where("service_name = ?", serviceName).Updates(fields)
	if result.Error != nil {
		return entry, fmt.Errorf("ServiceRepository.UpdateFields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entry, fmt.Errorf("ServiceRepository.UpdateFields: %w", apperrors.ErrServiceNotFound)
	}
	return entry, nil
}

// UpdateHealth merges the latency into metadata inside the UPDATE itself so a concurrent metadata
// write is never replaced by a stale copy.
func (s *serviceRepository) UpdateHealth(ctx context.Context, update model.HealthUpdate) (model.ServiceEntry, error) {
	fields := map[string]interface{}{
		"status":            update.Status,
		"last_health_check": update.CheckedAt,
	}
	if update.LatencyMs != nil {
		fields["metadata"] = gorm.Expr(
			fmt.Sprintf("COALESCE(metadata, '{}'::jsonb) || jsonb_build_object('%s', ?::double precision)", model.MetadataKeyAvgResponseTime),
			*update.LatencyMs,
		)
	}
	entry, err := s.UpdateFields(ctx, update.ServiceName, fields)
	if err != nil {
		return entry, fmt.Errorf("ServiceRepository.UpdateHealth: %w", err)
	}
	return entry, nil
}

func (s *serviceRepository) Delete(ctx context.Context, serviceName string) error {
	result := s.db.WithContext(ctx).Where("service_name = ?", serviceName).Delete(&model.ServiceEntry{})
	if result.Error != nil {
		return fmt.Errorf("ServiceRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServiceRepository.Delete: %w", apperrors.ErrServiceNotFound)
	}
	return nil
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}
