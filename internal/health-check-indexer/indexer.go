package health_check_indexer

import (
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/repository"
	"Config_Service_Microservice/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var errInvalidRecord = errors.New("health check record has no service name")

type HealthCheckIndexer interface {
	Start()
	Stop()
}

type healthCheckIndexer struct {
	kafkaReader     infra.KafkaReader
	healthCheckRepo repository.HealthCheckRepository
	logger          *zap.Logger
}

func decodeRecord(value []byte) (model.HealthCheckRecord, error) {
	var record model.HealthCheckRecord
	if err := json.Unmarshal(value, &record); err != nil {
		return record, err
	}
	if record.ServiceName == "" {
		return record, errInvalidRecord
	}
	return record, nil
}

func (h *healthCheckIndexer) commit(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.kafkaReader.CommitMessages(ctx, m); err != nil {
		err = fmt.Errorf("healthCheckIndexer.commit: %w", err)
		h.logger.Error("failed to commit messages", zap.Error(err), zap.Int64("offset", m.Offset))
	}
}

func (h *healthCheckIndexer) Start() {
	go func() {
		for {
			m, err := h.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("healthCheckIndexer.Start: %w", err)
				h.logger.Error("failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				h.commit(m)
				continue
			}
			record, err := decodeRecord(m.Value)
			if err != nil {
				err = fmt.Errorf("healthCheckIndexer.Start: %w", err)
				h.logger.Error("dropping undecodable health check record", zap.Error(err), zap.Int64("offset", m.Offset))
				h.commit(m)
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err = h.healthCheckRepo.IndexHealthChecks(ctx, record)
			cancel()
			if err != nil {
				// left uncommitted so the group redelivers it
				err = fmt.Errorf("healthCheckIndexer.Start: %w", err)
				h.logger.Error("failed to index health check record", zap.Error(err), zap.String("service_name", record.ServiceName))
				continue
			}
			h.commit(m)
		}
	}()
}

func (h *healthCheckIndexer) Stop() {
	if err := h.kafkaReader.Close(); err != nil {
		h.logger.Error("failed to close kafka reader", zap.Error(err))
	}
}

func NewHealthCheckIndexer(reader infra.KafkaReader, healthCheckRepo repository.HealthCheckRepository, logger *zap.Logger) HealthCheckIndexer {
	return &healthCheckIndexer{
		kafkaReader:     reader,
		healthCheckRepo: healthCheckRepo,
		logger:          logger,
	}
}
