package main

import (
	"Config_Service_Microservice/internal/config-service/repository"
	health_check_indexer "Config_Service_Microservice/internal/health-check-indexer"
	"Config_Service_Microservice/pkg/infra"
	"Config_Service_Microservice/pkg/logger"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	appConfig, err := health_check_indexer.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer, "health-check-indexer")
	defer zapLogger.Sync()
	stopReload := logger.ReloadOnSignal(zapLogger, fileSyncer)
	defer stopReload()

	// set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = infra.EnsureIndex(ctx, esClient, repository.HealthCheckIndexName, repository.HealthCheckIndexMapping)
	cancel()
	if err != nil {
		zapLogger.Fatal("failed to create health check index", zap.Error(err))
	}

	healthCheckRepo := repository.NewHealthCheckRepository(esClient)

	indexers := make([]health_check_indexer.HealthCheckIndexer, appConfig.Kafka.ConsumerCnt)
	for i := 0; i < appConfig.Kafka.ConsumerCnt; i++ {
		reader := infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroupID, appConfig.Kafka.ConsumerTopic)
		indexers[i] = health_check_indexer.NewHealthCheckIndexer(reader, healthCheckRepo, zapLogger.With(zap.Int("consumer", i)))
		indexers[i].Start()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down indexer...")
	for _, indexer := range indexers {
		indexer.Stop()
	}
	zapLogger.Info("indexer exiting")
}
