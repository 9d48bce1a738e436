package main

import (
	"Config_Service_Microservice/internal/config-service/api/handler"
	"Config_Service_Microservice/internal/config-service/api/routes"
	"Config_Service_Microservice/internal/config-service/config"
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/monitor"
	"Config_Service_Microservice/internal/config-service/notification"
	"Config_Service_Microservice/internal/config-service/repository"
	"Config_Service_Microservice/internal/config-service/service"
	"Config_Service_Microservice/pkg/infra"
	"Config_Service_Microservice/pkg/logger"
	"Config_Service_Microservice/pkg/mail"
	"Config_Service_Microservice/pkg/middleware"
	"Config_Service_Microservice/pkg/secret"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const serviceName = "config-service"

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer, serviceName)
	defer zapLogger.Sync()
	stopReload := logger.ReloadOnSignal(zapLogger, fileSyncer)
	defer stopReload()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:         appConfig.Postgres.Host,
		Port:         appConfig.Postgres.Port,
		User:         appConfig.Postgres.User,
		Password:     appConfig.Postgres.Password,
		DBName:       appConfig.Postgres.DBName,
		MaxOpenConns: appConfig.Postgres.MaxOpenConns,
		MaxIdleConns: appConfig.Postgres.MaxIdleConns,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()
	if appConfig.Server.AutoMigrate {
		err = db.AutoMigrate(&model.ServiceEntry{}, &model.Configuration{}, &model.ConfigurationHistory{}, &model.FeatureFlag{})
		if err != nil {
			zapLogger.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host:     appConfig.Redis.Host,
		Port:     appConfig.Redis.Port,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	// set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}
	esCtx, esCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = infra.EnsureIndex(esCtx, esClient, repository.HealthCheckIndexName, repository.HealthCheckIndexMapping)
	esCancel()
	if err != nil {
		zapLogger.Fatal("failed to create health check index", zap.Error(err))
	}

	// set up kafka
	publisher := notification.NewKafkaPublisher(infra.NewKafkaWriter(appConfig.Kafka.Brokers),
		appConfig.Kafka.WriteTimeout, appConfig.Kafka.PublishBufferSize, zapLogger.With(zap.String("component", "publisher")))

	var box secret.Box
	if appConfig.Encryption.Enabled {
		box, err = secret.NewBox(appConfig.Encryption.Key)
		if err != nil {
			zapLogger.Fatal("failed to set up value encryption", zap.Error(err))
		}
	}

	// set up dependencies
	serviceRepo := repository.NewServiceRepository(db)
	configRepo := repository.NewConfigurationRepository(db)
	flagRepo := repository.NewFeatureFlagRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient)
	healthCheckRepo := repository.NewHealthCheckRepository(esClient)
	mailSender := mail.NewMailSender(mail.Config{
		Email:    appConfig.Mail.Email,
		Password: appConfig.Mail.Password,
		Host:     appConfig.Mail.Host,
		Port:     appConfig.Mail.Port,
	})

	registryService := service.NewRegistryService(serviceRepo, cacheRepo, healthCheckRepo, publisher, mailSender, service.RegistryOptions{
		RegistryTopic:      appConfig.Kafka.TopicServiceRegistryUpdate,
		ServiceInfoTTL:     appConfig.Cache.ServiceInfoTTL,
		HealthyServicesTTL: appConfig.Cache.HealthyServicesTTL,
		InstanceTTL:        appConfig.Cache.ServiceRegistryTTL,
	}, zapLogger.With(zap.String("component", "registry")))
	configurationService := service.NewConfigurationService(configRepo, cacheRepo, publisher, box, service.ConfigurationOptions{
		ConfigTopic: appConfig.Kafka.TopicConfigUpdates,
		CacheTTL:    appConfig.Cache.ConfigTTL,
	}, zapLogger.With(zap.String("component", "configuration")))
	featureFlagService := service.NewFeatureFlagService(flagRepo, cacheRepo, publisher, service.FeatureFlagOptions{
		FeatureFlagTopic: appConfig.Kafka.TopicFeatureFlagUpdates,
		CacheTTL:         appConfig.Cache.FeatureFlagTTL,
	}, zapLogger.With(zap.String("component", "feature_flag")))

	healthCheckTopic := ""
	if appConfig.HealthMonitor.PublishHealthCheckLogs {
		healthCheckTopic = appConfig.Kafka.TopicHealthChecks
	}
	healthMonitor := monitor.NewMonitor(registryService, monitor.NewHTTPProber(appConfig.HealthMonitor.ProbeTimeout), publisher, monitor.Options{
		Interval:            appConfig.HealthMonitor.Interval,
		StartupDelay:        appConfig.HealthMonitor.StartupDelay,
		MaxConcurrentProbes: appConfig.HealthMonitor.MaxConcurrentProbes,
		Target: monitor.TargetOptions{
			DefaultPath:          appConfig.HealthMonitor.DefaultPath,
			PathOverrides:        appConfig.HealthMonitor.PathOverrides,
			DeriveFromServiceURL: appConfig.HealthMonitor.DeriveFromServiceURL,
		},
		HealthCheckTopic: healthCheckTopic,
	}, zapLogger)
	if appConfig.HealthMonitor.Enabled {
		healthMonitor.Start()
	}

	m := middleware.NewAuthMiddleware(middleware.AuthConfig{
		Enabled:            appConfig.Auth.Enabled,
		AllowAnonymousRead: appConfig.Auth.AllowAnonymousAccess,
		APIKeys:            appConfig.Auth.APIKeys,
		AdminNames:         appConfig.Auth.AdminKeyNames,
		TokenSecret:        appConfig.Auth.JWTSecret,
	})

	// Create cronjob for daily report
	cronJob := cron.New()
	if appConfig.Server.DailyReportEnable {
		_, err = cronJob.AddFunc(appConfig.Server.DailyReportCron, func() {
			ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
			zapLogger.Info("cronjob called")
			e := registryService.ReportRegistryHealth(ctx2, time.Now().Add(-time.Hour*24), time.Now(), appConfig.Mail.AdminMailAddress)
			cancel2()
			if e != nil {
				zapLogger.Error("failed to generate daily report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
		}
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddRegistryRoutes(r, handler.NewRegistryHandler(zapLogger, registryService), m)
	routes.AddConfigurationRoutes(r, handler.NewConfigurationHandler(zapLogger, configurationService), m)
	routes.AddFeatureFlagRoutes(r, handler.NewFeatureFlagHandler(zapLogger, featureFlagService), m)
	routes.AddHealthRoutes(r, handler.NewHealthHandler(zapLogger, serviceName,
		handler.HealthCheck{Name: "postgres", Critical: true, Check: sqlDB.PingContext},
		handler.HealthCheck{Name: "redis", Critical: true, Check: cacheRepo.Ping},
		handler.HealthCheck{Name: "kafka", Check: func(ctx context.Context) error {
			return infra.PingKafka(ctx, appConfig.Kafka.Brokers)
		}},
		handler.HealthCheck{Name: "health_monitor", Check: handler.MonitorCheck(healthMonitor)},
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	healthMonitor.Stop()
	<-cronJob.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	if err = publisher.Close(); err != nil {
		zapLogger.Error("failed to close kafka publisher", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
