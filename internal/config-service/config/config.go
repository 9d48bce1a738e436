package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
	Mail          MailConfig
	Auth          AuthConfig
	Encryption    EncryptionConfig
	Cache         CacheConfig
	HealthMonitor HealthMonitorConfig
}

type ServerConfig struct {
	Port              string `envconfig:"SERVER_PORT" default:"8082"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile           string `envconfig:"LOG_FILE" default:"./log/config-service.log"`
	Environment       string `envconfig:"ENVIRONMENT" default:"development"`
	AutoMigrate       bool   `envconfig:"AUTO_MIGRATE" default:"true"`
	DailyReportCron   string `envconfig:"DAILY_REPORT_CRON" default:"0 0 * * *"`
	DailyReportEnable bool   `envconfig:"DAILY_REPORT_ENABLED" default:"false"`
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST" required:"true"`
	Port         int    `envconfig:"POSTGRES_PORT" required:"true"`
	User         string `envconfig:"POSTGRES_USER" required:"true"`
	Password     string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName       string `envconfig:"POSTGRES_DB" required:"true"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" required:"true"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	Brokers                    []string      `envconfig:"KAFKA_BROKERS" required:"true"`
	TopicConfigUpdates         string        `envconfig:"KAFKA_TOPIC_CONFIG_UPDATES" default:"config-updates"`
	TopicFeatureFlagUpdates    string        `envconfig:"KAFKA_TOPIC_FEATURE_FLAG_UPDATES" default:"feature-flag-updates"`
	TopicServiceRegistryUpdate string        `envconfig:"KAFKA_TOPIC_SERVICE_REGISTRY_UPDATES" default:"service-registry-updates"`
	TopicHealthChecks          string        `envconfig:"KAFKA_TOPIC_HEALTH_CHECKS" default:"service-health-checks"`
	WriteTimeout               time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
	PublishBufferSize          int           `envconfig:"KAFKA_PUBLISH_BUFFER_SIZE" default:"1024"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL"`
	Password         string `envconfig:"MAIL_PASSWORD"`
	Host             string `envconfig:"MAIL_HOST"`
	Port             int    `envconfig:"MAIL_PORT" default:"587"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL"`
}

type AuthConfig struct {
	Enabled              bool              `envconfig:"AUTH_ENABLED" default:"true"`
	AllowAnonymousAccess bool              `envconfig:"ALLOW_ANONYMOUS_ACCESS" default:"true"`
	APIKeys              map[string]string `envconfig:"API_KEYS"`
	AdminKeyNames        []string          `envconfig:"ADMIN_KEY_NAMES" default:"admin"`
	JWTSecret            string            `envconfig:"JWT_SECRET"`
}

type EncryptionConfig struct {
	Enabled bool   `envconfig:"ENCRYPTION_ENABLED" default:"false"`
	Key     string `envconfig:"ENCRYPTION_KEY"`
}

type CacheConfig struct {
	ConfigTTL          time.Duration `envconfig:"CONFIG_CACHE_TTL" default:"5m"`
	FeatureFlagTTL     time.Duration `envconfig:"FEATURE_FLAG_CACHE_TTL" default:"5m"`
	ServiceInfoTTL     time.Duration `envconfig:"SERVICE_INFO_CACHE_TTL" default:"5m"`
	HealthyServicesTTL time.Duration `envconfig:"HEALTHY_SERVICES_CACHE_TTL" default:"30s"`
	ServiceRegistryTTL time.Duration `envconfig:"SERVICE_REGISTRY_TTL" default:"5m"`
}

type HealthMonitorConfig struct {
	Enabled                bool              `envconfig:"HEALTH_MONITOR_ENABLED" default:"true"`
	Interval               time.Duration     `envconfig:"HEALTH_MONITOR_INTERVAL" default:"30s"`
	StartupDelay           time.Duration     `envconfig:"HEALTH_MONITOR_STARTUP_DELAY" default:"10s"`
	ProbeTimeout           time.Duration     `envconfig:"PROBE_TIMEOUT" default:"5s"`
	MaxConcurrentProbes    int               `envconfig:"HEALTH_MONITOR_MAX_CONCURRENT_PROBES" default:"100"`
	DefaultPath            string            `envconfig:"PROBE_DEFAULT_PATH" default:"/health"`
	PathOverrides          map[string]string `envconfig:"PROBE_PATH_OVERRIDES" default:"asr-service:/api/v1/asr/health,nmt-service:/api/v1/nmt/health"`
	DeriveFromServiceURL   bool              `envconfig:"PROBE_DERIVE_FROM_SERVICE_URL" default:"true"`
	PublishHealthCheckLogs bool              `envconfig:"HEALTH_MONITOR_PUBLISH_CHECKS" default:"true"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
