package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (intervals, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	CORS     CORSConfig
	Log      LogConfig
	Delivery DeliveryConfig
	SMTP     SMTPConfig
	Provider ProviderConfig
	Callback CallbackConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type KafkaConfig struct {
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"platform-events"`
	GroupID string   `envconfig:"KAFKA_GROUP_ID" default:"notification-engine"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Tenant-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// DeliveryConfig holds the scheduler and retry knobs of the engine.
type DeliveryConfig struct {
	BatchInterval time.Duration `envconfig:"DELIVERY_BATCH_INTERVAL" default:"30s"`
	BatchSize     int32         `envconfig:"DELIVERY_BATCH_SIZE" default:"100"`
	Workers       int           `envconfig:"DELIVERY_WORKERS" default:"8"`
	RetentionDays int           `envconfig:"DELIVERY_RETENTION_DAYS" default:"30"`
	SweepInterval time.Duration `envconfig:"DELIVERY_SWEEP_INTERVAL" default:"24h"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"noreply@example.com"`
}

// ProviderConfig points the push/sms/webhook senders at their providers.
type ProviderConfig struct {
	PushEndpoint string        `envconfig:"PROVIDER_PUSH_ENDPOINT" default:""`
	PushAPIKey   string        `envconfig:"PROVIDER_PUSH_API_KEY" default:""`
	SMSEndpoint  string        `envconfig:"PROVIDER_SMS_ENDPOINT" default:""`
	SMSAPIKey    string        `envconfig:"PROVIDER_SMS_API_KEY" default:""`
	HTTPTimeout  time.Duration `envconfig:"PROVIDER_HTTP_TIMEOUT" default:"10s"`
}

// CallbackConfig secures the delivery feedback endpoint. When Secret is empty
// the signature check is skipped.
type CallbackConfig struct {
	Secret string `envconfig:"CALLBACK_JWT_SECRET" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Delivery: DeliveryConfig{
			BatchInterval: time.Second,
			BatchSize:     10,
			Workers:       2,
			RetentionDays: 30,
			SweepInterval: time.Hour,
		},
	}
}
