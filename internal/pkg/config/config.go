package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type (
	Tasks struct {
		StatsRefreshInterval time.Duration `env:"BACKGROUND_STATS_REFRESH_INTERVAL" envDefault:"30s"`
	}

	HTTPServer struct {
		Port             string        `env:"PORT"`
		RequestTimeout   time.Duration `env:"MIDDLEWARE_REQUEST_TIMEOUT"`  // middleware timeout
		RateLimiterQPS   int           `env:"MIDDLEWARE_RATE_LIMIT_QPS"`   // middleware rate limiter refill
		RateLimiterBurst int           `env:"MIDDLEWARE_RATE_LIMIT_BURST"` // middleware rate limiter capacity
		PprofEnabled     bool          `env:"PPROF_ENABLED"`
		PprofPort        string        `env:"PPROF_PORT"`
	}

	Database struct {
		URL      string `env:"DATABASE_URL"`
		Host     string `env:"POSTGRES_HOST"`
		Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
		User     string `env:"POSTGRES_USER"`
		Password string `env:"POSTGRES_PASSWORD"`
		DBName   string `env:"POSTGRES_DB"`
		SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

		MigrationsEnabled bool `env:"MIGRATIONS_ENABLED" envDefault:"true"`
		SeedEnabled       bool `env:"SEED_ENABLED" envDefault:"true"`
	}

	Kafka struct {
		PortHealthcheck string        `env:"KAFKA_HTTP_HEALTHCHECK_PORT"`
		Brokers         string        `env:"KAFKA_BROKERS"`
		Topic           string        `env:"KAFKA_TOPIC"`
		ConsumerGroup   string        `env:"KAFKA_CONSUMER_GROUP"`
		Sarama          Sarama        `envPrefix:"KAFKA_SARAMA_"`
		Handlers        KafkaHandlers `envPrefix:"KAFKA_HANDLER_"`
	}

	Sarama struct {
		Version                   string `env:"VERSION"`
		ConsumerOffsetsAutocommit bool   `env:"OFFSETS_AUTOCOMMIT" envDefault:"true"`
	}

	KafkaHandlers struct {
		DeliveryConfirmed DeliveryConfirmed `envPrefix:"DELIVERY_CONFIRMED_"`
	}

	DeliveryConfirmed struct {
		ProcessTimeout time.Duration `env:"PROCESS_TIMEOUT" envDefault:"5s"`
	}

	Config struct {
		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Kafka    Kafka
	}
)

// Load читает конфиг HTTP сервиса, блок Kafka не проверяется.
func Load() (*Config, error) {
	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	if err := validateServer(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := validateDatabase(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker читает конфиг kafka воркера: база и Kafka обязательны, HTTP нет.
func LoadWorker() (*Config, error) {
	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	if err := validateDatabase(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := validateKafka(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}
	return cfg, nil
}

// DSN DATABASE_URL имеет приоритет над POSTGRES_*.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
		d.SSLMode,
	)
}

func (k Kafka) BrokerList() []string {
	parts := strings.Split(k.Brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validateServer(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PPROF_PORT is required when PPROF_ENABLED is set")
	}
	if cfg.Tasks.StatsRefreshInterval <= 0 {
		return errors.New("BACKGROUND_STATS_REFRESH_INTERVAL must be positive")
	}
	return nil
}

func validateDatabase(cfg *Config) error {
	if cfg.Database.URL != "" {
		return nil
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	return nil
}

func validateKafka(cfg *Config) error {
	if len(cfg.Kafka.BrokerList()) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.DeliveryConfirmed.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_DELIVERY_CONFIRMED_PROCESS_TIMEOUT must be positive")
	}
	return nil
}
