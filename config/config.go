package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Marketplace
	Marketplace MarketplaceConfig
	Storage     StorageConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Events      EventsConfig
	Metadata    MetadataConfig

	// Edge
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// MarketplaceConfig holds the fixed owner identity. It never changes while the
// process runs.
type MarketplaceConfig struct {
	Owner string
}

type StorageConfig struct {
	Driver string // memory | postgres
}

type PostgresConfig struct {
	DSN         string
	MaxConns    int32
	AutoMigrate bool
}

type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	Stream        string
	ConsumerGroup string
}

type EventsConfig struct {
	BufferSize int
	Recent     int
}

type MetadataConfig struct {
	Driver    string // disk | http
	Dir       string
	PublicURL string
	UploadURL string
	MaxBytes  int64
}

type AuthConfig struct {
	JWTSecret   string
	Issuer      string
	TrustHeader bool
}

type RateLimitConfig struct {
	PerMin int
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	MetadataDisk = "disk"
	MetadataHTTP = "http"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Marketplace
	cfg.Marketplace.Owner = viper.GetString("marketplace.owner")
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.AutoMigrate = viper.GetBool("postgres.auto_migrate")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Stream = viper.GetString("redis.stream")
	cfg.Redis.ConsumerGroup = viper.GetString("redis.consumer_group")

	cfg.Events.BufferSize = viper.GetInt("events.buffer_size")
	cfg.Events.Recent = viper.GetInt("events.recent")

	cfg.Metadata.Driver = strings.ToLower(viper.GetString("metadata.driver"))
	cfg.Metadata.Dir = viper.GetString("metadata.dir")
	cfg.Metadata.PublicURL = viper.GetString("metadata.public_url")
	cfg.Metadata.UploadURL = viper.GetString("metadata.upload_url")
	cfg.Metadata.MaxBytes = viper.GetInt64("metadata.max_bytes")

	// Edge
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.Issuer = viper.GetString("auth.issuer")
	cfg.Auth.TrustHeader = viper.GetBool("auth.trust_header")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have no safe default.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Marketplace.Owner) == "" {
		errs = append(errs, errors.New("marketplace.owner is required"))
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("postgres.dsn is required when storage.driver is postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}

	switch c.Metadata.Driver {
	case MetadataDisk:
		if c.Metadata.Dir == "" {
			errs = append(errs, errors.New("metadata.dir is required when metadata.driver is disk"))
		}
	case MetadataHTTP:
		if c.Metadata.UploadURL == "" {
			errs = append(errs, errors.New("metadata.upload_url is required when metadata.driver is http"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown metadata.driver %q", c.Metadata.Driver))
	}

	if !c.Auth.TrustHeader && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required unless auth.trust_header is enabled"))
	}
	if c.Events.BufferSize <= 0 {
		errs = append(errs, errors.New("events.buffer_size must be positive"))
	}

	return errors.Join(errs...)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", StorageMemory)
	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.auto_migrate", true)
	viper.SetDefault("redis.stream", "marketplace:events")
	viper.SetDefault("redis.consumer_group", "marketplace-notifier")
	viper.SetDefault("events.buffer_size", 256)
	viper.SetDefault("events.recent", 100)

	viper.SetDefault("metadata.driver", MetadataDisk)
	viper.SetDefault("metadata.dir", "uploads")
	viper.SetDefault("metadata.public_url", "http://localhost:8080")
	viper.SetDefault("metadata.max_bytes", 10<<20)

	viper.SetDefault("auth.issuer", "escrow-marketplace")
	viper.SetDefault("auth.trust_header", false)
	viper.SetDefault("rate_limit.per_min", 60)
}
