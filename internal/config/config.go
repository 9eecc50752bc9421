package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Values come from a YAML
// file, are overridden by environment variables and fall back to the
// env-default tags.
type Config struct {
	// Environment is either development or production.
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	HTTP struct {
		// Addr is the address and port the HTTP server listens on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the keep-alive idle timeout
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes limits request header size, zero keeps the net/http default
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath is where Prometheus metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists allowed origins, empty allows any
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
	} `yaml:"http"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME" env-default:"matchup" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD" env-default:"matchup" yaml:"password"`
		Host               string        `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME" env-default:"matchup" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	JWT struct {
		// PrivateKey is the PEM encoded RSA key used to sign and verify access tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// TTL is the lifetime of issued access tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"60m" yaml:"ttl"`
		// Issuer is written to and required from the iss claim when set
		Issuer string `env:"JWT_ISSUER" env-default:"matchup" yaml:"issuer"`
	} `yaml:"jwt"`

	Auth struct {
		// BcryptCost is the bcrypt work factor for password hashes
		BcryptCost int `env:"AUTH_BCRYPT_COST" env-default:"12" yaml:"bcryptCost"`
	} `yaml:"auth"`

	Photos struct {
		// Dir is where photo blobs are written
		Dir string `env:"PHOTOS_DIR" env-default:"./data/photos" yaml:"dir"`
		// PublicBaseURL prefixes photo keys to build photo_url values
		PublicBaseURL string `env:"PHOTOS_PUBLIC_BASE_URL" env-default:"http://localhost:8080/photos" yaml:"publicBaseURL"`
		// MaxBytes limits the size of a single upload
		MaxBytes int64 `env:"PHOTOS_MAX_BYTES" env-default:"5242880" yaml:"maxBytes"`
		// MaxPerUser limits how many photos a user may keep
		MaxPerUser int64 `env:"PHOTOS_MAX_PER_USER" env-default:"6" yaml:"maxPerUser"`
	} `yaml:"photos"`

	Match struct {
		// BrowseDefaultLimit is used when browse is called without a limit
		BrowseDefaultLimit uint `env:"MATCH_BROWSE_DEFAULT_LIMIT" env-default:"10" yaml:"browseDefaultLimit"`
		// BrowseMaxLimit caps the browse limit
		BrowseMaxLimit uint `env:"MATCH_BROWSE_MAX_LIMIT" env-default:"100" yaml:"browseMaxLimit"`
	} `yaml:"match"`

	Message struct {
		// ConversationDefaultLimit is used when a conversation is read without a limit
		ConversationDefaultLimit uint `env:"MESSAGE_CONVERSATION_DEFAULT_LIMIT" env-default:"50" yaml:"conversationDefaultLimit"` //nolint: lll
		// ConversationMaxLimit caps the conversation page size
		ConversationMaxLimit uint `env:"MESSAGE_CONVERSATION_MAX_LIMIT" env-default:"100" yaml:"conversationMaxLimit"`
	} `yaml:"message"`

	Tracing struct {
		// SampleRatio is the fraction of requests traced, between 0 and 1
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	Worker struct {
		// MaxWorkers is the number of concurrent jobs per queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests and jobs during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the YAML file at configPath, applies environment overrides and
// returns the resulting Config. An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
