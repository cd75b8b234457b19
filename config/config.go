package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"venuely"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Auth struct {
		SiteURL                   string `envconfig:"SITE_URL"`
		RequireEmailConfirmation  bool   `envconfig:"REQUIRE_EMAIL_CONFIRMATION"`
		RoleResolveTimeoutSeconds int    `envconfig:"ROLE_RESOLVE_TIMEOUT_SECONDS" default:"5"`
		VerificationTTLMinutes    int    `envconfig:"VERIFICATION_TTL_MINUTES"     default:"1440"`
	} `envconfig:"AUTH"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry           int          `envconfig:"MAX_RETRY"             default:"5"`
			RetryWaitTime      int          `envconfig:"RETRY_WAIT_TIME"       default:"2"`
			MaxOpenConns       int          `envconfig:"MAX_OPEN_CONNS"        default:"10"`
			MaxIdleConns       int          `envconfig:"MAX_IDLE_CONNS"        default:"10"`
			ConnMaxLifetimeMin int          `envconfig:"CONN_MAX_LIFETIME_MIN" default:"30"`
			MigrationTable     string       `envconfig:"MIGRATION_TABLE"`
			AutoMigrate        bool         `envconfig:"AUTO_MIGRATE"`
			Prefix             string       `envconfig:"PREFIX"`
			Read               PostgresNode `envconfig:"READ"`
			Write              PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			Changes string `envconfig:"CHANGES" default:"venuely.changes"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			MaxImageSizeMB  int    `envconfig:"MAX_IMAGE_SIZE_MB" default:"10"`
			MaxVideoSizeMB  int    `envconfig:"MAX_VIDEO_SIZE_MB" default:"50"`
		} `envconfig:"S3"`
		Recommendation struct {
			BaseURL        string `envconfig:"BASE_URL"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		} `envconfig:"RECOMMENDATION"`
	}
}

var (
	conf    Config
	once    sync.Once
	loadErr error
)

// Load reads .env when present, then the process environment. It runs once per process.
func Load() error {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Msg("failed to read .env, using process environment only")
		}

		if err := envconfig.Process("", &conf); err != nil {
			loadErr = fmt.Errorf("processing environment: %w", err)

			return
		}

		log.Debug().Str("env", conf.Server.Env).Msg("configuration loaded")
	})

	return loadErr
}

// Get returns the process configuration, exiting when the environment cannot be parsed.
func Get() *Config {
	if err := Load(); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	return &conf
}

// PostgresNode addresses one side of the read/write split.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}
