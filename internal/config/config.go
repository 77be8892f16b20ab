package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Journal  JournalConfig  `yaml:"journal"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token verification settings.
//
// Tokens are issued by the external auth service; this service only verifies
// them. AllowUserIDHeader enables the trusted X-User-Id fallback for
// internal-network deployments and must stay off everywhere else.
type AuthConfig struct {
	JWTSecret         string `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	AllowUserIDHeader bool   `yaml:"allow_user_id_header" env:"AUTH_ALLOW_USER_ID_HEADER" env-default:"false"`
}

// JournalConfig holds journal service settings.
type JournalConfig struct {
	MaxContentBytes  int `yaml:"max_content_bytes"  env:"JOURNAL_MAX_CONTENT_BYTES"  env-default:"51200"`
	MaxMoodLen       int `yaml:"max_mood_len"       env:"JOURNAL_MAX_MOOD_LEN"       env-default:"50"`
	MaxMoodNoteLen   int `yaml:"max_mood_note_len"  env:"JOURNAL_MAX_MOOD_NOTE_LEN"  env-default:"100"`
	StreakWindowDays int `yaml:"streak_window_days" env:"JOURNAL_STREAK_WINDOW_DAYS" env-default:"400"`
	MaxRecentLimit   int `yaml:"max_recent_limit"   env:"JOURNAL_MAX_RECENT_LIMIT"   env-default:"100"`
	DefaultPageSize  int `yaml:"default_page_size"  env:"JOURNAL_DEFAULT_PAGE_SIZE"  env-default:"20"`
}

// KafkaConfig holds event publishing settings.
// An empty Brokers list disables publishing entirely.
type KafkaConfig struct {
	Brokers        string        `yaml:"brokers"         env:"KAFKA_BROKERS"         env-default:""`
	Topic          string        `yaml:"topic"           env:"KAFKA_TOPIC"           env-default:"journal.entry.created"`
	PublishTimeout time.Duration `yaml:"publish_timeout" env:"KAFKA_PUBLISH_TIMEOUT" env-default:"2s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
