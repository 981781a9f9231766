package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Lease      LeaseConfig      `yaml:"lease"`
	Assignment AssignmentConfig `yaml:"assignment"`
	Consensus  ConsensusConfig  `yaml:"consensus"`
	Moderation ModerationConfig `yaml:"moderation"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout is set per session; zero leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"actas-backend"`
	// TxRetries reruns a transaction aborted by a deadlock or serialization failure.
	TxRetries int `yaml:"tx_retries" env:"DATABASE_TX_RETRIES" env-default:"3"`
}

// AuthConfig describes the tokens issued by the external identity provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"actas-identity"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for the public API.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// LeaseConfig holds the lease duration and the refresh low-water mark.
type LeaseConfig struct {
	Duration     time.Duration `yaml:"duration"      env:"LEASE_DURATION"      env-default:"10m"`
	RefreshBelow time.Duration `yaml:"refresh_below" env:"LEASE_REFRESH_BELOW" env-default:"2m"`
}

// AssignmentConfig holds work-assignment settings.
type AssignmentConfig struct {
	// MaxAttempts bounds select-then-acquire retries under contention.
	MaxAttempts int `yaml:"max_attempts" env:"ASSIGNMENT_MAX_ATTEMPTS" env-default:"5"`
}

// ConsensusConfig holds quorum rules.
type ConsensusConfig struct {
	Quorum             int `yaml:"quorum"              env:"CONSENSUS_QUORUM"              env-default:"3"`
	AgreementThreshold int `yaml:"agreement_threshold" env:"CONSENSUS_AGREEMENT_THRESHOLD" env-default:"2"`
}

// ModerationConfig holds the reputation thresholds.
type ModerationConfig struct {
	MinValidations   int           `yaml:"min_validations"    env:"MODERATION_MIN_VALIDATIONS"   env-default:"10"`
	GraceValidations int           `yaml:"grace_validations"  env:"MODERATION_GRACE_VALIDATIONS" env-default:"0"`
	WarnBelow        int           `yaml:"warn_below"         env:"MODERATION_WARN_BELOW"        env-default:"70"`
	RestrictBelow    int           `yaml:"restrict_below"     env:"MODERATION_RESTRICT_BELOW"    env-default:"50"`
	BanBelow         int           `yaml:"ban_below"          env:"MODERATION_BAN_BELOW"         env-default:"30"`
	DedupWindow      time.Duration `yaml:"dedup_window"       env:"MODERATION_DEDUP_WINDOW"      env-default:"5s"`
}
