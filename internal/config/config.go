package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	Delay      DelayConfig      `yaml:"delay"`
	Reschedule RescheduleConfig `yaml:"reschedule"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
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
	// StatementTimeout is sent as the session statement_timeout. Zero leaves
	// the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
}

// AuthConfig holds bearer token verification settings. Tokens are issued by
// the auth service and share its secret and issuer.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"studyplan"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DelayConfig holds the delay ratio thresholds of the severity bands.
type DelayConfig struct {
	LowThreshold    float64 `yaml:"low_threshold"    env:"DELAY_LOW_THRESHOLD"    env-default:"0.10"`
	MediumThreshold float64 `yaml:"medium_threshold" env:"DELAY_MEDIUM_THRESHOLD" env-default:"0.30"`
	HighThreshold   float64 `yaml:"high_threshold"   env:"DELAY_HIGH_THRESHOLD"   env-default:"0.50"`
}

// RescheduleConfig holds async reschedule job settings. SubmitsPerMinute
// limits job submissions and plan generation per student.
type RescheduleConfig struct {
	MaxConcurrentJobs int64         `yaml:"max_concurrent_jobs" env:"RESCHEDULE_MAX_CONCURRENT_JOBS" env-default:"4"`
	JobTimeout        time.Duration `yaml:"job_timeout"         env:"RESCHEDULE_JOB_TIMEOUT"         env-default:"5m"`
	StaleJobAfter     time.Duration `yaml:"stale_job_after"     env:"RESCHEDULE_STALE_JOB_AFTER"     env-default:"30m"`
	SubmitsPerMinute  int           `yaml:"submits_per_minute"  env:"RESCHEDULE_SUBMITS_PER_MINUTE"  env-default:"10"`
}

// SchedulerConfig holds review session sizing.
type SchedulerConfig struct {
	ReviewMinutesPercent int `yaml:"review_minutes_percent" env:"SCHEDULER_REVIEW_MINUTES_PERCENT" env-default:"50"`
	MinReviewMinutes     int `yaml:"min_review_minutes"     env:"SCHEDULER_MIN_REVIEW_MINUTES"     env-default:"15"`
}
