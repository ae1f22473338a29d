package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Import     ImportConfig     `yaml:"import"`
	Oracle     OracleConfig     `yaml:"oracle"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// EnrichmentConfig holds pipeline settings.
type EnrichmentConfig struct {
	// BatchSize bounds both batch chunking and in-flight concurrency
	// during a batch pass.
	BatchSize int `yaml:"batch_size" env:"ENRICHMENT_BATCH_SIZE" env-default:"5"`
	// BatchDelay separates consecutive batches so external oracles
	// are not hammered.
	BatchDelay    time.Duration `yaml:"batch_delay"    env:"ENRICHMENT_BATCH_DELAY"    env-default:"1s"`
	OracleTimeout time.Duration `yaml:"oracle_timeout" env:"ENRICHMENT_ORACLE_TIMEOUT" env-default:"10s"`
	MaxBatchWords int           `yaml:"max_batch_words" env:"ENRICHMENT_MAX_BATCH_WORDS" env-default:"500"`
}

// ImportConfig holds CSV import settings.
type ImportConfig struct {
	ChunkSize int `yaml:"chunk_size" env:"IMPORT_CHUNK_SIZE" env-default:"50"`
	MaxRows   int `yaml:"max_rows"   env:"IMPORT_MAX_ROWS"   env-default:"10000"`
}

// OracleConfig holds external oracle settings. Every oracle is
// optional; empty credentials disable the corresponding adapter.
type OracleConfig struct {
	FreeDictBaseURL string `yaml:"freedict_base_url" env:"ORACLE_FREEDICT_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	FreeDictEnabled bool   `yaml:"freedict_enabled"  env:"ORACLE_FREEDICT_ENABLED"  env-default:"true"`

	LLMAPIKey    string `yaml:"llm_api_key"    env:"ORACLE_LLM_API_KEY"`
	LLMModel     string `yaml:"llm_model"      env:"ORACLE_LLM_MODEL"      env-default:"claude-3-5-haiku-latest"`
	LLMMaxTokens int64  `yaml:"llm_max_tokens" env:"ORACLE_LLM_MAX_TOKENS" env-default:"1024"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LLMEnabled reports whether the LLM oracle is configured.
func (c OracleConfig) LLMEnabled() bool {
	return c.LLMAPIKey != ""
}
