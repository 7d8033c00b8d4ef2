package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	Translate TranslateConfig `yaml:"translate"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
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

// LexiconConfig describes where the bilingual lexicon is read from.
type LexiconConfig struct {
	Path           string `yaml:"path"             env:"LEXICON_PATH"             env-default:"./data/lexicon.csv"`
	SourceColumn   string `yaml:"source_column"    env:"LEXICON_SOURCE_COLUMN"    env-default:"kurukh"`
	TargetColumn   string `yaml:"target_column"    env:"LEXICON_TARGET_COLUMN"    env-default:"hindi"`
	Delimiter      string `yaml:"delimiter"        env:"LEXICON_DELIMITER"        env-default:","`
	ReloadOnSIGHUP bool   `yaml:"reload_on_sighup" env:"LEXICON_RELOAD_ON_SIGHUP"`

	// Comma is parsed from Delimiter during validation.
	Comma rune `yaml:"-" env:"-"`
}

// TranslateConfig holds request limits for the translation endpoints.
type TranslateConfig struct {
	MaxTextLength int `yaml:"max_text_length" env:"TRANSLATE_MAX_TEXT_LENGTH" env-default:"10000"`
	MaxBatchSize  int `yaml:"max_batch_size"  env:"TRANSLATE_MAX_BATCH_SIZE"  env-default:"100"`
	BatchWorkers  int `yaml:"batch_workers"   env:"TRANSLATE_BATCH_WORKERS"   env-default:"4"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP rate limiting settings. RequestsPerMinute = 0 disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// newDefault returns a Config holding the defaults of fields whose zero value
// is meaningful (false, 0). cleanenv fills env-default only into zero fields,
// so those defaults must be set before the YAML and ENV are read.
func newDefault() Config {
	return Config{
		Lexicon:   LexiconConfig{ReloadOnSIGHUP: true},
		CORS:      CORSConfig{AllowCredentials: true},
		RateLimit: RateLimitConfig{RequestsPerMinute: 600},
	}
}

// Enabled reports whether rate limiting should be applied.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerMinute > 0
}
