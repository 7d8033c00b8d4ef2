package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

lexicon:
  path: "/srv/data/kurukh_hindi.tsv"
  source_column: "surface"
  target_column: "translation"
  delimiter: "\\t"
  reload_on_sighup: false

translate:
  max_text_length: 500
  max_batch_size: 20
  batch_workers: 2

log:
  level: "debug"
  format: "text"

rate_limit:
  requests_per_minute: 120
  cleanup_interval: "1m"
`

// validConfig returns a Config that passes validation.
func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Lexicon: LexiconConfig{
			Path:         "./data/lexicon.csv",
			SourceColumn: "kurukh",
			TargetColumn: "hindi",
			Delimiter:    ",",
		},
		Translate: TranslateConfig{
			MaxTextLength: 10000,
			MaxBatchSize:  100,
			BatchWorkers:  4,
		},
		RateLimit: RateLimitConfig{RequestsPerMinute: 600, CleanupInterval: 5 * time.Minute},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Lexicon
	if cfg.Lexicon.Path != "/srv/data/kurukh_hindi.tsv" {
		t.Errorf("lexicon.path = %q", cfg.Lexicon.Path)
	}
	if cfg.Lexicon.SourceColumn != "surface" || cfg.Lexicon.TargetColumn != "translation" {
		t.Errorf("lexicon columns = %q/%q", cfg.Lexicon.SourceColumn, cfg.Lexicon.TargetColumn)
	}
	if cfg.Lexicon.Comma != '\t' {
		t.Errorf("lexicon.Comma = %q, want tab", cfg.Lexicon.Comma)
	}
	if cfg.Lexicon.ReloadOnSIGHUP {
		t.Error("lexicon.reload_on_sighup should be false")
	}

	// Translate
	if cfg.Translate.MaxTextLength != 500 {
		t.Errorf("translate.max_text_length = %d, want 500", cfg.Translate.MaxTextLength)
	}
	if cfg.Translate.MaxBatchSize != 20 {
		t.Errorf("translate.max_batch_size = %d, want 20", cfg.Translate.MaxBatchSize)
	}
	if cfg.Translate.BatchWorkers != 2 {
		t.Errorf("translate.batch_workers = %d, want 2", cfg.Translate.BatchWorkers)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// Rate limit
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("rate_limit.requests_per_minute = %d, want 120", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.RateLimit.CleanupInterval != time.Minute {
		t.Errorf("rate_limit.cleanup_interval = %v, want 1m", cfg.RateLimit.CleanupInterval)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LEXICON_PATH", "/tmp/override.csv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Lexicon.Path != "/tmp/override.csv" {
		t.Errorf("lexicon.path = %q, want %q (ENV override)", cfg.Lexicon.Path, "/tmp/override.csv")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Lexicon.Path != "./data/lexicon.csv" {
		t.Errorf("lexicon.path = %q, want default", cfg.Lexicon.Path)
	}
	if cfg.Lexicon.SourceColumn != "kurukh" || cfg.Lexicon.TargetColumn != "hindi" {
		t.Errorf("lexicon columns = %q/%q, want kurukh/hindi", cfg.Lexicon.SourceColumn, cfg.Lexicon.TargetColumn)
	}
	if cfg.Lexicon.Comma != ',' {
		t.Errorf("lexicon.Comma = %q, want ','", cfg.Lexicon.Comma)
	}
	if cfg.CORS.AllowedOrigins != "*" {
		t.Errorf("cors.allowed_origins = %q, want *", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Lexicon.ReloadOnSIGHUP {
		t.Error("lexicon.reload_on_sighup should default to true")
	}
	if !cfg.CORS.AllowCredentials {
		t.Error("cors.allow_credentials should default to true")
	}
	if cfg.RateLimit.RequestsPerMinute != 600 || !cfg.RateLimit.Enabled() {
		t.Errorf("rate_limit.requests_per_minute = %d, want 600 (enabled)", cfg.RateLimit.RequestsPerMinute)
	}
}

func TestLoad_ExplicitZeroValuesKept(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `
lexicon:
  reload_on_sighup: false
cors:
  allow_credentials: false
rate_limit:
  requests_per_minute: 0
`)

	cfg, err := LoadFrom(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Lexicon.ReloadOnSIGHUP {
		t.Error("lexicon.reload_on_sighup = true, want false from YAML")
	}
	if cfg.CORS.AllowCredentials {
		t.Error("cors.allow_credentials = true, want false from YAML")
	}
	if cfg.RateLimit.RequestsPerMinute != 0 {
		t.Errorf("rate_limit.requests_per_minute = %d, want 0 from YAML", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.RateLimit.Enabled() {
		t.Error("rate limiting should be disabled when requests_per_minute is 0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
}

func TestLoad_ENVCanDisableSIGHUPAndRateLimit(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LEXICON_RELOAD_ON_SIGHUP", "false")
	t.Setenv("RATE_LIMIT_RPM", "0")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Lexicon.ReloadOnSIGHUP {
		t.Error("lexicon.reload_on_sighup = true, want false from ENV")
	}
	if cfg.RateLimit.Enabled() {
		t.Error("rate limiting should be disabled by RATE_LIMIT_RPM=0")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Lexicon.Comma != ',' {
		t.Errorf("Comma = %q, want ','", cfg.Lexicon.Comma)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty lexicon path", func(c *Config) { c.Lexicon.Path = "  " }},
		{"empty source column", func(c *Config) { c.Lexicon.SourceColumn = "" }},
		{"empty target column", func(c *Config) { c.Lexicon.TargetColumn = "" }},
		{"multi-char delimiter", func(c *Config) { c.Lexicon.Delimiter = ";;" }},
		{"quote delimiter", func(c *Config) { c.Lexicon.Delimiter = `"` }},
		{"zero max text length", func(c *Config) { c.Translate.MaxTextLength = 0 }},
		{"zero batch size", func(c *Config) { c.Translate.MaxBatchSize = 0 }},
		{"negative workers", func(c *Config) { c.Translate.BatchWorkers = -1 }},
		{"negative rpm", func(c *Config) { c.RateLimit.RequestsPerMinute = -5 }},
		{"zero cleanup interval", func(c *Config) { c.RateLimit.CleanupInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_RateLimitDisabledIgnoresCleanup(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit = RateLimitConfig{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RateLimit.Enabled() {
		t.Error("rate limit should be disabled")
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		raw     string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{"|", '|', false},
		{`\t`, '\t', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"", 0, true},
		{",,", 0, true},
		{"\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDelimiter(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDelimiter(%q) expected error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDelimiter(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
