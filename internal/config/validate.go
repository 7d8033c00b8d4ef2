package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Lexicon.validate(); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}

	if err := c.Translate.validate(); err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.Enabled() && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (l *LexiconConfig) validate() error {
	if strings.TrimSpace(l.Path) == "" {
		return fmt.Errorf("path must not be empty")
	}
	if strings.TrimSpace(l.SourceColumn) == "" {
		return fmt.Errorf("source_column must not be empty")
	}
	if strings.TrimSpace(l.TargetColumn) == "" {
		return fmt.Errorf("target_column must not be empty")
	}

	comma, err := ParseDelimiter(l.Delimiter)
	if err != nil {
		return fmt.Errorf("delimiter: %w", err)
	}
	l.Comma = comma

	return nil
}

func (t *TranslateConfig) validate() error {
	if t.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", t.MaxTextLength)
	}
	if t.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be > 0 (got %d)", t.MaxBatchSize)
	}
	if t.BatchWorkers <= 0 {
		return fmt.Errorf("batch_workers must be > 0 (got %d)", t.BatchWorkers)
	}
	return nil
}

// ParseDelimiter converts a configured delimiter into a csv field separator.
// "\t" and "tab" are accepted for tab-separated sources.
func ParseDelimiter(raw string) (rune, error) {
	switch raw {
	case `\t`, "tab", "\t":
		return '\t', nil
	}

	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("must be a single character (got %q)", raw)
	}

	r, _ := utf8.DecodeRuneInString(raw)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", raw)
	}
	return r, nil
}
