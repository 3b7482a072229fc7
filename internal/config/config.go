package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

var attrNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:.-]*$`)

type Config struct {
	MarkerAttr  string `env:"LOCALEKIT_MARKER_ATTR" envDefault:"data-i18n"`
	Indent      int    `env:"LOCALEKIT_INDENT" envDefault:"4"`
	SettingsKey string `env:"LOCALEKIT_SETTINGS_KEY" envDefault:"__defaultSettings__"`
	DefaultLang string `env:"LOCALEKIT_DEFAULT_LANG" envDefault:"en"`
	LogLevel    string `env:"LOCALEKIT_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional; variables may come from the shell or CI.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level returns the parsed log level.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func (c *Config) validate() error {
	c.MarkerAttr = strings.TrimSpace(c.MarkerAttr)
	if !attrNameRe.MatchString(c.MarkerAttr) {
		return fmt.Errorf("config: LOCALEKIT_MARKER_ATTR %q is not an attribute name", c.MarkerAttr)
	}

	if c.Indent < 1 || c.Indent > 8 {
		return fmt.Errorf("config: LOCALEKIT_INDENT must be between 1 and 8, got %d", c.Indent)
	}

	if strings.TrimSpace(c.SettingsKey) == "" {
		return fmt.Errorf("config: LOCALEKIT_SETTINGS_KEY is required and cannot be empty")
	}

	if _, err := language.Parse(c.DefaultLang); err != nil {
		return fmt.Errorf("config: LOCALEKIT_DEFAULT_LANG invalid (%q): %w", c.DefaultLang, err)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LOCALEKIT_LOG_LEVEL invalid (%q): %w", c.LogLevel, err)
	}

	return nil
}
