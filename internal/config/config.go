package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	DBDSN string `mapstructure:"DB_DSN"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`

	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string `mapstructure:"KAFKA_TOPIC"`

	OCRBaseURL string        `mapstructure:"OCR_BASE_URL"`
	OCRAPIKey  string        `mapstructure:"OCR_API_KEY"`
	OCRTimeout time.Duration `mapstructure:"OCR_TIMEOUT"`

	TranslateBaseURL string        `mapstructure:"TRANSLATE_BASE_URL"`
	TranslateAPIKey  string        `mapstructure:"TRANSLATE_API_KEY"`
	TranslateTimeout time.Duration `mapstructure:"TRANSLATE_TIMEOUT"`

	CatalogPath    string        `mapstructure:"CATALOG_PATH"`
	ExtractTimeout time.Duration `mapstructure:"EXTRACT_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"DB_DSN",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "SESSION_TTL",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
	"OCR_BASE_URL", "OCR_API_KEY", "OCR_TIMEOUT",
	"TRANSLATE_BASE_URL", "TRANSLATE_API_KEY", "TRANSLATE_TIMEOUT",
	"CATALOG_PATH", "EXTRACT_TIMEOUT",
}

// Load lee variables de entorno y, si existe, un .env en el directorio actual.
// Nada es obligatorio: sin DB_DSN/REDIS_ADDR se usa memoria, sin KAFKA_BROKERS
// no se publican eventos.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "med-reconciliation")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "0s")
	v.SetDefault("KAFKA_TOPIC", "medication-schedules")
	v.SetDefault("OCR_TIMEOUT", "120s")
	v.SetDefault("TRANSLATE_TIMEOUT", "15s")
	v.SetDefault("EXTRACT_TIMEOUT", "60s")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

// Brokers separa KAFKA_BROKERS por coma.
func (c *Config) Brokers() []string {
	var out []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.ExtractTimeout <= 0 {
		errs = append(errs, fmt.Errorf("EXTRACT_TIMEOUT must be positive, got %s", c.ExtractTimeout))
	}
	if c.OCRTimeout < 0 || c.TranslateTimeout < 0 || c.SessionTTL < 0 {
		errs = append(errs, errors.New("timeouts must not be negative"))
	}
	// el deadline del cliente HTTP no debe cortar antes que EXTRACT_TIMEOUT
	if c.OCRTimeout > 0 && c.ExtractTimeout > 0 && c.OCRTimeout < c.ExtractTimeout {
		errs = append(errs, fmt.Errorf("OCR_TIMEOUT (%s) must not be lower than EXTRACT_TIMEOUT (%s)", c.OCRTimeout, c.ExtractTimeout))
	}
	if c.RedisDB < 0 {
		errs = append(errs, fmt.Errorf("REDIS_DB must be >= 0, got %d", c.RedisDB))
	}
	if c.OCRAPIKey != "" && c.OCRBaseURL == "" {
		errs = append(errs, errors.New("OCR_API_KEY is set but OCR_BASE_URL is empty"))
	}
	if c.TranslateAPIKey != "" && c.TranslateBaseURL == "" {
		errs = append(errs, errors.New("TRANSLATE_API_KEY is set but TRANSLATE_BASE_URL is empty"))
	}
	if !c.IsDev() && c.OCRBaseURL == "" {
		errs = append(errs, fmt.Errorf("OCR_BASE_URL is required when ENV=%q", c.Env))
	}

	return errors.Join(errs...)
}
