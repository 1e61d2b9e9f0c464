// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Driver      string `yaml:"driver"`
		Host        string `yaml:"host"`
		Port        string `yaml:"port"`
		User        string `yaml:"user"`
		Password    string `yaml:"password"`
		Name        string `yaml:"name"`
		SSLMode     string `yaml:"sslmode"`
		SearchPath  string `yaml:"schema"`
		Path        string `yaml:"path"`
		AutoMigrate bool   `yaml:"auto_migrate"`
		LogLevel    string `yaml:"log_level"`
	} `yaml:"database"`
	JWT struct {
		Secret       string        `yaml:"secret"`
		ExpiryPeriod time.Duration `yaml:"expiry_period"`
	} `yaml:"jwt"`
	Server struct {
		Port         string        `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
	} `yaml:"server"`
	Email struct {
		Provider string `yaml:"provider"`
	} `yaml:"email"`
	Sendgrid struct {
		APIKey string `yaml:"api_key"`
		From   string `yaml:"from"`
	} `yaml:"sendgrid"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	CORSOrigins []string `yaml:"cors_origins"`
	BaseURL     string   `yaml:"base_url"`
}

// Load builds the configuration from defaults and environment variables.
func Load() *Config {
	cfg := defaults()
	applyEnv(cfg)
	return cfg
}

// LoadFile reads a YAML file over the defaults, then applies environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}

	cfg.Database.Driver = "postgres"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Name = "traininghub"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SearchPath = "public"
	cfg.Database.Path = "traininghub.db"
	cfg.Database.LogLevel = "warn"

	cfg.JWT.Secret = "your-secret-key"
	cfg.JWT.ExpiryPeriod = 7 * 24 * time.Hour

	cfg.Server.Port = "8080"
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 15 * time.Second

	cfg.Email.Provider = "none"
	cfg.SMTP.Port = 587

	cfg.Log.Level = "info"
	cfg.CORSOrigins = []string{"http://localhost:3000"}
	cfg.BaseURL = "http://localhost:3000"

	return cfg
}

func applyEnv(cfg *Config) {
	// Database configuration
	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnv("DB_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", cfg.Database.SearchPath)
	cfg.Database.Path = getEnv("DB_PATH", cfg.Database.Path)
	cfg.Database.AutoMigrate = getEnvBool("DB_AUTO_MIGRATE", cfg.Database.AutoMigrate)
	cfg.Database.LogLevel = getEnv("DB_LOG_LEVEL", cfg.Database.LogLevel)

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", cfg.JWT.Secret)
	cfg.JWT.ExpiryPeriod = getEnvDuration("JWT_EXPIRY", cfg.JWT.ExpiryPeriod)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", cfg.Server.Port)

	// Email configuration
	cfg.Email.Provider = getEnv("EMAIL_PROVIDER", cfg.Email.Provider)
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", cfg.Sendgrid.APIKey)
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", cfg.Sendgrid.From)
	cfg.SMTP.Host = getEnv("SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Port = getEnvInt("SMTP_PORT", cfg.SMTP.Port)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", cfg.SMTP.Username)
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", cfg.SMTP.Password)
	cfg.SMTP.From = getEnv("SMTP_FROM", cfg.SMTP.From)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.BaseURL = getEnv("BASE_URL", cfg.BaseURL)
	if origins, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		cfg.CORSOrigins = splitList(origins)
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
