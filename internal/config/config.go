package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
		Env     string `yaml:"env"`
		BaseURL string `yaml:"base_url"` // public URL of this API, used in verification links
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres or mysql
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	JWT struct {
		Secret        string `yaml:"secret"`
		AccessTTLMin  int    `yaml:"access_ttl_minutes"`
		RefreshTTLDay int    `yaml:"refresh_ttl_days"`
	} `yaml:"jwt"`

	PasswordReset struct {
		TimeoutHours int `yaml:"timeout_hours"`
	} `yaml:"password_reset"`

	Frontend struct {
		URL                   string `yaml:"url"`                     // SPA base URL, verification redirect target
		DefaultProfilePicture string `yaml:"default_profile_picture"` // served when a profile has no picture
	} `yaml:"frontend"`
}

// Load reads the configuration. When DATABASE_URL is set, the environment
// wins (test and container deployments); otherwise the YAML file at
// CONFIG_PATH (default config/config.yaml) is used. Either way the result
// is a plain value handed to constructors - no package-level mutable state.
func Load() (*Config, error) {
	if os.Getenv("DATABASE_URL") != "" {
		return loadFromEnv()
	}
	return loadFromFile()
}

func loadFromFile() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func loadFromEnv() (*Config, error) {
	var cfg Config

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Database.Driver = getEnv("DATABASE_DRIVER", "postgres")
	cfg.Server.Env = getEnv("SERVER_ENV", "development")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Server.Port, _ = strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	cfg.Server.BaseURL = getEnv("SERVER_BASE_URL", "http://localhost:8080")

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(getEnv("SMTP_PORT", "587"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = getEnv("FROM_EMAIL", "no-reply@shopcart.local")
	cfg.Email.FromName = getEnv("FROM_NAME", "ShopCart")

	cfg.Frontend.URL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.Frontend.DefaultProfilePicture = os.Getenv("DEFAULT_PROFILE_IMAGE_URL")

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.AccessTTLMin == 0 {
		cfg.JWT.AccessTTLMin = 60
	}
	if cfg.JWT.RefreshTTLDay == 0 {
		cfg.JWT.RefreshTTLDay = 7
	}
	if cfg.PasswordReset.TimeoutHours == 0 {
		cfg.PasswordReset.TimeoutHours = 24
	}
	if cfg.Frontend.DefaultProfilePicture == "" {
		cfg.Frontend.DefaultProfilePicture = "/static/default-user.png"
	}
}

// Validate checks the fields without which the server cannot run.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required")
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "mysql" {
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
