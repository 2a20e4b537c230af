package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the storefront service
type Config struct {
	Port    string `mapstructure:"PORT"`
	Env     string `mapstructure:"ENV"`
	BaseURL string `mapstructure:"BASE_URL"`

	Database DatabaseConfig `mapstructure:",squash"`

	GoogleCredentials string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	SwatchFolderID    string `mapstructure:"SWATCH_FOLDER_ID"`
	ChromePath        string `mapstructure:"CHROME_PATH"`
	ImageCacheDir     string `mapstructure:"IMAGE_CACHE_DIR"`
}

// DatabaseConfig holds the Postgres connection settings
type DatabaseConfig struct {
	URL      string `mapstructure:"DATABASE_URL"`
	Host     string `mapstructure:"DB_HOST"`
	Port     string `mapstructure:"DB_PORT"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME"`
	SSLMode  string `mapstructure:"DB_SSLMODE"`
}

var keys = []string{
	"PORT", "ENV", "BASE_URL",
	"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"GOOGLE_APPLICATION_CREDENTIALS", "SWATCH_FOLDER_ID", "CHROME_PATH", "IMAGE_CACHE_DIR",
}

// Load reads configuration from the environment, with an optional config.yaml in path
// as the lower-priority source. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("IMAGE_CACHE_DIR", "cache/swatches")

	if path != "" {
		v.AddConfigPath(path)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			log.Printf("✓ Config file loaded: %s", v.ConfigFileUsed())
		}
	}

	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about; bind every env key explicitly.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &cfg, nil
}

// IsProduction reports whether ENV is "production"
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// HasDatabase reports whether enough settings are present to open a connection
func (d DatabaseConfig) HasDatabase() bool {
	return d.URL != "" || (d.Host != "" && d.User != "" && d.Name != "")
}

// DSN returns DATABASE_URL or a key/value connection string built from the parts
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}
