package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Summarizer SummarizerConfig
	Upload     UploadConfig
	Metadata   MetadataConfig
	Version    string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SummarizerConfig holds generative-backend settings. An empty APIKey means
// no backend credential is configured: summaries come from the fallback
// table and no backend call is attempted.
type SummarizerConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	MaxRetries  int    `mapstructure:"max_retries"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// UploadConfig holds PDF upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// MetadataConfig holds remote metadata fetcher settings.
type MetadataConfig struct {
	TimeoutSecs int `mapstructure:"timeout_secs"`
}

// Load reads configuration from environment variables with the PAPERBUDDY_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PAPERBUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":5175")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// CORS defaults (frontend dev server)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173")

	// Summarizer defaults
	v.SetDefault("summarizer.api_key", "")
	v.SetDefault("summarizer.model", "gpt-4o")
	v.SetDefault("summarizer.max_retries", 3)
	v.SetDefault("summarizer.timeout_secs", 60)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Metadata fetcher defaults
	v.SetDefault("metadata.timeout_secs", 15)

	v.SetDefault("version", "0.1.0")

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			Environment:  v.GetString("server.environment"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(v.GetString("cors.allowed_origins"), ","),
		},
		Summarizer: SummarizerConfig{
			APIKey:      v.GetString("summarizer.api_key"),
			Model:       v.GetString("summarizer.model"),
			MaxRetries:  v.GetInt("summarizer.max_retries"),
			TimeoutSecs: v.GetInt("summarizer.timeout_secs"),
		},
		Upload: UploadConfig{
			MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		},
		Metadata: MetadataConfig{
			TimeoutSecs: v.GetInt("metadata.timeout_secs"),
		},
		Version: v.GetString("version"),
	}

	return cfg, nil
}
