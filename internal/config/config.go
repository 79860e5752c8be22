package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Gemini  GeminiConfig
	Intake  IntakeConfig
	CORS    CORSConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// StorageConfig holds local durable storage settings.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// GeminiConfig holds extraction service settings. APIKey is only a bootstrap
// default; a user-supplied key persisted in settings takes precedence.
type GeminiConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	Endpoint    string `mapstructure:"endpoint"`
}

// IntakeConfig holds file intake limits.
type IntakeConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// CORSConfig holds CORS settings for the browser frontend.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the DOCBIZ_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCBIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Storage defaults
	v.SetDefault("storage.path", "docbiz.db")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash-preview-04-17")
	v.SetDefault("gemini.timeout_secs", 120)
	v.SetDefault("gemini.endpoint", "")

	// Intake defaults
	v.SetDefault("intake.max_file_size_mb", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development; 5173 is the Vite dev server)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "DOCBIZ_SERVER_PORT",
		"server.read_timeout":     "DOCBIZ_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "DOCBIZ_SERVER_WRITE_TIMEOUT",
		"server.environment":      "DOCBIZ_SERVER_ENVIRONMENT",
		"storage.path":            "DOCBIZ_STORAGE_PATH",
		"gemini.api_key":          "DOCBIZ_GEMINI_API_KEY",
		"gemini.model":            "DOCBIZ_GEMINI_MODEL",
		"gemini.timeout_secs":     "DOCBIZ_GEMINI_TIMEOUT_SECS",
		"gemini.endpoint":         "DOCBIZ_GEMINI_ENDPOINT",
		"intake.max_file_size_mb": "DOCBIZ_INTAKE_MAX_FILE_SIZE_MB",
		"log.level":               "DOCBIZ_LOG_LEVEL",
		"log.format":              "DOCBIZ_LOG_FORMAT",
		"cors.allowed_origins":    "DOCBIZ_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	cfg.Server = ServerConfig{
		Port:         v.GetString("server.port"),
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Storage = StorageConfig{
		Path: v.GetString("storage.path"),
	}
	cfg.Gemini = GeminiConfig{
		APIKey:      v.GetString("gemini.api_key"),
		Model:       v.GetString("gemini.model"),
		TimeoutSecs: v.GetInt("gemini.timeout_secs"),
		Endpoint:    v.GetString("gemini.endpoint"),
	}
	cfg.Intake = IntakeConfig{
		MaxFileSizeMB: v.GetInt64("intake.max_file_size_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
