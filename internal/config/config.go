package config

import (
	"os"
	"strconv"
	"strings"

	"pdf-analyzer-client/internal/domain"
)

var defaultAllowedOrigins = []string{
	"http://localhost:4200", // Angular dev server
	"http://localhost:5173", // Vite dev server
	"http://localhost:3000", // Alternative dev port
}

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort            string
	AnalyzerBaseURL       string
	RequestTimeoutSeconds int
	MaxFileSize           int64
	LogLevel              string
	AllowedOrigins        []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// PORT wins so the console can run on PaaS hosts; SERVER_PORT is kept for local use.
		ServerPort:            getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		AnalyzerBaseURL:       getEnvOrDefault("ANALYZER_BASE_URL", "http://localhost:5000/api/v1"),
		RequestTimeoutSeconds: getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 60),
		MaxFileSize:           getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:              getEnvOrDefault("LOG_LEVEL", "info"),
		AllowedOrigins:        getEnvListOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
	}
}

// GetServerPort returns the console server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetAnalyzerBaseURL returns the analyzer API root
func (c *AppConfig) GetAnalyzerBaseURL() string {
	return c.AnalyzerBaseURL
}

// GetRequestTimeoutSeconds returns the per-request timeout for analyzer calls
func (c *AppConfig) GetRequestTimeoutSeconds() int {
	return c.RequestTimeoutSeconds
}

// GetMaxFileSize returns the maximum accepted file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAllowedOrigins returns the CORS origins allowed to call the console
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue >= 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
