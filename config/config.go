package config

import (
	"fmt"
	"time"

	"simplenotes/utils"

	"github.com/gin-gonic/gin"
)

type ServerConfig struct {
	Port            string
	GinMode         string
	LogConfig       string
	MaxBodyBytes    int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
	MetricsPath     string
	CORSMaxAge      int
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            utils.GetEnvAsString("PORT", "8080"),
		GinMode:         utils.GetEnvAsString("GIN_MODE", gin.ReleaseMode),
		LogConfig:       utils.GetEnvAsString("LOG_CONFIG", "<root>=INFO"),
		MaxBodyBytes:    utils.GetEnvAsInt64("MAX_BODY_BYTES", 1<<20),
		ReadTimeout:     utils.GetEnvAsDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    utils.GetEnvAsDuration("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     utils.GetEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		MetricsEnabled:  utils.GetEnvAsBool("METRICS_ENABLED", true),
		MetricsPath:     utils.GetEnvAsString("METRICS_PATH", "/metrics"),
		CORSMaxAge:      utils.GetEnvAsInt("CORS_MAX_AGE", 600),
	}
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
