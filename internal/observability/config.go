package observability

import (
	"strings"

	"github.com/smallbiznis/invoicely/internal/config"
)

// Config is the slice of application settings the logging, tracing and metrics providers read.
type Config struct {
	ServiceName string
	Environment string
	Version     string

	LogLevel    string
	LogFormat   string
	Development bool

	OtelEnabled          bool
	OtelExporterEndpoint string
	OtelExporterProtocol string
	OtelSamplingRatio    float64
}

func LoadConfig(cfg config.Config) Config {
	serviceName := strings.TrimSpace(cfg.AppName)
	if serviceName == "" {
		serviceName = "invoicely"
	}

	return Config{
		ServiceName:          serviceName,
		Environment:          strings.TrimSpace(cfg.Environment),
		Version:              strings.TrimSpace(cfg.AppVersion),
		LogLevel:             cfg.LogLevel,
		LogFormat:            cfg.LogFormat,
		Development:          cfg.IsDevelopment(),
		OtelEnabled:          cfg.OtelEnabled,
		OtelExporterEndpoint: cfg.OtelEndpoint,
		OtelExporterProtocol: cfg.OtelProtocol,
		OtelSamplingRatio:    cfg.OtelSamplingRatio,
	}
}

// Debug enables verbose request and SQL logging.
func (c Config) Debug() bool {
	return strings.EqualFold(strings.TrimSpace(c.LogLevel), "debug") || c.Development
}
