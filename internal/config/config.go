package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/preston-bernstein/shot-chart-service/internal/league"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port    string
	League  string
	Log     LogConfig
	Metrics MetricsConfig
	WS      WSConfig
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// WSConfig controls WebSocket subscriptions.
type WSConfig struct {
	AllowedOrigins []string
	SendBuffer     int
}

// Load reads configuration from defaults, an optional config file named by
// SHOTCHART_CONFIG, and environment variables, in increasing precedence.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path := os.Getenv(envConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Port:   stringOrDefault(v, keyPort, defaultPort),
		League: league.Normalize(stringOrDefault(v, keyLeague, defaultLeague)),
		Log: LogConfig{
			Level:  stringOrDefault(v, keyLogLevel, defaultLogLevel),
			Format: stringOrDefault(v, keyLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(v),
		WS: WSConfig{
			AllowedOrigins: listValue(v, keyWSAllowedOrigins),
			SendBuffer:     intOrDefault(v, keyWSSendBuffer, defaultSendBuffer),
		},
	}

	if _, err := league.Lookup(cfg.League); err != nil {
		return cfg, fmt.Errorf("default league: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyPort, defaultPort)
	v.SetDefault(keyLeague, defaultLeague)
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyLogFormat, defaultLogFormat)
	v.SetDefault(keyMetricsEnabled, true)
	v.SetDefault(keyMetricsPort, defaultMetricsPort)
	v.SetDefault(keyMetricsService, defaultServiceName)
	v.SetDefault(keyMetricsInsecure, true)
	v.SetDefault(keyWSSendBuffer, defaultSendBuffer)
}
