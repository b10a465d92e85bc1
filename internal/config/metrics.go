package config

import "github.com/spf13/viper"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(v *viper.Viper) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolOrDefault(v, keyMetricsEnabled, true),
		Port:         stringOrDefault(v, keyMetricsPort, defaultMetricsPort),
		OtlpEndpoint: stringOrDefault(v, keyMetricsEndpoint, ""),
		ServiceName:  stringOrDefault(v, keyMetricsService, defaultServiceName),
		OtlpInsecure: boolOrDefault(v, keyMetricsInsecure, true),
	}
}
