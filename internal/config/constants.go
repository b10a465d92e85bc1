package config

const (
	keyPort             = "port"
	keyLeague           = "league"
	keyLogLevel         = "logLevel"
	keyLogFormat        = "logFormat"
	keyMetricsEnabled   = "metrics.enabled"
	keyMetricsPort      = "metrics.port"
	keyMetricsService   = "metrics.serviceName"
	keyMetricsEndpoint  = "metrics.otlpEndpoint"
	keyMetricsInsecure  = "metrics.otlpInsecure"
	keyWSAllowedOrigins = "ws.allowedOrigins"
	keyWSSendBuffer     = "ws.sendBuffer"

	envConfigFile     = "SHOTCHART_CONFIG"
	envPort           = "PORT"
	envLeague         = "DEFAULT_LEAGUE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envAllowedOrigins = "ALLOWED_ORIGINS"
	envWSSendBuffer   = "WS_SEND_BUFFER"

	defaultPort        = "4000"
	defaultLeague      = "nba"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultServiceName = "shot-chart-service"
	defaultSendBuffer  = 64
)

var envBindings = map[string]string{
	keyPort:             envPort,
	keyLeague:           envLeague,
	keyLogLevel:         envLogLevel,
	keyLogFormat:        envLogFormat,
	keyMetricsEnabled:   envMetricsOn,
	keyMetricsPort:      envMetricsPort,
	keyMetricsService:   envOtelService,
	keyMetricsEndpoint:  envOtelEndpoint,
	keyMetricsInsecure:  envOtelInsecure,
	keyWSAllowedOrigins: envAllowedOrigins,
	keyWSSendBuffer:     envWSSendBuffer,
}
