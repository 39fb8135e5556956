package config

type Config interface {
	EnvConfig
	CorsConfig
	GatewayConfig
	MarketDataConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetSessionFile() string
	GetEnv() string
}

type GatewayConfig interface {
	GetBackendBaseURL() string
}

type MarketDataConfig interface {
	GetProviderBaseURL() string
	GetProviderAPIKey() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
}

func New() Config {
	return mainConfig{}
}
