package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar        = "PORT"
	appNameVar        = "APP_NAME"
	sessionFileVar    = "SESSION_FILE"
	backendURLVar     = "BACKEND_BASE_URL"
	providerURLVar    = "PROVIDER_BASE_URL"
	providerAPIKeyVar = "PROVIDER_API_KEY"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}
var _ GatewayConfig = EnvVars{}
var _ MarketDataConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8090")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Astra Shell")
}

// GetSessionFile returns the path of the persisted session document. It is
// the desktop analogue of the browser's local storage.
func (EnvVars) GetSessionFile() string {
	return GetEnv(sessionFileVar, "./data/session.json")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetBackendBaseURL returns the base URL of the dashboard backend API
// (identity gateway and login endpoints).
func (EnvVars) GetBackendBaseURL() string {
	return GetEnv(backendURLVar, "http://localhost:8080")
}

func (EnvVars) GetProviderBaseURL() string {
	return GetEnv(providerURLVar, "https://eodhd.com/api")
}

func (EnvVars) GetProviderAPIKey() string {
	return GetEnv(providerAPIKeyVar, "")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
