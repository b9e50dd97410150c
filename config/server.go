package config

import "os"

type ServerConfig struct {
	Port     string
	LogLevel string
	// JwksUrl enables bearer token authentication when set.
	JwksUrl string
}

func GetServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:     getEnvWithDefault("PORT", "8080"),
		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),
		JwksUrl:  os.Getenv("JWKS_URL"),
	}
}
