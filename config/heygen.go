package config

import (
	"fmt"
	"os"
)

type HeyGenConfig struct {
	ApiUrl string
	ApiKey string
}

func GetHeyGenConfig() (*HeyGenConfig, error) {
	apiKey := os.Getenv("HEYGEN_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("HEYGEN_API_KEY must be set")
	}

	return &HeyGenConfig{
		ApiUrl: getEnvWithDefault("HEYGEN_API_URL", "https://api.heygen.com"),
		ApiKey: apiKey,
	}, nil
}
