package config

import (
	"fmt"
	"os"
)

type PerplexityConfig struct {
	ApiUrl    string
	ApiKey    string
	Model     string
	MaxTokens int
}

func GetPerplexityConfig() (*PerplexityConfig, error) {
	apiKey := os.Getenv("PERPLEXITY_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("PERPLEXITY_API_KEY must be set")
	}
	maxTokens, err := getIntEnv("PERPLEXITY_MAX_TOKENS", 15000)
	if err != nil {
		return nil, err
	}

	return &PerplexityConfig{
		ApiUrl:    getEnvWithDefault("PERPLEXITY_API_URL", "https://api.perplexity.ai"),
		ApiKey:    apiKey,
		Model:     getEnvWithDefault("PERPLEXITY_MODEL", "llama-3.1-sonar-small-128k-online"),
		MaxTokens: maxTokens,
	}, nil
}
