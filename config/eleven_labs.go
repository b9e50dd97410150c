package config

import (
	"fmt"
	"os"
)

type ElevenLabsConfig struct {
	ApiUrl  string
	ApiKey  string
	ModelId string
	// Voice settings are only sent when configured; the voice defaults apply otherwise.
	Stability       *float64
	SimilarityBoost *float64
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	stability, err := getOptionalFloatEnv("ELEVEN_LABS_STABILITY")
	if err != nil {
		return nil, err
	}
	similarityBoost, err := getOptionalFloatEnv("ELEVEN_LABS_SIMILARITY_BOOST")
	if err != nil {
		return nil, err
	}

	return &ElevenLabsConfig{
		ApiUrl:          getEnvWithDefault("ELEVEN_LABS_TTS_URL", "https://api.elevenlabs.io/v1/text-to-speech"),
		ApiKey:          apiKey,
		ModelId:         getEnvWithDefault("ELEVEN_LABS_MODEL_ID", "eleven_multilingual_v2"),
		Stability:       stability,
		SimilarityBoost: similarityBoost,
	}, nil
}
