package config

import (
	"errors"
	"github.com/joho/godotenv"
	"io/fs"
)

type Config struct {
	Server     *ServerConfig
	Pipeline   *PipelineConfig
	Perplexity *PerplexityConfig
	ElevenLabs *ElevenLabsConfig
	HeyGen     *HeyGenConfig
	S3         *S3Config
	Dynamo     *DynamoConfig
	Poller     *PollerConfig
}

// Load reads an optional .env file and then the whole configuration from the
// environment. It fails on the first missing or malformed value so the
// process can refuse to start.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	var err error
	cfg := &Config{Server: GetServerConfig()}

	if cfg.Pipeline, err = GetPipelineConfig(); err != nil {
		return nil, err
	}
	if cfg.Perplexity, err = GetPerplexityConfig(); err != nil {
		return nil, err
	}
	if cfg.ElevenLabs, err = GetElevenLabsConfig(); err != nil {
		return nil, err
	}
	if cfg.HeyGen, err = GetHeyGenConfig(); err != nil {
		return nil, err
	}
	if cfg.S3, err = GetS3Config(); err != nil {
		return nil, err
	}
	if cfg.Dynamo, err = GetDynamoConfig(); err != nil {
		return nil, err
	}
	if cfg.Poller, err = GetPollerConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}
