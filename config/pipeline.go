package config

import "fmt"

type NarrationMode string

const (
	// NarrationModeSummary narrates the request summary verbatim.
	NarrationModeSummary NarrationMode = "summary"
	// NarrationModeScript narrates a script generated from the summary.
	NarrationModeScript NarrationMode = "script"
)

type PipelineConfig struct {
	NarrationMode NarrationMode
	PoolSize      int
}

func GetPipelineConfig() (*PipelineConfig, error) {
	mode := NarrationMode(getEnvWithDefault("NARRATION_MODE", string(NarrationModeSummary)))
	if mode != NarrationModeSummary && mode != NarrationModeScript {
		return nil, fmt.Errorf("NARRATION_MODE must be %q or %q, got %q", NarrationModeSummary, NarrationModeScript, mode)
	}
	poolSize, err := getIntEnv("PIPELINE_POOL_SIZE", 16)
	if err != nil {
		return nil, err
	}
	if poolSize <= 0 {
		return nil, fmt.Errorf("PIPELINE_POOL_SIZE must be positive")
	}

	return &PipelineConfig{
		NarrationMode: mode,
		PoolSize:      poolSize,
	}, nil
}
