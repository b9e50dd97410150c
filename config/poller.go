package config

import (
	"fmt"
	"time"
)

type PollerConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxAttempts     int
	Timeout         time.Duration
}

func GetPollerConfig() (*PollerConfig, error) {
	initialInterval, err := getDurationEnv("POLL_INITIAL_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, err
	}
	maxInterval, err := getDurationEnv("POLL_MAX_INTERVAL", 2*time.Minute)
	if err != nil {
		return nil, err
	}
	maxAttempts, err := getIntEnv("POLL_MAX_ATTEMPTS", 40)
	if err != nil {
		return nil, err
	}
	timeout, err := getDurationEnv("POLL_TIMEOUT", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	if initialInterval <= 0 {
		return nil, fmt.Errorf("POLL_INITIAL_INTERVAL must be positive")
	}
	if maxInterval < initialInterval {
		return nil, fmt.Errorf("POLL_MAX_INTERVAL must not be lower than POLL_INITIAL_INTERVAL")
	}
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("POLL_MAX_ATTEMPTS must be positive")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("POLL_TIMEOUT must be positive")
	}

	return &PollerConfig{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxAttempts:     maxAttempts,
		Timeout:         timeout,
	}, nil
}
