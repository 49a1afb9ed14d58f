package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment string `json:"environment"`
	Server      struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	} `json:"server"`
	CORS struct {
		AllowOrigins string `json:"allowOrigins"`
	} `json:"cors"`
	Games struct {
		MaxGames             int `json:"maxGames"`
		IdleTTLMinutes       int `json:"idleTtlMinutes"`
		SweepIntervalSeconds int `json:"sweepIntervalSeconds"`
	} `json:"games"`
	RequestLog bool `json:"requestLog"`
}

func defaults() *Config {
	cfg := &Config{Environment: "dev"}
	cfg.Server.Port = 3000
	cfg.CORS.AllowOrigins = "http://localhost:5173"
	cfg.Games.MaxGames = 1000
	cfg.Games.IdleTTLMinutes = 60
	cfg.Games.SweepIntervalSeconds = 60
	cfg.RequestLog = true
	return cfg
}

// Load returns the defaults overlaid with the JSON file at path, if any,
// and then with the PORT and ALLOW_ORIGINS environment variables.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	if origins := os.Getenv("ALLOW_ORIGINS"); origins != "" {
		cfg.CORS.AllowOrigins = origins
	}
	return cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} with environment variable values
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) IdleTTL() time.Duration {
	return time.Duration(c.Games.IdleTTLMinutes) * time.Minute
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Games.SweepIntervalSeconds) * time.Second
}
