package ksoft

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config represents a configuration object.
type Config struct {
	APIKey       string `json:"apikey"`       // API key used as the bearer credential. Required.
	BaseURL      string `json:"baseurl"`      // API root; the public API when empty.
	Timeout      int    `json:"timeout"`      // Per-request timeout in seconds.
	PollInterval int    `json:"pollinterval"` // Ban feed poll interval in seconds.
	Debug        bool   `json:"debug"`        // Debug mode in the configuration.
}

// timeout returns the per-request timeout, falling back to API_TIMEOUT.
func (c *Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return API_TIMEOUT
	}
	return time.Duration(c.Timeout) * time.Second
}

// pollInterval returns the poll interval, falling back to BAN_UPDATE_INTERVAL.
func (c *Config) pollInterval() time.Duration {
	if c.PollInterval <= 0 {
		return BAN_UPDATE_INTERVAL
	}
	return time.Duration(c.PollInterval) * time.Second
}

// LoadConfig loads the configuration from the specified file.
//
// Args:
//   - filename: The name of the configuration file.
//
// Returns:
//   - *Config: A pointer to the Config struct.
//   - error: An error if the loading fails.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	err = json.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %v", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified file.
//
// Args:
//   - filename: The name of the configuration file.
//   - config: The Config struct to save.
//
// Returns:
//   - error: An error if the saving fails.
func SaveConfig(filename string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config data: %v", err)
	}

	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}
