package config

import (
	"fmt"
	"os"
	"path/filepath"

	"listfmt/internal/logger"

	"github.com/BurntSushi/toml"
)

const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultEndpoint  = "/api/generate-excel"
	DefaultOutputDir = "."
	DefaultLogFile   = "logs/listfmt.log"
	DefaultLogLevel  = "info"
)

type Config struct {
	API    APIConfig    `toml:"api"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	UI     UIConfig     `toml:"ui"`
}

type APIConfig struct {
	BaseURL  string `toml:"base_url"`
	Endpoint string `toml:"endpoint"`
}

type OutputConfig struct {
	Directory string `toml:"directory"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type UIConfig struct {
	ShowHelp bool `toml:"show_help"`
}

// Default returns the configuration written when no config file exists.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  DefaultBaseURL,
			Endpoint: DefaultEndpoint,
		},
		Output: OutputConfig{
			Directory: DefaultOutputDir,
		},
		Log: LogConfig{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
		UI: UIConfig{
			ShowHelp: true,
		},
	}
}

// LoadConfig loads configuration from the specified config file path,
// writing a default file first if there is none.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		defaultConfig := Default()
		if err := SaveConfig(configPath, defaultConfig); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	// Keys missing from the file keep their Default() values.
	config := *Default()
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// Keys present but left empty
	if config.API.BaseURL == "" {
		config.API.BaseURL = DefaultBaseURL
	}
	if config.API.Endpoint == "" {
		config.API.Endpoint = DefaultEndpoint
	}
	if config.Output.Directory == "" {
		config.Output.Directory = DefaultOutputDir
	}
	if config.Log.File == "" {
		config.Log.File = DefaultLogFile
	}
	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
