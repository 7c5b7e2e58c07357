// Package config loads shelfmark configuration from file, environment, and
// defaults. The defaults reproduce the tool's fixed upstream behavior, so a
// config surface is never required.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for shelfmark
type Config struct {
	Lookup LookupConfig `mapstructure:"lookup"`
	Vault  VaultConfig  `mapstructure:"vault"`
}

// LookupConfig holds volumes lookup service options
type LookupConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
}

// VaultConfig holds note store options
type VaultConfig struct {
	Root         string   `mapstructure:"root"`
	NotePatterns []string `mapstructure:"note_patterns"`
}

var defaultConfig = Config{
	Lookup: LookupConfig{
		BaseURL:           "https://www.googleapis.com",
		Timeout:           30 * time.Second,
		RequestsPerSecond: 5,
	},
	Vault: VaultConfig{
		Root:         "",
		NotePatterns: []string{"**/*.md"},
	},
}

// LoadConfig loads configuration from various sources
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("lookup.base_url", defaultConfig.Lookup.BaseURL)
	v.SetDefault("lookup.timeout", defaultConfig.Lookup.Timeout)
	v.SetDefault("lookup.requests_per_second", defaultConfig.Lookup.RequestsPerSecond)
	v.SetDefault("vault.root", defaultConfig.Vault.Root)
	v.SetDefault("vault.note_patterns", defaultConfig.Vault.NotePatterns)

	// Configuration file search paths
	v.SetConfigName("shelfmark")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")     // Current directory
	v.AddConfigPath("$HOME") // Home directory

	// Environment variables
	v.SetEnvPrefix("SHELFMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Try to read config file (optional); ignore error to use defaults
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	return &config, nil
}

// LoadProjectConfig loads configuration with project-local overrides applied
// on top of the global configuration.
func LoadProjectConfig() (*Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	projectConfigs := []string{
		".shelfmark.yaml",
		".shelfmark.yml",
		"shelfmark.yaml",
		"shelfmark.yml",
	}

	for _, configFile := range projectConfigs {
		if _, err := os.Stat(configFile); err == nil {
			v := viper.New()
			v.SetConfigFile(configFile)

			if err := v.ReadInConfig(); err != nil {
				continue // Try next config file
			}

			if err := v.Unmarshal(config); err != nil {
				continue
			}
			break
		}
	}

	return config, nil
}
