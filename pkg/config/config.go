// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/release-manager/configs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mockconfig.gen.go -package=config

// Config represents the application configuration.
type Config struct {
	GitHub  GitHubConfig  `yaml:"github"`
	GPG     GPGConfig     `yaml:"gpg"`
	Python  string        `yaml:"python"`
	Release ReleaseConfig `yaml:"release"`
	Storage StorageConfig `yaml:"storage"`
}

// GitHubConfig holds the API settings.
type GitHubConfig struct {
	// Token is used when GITHUB_TOKEN and GH_TOKEN are not set.
	Token  string `yaml:"token"`
	APIURL string `yaml:"api_url"`
}

// GPGConfig holds the signing settings.
type GPGConfig struct {
	Program string `yaml:"program"`
}

// ReleaseConfig holds the release step defaults, overridable per run.
type ReleaseConfig struct {
	Tox        bool `yaml:"tox"`
	SignAssets bool `yaml:"sign_assets"`
}

// StorageConfig holds the artifact storage settings. An empty bucket
// disables the storage upload step.
type StorageConfig struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Prefix    string `yaml:"prefix"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() *Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigFileParse, err)
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the embedded default configuration.
func (c *realManager) DefaultConfig() *Config {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		// The embedded file is validated by tests; fall back to bare
		// defaults if it is ever broken.
		config = Config{}
	}
	config.applyDefaults()
	return &config
}

func (c *Config) applyDefaults() {
	if c.GitHub.APIURL == "" {
		c.GitHub.APIURL = "https://api.github.com"
	}
	if c.GPG.Program == "" {
		c.GPG.Program = "gpg"
	}
	if c.Python == "" {
		c.Python = "python3"
	}
	if c.Storage.Prefix == "" {
		c.Storage.Prefix = "releases/{name}"
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Storage.Bucket != "" && c.Storage.Region == "" {
		return ErrStorageRegionMissing
	}
	return nil
}

// LoadConfigWithFallback loads configuration from file with fallback to the
// default configuration.
func LoadConfigWithFallback(configPath string) (*Config, error) {
	manager := NewManager()

	if config, err := manager.LoadConfig(configPath); err == nil {
		return config, nil
	}

	return manager.DefaultConfig(), nil
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".rlm", "config.yaml")
}
