// Config loading for the larder CLI. The config directory holds a
// config.yaml with the data directory; a default file is written on
// first run. Flag values override the config file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir = "data_dir"

	defaultConfigDir = ".larder"
	defaultDataDir   = ".larder-db"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Larder CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default file on first run. A
// missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDataDir, defaultDataDir)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// resolveConfigDir returns the config directory from the flag or the
// default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	return defaultConfigDir
}

// resolveDataDir returns the data directory with flag > config file >
// default precedence.
func resolveDataDir() (string, error) {
	if flags.dataDir != "" {
		return flags.dataDir, nil
	}
	v, err := loadConfig(resolveConfigDir())
	if err != nil {
		return "", err
	}
	dataDir := v.GetString(cfgKeyDataDir)
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	return dataDir, nil
}
