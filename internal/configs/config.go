package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

type UserConfig struct {
	Client ClientConfig `toml:"client"`
}

type ClientConfig struct {
	// InstallUUID identifies this installation in diagnostics output. It is
	// generated on first use and never sent to the server.
	InstallUUID string `toml:"install_uuid"`

	// DefaultModel picks the machine filter `xbrew recipes list` uses when
	// --model is not given: 0=all, 1=Original, 2=Studio.
	DefaultModel int `toml:"default_model"`
}

// LoadUserConfig loads the user configuration, returning a zero-value config
// when the file does not exist yet.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserXbrewSettings.UserConfigsPath, "config.toml")

	config := &UserConfig{}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	return config, nil
}

// SaveUserConfig saves the user configuration, creating the config directory
// if needed.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserXbrewSettings.UserConfigsPath, "config.toml")

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create user config: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// EnsureUserConfig ensures the user configuration exists and carries an
// install UUID.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	if config.Client.InstallUUID == "" {
		config.Client.InstallUUID = uuid.New().String()
		if err := SaveUserConfig(config); err != nil {
			return nil, err
		}
	}
	return config, nil
}
