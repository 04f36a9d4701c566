package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".insights"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for insights settings.
const envPrefix = "INSIGHTS"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load reads the raw configuration mapping from file and environment.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// A missing searched config file is not an error; an empty mapping is
// returned and defaults apply during resolution.
func Load(configPath string) (map[string]any, error) {
	viperCfg := viper.New()

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	// AutomaticEnv alone registers no keys, and AllSettings only emits
	// keys viper knows about. Each recognized key is bound explicitly so
	// env-only values surface in the raw mapping.
	for _, key := range recognizedKeys {
		if err := viperCfg.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	return viperCfg.AllSettings(), nil
}
