package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g. PACKED_AES_LOGGER_LOG_LEVEL
const EnvPrefix = "PACKED_AES"

// Settings aggregates all configuration sections of the application
type Settings struct {
	Logger LoggerSettings `mapstructure:"logger"`
	Crypto CryptoSettings `mapstructure:"crypto"`
}

// Validate checks every configuration section
func (s *Settings) Validate() error {
	if err := s.Logger.Validate(); err != nil {
		return err
	}
	return s.Crypto.Validate()
}

// Load reads settings from an optional config file (YAML, JSON or TOML) and
// PACKED_AES_* environment variables, on top of built-in defaults.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("crypto.key_size", DefaultKeySize)
	v.SetDefault("crypto.padding", DefaultPadding)
}
