package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/packed-aes/internal/pkg/config"
	"github.com/MGTheTrain/packed-aes/internal/pkg/logger"
	"github.com/MGTheTrain/packed-aes/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ConfigFileEnv names the environment variable pointing at an optional settings file
const ConfigFileEnv = "PACKED_AES_CONFIG"

// LoadSettings reads settings from the file named by PACKED_AES_CONFIG (if any) and the environment.
func LoadSettings() (*config.Settings, error) {
	settings, err := config.Load(os.Getenv(ConfigFileEnv))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// validateRequest validates a flag request struct and flattens field errors into one message.
func validateRequest(validate *validator.Validate, request interface{}) error {
	if err := validate.Struct(request); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return fmt.Errorf("invalid flags: %s", strings.Join(validators.Describe(validationErrors), "; "))
		}
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// readIV resolves the IV from a hex flag value or a file holding the raw IV bytes.
// It returns nil when neither is set.
func readIV(ivHex, ivFile string) ([]byte, error) {
	switch {
	case ivHex != "" && ivFile != "":
		return nil, errors.New("--iv and --iv-file are mutually exclusive")
	case ivHex != "":
		iv, err := hex.DecodeString(ivHex)
		if err != nil {
			return nil, fmt.Errorf("failed to decode --iv: %w", err)
		}
		return iv, nil
	case ivFile != "":
		iv, err := os.ReadFile(filepath.Clean(ivFile))
		if err != nil {
			return nil, fmt.Errorf("failed to read IV file: %w", err)
		}
		return iv, nil
	default:
		return nil, nil
	}
}
