package config

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/packed-aes/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// CryptoSettings holds the defaults applied to AES operations when a command does not override them
type CryptoSettings struct {
	KeySize int    `mapstructure:"key_size" validate:"required,aeskeysize"`
	Padding string `mapstructure:"padding" validate:"required,oneof=none pkcs7"`
}

// Validate checks that all fields in CryptoSettings are valid
func (s *CryptoSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return fmt.Errorf("validation failed for CryptoSettings: %v", validators.Describe(validationErrors))
		}
		return fmt.Errorf("validation failed for CryptoSettings: %w", err)
	}
	return nil
}
