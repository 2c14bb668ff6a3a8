//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *CryptoSettings
		expectedError bool
	}{
		{"valid AES-128 without padding", &CryptoSettings{KeySize: 16, Padding: "none"}, false},
		{"valid AES-256 with pkcs7", &CryptoSettings{KeySize: 32, Padding: "pkcs7"}, false},
		{"invalid key size", &CryptoSettings{KeySize: 8, Padding: "pkcs7"}, true},
		{"missing key size", &CryptoSettings{Padding: "pkcs7"}, true},
		{"unknown padding", &CryptoSettings{KeySize: 24, Padding: "zero"}, true},
		{"missing padding", &CryptoSettings{KeySize: 24}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}
