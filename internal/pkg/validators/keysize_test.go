//go:build unit
// +build unit

package validators

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyRequest struct {
	KeySize int `validate:"aeskeysize"`
}

func TestAESKeySizeValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tests := []struct {
		keySize int
		valid   bool
	}{
		{16, true},
		{24, true},
		{32, true},
		{0, false},
		{8, false},
		{128, false},
		{256, false},
	}

	for _, tt := range tests {
		err := validate.Struct(&keyRequest{KeySize: tt.keySize})
		if tt.valid {
			assert.NoError(t, err, "key size %d", tt.keySize)
		} else {
			assert.Error(t, err, "key size %d", tt.keySize)
		}
	}
}

func TestDescribe(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	err = validate.Struct(&keyRequest{KeySize: 7})
	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))

	assert.Equal(t, []string{"Field: KeySize, Tag: aeskeysize"}, Describe(validationErrors))
}
