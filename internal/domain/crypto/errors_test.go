//go:build unit
// +build unit

package crypto

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySizeError(t *testing.T) {
	err := fmt.Errorf("failed to create engine: %w", KeySizeError(8))

	assert.True(t, errors.Is(err, ErrInvalidKeySize))
	assert.False(t, errors.Is(err, ErrInvalidIVSize))

	var keySizeErr KeySizeError
	assert.True(t, errors.As(err, &keySizeErr))
	assert.Equal(t, KeySizeError(8), keySizeErr)
	assert.Contains(t, err.Error(), "invalid AES key size 8")
}

func TestIVSizeError(t *testing.T) {
	err := fmt.Errorf("failed to encrypt: %w", IVSizeError(8))

	assert.True(t, errors.Is(err, ErrInvalidIVSize))
	assert.False(t, errors.Is(err, ErrInvalidKeySize))

	var ivSizeErr IVSizeError
	assert.True(t, errors.As(err, &ivSizeErr))
	assert.Equal(t, 8, int(ivSizeErr))
}

func TestRounds(t *testing.T) {
	tests := []struct {
		keySize  int
		expected int
	}{
		{AESKeySize128, 10},
		{AESKeySize192, 12},
		{AESKeySize256, 14},
		{8, 0},
		{0, 0},
		{64, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("key size %d", tt.keySize), func(t *testing.T) {
			assert.Equal(t, tt.expected, Rounds(tt.keySize))
			assert.Equal(t, tt.expected != 0, ValidKeySize(tt.keySize))
		})
	}
}

func TestNullIV(t *testing.T) {
	iv := NullIV()
	assert.Equal(t, make([]byte, AESBlockSize), iv)

	// Each call hands out its own buffer
	iv[0] = 0xff
	assert.Equal(t, byte(0), NullIV()[0])
}
