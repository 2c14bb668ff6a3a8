//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"testing"

	cryptoDomain "github.com/MGTheTrain/packed-aes/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringConvenience(t *testing.T) {
	const textKey = "0123456789abcdef"
	iv := cryptoDomain.NullIV()

	t.Run("StringKeyMatchesByteKey", func(t *testing.T) {
		message := []byte("hello world 1234")

		withString, err := EncryptWithStringKey(message, textKey, iv, cryptoDomain.NoPadding)
		require.NoError(t, err)

		withBytes, err := Encrypt(message, []byte(textKey), iv, cryptoDomain.NoPadding)
		require.NoError(t, err)
		assert.Equal(t, withBytes, withString)

		plainText, err := DecryptWithStringKey(withString, textKey, iv, cryptoDomain.NoPadding)
		require.NoError(t, err)
		assert.Equal(t, message, plainText)
	})

	t.Run("StringPlainText", func(t *testing.T) {
		cipherText, err := EncryptString("grüße, welt", []byte(textKey), iv, cryptoDomain.PKCS7Padding)
		require.NoError(t, err)

		other, err := EncryptStringWithStringKey("grüße, welt", textKey, iv, cryptoDomain.PKCS7Padding)
		require.NoError(t, err)
		assert.Equal(t, cipherText, other)

		plainText, err := Decrypt(cipherText, []byte(textKey), iv, cryptoDomain.PKCS7Padding)
		require.NoError(t, err)
		assert.Equal(t, "grüße, welt", string(plainText))
	})

	t.Run("InvalidUTF8PlainText", func(t *testing.T) {
		_, err := EncryptString("bad \xff input", []byte(textKey), iv, cryptoDomain.PKCS7Padding)
		assert.True(t, errors.Is(err, cryptoDomain.ErrInvalidPlainText))

		_, err = EncryptStringWithStringKey("bad \xff input", textKey, iv, cryptoDomain.PKCS7Padding)
		assert.True(t, errors.Is(err, cryptoDomain.ErrInvalidPlainText))
	})

	t.Run("InvalidUTF8Key", func(t *testing.T) {
		_, err := NewAESEngineFromString("0123456789abcde\xff")
		assert.True(t, errors.Is(err, cryptoDomain.ErrInvalidKey))

		_, err = EncryptWithStringKey([]byte("x"), "\xfe\xff", iv, cryptoDomain.PKCS7Padding)
		assert.True(t, errors.Is(err, cryptoDomain.ErrInvalidKey))
	})

	t.Run("StringKeyWrongLength", func(t *testing.T) {
		_, err := NewAESEngineFromString("short")
		assert.Equal(t, cryptoDomain.KeySizeError(5), err)
	})
}
