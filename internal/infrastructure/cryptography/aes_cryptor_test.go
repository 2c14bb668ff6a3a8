//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
	"testing/iotest"

	cryptoDomain "github.com/MGTheTrain/packed-aes/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptor(t *testing.T) {
	const key = "0123456789abcdef0123456789abcdef"

	t.Run("RandomIV", func(t *testing.T) {
		cryptor, err := NewCryptor(rand.Reader)
		require.NoError(t, err)
		assert.Len(t, cryptor.IV(), cryptoDomain.AESBlockSize)

		cipherText, err := cryptor.Encrypt([]byte("legacy message"), key)
		require.NoError(t, err)
		assert.Len(t, cipherText, 16)

		plainText, err := cryptor.Decrypt(cipherText, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("legacy message"), plainText)
	})

	t.Run("FixedIVMatchesEngine", func(t *testing.T) {
		cryptor := NewCryptorWithIV("abcdefghijklmnop")

		cipherText, err := cryptor.Encrypt([]byte("payload"), key)
		require.NoError(t, err)

		expected, err := Encrypt([]byte("payload"), []byte(key), []byte("abcdefghijklmnop"), cryptoDomain.PKCS7Padding)
		require.NoError(t, err)
		assert.Equal(t, expected, cipherText)
	})

	t.Run("IVIsCopied", func(t *testing.T) {
		cryptor, err := NewCryptor(bytes.NewReader(bytes.Repeat([]byte{9}, 16)))
		require.NoError(t, err)

		iv := cryptor.IV()
		iv[0] = 0
		assert.Equal(t, byte(9), cryptor.IV()[0])
	})

	t.Run("MissingIV", func(t *testing.T) {
		var cryptor Cryptor
		assert.Nil(t, cryptor.IV())

		_, err := cryptor.Encrypt([]byte("payload"), key)
		assert.True(t, errors.Is(err, cryptoDomain.ErrMissingIV))

		_, err = cryptor.Decrypt(make([]byte, 16), key)
		assert.True(t, errors.Is(err, cryptoDomain.ErrMissingIV))
	})

	t.Run("ShortIV", func(t *testing.T) {
		cryptor := NewCryptorWithIV("short")
		_, err := cryptor.Encrypt([]byte("payload"), key)
		assert.Equal(t, cryptoDomain.IVSizeError(5), err)
	})

	t.Run("KeySizeValidated", func(t *testing.T) {
		cryptor := NewCryptorWithIV("abcdefghijklmnop")
		_, err := cryptor.Encrypt([]byte("payload"), "tooshort")
		assert.True(t, errors.Is(err, cryptoDomain.ErrInvalidKeySize))
	})

	t.Run("FailingRandomSource", func(t *testing.T) {
		_, err := NewCryptor(iotest.ErrReader(errors.New("no entropy")))
		assert.ErrorContains(t, err, "no entropy")
	})
}
