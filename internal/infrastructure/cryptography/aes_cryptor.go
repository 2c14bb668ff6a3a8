package cryptography

import (
	"fmt"
	"io"

	cryptoDomain "github.com/MGTheTrain/packed-aes/internal/domain/crypto"
)

// Cryptor binds an IV to a series of PKCS#7-padded operations with text keys.
// A zero Cryptor has no IV and fails every operation with ErrMissingIV.
type Cryptor struct {
	iv []byte
}

// NewCryptor creates a Cryptor with a random IV drawn from random.
// Pass crypto/rand.Reader unless a deterministic source is required for tests.
func NewCryptor(random io.Reader) (*Cryptor, error) {
	iv := make([]byte, cryptoDomain.AESBlockSize)
	if _, err := io.ReadFull(random, iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return &Cryptor{iv: iv}, nil
}

// NewCryptorWithIV creates a Cryptor using the bytes of iv. Its length is checked on use.
func NewCryptorWithIV(iv string) *Cryptor {
	return &Cryptor{iv: []byte(iv)}
}

// IV returns a copy of the configured IV.
func (c *Cryptor) IV() []byte {
	if c.iv == nil {
		return nil
	}
	iv := make([]byte, len(c.iv))
	copy(iv, c.iv)
	return iv
}

// Encrypt encrypts data under key with PKCS#7 padding.
func (c *Cryptor) Encrypt(data []byte, key string) ([]byte, error) {
	if c.iv == nil {
		return nil, cryptoDomain.ErrMissingIV
	}
	return EncryptWithStringKey(data, key, c.iv, cryptoDomain.PKCS7Padding)
}

// Decrypt decrypts data under key and strips PKCS#7 padding.
func (c *Cryptor) Decrypt(data []byte, key string) ([]byte, error) {
	if c.iv == nil {
		return nil, cryptoDomain.ErrMissingIV
	}
	return DecryptWithStringKey(data, key, c.iv, cryptoDomain.PKCS7Padding)
}
