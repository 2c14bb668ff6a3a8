package cryptography

import (
	"unicode/utf8"

	cryptoDomain "github.com/MGTheTrain/packed-aes/internal/domain/crypto"
)

// NewAESEngineFromString builds an engine from a text key. The key is used as its UTF-8 bytes,
// so a 16-character ASCII string selects AES-128.
func NewAESEngineFromString(key string) (*AESEngine, error) {
	if !utf8.ValidString(key) {
		return nil, cryptoDomain.ErrInvalidKey
	}
	return NewAESEngine([]byte(key))
}

// Encrypt constructs an engine from key and encrypts input in one call.
func Encrypt(input, key, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	engine, err := NewAESEngine(key)
	if err != nil {
		return nil, err
	}
	return engine.Encrypt(input, iv, padding)
}

// Decrypt constructs an engine from key and decrypts cipherText in one call.
func Decrypt(cipherText, key, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	engine, err := NewAESEngine(key)
	if err != nil {
		return nil, err
	}
	return engine.Decrypt(cipherText, iv, padding)
}

// EncryptWithStringKey encrypts input under a text key.
func EncryptWithStringKey(input []byte, key string, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	engine, err := NewAESEngineFromString(key)
	if err != nil {
		return nil, err
	}
	return engine.Encrypt(input, iv, padding)
}

// DecryptWithStringKey decrypts cipherText under a text key.
func DecryptWithStringKey(cipherText []byte, key string, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	engine, err := NewAESEngineFromString(key)
	if err != nil {
		return nil, err
	}
	return engine.Decrypt(cipherText, iv, padding)
}

// EncryptString encrypts the UTF-8 bytes of input. Invalid UTF-8 fails with ErrInvalidPlainText.
func EncryptString(input string, key, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	if !utf8.ValidString(input) {
		return nil, cryptoDomain.ErrInvalidPlainText
	}
	return Encrypt([]byte(input), key, iv, padding)
}

// EncryptStringWithStringKey encrypts the UTF-8 bytes of input under a text key.
func EncryptStringWithStringKey(input, key string, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	if !utf8.ValidString(input) {
		return nil, cryptoDomain.ErrInvalidPlainText
	}
	return EncryptWithStringKey([]byte(input), key, iv, padding)
}
