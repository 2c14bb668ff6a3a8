package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"

	cryptoDomain "github.com/MGTheTrain/packed-aes/internal/domain/crypto"
	"github.com/MGTheTrain/packed-aes/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
	random io.Reader
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoDomain.AESProcessor, error) {
	return newAESProcessor(logger, rand.Reader)
}

func newAESProcessor(logger logger.Logger, random io.Reader) (*aesProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &aesProcessor{
		logger: logger,
		random: random,
	}, nil
}

// GenerateKey generates a random AES key of the specified size.
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	if !cryptoDomain.ValidKeySize(keySize) {
		return nil, cryptoDomain.KeySizeError(keySize)
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(a.random, key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}
	a.logger.Info("Generated AES-", keySize*8, " key")
	return key, nil
}

// GenerateIV generates a random IV of one block.
func (a *aesProcessor) GenerateIV() ([]byte, error) {
	iv := make([]byte, cryptoDomain.AESBlockSize)
	if _, err := io.ReadFull(a.random, iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}

// Encrypt encrypts data using AES-CBC with the provided key, IV and padding.
func (a *aesProcessor) Encrypt(data, key, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	cipherText, err := Encrypt(data, key, iv, padding)
	if err != nil {
		a.logger.Error("AES encryption failed: ", err)
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}
	a.logger.Info("AES encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts AES-CBC ciphertext with the provided key, IV and padding.
func (a *aesProcessor) Decrypt(ciphertext, key, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	plainText, err := Decrypt(ciphertext, key, iv, padding)
	if err != nil {
		a.logger.Error("AES decryption failed: ", err)
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}
	a.logger.Info("AES decryption succeeded")
	return plainText, nil
}
