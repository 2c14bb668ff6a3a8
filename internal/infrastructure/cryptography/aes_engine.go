package cryptography

import (
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/packed-aes/internal/domain/crypto"
)

// AESEngine is a from-scratch AES implementation operating in CBC mode with optional PKCS#7 padding.
// The key schedule is expanded once at construction and never mutated, so an engine is
// safe for concurrent use as long as each call passes its own buffers.
type AESEngine struct {
	schedule []uint32
	rounds   int
}

// NewAESEngine expands key into a round key schedule.
// The key must be 16, 24 or 32 bytes to select AES-128, AES-192 or AES-256.
func NewAESEngine(key []byte) (*AESEngine, error) {
	schedule, err := expandKey(key)
	if err != nil {
		return nil, err
	}
	return &AESEngine{
		schedule: schedule,
		rounds:   len(schedule)/4 - 1,
	}, nil
}

// Rounds returns the number of cipher rounds (10, 12 or 14).
func (e *AESEngine) Rounds() int { return e.rounds }

// Encrypt encrypts plaintext in CBC mode seeded with iv.
// With NoPadding the plaintext length must be a multiple of the block size.
func (e *AESEngine) Encrypt(plaintext, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}

	var out []byte
	switch padding {
	case cryptoDomain.NoPadding:
		if len(plaintext)%cryptoDomain.AESBlockSize != 0 {
			return nil, fmt.Errorf("%w: input length %d is not a multiple of the block size", cryptoDomain.ErrOperationFailed, len(plaintext))
		}
		out = make([]byte, len(plaintext))
		copy(out, plaintext)
	case cryptoDomain.PKCS7Padding:
		out = pkcs7Pad(plaintext, cryptoDomain.AESBlockSize)
	default:
		return nil, fmt.Errorf("%w: unsupported padding %s", cryptoDomain.ErrOperationFailed, padding)
	}

	e.cbcEncrypt(out, iv)
	return out, nil
}

// Decrypt decrypts ciphertext in CBC mode seeded with iv.
// With PKCS7Padding the padding is validated and stripped.
func (e *AESEngine) Decrypt(ciphertext, iv []byte, padding cryptoDomain.Padding) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	if !padding.Valid() {
		return nil, fmt.Errorf("%w: unsupported padding %s", cryptoDomain.ErrOperationFailed, padding)
	}
	if len(ciphertext)%cryptoDomain.AESBlockSize != 0 {
		return nil, fmt.Errorf("%w: input length %d is not a multiple of the block size", cryptoDomain.ErrOperationFailed, len(ciphertext))
	}

	out := make([]byte, len(ciphertext))
	copy(out, ciphertext)
	e.cbcDecrypt(out, iv)

	if padding == cryptoDomain.NoPadding {
		return out, nil
	}

	plainText, err := pkcs7Unpad(out, cryptoDomain.AESBlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrOperationFailed, err)
	}
	return plainText, nil
}

// Block exposes the raw block transform as a cipher.Block so the engine
// can be combined with the modes in crypto/cipher.
func (e *AESEngine) Block() cipher.Block {
	return aesBlock{engine: e}
}

// cbcEncrypt encrypts buf in place. len(buf) must be a multiple of the block size.
func (e *AESEngine) cbcEncrypt(buf, iv []byte) {
	prev := iv
	for i := 0; i < len(buf); i += cryptoDomain.AESBlockSize {
		block := buf[i : i+cryptoDomain.AESBlockSize]
		xorBlock(block, prev)
		encryptBlock(e.schedule, block, block)
		prev = block
	}
}

// cbcDecrypt decrypts buf in place. len(buf) must be a multiple of the block size.
func (e *AESEngine) cbcDecrypt(buf, iv []byte) {
	var prev, current [cryptoDomain.AESBlockSize]byte
	copy(prev[:], iv)
	for i := 0; i < len(buf); i += cryptoDomain.AESBlockSize {
		block := buf[i : i+cryptoDomain.AESBlockSize]
		copy(current[:], block)
		decryptBlock(e.schedule, block, block)
		xorBlock(block, prev[:])
		prev = current
	}
}

func checkIV(iv []byte) error {
	if len(iv) != cryptoDomain.AESBlockSize {
		return cryptoDomain.IVSizeError(len(iv))
	}
	return nil
}

func xorBlock(dst, src []byte) {
	for i := 0; i < cryptoDomain.AESBlockSize; i++ {
		dst[i] ^= src[i]
	}
}

// aesBlock adapts AESEngine to cipher.Block.
type aesBlock struct {
	engine *AESEngine
}

func (b aesBlock) BlockSize() int { return cryptoDomain.AESBlockSize }

func (b aesBlock) Encrypt(dst, src []byte) {
	if len(src) < cryptoDomain.AESBlockSize {
		panic("cryptography: input not full block")
	}
	if len(dst) < cryptoDomain.AESBlockSize {
		panic("cryptography: output not full block")
	}
	encryptBlock(b.engine.schedule, dst, src)
}

func (b aesBlock) Decrypt(dst, src []byte) {
	if len(src) < cryptoDomain.AESBlockSize {
		panic("cryptography: input not full block")
	}
	if len(dst) < cryptoDomain.AESBlockSize {
		panic("cryptography: output not full block")
	}
	decryptBlock(b.engine.schedule, dst, src)
}
