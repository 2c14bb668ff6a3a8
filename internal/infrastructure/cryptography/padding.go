package cryptography

import (
	"crypto/subtle"
	"errors"
	"fmt"
)

// pkcs7Pad returns a copy of data followed by 1 to blockSize bytes, each holding the pad length.
// The output is allocated once at its final size.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// pkcs7Unpad checks that every padding byte equals the pad length and strips them.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("padded data length %d is not a positive multiple of %d", len(data), blockSize)
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, errors.New("invalid padding length")
	}

	good := 1
	for _, b := range data[len(data)-padLen:] {
		good &= subtle.ConstantTimeByteEq(b, byte(padLen))
	}
	if good != 1 {
		return nil, errors.New("invalid padding bytes")
	}
	return data[:len(data)-padLen], nil
}
