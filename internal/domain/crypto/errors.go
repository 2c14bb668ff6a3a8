package crypto

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidKeySize matches any KeySizeError via errors.Is.
	ErrInvalidKeySize = errors.New("invalid AES key size")
	// ErrInvalidIVSize matches any IVSizeError via errors.Is.
	ErrInvalidIVSize = errors.New("invalid AES IV size")
	// ErrInvalidKey is returned when a text key cannot be encoded as UTF-8.
	ErrInvalidKey = errors.New("invalid AES key")
	// ErrInvalidPlainText is returned when a text plaintext cannot be encoded as UTF-8.
	ErrInvalidPlainText = errors.New("invalid plain text")
	// ErrOperationFailed signals a failed cipher operation: misaligned input
	// without padding or malformed padding on decrypt.
	ErrOperationFailed = errors.New("AES operation failed")
	// ErrMissingIV is returned by a Cryptor that has no IV configured.
	ErrMissingIV = errors.New("missing IV")
)

// KeySizeError is returned when a key is not 16, 24 or 32 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "invalid AES key size " + strconv.Itoa(int(k))
}

// Is lets errors.Is(err, ErrInvalidKeySize) match any KeySizeError.
func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidKeySize
}

// IVSizeError is returned when an IV is not exactly one block long.
type IVSizeError int

func (i IVSizeError) Error() string {
	return "invalid AES IV size " + strconv.Itoa(int(i))
}

// Is lets errors.Is(err, ErrInvalidIVSize) match any IVSizeError.
func (i IVSizeError) Is(target error) bool {
	return target == ErrInvalidIVSize
}
