package crypto

// AlgorithmAES represents the AES encryption algorithm
const AlgorithmAES = "AES"

// KeyTypeSymmetric represents a symmetric key
const KeyTypeSymmetric = "symmetric"

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// AESBlockSize is the AES block size in bytes. The IV is always one block.
const AESBlockSize = 16

// Rounds returns the number of cipher rounds for the given key size in bytes,
// or 0 if the size does not select an AES variant.
func Rounds(keySize int) int {
	switch keySize {
	case AESKeySize128:
		return 10
	case AESKeySize192:
		return 12
	case AESKeySize256:
		return 14
	default:
		return 0
	}
}

// ValidKeySize reports whether keySize selects AES-128, AES-192 or AES-256.
func ValidKeySize(keySize int) bool {
	return Rounds(keySize) != 0
}

// NullIV returns a zero-filled IV of one block.
//
// CBC with a zero IV leaks equality of leading plaintext blocks between
// messages encrypted under the same key. Only use it for single-block
// operations or known-answer tests.
func NullIV() []byte {
	return make([]byte, AESBlockSize)
}
