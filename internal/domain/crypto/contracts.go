package crypto

// AESProcessor handles AES symmetric encryption operations in CBC mode.
// AES is used for encrypting/decrypting data with a shared secret key.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// GenerateIV generates a random IV of one block from a cryptographically secure source.
	GenerateIV() ([]byte, error)

	// Encrypt encrypts plaintext data using AES with the provided symmetric key and IV.
	// Returns the encrypted ciphertext or an error if encryption fails.
	Encrypt(data, key, iv []byte, padding Padding) ([]byte, error)

	// Decrypt decrypts AES ciphertext using the provided symmetric key and IV.
	// Returns the original plaintext or an error if decryption fails.
	Decrypt(ciphertext, key, iv []byte, padding Padding) ([]byte, error)
}
