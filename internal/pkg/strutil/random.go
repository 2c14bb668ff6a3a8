// Package strutil contains string helpers shared by the CLI.
package strutil

import (
	"errors"
	"fmt"
	"io"
)

// Alphabets for RandomString
const (
	LowerCaseAlphabet    = "abcdefghijklmnopqrstuvwxyz"
	UpperCaseAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits               = "0123456789"
	HexCharacters        = "0123456789ABCDEF"
	AlphanumericAlphabet = LowerCaseAlphabet + UpperCaseAlphabet + Digits
)

// RandomString returns length characters drawn uniformly from alphabet using bytes read from random.
// Bytes that would bias the selection are rejected and redrawn.
func RandomString(random io.Reader, length int, alphabet string) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("invalid length: %d", length)
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", errors.New("alphabet must contain between 1 and 256 characters")
	}

	// Largest multiple of len(alphabet) that fits in a byte value range
	limit := 256 - 256%len(alphabet)

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := io.ReadFull(random, buf[:length-len(out)]); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf[:length-len(out)] {
			if int(b) < limit {
				out = append(out, alphabet[int(b)%len(alphabet)])
			}
		}
	}
	return string(out), nil
}
