package crypto

import (
	"fmt"
	"strings"
)

// Padding selects how a buffer is aligned to the AES block size.
type Padding int

const (
	// NoPadding requires the input length to be a multiple of the block size.
	NoPadding Padding = iota
	// PKCS7Padding appends 1 to 16 bytes each holding the pad length.
	PKCS7Padding
)

// Padding names accepted by ParsePadding
const (
	PaddingNameNone  = "none"
	PaddingNamePKCS7 = "pkcs7"
)

func (p Padding) String() string {
	switch p {
	case NoPadding:
		return PaddingNameNone
	case PKCS7Padding:
		return PaddingNamePKCS7
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// Valid reports whether p is one of the defined padding modes.
func (p Padding) Valid() bool {
	return p == NoPadding || p == PKCS7Padding
}

// ParsePadding maps a padding name ("none" or "pkcs7", case-insensitive) to a Padding.
func ParsePadding(name string) (Padding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PaddingNameNone:
		return NoPadding, nil
	case PaddingNamePKCS7, "pkcs#7":
		return PKCS7Padding, nil
	default:
		return NoPadding, fmt.Errorf("unsupported padding: %q", name)
	}
}
