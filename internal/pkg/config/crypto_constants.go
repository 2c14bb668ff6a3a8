package config

// DefaultKeySize selects AES-256 when no key size is configured
const DefaultKeySize = 32

// DefaultPadding is the padding name used when none is configured
const DefaultPadding = "pkcs7"
