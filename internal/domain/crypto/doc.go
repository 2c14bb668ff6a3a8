// Package crypto defines the core contracts, constants and error values for AES block-cipher operations,
// including key and IV size rules, the padding modes and the processor interface used by the CLI.
package crypto
