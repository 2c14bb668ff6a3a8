// Package main is the entry point for the packed-aes-cli application.
// It loads settings, registers the AES sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/packed-aes/cmd/packed-aes-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "packed-aes-cli",
		Short: "AES-CBC encryption CLI tool",
		Long: `packed-aes-cli encrypts and decrypts files with AES-128, AES-192 or AES-256 in CBC mode,
with or without PKCS#7 padding, and generates keys and IVs.

Settings can be supplied through a YAML, JSON or TOML file referenced by PACKED_AES_CONFIG
and overridden with environment variables, for example:
- PACKED_AES_LOGGER_LOG_LEVEL
- PACKED_AES_LOGGER_LOG_TYPE
- PACKED_AES_CRYPTO_KEY_SIZE
- PACKED_AES_CRYPTO_PADDING`,
		SilenceUsage: true,
	}

	settings, err := commands.LoadSettings()
	if err != nil {
		return err
	}

	if err := commands.InitAESCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
