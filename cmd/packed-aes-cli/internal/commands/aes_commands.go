package commands

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/packed-aes/internal/domain/crypto"
	"github.com/MGTheTrain/packed-aes/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/packed-aes/internal/pkg/config"
	"github.com/MGTheTrain/packed-aes/internal/pkg/logger"
	"github.com/MGTheTrain/packed-aes/internal/pkg/strutil"
	"github.com/MGTheTrain/packed-aes/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	aesProcessor crypto.AESProcessor
	logger       logger.Logger
	settings     *config.Settings
	validate     *validator.Validate
}

type generateKeyRequest struct {
	KeySize int    `validate:"aeskeysize"`
	KeyDir  string `validate:"required"`
}

type cryptRequest struct {
	InputFile    string `validate:"required"`
	OutputFile   string `validate:"required"`
	SymmetricKey string `validate:"required"`
	Padding      string `validate:"required,oneof=none pkcs7 NONE PKCS7"`
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger and AES processor.
func NewAESCommandHandler(settings *config.Settings) (*AESCommandHandler, error) {
	if settings == nil {
		return nil, errors.New("settings cannot be nil")
	}

	loggerInstance, err := setupLogger(&settings.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	validate, err := validators.New()
	if err != nil {
		return nil, err
	}

	return &AESCommandHandler{
		aesProcessor: aesProcessor,
		logger:       loggerInstance,
		settings:     settings,
		validate:     validate,
	}, nil
}

// GenerateAESKeyCmd generates an AES key and persists it in the selected directory
func (commandHandler *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	textKey, err := cmd.Flags().GetBool("text")
	if err != nil {
		return fmt.Errorf("invalid text flag: %w", err)
	}

	request := generateKeyRequest{KeySize: keySize, KeyDir: keyDir}
	if err := validateRequest(commandHandler.validate, &request); err != nil {
		return err
	}

	var secretKey []byte
	extension := "bin"
	if textKey {
		// Printable keys work with the string-key APIs; each character carries ~5.95 bits
		key, err := strutil.RandomString(rand.Reader, keySize, strutil.AlphanumericAlphabet)
		if err != nil {
			return fmt.Errorf("failed to generate text key: %w", err)
		}
		secretKey = []byte(key)
		extension = "txt"
	} else {
		secretKey, err = commandHandler.aesProcessor.GenerateKey(keySize)
		if err != nil {
			return err
		}
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.%s", uuid.New(), extension))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	commandHandler.logger.Info("AES key saved to ", keyFilePath)
	fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
	return nil
}

// GenerateIVCmd generates a random IV and writes it raw to a file or hex-encoded to stdout
func (commandHandler *AESCommandHandler) GenerateIVCmd(cmd *cobra.Command, _ []string) error {
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	iv, err := commandHandler.aesProcessor.GenerateIV()
	if err != nil {
		return err
	}

	if outputFilePath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(iv))
		return nil
	}

	if err := os.WriteFile(outputFilePath, iv, 0600); err != nil {
		return fmt.Errorf("failed to write IV file: %w", err)
	}
	commandHandler.logger.Info("IV saved to ", outputFilePath)
	return nil
}

// EncryptAESCmd encrypts a file using AES-CBC
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	request, iv, prependIV, err := commandHandler.readCryptFlags(cmd)
	if err != nil {
		return err
	}

	padding, err := crypto.ParsePadding(request.Padding)
	if err != nil {
		return err
	}

	if iv == nil {
		if !prependIV {
			return errors.New("an IV is required: pass --iv, --iv-file or --prepend-iv")
		}
		iv, err = commandHandler.aesProcessor.GenerateIV()
		if err != nil {
			return err
		}
	}

	plainText, err := os.ReadFile(filepath.Clean(request.InputFile))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	key, err := os.ReadFile(filepath.Clean(request.SymmetricKey))
	if err != nil {
		return fmt.Errorf("failed to read symmetric key: %w", err)
	}

	encryptedData, err := commandHandler.aesProcessor.Encrypt(plainText, key, iv, padding)
	if err != nil {
		return err
	}

	if prependIV {
		encryptedData = append(append(make([]byte, 0, len(iv)+len(encryptedData)), iv...), encryptedData...)
	}

	if err := os.WriteFile(request.OutputFile, encryptedData, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	commandHandler.logger.Info("Encrypted data saved to ", request.OutputFile)
	return nil
}

// DecryptAESCmd decrypts a file using AES-CBC
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	request, iv, prependIV, err := commandHandler.readCryptFlags(cmd)
	if err != nil {
		return err
	}

	padding, err := crypto.ParsePadding(request.Padding)
	if err != nil {
		return err
	}

	key, err := os.ReadFile(filepath.Clean(request.SymmetricKey))
	if err != nil {
		return fmt.Errorf("failed to read symmetric key: %w", err)
	}

	encryptedData, err := os.ReadFile(filepath.Clean(request.InputFile))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	switch {
	case prependIV && iv != nil:
		return errors.New("--prepend-iv cannot be combined with --iv or --iv-file")
	case prependIV:
		if len(encryptedData) < crypto.AESBlockSize {
			return fmt.Errorf("input is too short to hold an IV: %d bytes", len(encryptedData))
		}
		iv, encryptedData = encryptedData[:crypto.AESBlockSize], encryptedData[crypto.AESBlockSize:]
	case iv == nil:
		return errors.New("an IV is required: pass --iv, --iv-file or --prepend-iv")
	}

	decryptedData, err := commandHandler.aesProcessor.Decrypt(encryptedData, key, iv, padding)
	if err != nil {
		return err
	}

	if err := os.WriteFile(request.OutputFile, decryptedData, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	commandHandler.logger.Info("Decrypted data saved to ", request.OutputFile)
	return nil
}

func (commandHandler *AESCommandHandler) readCryptFlags(cmd *cobra.Command) (*cryptRequest, []byte, bool, error) {
	flags := cmd.Flags()

	inputFilePath, err := flags.GetString("input-file")
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := flags.GetString("output-file")
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid output-file flag: %w", err)
	}
	symmetricKey, err := flags.GetString("symmetric-key")
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid symmetric-key flag: %w", err)
	}
	padding, err := flags.GetString("padding")
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid padding flag: %w", err)
	}
	ivHex, err := flags.GetString("iv")
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid iv flag: %w", err)
	}
	ivFile, err := flags.GetString("iv-file")
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid iv-file flag: %w", err)
	}
	prependIV, err := flags.GetBool("prepend-iv")
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid prepend-iv flag: %w", err)
	}

	request := &cryptRequest{
		InputFile:    inputFilePath,
		OutputFile:   outputFilePath,
		SymmetricKey: symmetricKey,
		Padding:      padding,
	}
	if err := validateRequest(commandHandler.validate, request); err != nil {
		return nil, nil, false, err
	}

	iv, err := readIV(ivHex, ivFile)
	if err != nil {
		return nil, nil, false, err
	}
	return request, iv, prependIV, nil
}

// logged wraps a RunE handler so failures are also written to the handler's logger
func (commandHandler *AESCommandHandler) logged(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := run(cmd, args); err != nil {
			commandHandler.logger.Error(err)
			return err
		}
		return nil
	}
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command, settings *config.Settings) error {
	handler, err := NewAESCommandHandler(settings)
	if err != nil {
		return fmt.Errorf("failed to create AES command handler: %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate an AES key",
		RunE:  handler.logged(handler.GenerateAESKeyCmd),
	}
	generateAESKeyCmd.Flags().IntP("key-size", "", settings.Crypto.KeySize, "AES key size in bytes (16, 24 or 32)")
	generateAESKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the encryption key")
	generateAESKeyCmd.Flags().BoolP("text", "", false, "Generate a printable alphanumeric key instead of raw bytes")
	rootCmd.AddCommand(generateAESKeyCmd)

	var generateIVCmd = &cobra.Command{
		Use:   "generate-iv",
		Short: "Generate a random 16-byte IV",
		RunE:  handler.logged(handler.GenerateIVCmd),
	}
	generateIVCmd.Flags().StringP("output-file", "", "", "Path to write the raw IV to (hex on stdout if empty)")
	rootCmd.AddCommand(generateIVCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES-CBC",
		RunE:  handler.logged(handler.EncryptAESCmd),
	}
	addCryptFlags(encryptAESFileCmd, settings, "Path to input file that needs to be encrypted", "Path to encrypted output file")
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file using AES-CBC",
		RunE:  handler.logged(handler.DecryptAESCmd),
	}
	addCryptFlags(decryptAESFileCmd, settings, "Input encrypted file path", "Path to decrypted output file")
	rootCmd.AddCommand(decryptAESFileCmd)

	return nil
}

func addCryptFlags(cmd *cobra.Command, settings *config.Settings, inputUsage, outputUsage string) {
	cmd.Flags().StringP("input-file", "", "", inputUsage)
	cmd.Flags().StringP("output-file", "", "", outputUsage)
	cmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	cmd.Flags().StringP("padding", "", settings.Crypto.Padding, "Padding mode: none or pkcs7")
	cmd.Flags().StringP("iv", "", "", "Hex-encoded 16-byte IV")
	cmd.Flags().StringP("iv-file", "", "", "Path to a file holding the raw 16-byte IV")
	cmd.Flags().BoolP("prepend-iv", "", false, "Store the IV as the first block of the ciphertext file")
}
