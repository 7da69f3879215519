package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/aes-core/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-core/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/aes-core/internal/pkg/config"
	"github.com/MGTheTrain/aes-core/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
// The processor and logger are built from the --config file before any
// sub-command runs.
type AESCommandHandler struct {
	aesProcessor cryptoalg.AESProcessor
	logger       logger.Logger
	settings     *config.CipherSettings
}

// NewAESCommandHandler loads the CLI config at configPath and returns an
// AESCommandHandler with configured logger and AES processor.
func NewAESCommandHandler(configPath string) (*AESCommandHandler, error) {
	cfg, err := config.InitializeCliConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance, &cfg.Cipher)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	return &AESCommandHandler{
		aesProcessor: aesProcessor,
		logger:       loggerInstance,
		settings:     &cfg.Cipher,
	}, nil
}

// GenerateAESKeysCmd generates an AES key and persists it in the selected directory
func (commandHandler *AESCommandHandler) GenerateAESKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}
	if keySize == 0 {
		keySize = commandHandler.settings.KeySize
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	uniqueID := uuid.New()

	secretKey, err := commandHandler.aesProcessor.GenerateKey(keySize / 8)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uniqueID))
	err = os.WriteFile(keyFilePath, secretKey, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("AES key saved to ", keyFilePath)
}

// EncryptAESCmd pads and encrypts a file with the symmetric key read from disk
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, outputFilePath, key, ok := commandHandler.fileFlags(cmd)
	if !ok {
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := commandHandler.aesProcessor.Encrypt(plainText, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, encryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data saved to ", outputFilePath)
}

// DecryptAESCmd decrypts a file and strips its padding
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, outputFilePath, key, ok := commandHandler.fileFlags(cmd)
	if !ok {
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decryptedData, err := commandHandler.aesProcessor.Decrypt(encryptedData, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, decryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
}

func (commandHandler *AESCommandHandler) fileFlags(cmd *cobra.Command) (string, string, []byte, bool) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return "", "", nil, false
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return "", "", nil, false
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return "", "", nil, false
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return "", "", nil, false
	}
	return inputFilePath, outputFilePath, key, true
}

// EncryptBlockCmd encrypts one hex-encoded 16-byte block and prints the result as hex
func (commandHandler *AESCommandHandler) EncryptBlockCmd(cmd *cobra.Command, _ []string) {
	commandHandler.transformBlock(cmd, commandHandler.aesProcessor.EncryptBlock)
}

// DecryptBlockCmd decrypts one hex-encoded 16-byte block and prints the result as hex
func (commandHandler *AESCommandHandler) DecryptBlockCmd(cmd *cobra.Command, _ []string) {
	commandHandler.transformBlock(cmd, commandHandler.aesProcessor.DecryptBlock)
}

func (commandHandler *AESCommandHandler) transformBlock(cmd *cobra.Command, transform func(block, key []byte) ([]byte, error)) {
	key, ok := commandHandler.hexFlag(cmd, "key-hex")
	if !ok {
		return
	}
	block, ok := commandHandler.hexFlag(cmd, "block-hex")
	if !ok {
		return
	}

	out, err := transform(block, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
}

// ExpandKeyCmd prints every round key of the schedule derived from --key-hex
func (commandHandler *AESCommandHandler) ExpandKeyCmd(cmd *cobra.Command, _ []string) {
	key, ok := commandHandler.hexFlag(cmd, "key-hex")
	if !ok {
		return
	}

	roundKeys, err := commandHandler.aesProcessor.ExpandKey(key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	for i, roundKey := range roundKeys {
		fmt.Fprintf(cmd.OutOrStdout(), "round[%2d] %x\n", i, roundKey)
	}
}

func (commandHandler *AESCommandHandler) hexFlag(cmd *cobra.Command, name string) ([]byte, bool) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		commandHandler.logger.Error(fmt.Sprintf("invalid %s flag ", name), err)
		return nil, false
	}
	decoded, err := hex.DecodeString(value)
	if err != nil {
		commandHandler.logger.Error(fmt.Sprintf("invalid %s flag ", name), err)
		return nil, false
	}
	return decoded, true
}

// InitAESCommands registers AES-related commands. The handler is created
// lazily so the persistent --config flag is parsed first.
func InitAESCommands(rootCmd *cobra.Command) error {
	handler := &AESCommandHandler{}

	rootCmd.PersistentFlags().StringP("config", "", "", "Path to a YAML config file (defaults are used when empty)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return fmt.Errorf("invalid config flag: %w", err)
		}
		h, err := NewAESCommandHandler(configPath)
		if err != nil {
			return fmt.Errorf("failed to create AES command handler %w", err)
		}
		*handler = *h
		return nil
	}

	var generateAESKeysCmd = &cobra.Command{
		Use:   "generate-aes-keys",
		Short: "Generate AES keys",
		Run:   handler.GenerateAESKeysCmd,
	}
	generateAESKeysCmd.Flags().IntP("key-size", "", 0, "AES key size in bits: 128, 192 or 256 (default from config)")
	generateAESKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the encryption key")
	rootCmd.AddCommand(generateAESKeysCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES",
		Run:   handler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file using AES",
		Run:   handler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	rootCmd.AddCommand(decryptAESFileCmd)

	var encryptBlockCmd = &cobra.Command{
		Use:   "encrypt-aes-block",
		Short: "Encrypt a single 16-byte block",
		Run:   handler.EncryptBlockCmd,
	}
	encryptBlockCmd.Flags().StringP("key-hex", "", "", "Hex-encoded 16, 24 or 32 byte key")
	encryptBlockCmd.Flags().StringP("block-hex", "", "", "Hex-encoded 16 byte block")
	rootCmd.AddCommand(encryptBlockCmd)

	var decryptBlockCmd = &cobra.Command{
		Use:   "decrypt-aes-block",
		Short: "Decrypt a single 16-byte block",
		Run:   handler.DecryptBlockCmd,
	}
	decryptBlockCmd.Flags().StringP("key-hex", "", "", "Hex-encoded 16, 24 or 32 byte key")
	decryptBlockCmd.Flags().StringP("block-hex", "", "", "Hex-encoded 16 byte block")
	rootCmd.AddCommand(decryptBlockCmd)

	var expandKeyCmd = &cobra.Command{
		Use:   "expand-aes-key",
		Short: "Print the round keys of an AES key schedule",
		Run:   handler.ExpandKeyCmd,
	}
	expandKeyCmd.Flags().StringP("key-hex", "", "", "Hex-encoded 16, 24 or 32 byte key")
	rootCmd.AddCommand(expandKeyCmd)

	return nil
}
