// Package main is the entry point for the aes-cli application.
// It initializes the root command, registers the AES sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/aes-core/cmd/aes-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "aes-cli",
		Short: "AES encryption CLI tool",
		Long: `aes-cli is a command-line tool for AES-128/192/256 operations.
Supports key generation, whole-file encryption/decryption with PKCS#7 or zero
padding, single-block transforms and key schedule inspection.

Settings are read from the file passed with --config and may be overridden
with AES_* environment variables, e.g. AES_CIPHER_PADDING=zero.`,
	}

	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
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
