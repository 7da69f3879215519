//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()

	rootCmd := &cobra.Command{Use: "aes-cli"}
	require.NoError(t, InitAESCommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestEncryptBlockCmd_KnownAnswer(t *testing.T) {
	out := executeCommand(t, "encrypt-aes-block",
		"--key-hex", "000102030405060708090a0b0c0d0e0f",
		"--block-hex", "00112233445566778899aabbccddeeff")

	assert.Equal(t, "69c4e0d86a7b0430d8cdb78070b4c55a", strings.TrimSpace(out))
}

func TestDecryptBlockCmd_KnownAnswer(t *testing.T) {
	out := executeCommand(t, "decrypt-aes-block",
		"--key-hex", "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		"--block-hex", "8ea2b7ca516745bfeafc49904b496089")

	assert.Equal(t, "00112233445566778899aabbccddeeff", strings.TrimSpace(out))
}

func TestExpandKeyCmd(t *testing.T) {
	out := executeCommand(t, "expand-aes-key", "--key-hex", "2b7e151628aed2a6abf7158809cf4f3c")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "round[ 0] 2b7e151628aed2a6abf7158809cf4f3c", lines[0])
	assert.Equal(t, "round[10] d014f9a8c9ee2589e13f0cc8b6630ca6", lines[10])
}

func TestEncryptDecryptAESCmd_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key.bin")
	inputPath := filepath.Join(dir, "plain.txt")
	encryptedPath := filepath.Join(dir, "plain.enc")
	decryptedPath := filepath.Join(dir, "plain.dec")

	message := []byte("This is a super secret text that no one should read!")
	require.NoError(t, os.WriteFile(keyPath, []byte("TopSecretPasswor"), 0600))
	require.NoError(t, os.WriteFile(inputPath, message, 0600))

	executeCommand(t, "encrypt-aes", "--input-file", inputPath, "--output-file", encryptedPath, "--symmetric-key", keyPath)
	encrypted, err := os.ReadFile(encryptedPath)
	require.NoError(t, err)
	assert.Len(t, encrypted, 64)

	executeCommand(t, "decrypt-aes", "--input-file", encryptedPath, "--output-file", decryptedPath, "--symmetric-key", keyPath)
	decrypted, err := os.ReadFile(decryptedPath)
	require.NoError(t, err)
	assert.Equal(t, message, decrypted)
}

func TestGenerateAESKeysCmd(t *testing.T) {
	dir := t.TempDir()

	executeCommand(t, "generate-aes-keys", "--key-size", "192", "--key-dir", dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "-symmetric-key.bin"))

	key, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Len(t, key, 24)
}

func TestInitAESCommands_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "cli.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("cipher:\n  padding: ansi\n"), 0600))

	rootCmd := &cobra.Command{Use: "aes-cli"}
	require.NoError(t, InitAESCommands(rootCmd))
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", configPath, "expand-aes-key", "--key-hex", "00"})

	assert.Error(t, rootCmd.Execute())
}
