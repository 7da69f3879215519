package testing

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/MGTheTrain/aes-core/internal/pkg/config"
	"github.com/MGTheTrain/aes-core/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// DecodeHex decodes a hex test vector. Spaces are ignored so vectors can be
// copied from FIPS-197 in their grouped form.
func DecodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)

	return b
}
