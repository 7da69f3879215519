package commands

import (
	"fmt"

	"github.com/MGTheTrain/aes-core/internal/pkg/config"
	"github.com/MGTheTrain/aes-core/internal/pkg/logger"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
