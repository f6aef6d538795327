package commands

import (
	"fmt"

	"github.com/thaikhuong62000/RSA/internal/pkg/config"
	"github.com/thaikhuong62000/RSA/internal/pkg/logger"
)

// File extensions written and read by the commands
const (
	PublicKeyExtension  = ".pub"
	PrivateKeyExtension = ".pri"
	CipherExtension     = ".enc"
	DecryptedExtension  = ".dec"
	SignatureExtension  = ".sig"
	VerifiedExtension   = ".veri"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// orDefault returns value, or fallback when value is empty
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
