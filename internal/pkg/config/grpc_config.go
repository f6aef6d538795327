package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GrpcConfig is the configuration of the gRPC server
type GrpcConfig struct {
	Port     string           `mapstructure:"port"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	RSA      RSASettings      `mapstructure:"rsa"`
}

// Validate checks the port and every nested settings block
func (c *GrpcConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.RSA.Validate()
}

// InitializeGrpcConfig loads the gRPC server configuration the same way as InitializeRestConfig.
// The port defaults to 50051.
func InitializeGrpcConfig(path string) (*GrpcConfig, error) {
	var cfg GrpcConfig
	if err := loadConfig(path, "50051", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
