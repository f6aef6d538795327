// Package config provides functionality for loading and managing application configuration.
//
// This package handles loading settings from YAML files and environment variables,
// validating them and making them accessible to the CLI and the REST server.
// Logger, database and RSA key generation settings are defined here.
package config
