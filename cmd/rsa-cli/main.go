// Package main is the entry point for the rsa-cli application.
// It registers the RSA key generation, encryption, decryption, signing and verification
// sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/thaikhuong62000/RSA/cmd/rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA command-line tool",
		Long: `rsa-cli is a command-line tool for textbook RSA without padding or hashing.
Generates keypairs, encrypts and decrypts text files, and signs and verifies them.

Key files hold two decimal integers, one per line: (e, n) for .pub and (d, n) for .pri.
Cipher and signature files hold one decimal integer per line.`,
		SilenceUsage: true,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
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
