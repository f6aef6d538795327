package fileio

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadText reads a whole message file.
func ReadText(filename string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return "", fmt.Errorf("unable to read file: %w", err)
	}
	return string(data), nil
}

// WriteText writes a message file readable only by its owner.
func WriteText(filename, text string) error {
	if err := os.WriteFile(filepath.Clean(filename), []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
