package fileio

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
)

// maxLineSize fits the decimal form of a 16384-bit modulus with room to spare.
const maxLineSize = 1 << 20

// WriteIntegers writes one decimal integer per line.
func WriteIntegers(filename string, values []*big.Int) error {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	if err := FormatIntegers(file, values); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// FormatIntegers writes one decimal integer per line to w.
func FormatIntegers(w io.Writer, values []*big.Int) error {
	bw := bufio.NewWriter(w)
	for i, v := range values {
		if v == nil {
			return fmt.Errorf("value %d is nil", i)
		}
		if _, err := bw.WriteString(v.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadIntegers reads every whitespace-separated decimal integer of a file.
func ReadIntegers(filename string) ([]*big.Int, error) {
	file, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("unable to read file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	values, err := ParseIntegers(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return values, nil
}

// ParseIntegers reads whitespace-separated non-negative decimal integers.
// Blank lines are skipped; any other token fails with ErrMalformedPersistedValue.
func ParseIntegers(r io.Reader) ([]*big.Int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var values []*big.Int
	line := 0
	for scanner.Scan() {
		line++
		for _, token := range strings.Fields(scanner.Text()) {
			v, err := ParseInteger(token)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan integers: %w", err)
	}
	return values, nil
}

// ParseInteger parses a single non-negative decimal integer made of ASCII digits only.
func ParseInteger(token string) (*big.Int, error) {
	if token == "" {
		return nil, fmt.Errorf("empty value: %w", cryptoalg.ErrMalformedPersistedValue)
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%q: %w", token, cryptoalg.ErrMalformedPersistedValue)
		}
	}
	v, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return nil, fmt.Errorf("%q: %w", token, cryptoalg.ErrMalformedPersistedValue)
	}
	return v, nil
}

// ParseIntegerStrings parses every entry of values with ParseInteger.
func ParseIntegerStrings(values []string) ([]*big.Int, error) {
	out := make([]*big.Int, 0, len(values))
	for i, s := range values {
		v, err := ParseInteger(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// IntegerStrings renders values as decimal strings.
func IntegerStrings(values []*big.Int) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
