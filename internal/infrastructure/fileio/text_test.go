//go:build unit
// +build unit

package fileio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaikhuong62000/RSA/internal/pkg/testutil"
)

func TestReadWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.dec")
	text := "first line\n\nthird line\n"

	require.NoError(t, WriteText(path, text))

	read, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, text, read)
}

func TestReadText_Existing(t *testing.T) {
	path := testutil.CreateTempFile(t, "plain.txt", []byte("hello"))

	read, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", read)
}

func TestReadText_MissingFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestWriteText_InvalidPath(t *testing.T) {
	err := WriteText(filepath.Join(t.TempDir(), "missing", "out.txt"), "x")
	assert.Error(t, err)
}
