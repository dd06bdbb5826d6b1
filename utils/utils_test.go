package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathExists(t *testing.T) {
	tmpDir := t.TempDir()
	stat, err := PathExists(tmpDir)
	require.Equal(t, nil, err)
	require.Equal(t, true, stat)

	stat, err = PathExists(tmpDir + "/non-existent-path")
	require.Equal(t, nil, err)
	require.Equal(t, false, stat)

	file := filepath.Join(tmpDir, "1234.jpeg")
	fd, err := os.Create(file)
	require.Equal(t, nil, err)
	fd.Close()

	stat, err = PathExists(file)
	require.Equal(t, nil, err)
	require.Equal(t, true, stat)
}

func TestFileExtension(t *testing.T) {
	require.Equal(t, "jpeg", FileExtension("https://wimg.example.com/images/1/abc.jpeg"))
	require.Equal(t, "webm", FileExtension("https://wimg.example.com/images/1/abc.webm?1700000000"))
	require.Equal(t, "png", FileExtension("abc.tar.png"))
	require.Equal(t, "", FileExtension("https://wimg.example.com/images/noext"))
}
