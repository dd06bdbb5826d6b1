package utils

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// PathExists reports whether path exists, distinguishing "not there"
// from errors like permission failures on a parent directory.
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FileExtension returns the trailing extension of a media URL with any
// query string stripped, e.g. ".../abc.jpeg?x=1" yields "jpeg". Empty
// when the path carries no dot.
func FileExtension(rawURL string) string {
	trimmed := rawURL
	if i := strings.Index(trimmed, "?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	if i := strings.LastIndex(trimmed, "."); i >= 0 {
		return trimmed[i+1:]
	}
	return ""
}
