// Package fileio handles reading and writing the user's text files.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// MaxFileSize guards against opening something that is clearly not a
// text document (64 MiB).
const MaxFileSize = 64 << 20

// ReadText reads a UTF-8 text file. Invalid byte sequences are not
// repaired; the caller decides whether to proceed.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("%s: file too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: not valid UTF-8 text", path)
	}
	return string(data), nil
}

// WriteText writes content to path, creating parent directories as
// needed.
func WriteText(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
