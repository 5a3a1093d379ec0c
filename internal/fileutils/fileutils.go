// Package fileutils provides the file operations around a conversion: reading and
// decoding exports, naming targets and creating them without clobbering.
package fileutils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"o2y/internal/models"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrTargetExists is returned when a conversion target already exists and
// overwriting was not requested.
var ErrTargetExists = errors.New("target file already exists")

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// DecodeText turns raw export bytes into trimmed text. Data containing a NUL byte
// is taken to be UTF-16 (byte order from the BOM, little-endian without one);
// anything else must be valid UTF-8, with an optional BOM.
func DecodeText(raw []byte) (string, error) {
	if bytes.IndexByte(raw, 0) >= 0 {
		if len(raw)%2 != 0 {
			return "", fmt.Errorf("invalid UTF-16 input: odd number of bytes (%d)", len(raw))
		}
		decoded, _, err := transform.Bytes(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), raw)
		if err != nil {
			return "", fmt.Errorf("failed to decode UTF-16 input: %w", err)
		}
		return strings.TrimSpace(string(decoded)), nil
	}

	if !utf8.Valid(raw) {
		return "", errors.New("input is neither UTF-8 nor UTF-16")
	}
	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-8 input: %w", err)
	}
	return strings.TrimSpace(string(decoded)), nil
}

// ReadText reads and decodes a bank export. Errors from opening the file are
// wrapped, so errors.Is(err, fs.ErrNotExist) identifies a missing source.
func ReadText(filePath string) (string, error) {
	raw, err := os.ReadFile(filePath) // #nosec G304 -- user-supplied export path
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	text, err := DecodeText(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filePath, err)
	}
	return text, nil
}

// TargetPath derives the output path for source: a case-insensitive ".csv"
// extension is dropped and suffix appended, so "Umsätze.CSV" becomes
// "Umsätze-ynab.csv".
func TargetPath(source, suffix string) string {
	base := source
	if strings.HasSuffix(strings.ToLower(base), ".csv") {
		base = base[:len(base)-len(".csv")]
	}
	return base + suffix
}

// CreateTarget opens path for writing. Unless overwrite is set the file must not
// exist yet; the check and the creation are a single atomic open.
func CreateTarget(path string, overwrite bool) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return nil, err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	file, err := os.OpenFile(path, flags, models.PermissionOutputFile) // #nosec G304 -- derived from the source path
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrTargetExists, path)
		}
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

// ListSourceFiles returns the *.csv files directly inside dirPath, sorted, leaving
// out files whose name already ends in targetSuffix.
func ListSourceFiles(dirPath, targetSuffix string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	lowerSuffix := strings.ToLower(targetSuffix)
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if !strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, lowerSuffix) {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}

	sort.Strings(files)
	return files, nil
}
