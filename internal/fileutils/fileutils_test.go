package fileutils_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"o2y/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.csv")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.csv")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))

	testFile := filepath.Join(tmpDir, "test.csv")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	newDir := filepath.Join(t.TempDir(), "new", "nested", "dir")
	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.True(t, fileutils.DirectoryExists(newDir))

	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
}

func encodeUTF16(t *testing.T, endianness unicode.Endianness, bom unicode.BOMPolicy, s string) []byte {
	t.Helper()
	out, err := unicode.UTF16(endianness, bom).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return out
}

func TestDecodeText(t *testing.T) {
	const text = "Nummer;Gläubiger ID\n1;Kømmentar"

	tests := []struct {
		name string
		raw  []byte
	}{
		{"utf-8", []byte(text)},
		{"utf-8 with bom and surrounding whitespace", append([]byte("\xef\xbb\xbf \n"), []byte(text+"\r\n\n")...)},
		{"utf-16 little endian with bom", encodeUTF16(t, unicode.LittleEndian, unicode.UseBOM, text+"\n")},
		{"utf-16 big endian with bom", encodeUTF16(t, unicode.BigEndian, unicode.UseBOM, text)},
		{"utf-16 little endian without bom", encodeUTF16(t, unicode.LittleEndian, unicode.IgnoreBOM, text)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fileutils.DecodeText(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, text, got)
		})
	}
}

func TestDecodeText_Invalid(t *testing.T) {
	_, err := fileutils.DecodeText([]byte{'a', 0xff, 'b'})
	assert.ErrorContains(t, err, "neither UTF-8 nor UTF-16")

	_, err = fileutils.DecodeText([]byte{'a', 0, 'b'})
	assert.ErrorContains(t, err, "odd number of bytes")
}

func TestReadText(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("  a;b\n1;2  \n"), 0600))

	text, err := fileutils.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "a;b\n1;2", text)

	_, err = fileutils.ReadText(filepath.Join(tmpDir, "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestTargetPath(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"export.csv", "export-ynab.csv"},
		{"Umsätze.CSV", "Umsätze-ynab.csv"},
		{"dir/Export.Csv", "dir/Export-ynab.csv"},
		{"export", "export-ynab.csv"},
		{"export.txt", "export.txt-ynab.csv"},
		{".csv", "-ynab.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, fileutils.TargetPath(tt.source, "-ynab.csv"))
		})
	}
}

func TestCreateTarget(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "export-ynab.csv")

	f, err := fileutils.CreateTarget(path, false)
	require.NoError(t, err)
	_, err = f.WriteString("first")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, err := fileutils.CreateTarget(path, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fileutils.ErrTargetExists))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first", string(content))
	})

	t.Run("overwrites when asked", func(t *testing.T) {
		f, err := fileutils.CreateTarget(path, true)
		require.NoError(t, err)
		_, err = f.WriteString("2")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "2", string(content))
	})
}

func TestListSourceFiles(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.csv", "A.CSV", "a-ynab.csv", "notes.txt", "c-YNAB.CSV"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "nested.csv"), 0750))

	files, err := fileutils.ListSourceFiles(tmpDir, "-ynab.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "A.CSV"),
		filepath.Join(tmpDir, "b.csv"),
	}, files)

	_, err = fileutils.ListSourceFiles(filepath.Join(tmpDir, "missing"), "-ynab.csv")
	assert.Error(t, err)
}
