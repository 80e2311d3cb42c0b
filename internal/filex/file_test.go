package filex

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x42}, 32)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x42}, 32)...)
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadPhotoBase64_PNG(t *testing.T) {
	path := writeTemp(t, "a.png", pngBytes)

	got, err := LoadPhotoBase64(path)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(got)
	require.NoError(t, err)
	require.Equal(t, pngBytes, decoded)
}

func TestLoadPhotoBase64_RejectsNonImage(t *testing.T) {
	path := writeTemp(t, "a.txt", []byte("hello, not an image"))

	_, err := LoadPhotoBase64(path)
	require.ErrorContains(t, err, "unsupported photo type")
}

func TestLoadPhotoBase64_RejectsOversized(t *testing.T) {
	big := append(append([]byte(nil), jpegBytes...), bytes.Repeat([]byte{0}, MaxPhotoBytes)...)
	path := writeTemp(t, "big.jpg", big)

	_, err := LoadPhotoBase64(path)
	require.ErrorContains(t, err, "max is")
}

func TestLoadPhotoBase64_MissingFile(t *testing.T) {
	_, err := LoadPhotoBase64(filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
}

func TestSaveBase64Photo_PlainBase64(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveBase64Photo(dir, "reporte-7", base64.StdEncoding.EncodeToString(jpegBytes))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "reporte-7.jpg"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, jpegBytes, data)
}

func TestSaveBase64Photo_DataURI(t *testing.T) {
	dir := t.TempDir()
	foto := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)

	path, err := SaveBase64Photo(dir, "reporte-8", foto)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "reporte-8.png"))
}

func TestSaveBase64Photo_InvalidBase64(t *testing.T) {
	_, err := SaveBase64Photo(t.TempDir(), "x", "!!not-base64!!")
	require.ErrorContains(t, err, "decode photo")
}

func TestEnsureSubDir(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })
	require.NoError(t, os.Chdir(t.TempDir()))

	dir, err := EnsureSubDir("fotos")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
