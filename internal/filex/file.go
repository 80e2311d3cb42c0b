// Package filex handles report photos on disk: loading a local image as the
// plain base64 string the API expects, and writing a fetched photo back out.
package filex

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxPhotoBytes caps the size of a photo attached to a report. The API takes
// the image inline as a JSON field, so oversized files are rejected up front.
const MaxPhotoBytes = 5 << 20

// LoadPhotoBase64 reads the image at path and returns it as a plain base64
// string (no data: prefix). Only JPEG and PNG content is accepted.
func LoadPhotoBase64(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxPhotoBytes {
		return "", fmt.Errorf("photo %s is %d bytes, max is %d", path, info.Size(), MaxPhotoBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	contentType := http.DetectContentType(data)
	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return "", fmt.Errorf("unsupported photo type %s (want JPEG or PNG)", contentType)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// SaveBase64Photo decodes foto (plain base64, with or without a
// "data:image/...;base64," prefix) and writes it into dir under name,
// choosing the extension from the image content. Returns the written path.
func SaveBase64Photo(dir, name, foto string) (string, error) {
	if i := strings.Index(foto, ";base64,"); strings.HasPrefix(foto, "data:") && i >= 0 {
		foto = foto[i+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(foto)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	ext := ".jpg"
	if http.DetectContentType(data) == "image/png" {
		ext = ".png"
	}

	path := filepath.Join(dir, name+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// EnsureSubDir creates (if needed) a subdirectory of the working directory
// and returns its absolute path.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
