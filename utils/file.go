package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// EnsureArchiveDir creates the local uploads archive directory if it doesn't exist.
func EnsureArchiveDir() error {
	return os.MkdirAll("uploads", os.ModePerm)
}

// SaveUploadLocally copies an uploaded roster file into the local archive.
// Used when no R2 bucket is configured.
func SaveUploadLocally(fileHeader *multipart.FileHeader, key string) error {
	destPath := filepath.Join("uploads", key)
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	return err
}
