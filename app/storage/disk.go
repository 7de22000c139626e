package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk is the write target for uploaded images. Exactly one disk is chosen
// per deployment: the public asset directory served by the app itself, or
// the S3-backed storage disk.
type Disk interface {
	Put(ctx context.Context, relPath string, body io.Reader, contentType string) error
	// Delete is best-effort at every call site; a missing file is not an error.
	Delete(ctx context.Context, relPath string) error
	URL(relPath string) string
}

// LocalDisk writes directly under the deployed static-asset root, so files
// are publicly served without any extra step.
type LocalDisk struct {
	Root    string
	BaseURL string
}

func NewLocalDisk(root, baseURL string) *LocalDisk {
	return &LocalDisk{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (d *LocalDisk) Put(_ context.Context, relPath string, body io.Reader, _ string) error {
	fullPath := filepath.Join(d.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", relPath, err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", relPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}

func (d *LocalDisk) Delete(_ context.Context, relPath string) error {
	err := os.Remove(filepath.Join(d.Root, filepath.FromSlash(relPath)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *LocalDisk) URL(relPath string) string {
	return d.BaseURL + "/" + relPath
}
