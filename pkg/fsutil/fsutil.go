// Package fsutil writes generated files. Writes go through a temp file in
// the target directory and a rename, so an existing file is either fully
// replaced or left untouched.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode of generated files (world-readable).
const DefaultFileMode os.FileMode = 0644

// defaultDirMode is used when an output directory has to be created.
const defaultDirMode os.FileMode = 0755

// ErrIsDirectory indicates the output path names a directory.
var ErrIsDirectory = errors.New("path is a directory")

// EnsureDir creates dir and its parents if they are missing.
func EnsureDir(ctx context.Context, dir string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("ensure dir: %w", ctx.Err())
	default:
	}

	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

// WriteAtomic replaces path with content. An existing file is overwritten
// without prompting. If mode is 0, DefaultFileMode is used.
//
// On error the temp file is removed and any previous file is left intact.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("write atomic: %w", ctx.Err())
	default:
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	if stat, err := os.Stat(path); err == nil && stat.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
