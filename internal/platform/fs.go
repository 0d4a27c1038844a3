package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrDestinationExists is returned by MoveFile when dst is already present.
var ErrDestinationExists = errors.New("destination already exists")

// Exists reports whether path exists. Stat errors other than "not exist"
// count as existing so callers do not overwrite what they cannot inspect.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// MoveFile moves src to dst, creating dst's parent directories. It never
// overwrites: an existing dst yields ErrDestinationExists. When rename fails
// (e.g. across devices) the file is copied with its mode and src removed.
func MoveFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("moving %s to %s: %w", src, dst, ErrDestinationExists)
	}
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("moving %s: %w", src, err)
	}
	if info.IsDir() {
		return fmt.Errorf("moving %s: is a directory", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst, info.Mode().Perm()); err != nil {
		os.Remove(dst) // best-effort
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("removing %s after copy: %w", src, err)
	}
	return nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
