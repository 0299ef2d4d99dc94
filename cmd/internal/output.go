package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	ErrOutputExists = errors.New("output file already exists")
)

// WriteFile writes data to path by way of a temporary file in the same directory, so a failed write never leaves a partial output.
// An existing file at path is only replaced when overwrite is true.
func WriteFile(path string, data []byte, perm fs.FileMode, overwrite bool) (err error) {
	if !overwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".xor1-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting mode of %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return placeFile(tmpName, path, overwrite)
}

// placeFile moves the finished temp file to path.
// Without overwrite a hard link is used, which fails if path appeared after the earlier check.
func placeFile(tmpName, path string, overwrite bool) error {
	if overwrite {
		if err := os.Rename(tmpName, path); err != nil {
			return fmt.Errorf("moving output to %s: %w", path, err)
		}
		return nil
	}
	if err := os.Link(tmpName, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return fmt.Errorf("moving output to %s: %w", path, err)
	}
	if err := os.Remove(tmpName); err != nil {
		return fmt.Errorf("removing temporary file: %w", err)
	}
	return nil
}
