// Package fileio reads codec inputs from disk and writes codec outputs back.
package fileio

import (
	"os"
	"path/filepath"

	"github.com/chronos-tachyon/huffman/v2"

	"github.com/nuclio/errors"
)

// ErrOutput is the root cause of every WriteAll failure.
var ErrOutput = errors.New("output error")

// ReadAll returns the full contents of the file at path.  Failures have
// huffman.ErrInput as their root cause.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(huffman.ErrInput, "Failed to read %s: %s", path, err.Error())
	}
	return data, nil
}

// WriteAll replaces the file at path with data.  The data is written to a
// temporary file in the same directory and renamed into place, so path is
// either left untouched or holds all of data.
func WriteAll(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return errors.Wrapf(ErrOutput, "Failed to create temporary file for %s: %s", path, err.Error())
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName) // nolint: errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() // nolint: errcheck
		return errors.Wrapf(ErrOutput, "Failed to write %s: %s", tmpName, err.Error())
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(ErrOutput, "Failed to close %s: %s", tmpName, err.Error())
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.Wrapf(ErrOutput, "Failed to set mode of %s: %s", tmpName, err.Error())
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(ErrOutput, "Failed to rename %s to %s: %s", tmpName, path, err.Error())
	}

	return nil
}
