// Package storage implements the whole-file JSON durability model: every
// mutation rewrites the full collection, hardened with write-to-temp-then-rename
// so a concurrent or interrupted write never leaves a corrupt partial file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrPersistence wraps file I/O failures. The in-memory state is not rolled
// back when a write fails; callers re-attempt the write.
var ErrPersistence = errors.New("persistence_error")

// Load reads a JSON document into v. A missing file is reported as
// fs.ErrNotExist so callers can start from an empty collection.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return fmt.Errorf("%w: read %s: %v", ErrPersistence, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrPersistence, path, err)
	}
	return nil
}

// Save rewrites the whole document. The temp file lives in the target
// directory so the rename stays on one filesystem.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", ErrPersistence, path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrPersistence, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", ErrPersistence, path, err)
	}
	return nil
}
