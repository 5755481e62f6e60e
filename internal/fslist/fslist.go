// Package fslist enumerates the files of a single directory.
package fslist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileEntry is one regular file found in a directory.
//
// Size holds the low 32 bits of the reported byte count, matching the size
// column shown by the file browser. Files of 4 GiB or more wrap around.
type FileEntry struct {
	Name string
	Size uint32
}

// InvalidPathError reports that a path could not be enumerated as a directory
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid folder path %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid folder path %q", e.Path)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// IsInvalidPath reports whether err is or wraps an InvalidPathError
func IsInvalidPath(err error) bool {
	var ipe *InvalidPathError
	return errors.As(err, &ipe)
}

// ListFiles returns the non-directory entries of path, non-recursively, in
// the order the filesystem yields them. Entries whose metadata cannot be
// read (for example dangling symlinks) are skipped.
//
// It fails with *InvalidPathError when path is empty, missing, or not a
// directory.
func ListFiles(path string) ([]FileEntry, error) {
	if path == "" {
		return nil, &InvalidPathError{Path: path}
	}

	dir, err := os.Open(path)
	if err != nil {
		return nil, &InvalidPathError{Path: path, Err: err}
	}
	defer dir.Close()

	// File.ReadDir keeps directory order; os.ReadDir would sort by name
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, &InvalidPathError{Path: path, Err: err}
	}

	files := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode()&os.ModeSymlink != 0 {
			info, err = os.Stat(filepath.Join(path, entry.Name()))
			if err != nil || info.IsDir() {
				continue
			}
		}

		files = append(files, FileEntry{
			Name: entry.Name(),
			Size: uint32(info.Size()),
		})
	}

	return files, nil
}
