// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fileutil provides small file reading helpers with size bounds, used
// by manifest loading to keep untrusted files from exhausting memory.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultReadLimit is the default maximum file size accepted by
// ReadFileLimited (1 MiB), generous for any deployment descriptor.
const DefaultReadLimit = 1 << 20

// ReadFileLimited reads the file at path, rejecting files larger than limit
// bytes. A limit of zero or less applies DefaultReadLimit.
func ReadFileLimited(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultReadLimit
	}

	f, err := os.Open(path) // #nosec G304 - callers validate the path first
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filepath.Base(path), err)
	}
	if info.Size() > limit {
		return nil, fmt.Errorf("%s exceeds maximum size of %d bytes", filepath.Base(path), limit)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return data, nil
}

// FileExists returns true if filename exists in dir and is a regular file.
func FileExists(dir string, filename string) bool {
	info, err := os.Stat(filepath.Join(dir, filename))
	return err == nil && info.Mode().IsRegular()
}
