// Package hasher computes content digests of regular files.
package hasher

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/svalverde/dupscan/internal/entities"
)

// FileStats carries the metadata captured while a file is hashed.
type FileStats struct {
	Size     int64
	ModTime  time.Time
	DeviceID uint64
	Inode    uint64
}

// HashFile reads the whole file at path and returns its digest: the
// xxhash-64 of the content, rendered as 16 hex digits. Equal content
// always produces equal digests regardless of path. The file is opened,
// fully read and closed within the call; nothing is cached afterwards.
// A path that cannot be opened or read fails with a FileAccessError.
func HashFile(path entities.Path) (entities.Digest, FileStats, error) {
	file, err := os.Open(string(path))
	if err != nil {
		return "", FileStats{}, &entities.FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", FileStats{}, &entities.FileAccessError{Path: path, Err: err}
	}

	// Whole-file buffering: small-to-medium files are assumed, so one
	// read beats a streaming loop here.
	buf, err := io.ReadAll(file)
	if err != nil {
		return "", FileStats{}, &entities.FileAccessError{Path: path, Err: err}
	}

	stats := FileStats{
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	stats.DeviceID, stats.Inode = sysInfo(string(path))

	digest := entities.Digest(fmt.Sprintf("%016x", xxhash.Sum64(buf)))
	return digest, stats, nil
}

// FilesEqual reports whether the files at a and b have equal content.
//
// Equality is defined through the digest, not by byte comparison: it is
// probabilistic but practically certain, not mathematically exact. A
// colliding pair of distinct files would compare equal.
func FilesEqual(a, b entities.Path) (bool, error) {
	da, _, err := HashFile(a)
	if err != nil {
		return false, err
	}
	db, _, err := HashFile(b)
	if err != nil {
		return false, err
	}
	return da == db, nil
}
