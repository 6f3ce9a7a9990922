package entities

import (
	"time"
)

// Digest is a fixed-length content fingerprint. Two files with equal
// digests are treated as duplicates; the collision risk is an accepted
// limitation.
type Digest string

// FileInfo holds a scanned file together with the metadata the engine
// and the report need.
type FileInfo struct {
	Path     Path      `json:"path"`
	Size     int64     `json:"size_bytes"`
	Digest   Digest    `json:"digest"`
	ModTime  time.Time `json:"mod_time"`
	DeviceID uint64    `json:"device_id"`
	Inode    uint64    `json:"inode"`
}

// FileGroup is an ordered set of files sharing one digest. Order is
// discovery order until a keeper strategy re-sorts it.
type FileGroup struct {
	Count int64       `json:"count"`
	Files []*FileInfo `json:"files"`
}

// Add appends a file to the group.
func (fg *FileGroup) Add(f *FileInfo) {
	fg.Files = append(fg.Files, f)
	fg.Count++
}

// Paths returns the member paths in group order.
func (fg *FileGroup) Paths() []Path {
	out := make([]Path, 0, len(fg.Files))
	for _, f := range fg.Files {
		out = append(out, f.Path)
	}
	return out
}
