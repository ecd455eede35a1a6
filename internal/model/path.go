// Package model defines the data structures for duplicate detection.
package model

// Path represents a file system path.
type Path string

// Fingerprint is the lowercase hex digest of a file's full content.
type Fingerprint string

// HashedFile pairs a discovered file with its content fingerprint.
type HashedFile struct {
	Path        Path
	Fingerprint Fingerprint
}
