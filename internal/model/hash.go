package model

import (
	"errors"
	"fmt"
	"strings"
)

// HashAlgorithm names the digest used to fingerprint file content.
type HashAlgorithm string

const (
	// HashMD5 is the default algorithm.
	HashMD5 HashAlgorithm = "md5"
	// HashSHA1 selects SHA-1.
	HashSHA1 HashAlgorithm = "sha1"
	// HashSHA256 selects SHA-256.
	HashSHA256 HashAlgorithm = "sha256"
	// HashXXH3 selects the 64-bit non-cryptographic xxh3 digest.
	HashXXH3 HashAlgorithm = "xxh3"
)

// DefaultHashAlgorithm is used when no algorithm is configured.
const DefaultHashAlgorithm = HashMD5

// ErrUnknownHashAlgorithm is returned for algorithm names outside the supported set.
var ErrUnknownHashAlgorithm = errors.New("unknown hash algorithm")

// HashAlgorithms lists every supported algorithm.
func HashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{HashMD5, HashSHA1, HashSHA256, HashXXH3}
}

// ParseHashAlgorithm converts a user supplied name into a HashAlgorithm.
// An empty name yields DefaultHashAlgorithm.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	normalized := HashAlgorithm(strings.ToLower(strings.TrimSpace(name)))
	if normalized == "" {
		return DefaultHashAlgorithm, nil
	}

	for _, algorithm := range HashAlgorithms() {
		if normalized == algorithm {
			return algorithm, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, name)
}
