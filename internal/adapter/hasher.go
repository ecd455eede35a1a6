package adapter

import (
	"crypto/md5" //nolint:gosec // md5 is a content fingerprint here, not a security primitive.
	"crypto/sha1" //nolint:gosec // same as above.
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/zeebo/xxh3"

	m "dupes.dev/pkg/dupes/internal/model"
)

// ChunkSize is the number of bytes read from a file per digest update.
const ChunkSize = 4096

// NewHash returns a fresh streaming digest for the given algorithm.
func NewHash(algorithm m.HashAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case m.HashMD5:
		return md5.New(), nil //nolint:gosec
	case m.HashSHA1:
		return sha1.New(), nil //nolint:gosec
	case m.HashSHA256:
		return sha256.New(), nil
	case m.HashXXH3:
		return xxh3.New(), nil
	}

	return nil, fmt.Errorf("%w: %q", m.ErrUnknownHashAlgorithm, algorithm)
}

// HashReader consumes r in ChunkSize pieces and returns the hex digest of
// everything read. Memory use does not depend on the length of r.
func HashReader(r io.Reader, algorithm m.HashAlgorithm) (m.Fingerprint, error) {
	digest, err := NewHash(algorithm)
	if err != nil {
		return "", err
	}

	buf := make([]byte, ChunkSize)

	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			_, _ = digest.Write(buf[:n])
		}

		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return "", readErr
		}
	}

	return m.Fingerprint(hex.EncodeToString(digest.Sum(nil))), nil
}
