// Package cryptoutil provides the digests logged for produced images.
package cryptoutil

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"

	commonerrors "github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
)

// HashAlgorithm represents supported hash algorithms
type HashAlgorithm string

const (
	// MD5 algorithm, for comparing against vendor published sums
	MD5 HashAlgorithm = "md5"

	// SHA1 algorithm
	SHA1 HashAlgorithm = "sha1"

	// SHA256 algorithm
	SHA256 HashAlgorithm = "sha256"

	// BLAKE2b algorithm with a 256-bit digest
	BLAKE2b HashAlgorithm = "blake2b"
)

// Hasher provides an interface for hashing operations
type Hasher interface {
	// Algorithm returns the algorithm the hasher was built for
	Algorithm() HashAlgorithm

	// Hash hashes the provided data
	Hash(data []byte) (string, error)

	// HashReader hashes data from a reader
	HashReader(reader io.Reader) (string, error)

	// Verify checks if the provided hash matches the calculated hash for the data
	Verify(data []byte, expectedHash string) (bool, error)
}

type hasherImpl struct {
	algorithm HashAlgorithm
	newHash   func() (hash.Hash, error)
}

func wrapStd(fn func() hash.Hash) func() (hash.Hash, error) {
	return func() (hash.Hash, error) { return fn(), nil }
}

// NewHasher creates a new Hasher for the specified algorithm
func NewHasher(algorithm HashAlgorithm) (Hasher, error) {
	var newHashFunc func() (hash.Hash, error)

	name := HashAlgorithm(strings.ToLower(string(algorithm)))
	switch name {
	case MD5:
		newHashFunc = wrapStd(md5.New)
	case SHA1:
		newHashFunc = wrapStd(sha1.New)
	case SHA256:
		newHashFunc = wrapStd(sha256.New)
	case BLAKE2b:
		newHashFunc = func() (hash.Hash, error) { return blake2b.New256(nil) }
	default:
		return nil, fmt.Errorf("%w: unsupported hash algorithm '%s'", commonerrors.ErrInvalidArgument, algorithm)
	}

	return &hasherImpl{
		algorithm: name,
		newHash:   newHashFunc,
	}, nil
}

func (h *hasherImpl) Algorithm() HashAlgorithm {
	return h.algorithm
}

// Hash hashes the provided data
func (h *hasherImpl) Hash(data []byte) (string, error) {
	hasher, err := h.newHash()
	if err != nil {
		return "", fmt.Errorf("%w: %v", commonerrors.ErrInvalidHasher, err)
	}
	if _, err := hasher.Write(data); err != nil {
		return "", fmt.Errorf("hash operation failed: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// HashReader hashes data from a reader
func (h *hasherImpl) HashReader(reader io.Reader) (string, error) {
	hasher, err := h.newHash()
	if err != nil {
		return "", fmt.Errorf("%w: %v", commonerrors.ErrInvalidHasher, err)
	}
	if _, err := io.Copy(hasher, reader); err != nil {
		return "", fmt.Errorf("hash operation failed: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Verify checks if the provided hash matches the calculated hash for the data
func (h *hasherImpl) Verify(data []byte, expectedHash string) (bool, error) {
	actualHash, err := h.Hash(data)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(actualHash, expectedHash), nil
}
