// File: pkg/util/io.go
package util

import (
	"encoding/binary"
	"fmt"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
)

// ------------------ Endian Helpers ------------------

// ReadUint32BE reads a big-endian uint32 from 4 bytes
func ReadUint32BE(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// PutUint32BE writes v big-endian into the first 4 bytes of b
func PutUint32BE(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// ReadUint32LE reads a little-endian uint32 from 4 bytes
func ReadUint32LE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// ReadUint64BE reads a big-endian uint64 from 8 bytes
func ReadUint64BE(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// ReadBytes returns the length bytes at offset after a bounds check. The
// result shares memory with b.
func ReadBytes(b []byte, offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(b) {
		return nil, types.NewNetgearError(types.ErrTruncated, "ReadBytes", "buffer", fmt.Sprintf("offset=%d length=%d size=%d", offset, length, len(b)))
	}
	return b[offset : offset+length], nil
}

// IsZero reports whether every byte of b is zero
func IsZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// IsAligned checks whether a given length is a multiple of blockSize
func IsAligned(length int, blockSize int) bool {
	return length%blockSize == 0
}
