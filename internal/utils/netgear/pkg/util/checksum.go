// File: pkg/util/checksum.go
package util

import (
	"encoding/binary"
	"math/bits"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
)

// ChecksumInvalid is returned by Checksum for an empty buffer
const ChecksumInvalid uint32 = 0xFFFFFFFF

// Checksum computes the 16-bit one's complement checksum used in configuration
// backup headers. Words are read little-endian regardless of the host.
func Checksum(data []byte) uint32 {
	n := len(data)
	if n <= 0 {
		return ChecksumInvalid
	}

	var sum uint32
	// An odd trailing byte is added on its own before the word pass
	if n%2 != 0 {
		n--
		sum = uint32(data[n])
	}
	for i := 0; i < n; i += 2 {
		sum += uint32(binary.LittleEndian.Uint16(data[i:]))
	}

	ret := sum&0xFFFF + sum>>16
	ret += ret >> 16
	return uint32(bits.ReverseBytes16(^uint16(ret)))
}

// VerifyChecksum reports whether a buffer with its checksum field in place sums to zero
func VerifyChecksum(data []byte) bool {
	return Checksum(data) == 0
}

// ApplyChecksum zeroes the checksum field, computes the checksum and stores it big-endian.
// Buffers too short to hold the field are left untouched.
func ApplyChecksum(data []byte) {
	if len(data) < types.ConfigOffsetCksum+4 {
		return
	}
	field := data[types.ConfigOffsetCksum : types.ConfigOffsetCksum+4]
	PutUint32BE(field, 0)
	PutUint32BE(field, Checksum(data))
}
