package netgear

import (
	"fmt"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/util"
)

// Header is the 24-byte big-endian header at the start of a decrypted
// configuration backup
type Header struct {
	Magic    uint32
	Length   uint32 // header plus payload
	Checksum uint32
	Version  uint32
	Reserved [types.ConfigPadSize]byte
}

// ReadHeader decodes the header at the start of a decrypted buffer
func ReadHeader(data []byte) (*Header, error) {
	raw, err := util.ReadBytes(data, 0, types.ConfigHeaderSize)
	if err != nil {
		return nil, types.NewNetgearError(types.ErrTruncated, "ReadHeader", "config", fmt.Sprintf("size=%d", len(data)))
	}

	h := &Header{
		Magic:    util.ReadUint32BE(raw[types.ConfigOffsetMagic:]),
		Length:   util.ReadUint32BE(raw[types.ConfigOffsetLength:]),
		Checksum: util.ReadUint32BE(raw[types.ConfigOffsetCksum:]),
		Version:  util.ReadUint32BE(raw[types.ConfigOffsetVer:]),
	}
	copy(h.Reserved[:], raw[types.ConfigOffsetPad:])
	return h, nil
}

// Put writes the magic, length and version fields into the first 24 bytes of
// data. The checksum field and the reserved bytes are left alone.
func (h *Header) Put(data []byte) error {
	if len(data) < types.ConfigHeaderSize {
		return types.NewNetgearError(types.ErrTruncated, "PutHeader", "config", fmt.Sprintf("size=%d", len(data)))
	}
	util.PutUint32BE(data[types.ConfigOffsetMagic:], h.Magic)
	util.PutUint32BE(data[types.ConfigOffsetLength:], h.Length)
	util.PutUint32BE(data[types.ConfigOffsetVer:], h.Version)
	return nil
}

// PayloadSize returns the payload size the header declares. A length below
// the header size wraps around, as it does on the router.
func (h *Header) PayloadSize() uint32 {
	return h.Length - types.ConfigHeaderSize
}

// Model returns the model name registered for the header magic
func (h *Header) Model() string {
	return ModelName(h.Magic)
}

// ReservedClear reports whether the reserved bytes 16-23 are all zero
func (h *Header) ReservedClear() bool {
	return util.IsZero(h.Reserved[:])
}
