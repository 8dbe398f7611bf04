package nvram

import (
	"fmt"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/util"
)

// Header is the 20-byte header of an NVRAM image
type Header struct {
	Magic  uint32
	Length uint32 // header plus data
	CRC    uint8
	Field1 uint8
	Field2 [SizeField2]byte
}

// ReadHeader decodes the header at the start of an image
func ReadHeader(image []byte) (*Header, error) {
	raw, err := util.ReadBytes(image, 0, HeaderSize)
	if err != nil {
		return nil, types.NewNetgearError(types.ErrTruncated, "ReadHeader", "nvram", fmt.Sprintf("size=%d", len(image)))
	}

	h := &Header{
		Magic:  util.ReadUint32BE(raw[IndexMagic:]),
		Length: util.ReadUint32BE(raw[IndexLength:]),
		CRC:    raw[IndexCRC],
		Field1: raw[IndexField1],
	}
	copy(h.Field2[:], raw[IndexField2:])
	return h, nil
}

// Put writes every header field into the first 20 bytes of image
func (h *Header) Put(image []byte) error {
	if len(image) < HeaderSize {
		return types.NewNetgearError(types.ErrTruncated, "PutHeader", "nvram", fmt.Sprintf("size=%d", len(image)))
	}
	util.PutUint32BE(image[IndexMagic:], h.Magic)
	util.PutUint32BE(image[IndexLength:], h.Length)
	image[IndexCRC] = h.CRC
	image[IndexField1] = h.Field1
	copy(image[IndexField2:HeaderSize], h.Field2[:])
	return nil
}

// newHeader returns a header with the fixed field values used on wrap
func newHeader(length uint32) *Header {
	h := &Header{
		Magic:  Magic,
		Length: length,
		Field1: Field1,
	}
	for i := range h.Field2 {
		h.Field2[i] = Field2
	}
	return h
}
