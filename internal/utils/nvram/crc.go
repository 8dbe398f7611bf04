package nvram

import (
	"github.com/snksoft/crc"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/util"
)

// CRC8Params describes the Broadcom NVRAM CRC-8: polynomial 0xD5 processed
// reflected (0xAB), initial value 0xFF, no final xor.
var CRC8Params = &crc.Parameters{
	Width:      8,
	Polynomial: 0xD5,
	ReflectIn:  true,
	ReflectOut: true,
	Init:       0xFF,
	FinalXor:   0x00,
}

var crcTable = crc.NewTable(CRC8Params)

// Sum8 returns the NVRAM CRC-8 of data
func Sum8(data []byte) uint8 {
	return crcTable.CRC8(crcTable.UpdateCrc(crcTable.InitCrc(), data))
}

// CRC8 computes the checksum stored at byte 8 of an image. It covers the
// header bytes after the CRC field and then the data up to the declared
// length, clamped to the buffer.
func CRC8(image []byte) uint8 {
	if len(image) < HeaderSize {
		return Sum8(image)
	}

	length := int64(util.ReadUint32BE(image[IndexLength:]))
	if length > int64(len(image)) {
		length = int64(len(image))
	}

	c := crcTable.InitCrc()
	c = crcTable.UpdateCrc(c, image[IndexField1:HeaderSize])
	if length > HeaderSize {
		c = crcTable.UpdateCrc(c, image[HeaderSize:length])
	}
	return crcTable.CRC8(c)
}
