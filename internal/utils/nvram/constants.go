package nvram

// NVRAM image layout
const (
	ImageSize = 0x10000

	IndexMagic  = 0 // Bytes 0-3
	IndexLength = 4 // Bytes 4-7
	IndexCRC    = 8 // Byte 8
	IndexField1 = 9 // Byte 9
	IndexField2 = 10
	IndexData   = 20

	SizeField2 = 10

	HeaderSize  = IndexData
	MaxDataSize = ImageSize - IndexData // largest declared length

	// MaxTextSize is the largest aligned data region Wrap produces
	MaxTextSize = MaxDataSize - HeaderSize
)

// Fixed header contents
const (
	Magic   uint32 = 0x464C5348 // 'FLSH'
	Field1  uint8  = 0x01
	Field2  uint8  = 0x00
	Padding byte   = 0xFF

	// Data is aligned to this many bytes before the padding starts
	DataAlign = 4
)
