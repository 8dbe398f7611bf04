package types

// Configuration backup layout
const (
	ConfigHeaderSize   = 0x18 // 24 bytes
	ConfigOffsetMagic  = 0
	ConfigOffsetLength = 4
	ConfigOffsetCksum  = 8
	ConfigOffsetVer    = 12
	ConfigOffsetPad    = 16
	ConfigPadSize      = 8

	// MaxBufferSize caps both the input read and the wrapped image
	MaxBufferSize = 0x20000
)

// Cipher constants
const (
	BlockSize = 8
	KeySeed   = "NtgrBak"
)

// Model magic numbers
const (
	MagicUnknown    uint32 = 0x00000000
	MagicWNDR4500v2 uint32 = 0x62744915

	ModelNameSize = 16
)
