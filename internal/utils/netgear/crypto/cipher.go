package crypto

import (
	"crypto/des"
	"fmt"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/util"
)

// Mode selects the cipher direction
type Mode int

const (
	// Decrypt runs the block cipher backwards
	Decrypt Mode = iota
	// Encrypt runs the block cipher forwards
	Encrypt
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Decrypt:
		return "decrypt"
	case Encrypt:
		return "encrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Run encrypts or decrypts src one 8-byte block at a time with DES in ECB
// mode, drawing a fresh key from ks for every block. The output has the same
// length as the input. Decryption only recovers the plaintext when ks is in
// the same position the encrypting stream started from.
func Run(ks *KeyStream, src []byte, mode Mode) ([]byte, error) {
	if !util.IsAligned(len(src), types.BlockSize) {
		return nil, types.NewNetgearError(types.ErrInvalidLength, "Run", mode.String(), fmt.Sprintf("length=%d", len(src)))
	}
	if mode != Encrypt && mode != Decrypt {
		return nil, fmt.Errorf("unknown cipher mode %d", int(mode))
	}

	dst := make([]byte, len(src))
	for off := 0; off < len(src); off += types.BlockSize {
		key := ks.Next()

		block, err := des.NewCipher(key[:])
		if err != nil {
			return nil, types.NewNetgearError(err, "Run", mode.String(), fmt.Sprintf("block=%d", off/types.BlockSize))
		}

		if mode == Encrypt {
			block.Encrypt(dst[off:off+types.BlockSize], src[off:off+types.BlockSize])
		} else {
			block.Decrypt(dst[off:off+types.BlockSize], src[off:off+types.BlockSize])
		}
	}

	return dst, nil
}
