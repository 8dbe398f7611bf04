package netgear

import (
	"fmt"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/crypto"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/util"
)

// MaxBufferSize is the largest configuration image handled, input or output
const MaxBufferSize = types.MaxBufferSize

// Backup is a decrypted configuration backup
type Backup struct {
	Header  *Header
	Payload []byte // the embedded NVRAM image
}

// WrapOptions holds the header values used by Wrap. Both fields must be set
// explicitly; zero is a valid magic and a valid version.
type WrapOptions struct {
	Magic      uint32
	Version    uint32
	HasMagic   bool
	HasVersion bool
}

// SetModel sets the magic derived from a router model name
func (o *WrapOptions) SetModel(name string) {
	o.SetMagic(DeriveMagic(name))
}

// SetMagic sets the header magic directly
func (o *WrapOptions) SetMagic(magic uint32) {
	o.Magic = magic
	o.HasMagic = true
}

// SetVersion sets the configuration version
func (o *WrapOptions) SetVersion(version uint32) {
	o.Version = version
	o.HasVersion = true
}

// Decrypt decrypts a whole backup without looking at its header
func Decrypt(input []byte) ([]byte, error) {
	out, err := crypto.Run(crypto.NewKeyStream(), input, crypto.Decrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt backup: %w", err)
	}
	return out, nil
}

// Extract decrypts a backup, validates its header and returns the embedded
// payload. With force the checksum and length checks are skipped and the
// payload is truncated to what the input actually holds.
func Extract(input []byte, force bool) (*Backup, error) {
	dec, err := Decrypt(input)
	if err != nil {
		return nil, err
	}

	h, err := ReadHeader(dec)
	if err != nil {
		return nil, err
	}

	if !force && !util.VerifyChecksum(dec) {
		return nil, types.NewNetgearError(types.ErrChecksumMismatch, "Extract", "config", fmt.Sprintf("stored=%#04x", h.Checksum))
	}

	size := h.PayloadSize()
	if !force {
		if size > MaxBufferSize {
			return nil, types.NewNetgearError(types.ErrTooLarge, "Extract", "config",
				fmt.Sprintf("%d bytes, max: %d bytes", size, MaxBufferSize))
		}
		if expected := len(input) - types.ConfigHeaderSize; int64(size) != int64(expected) {
			return nil, types.NewNetgearError(types.ErrLengthMismatch, "Extract", "config",
				fmt.Sprintf("expecting %d bytes instead of %d bytes", size, expected))
		}
	}

	if avail := len(dec) - types.ConfigHeaderSize; int64(size) > int64(avail) {
		size = uint32(avail)
	}

	payload := make([]byte, size)
	copy(payload, dec[types.ConfigHeaderSize:])

	return &Backup{Header: h, Payload: payload}, nil
}

// Wrap builds an encrypted backup around payload. The payload length must
// keep the image a multiple of 8 bytes and within MaxBufferSize.
func Wrap(payload []byte, opts WrapOptions) ([]byte, error) {
	if !opts.HasMagic || !opts.HasVersion {
		var missing string
		switch {
		case !opts.HasMagic && !opts.HasVersion:
			missing = "model and version"
		case !opts.HasMagic:
			missing = "model"
		default:
			missing = "version"
		}
		return nil, types.NewNetgearError(types.ErrMissingOption, "Wrap", "config", missing)
	}

	total := len(payload) + types.ConfigHeaderSize
	if total > MaxBufferSize {
		return nil, types.NewNetgearError(types.ErrTooLarge, "Wrap", "config",
			fmt.Sprintf("%d bytes, max: %d bytes", total, MaxBufferSize))
	}

	buf := make([]byte, total)
	copy(buf[types.ConfigHeaderSize:], payload)

	h := &Header{
		Magic:   opts.Magic,
		Length:  uint32(total),
		Version: opts.Version,
	}
	if err := h.Put(buf); err != nil {
		return nil, err
	}
	util.ApplyChecksum(buf)

	out, err := crypto.Run(crypto.NewKeyStream(), buf, crypto.Encrypt)
	if err != nil {
		return nil, fmt.Errorf("encrypt backup: %w", err)
	}
	return out, nil
}
