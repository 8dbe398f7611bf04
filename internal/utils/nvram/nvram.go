package nvram

import (
	"fmt"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
)

// Extract converts a raw NVRAM image into editable text: each NUL separator
// becomes a newline. A NUL that follows a newline already written to the
// output is dropped, which collapses the trailing NUL runs. With force the
// magic and CRC checks are skipped and oversized lengths are truncated.
func Extract(image []byte, force bool) (string, *Header, error) {
	h, err := ReadHeader(image)
	if err != nil {
		return "", nil, err
	}

	if !force && h.Magic != Magic {
		return "", h, types.NewNetgearError(types.ErrBadMagic, "Extract", "nvram", fmt.Sprintf("magic=%08x", h.Magic))
	}

	length := int64(h.Length)
	if length > MaxDataSize {
		if !force {
			return "", h, types.NewNetgearError(types.ErrTooLarge, "Extract", "nvram",
				fmt.Sprintf("length=%d max=%d", length, MaxDataSize))
		}
		length = MaxDataSize
	}
	if length > int64(len(image)) {
		if !force {
			return "", h, types.NewNetgearError(types.ErrLengthMismatch, "Extract", "nvram",
				fmt.Sprintf("length=%d image=%d", length, len(image)))
		}
		length = int64(len(image))
	}

	if !force {
		if sum := CRC8(image); sum != h.CRC {
			return "", h, types.NewNetgearError(types.ErrBadCRC, "Extract", "nvram",
				fmt.Sprintf("stored=%02x calculated=%02x", h.CRC, sum))
		}
	}

	out := make([]byte, 0, max(length-HeaderSize, 0))
	for i := int64(HeaderSize); i < length; i++ {
		c := image[i]
		if c != 0 {
			out = append(out, c)
			continue
		}
		if len(out) == 0 || out[len(out)-1] != '\n' {
			out = append(out, '\n')
		}
	}

	return string(out), h, nil
}

// Wrap converts text into a full NVRAM image: newlines become NUL
// separators, the data is NUL padded to a 4-byte boundary, the header and
// CRC are filled in and the rest of the image is set to 0xFF.
func Wrap(text string) ([]byte, error) {
	aligned := len(text)
	if rem := aligned % DataAlign; rem != 0 {
		aligned += DataAlign - rem
	}
	// The declared length covers the header and must stay within what
	// Extract accepts.
	if aligned > MaxTextSize {
		return nil, types.NewNetgearError(types.ErrTooLarge, "Wrap", "nvram",
			fmt.Sprintf("%d bytes, max: %d bytes", aligned, MaxTextSize))
	}

	image := make([]byte, ImageSize)
	j := HeaderSize
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			image[j] = 0
		} else {
			image[j] = text[i]
		}
		j++
	}
	for j%DataAlign != 0 {
		image[j] = 0
		j++
	}

	h := newHeader(uint32(j))
	if err := h.Put(image); err != nil {
		return nil, err
	}
	image[IndexCRC] = CRC8(image)

	for k := j; k < ImageSize; k++ {
		image[k] = Padding
	}

	return image, nil
}
