// Package plistutil encodes and decodes property lists
package plistutil

import (
	"bytes"
	"fmt"

	"howett.net/plist"

	"github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
)

// Format represents the plist format
type Format int

const (
	// FormatXML is the XML plist format
	FormatXML Format = iota
	// FormatBinary is the binary plist format
	FormatBinary
)

// Marshal encodes data as a property list in the given format
func Marshal(data map[string]interface{}, format Format) ([]byte, error) {
	var buf bytes.Buffer

	var encoder *plist.Encoder
	switch format {
	case FormatBinary:
		encoder = plist.NewEncoderForFormat(&buf, plist.BinaryFormat)
	default:
		encoder = plist.NewEncoderForFormat(&buf, plist.XMLFormat)
		encoder.Indent("\t")
	}

	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("%w: plist: %s", errors.ErrEncodeFailed, err.Error())
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a property list of any supported format into a map
func Unmarshal(data []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	if _, err := plist.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, err.Error())
	}
	return result, nil
}

// FormatToString converts a Format to its string representation
func FormatToString(format Format) string {
	switch format {
	case FormatBinary:
		return "binary"
	default:
		return "xml"
	}
}
