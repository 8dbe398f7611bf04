package tooling

import (
	"fmt"

	commonerrors "github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
	"github.com/deploymenttheory/go-ntgrbak/internal/common/fsutil"
	"github.com/deploymenttheory/go-ntgrbak/internal/common/jsonutil"
	"github.com/deploymenttheory/go-ntgrbak/internal/common/plistutil"
	"github.com/deploymenttheory/go-ntgrbak/internal/common/yamlutil"
	"github.com/deploymenttheory/go-ntgrbak/internal/logger"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/nvram"
)

// DumpFormats lists the encodings accepted by EncodeEntries
var DumpFormats = []string{"json", "yaml", "plist", "xml-plist"}

// ReadEntries reads an NVRAM image and parses its settings
func ReadEntries(input string, force bool) (nvram.Entries, error) {
	image, err := fsutil.ReadInput(input, netgear.MaxBufferSize)
	if err != nil {
		return nil, err
	}
	text, _, err := nvram.Extract(image, force)
	if err != nil {
		return nil, err
	}
	entries := nvram.ParseEntries(text)
	logger.LogDebug("NVRAM settings parsed", map[string]interface{}{
		"entries": len(entries),
		"keys":    len(entries.Keys()),
	})
	return entries, nil
}

// GetSetting returns the value of one NVRAM setting
func GetSetting(input, key string, force bool) (string, error) {
	entries, err := ReadEntries(input, force)
	if err != nil {
		return "", err
	}
	value, ok := entries.Get(key)
	if !ok {
		return "", types.NewNetgearError(commonerrors.ErrInvalidArgument, "Get", "nvram", fmt.Sprintf("no setting %q", key))
	}
	return value, nil
}

// EncodeEntries renders settings as a document in the given format
func EncodeEntries(entries nvram.Entries, format string) ([]byte, error) {
	data := entries.Map()
	switch format {
	case "json", "":
		return jsonutil.Marshal(data)
	case "yaml":
		return yamlutil.Marshal(data)
	case "plist":
		return plistutil.Marshal(data, plistutil.FormatBinary)
	case "xml-plist":
		return plistutil.Marshal(data, plistutil.FormatXML)
	default:
		return nil, fmt.Errorf("%w: %q", commonerrors.ErrUnsupportedFormat, format)
	}
}

// Dump reads an NVRAM image and writes its settings as a document
func Dump(opts RunOptions, format string) ([]byte, error) {
	if format == "plist" && !opts.Force && fsutil.OutputIsTerminal(opts.Output) {
		return nil, fmt.Errorf("nvram dump: %w (use --force or -o)", commonerrors.ErrBinaryToTerminal)
	}

	entries, err := ReadEntries(opts.Input, opts.Force)
	if err != nil {
		return nil, err
	}
	doc, err := EncodeEntries(entries, format)
	if err != nil {
		return nil, err
	}
	if err := fsutil.WriteOutput(opts.Output, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
