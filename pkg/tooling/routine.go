package tooling

import (
	"fmt"

	commonerrors "github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
	"github.com/deploymenttheory/go-ntgrbak/internal/common/cryptoutil"
	"github.com/deploymenttheory/go-ntgrbak/internal/common/fsutil"
	"github.com/deploymenttheory/go-ntgrbak/internal/logger"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/nvram"
)

// Routine selects one input-to-output transform
type Routine int

const (
	ConfigExtract Routine = iota
	ConfigDecrypt
	ConfigWrap
	NVRAMExtract
	NVRAMWrap
)

func (r Routine) String() string {
	switch r {
	case ConfigExtract:
		return "config extract"
	case ConfigDecrypt:
		return "config decrypt"
	case ConfigWrap:
		return "config wrap"
	case NVRAMExtract:
		return "nvram extract"
	case NVRAMWrap:
		return "nvram wrap"
	default:
		return fmt.Sprintf("Routine(%d)", int(r))
	}
}

// BinaryOutput reports whether the routine produces binary data
func (r Routine) BinaryOutput() bool {
	return r != NVRAMExtract
}

// RunOptions carries the per-invocation switches of a routine
type RunOptions struct {
	Input   string // input path, "" or "-" for stdin
	Output  string // output path, "" or "-" for stdout
	Verbose bool
	Force   bool
	Digest  string // algorithm of the output digest logged in verbose mode

	Wrap           netgear.WrapOptions
	ModelFromNVRAM bool // take the wrap model from the payload's system_name
}

// Result describes what a routine produced
type Result struct {
	Routine      Routine
	InputSize    int
	Output       []byte
	ConfigHeader *netgear.Header // set by ConfigExtract
	NVRAMHeader  *nvram.Header   // set by NVRAMExtract and NVRAMWrap
	Digest       string          // hex digest of Output in verbose mode
}

// Run reads the input, applies routine and writes the output. Nothing is
// written when the routine fails.
func Run(routine Routine, opts RunOptions) (*Result, error) {
	if routine.BinaryOutput() && !opts.Force && fsutil.OutputIsTerminal(opts.Output) {
		return nil, fmt.Errorf("%s: %w (use --force or -o)", routine, commonerrors.ErrBinaryToTerminal)
	}

	log := logger.WithField("routine", routine.String())

	input, err := fsutil.ReadInput(opts.Input, netgear.MaxBufferSize)
	if err != nil {
		return nil, err
	}
	log.Debugw("Read input",
		"bytes", len(input),
		"input", fsutil.DisplayName(opts.Input, true),
	)

	result, err := Transform(routine, input, opts)
	if err != nil {
		return nil, err
	}

	if err := fsutil.WriteOutput(opts.Output, result.Output); err != nil {
		return nil, err
	}
	log.Debugw("Done",
		"bytes_in", result.InputSize,
		"bytes_out", len(result.Output),
		"output", fsutil.DisplayName(opts.Output, false),
	)
	return result, nil
}

// Transform applies routine to an in-memory input
func Transform(routine Routine, input []byte, opts RunOptions) (*Result, error) {
	result := &Result{Routine: routine, InputSize: len(input)}

	var err error
	switch routine {
	case ConfigExtract:
		err = configExtract(input, opts, result)
	case ConfigDecrypt:
		result.Output, err = netgear.Decrypt(input)
	case ConfigWrap:
		err = configWrap(input, opts, result)
	case NVRAMExtract:
		err = nvramExtract(input, opts, result)
	case NVRAMWrap:
		err = nvramWrap(input, result)
	default:
		err = fmt.Errorf("%w: unknown routine %d", commonerrors.ErrInvalidArgument, int(routine))
	}
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		if err := digestOutput(opts.Digest, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func configExtract(input []byte, opts RunOptions, result *Result) error {
	if opts.Force {
		logger.LogDebug("Skipping checksum and length checks", nil)
	}

	backup, err := netgear.Extract(input, opts.Force)
	if err != nil {
		return err
	}

	h := backup.Header
	logger.LogDebug("Configuration header", map[string]interface{}{
		"model":        h.Model(),
		"magic":        fmt.Sprintf("%08x", h.Magic),
		"version":      h.Version,
		"payload_size": len(backup.Payload),
	})
	if !h.ReservedClear() {
		logger.LogWarn("Reserved header bytes are not zero", map[string]interface{}{
			"reserved": fmt.Sprintf("%x", h.Reserved),
		})
	}

	result.ConfigHeader = h
	result.Output = backup.Payload
	return nil
}

func configWrap(input []byte, opts RunOptions, result *Result) error {
	wrap := opts.Wrap
	if opts.ModelFromNVRAM {
		model, err := modelFromNVRAM(input, opts.Force)
		if err != nil {
			return err
		}
		wrap.SetModel(model)
		logger.LogDebug("Model taken from NVRAM", map[string]interface{}{
			"model": model,
			"magic": fmt.Sprintf("%08x", wrap.Magic),
		})
	}

	out, err := netgear.Wrap(input, wrap)
	if err != nil {
		return err
	}
	result.Output = out
	return nil
}

// SystemNameKey is the NVRAM setting holding the router model name
const SystemNameKey = "system_name"

func modelFromNVRAM(image []byte, force bool) (string, error) {
	text, _, err := nvram.Extract(image, force)
	if err != nil {
		return "", err
	}
	model, ok := nvram.ParseEntries(text).Get(SystemNameKey)
	if !ok || model == "" {
		return "", types.NewNetgearError(types.ErrMissingOption, "Wrap", "config",
			fmt.Sprintf("no %s in NVRAM image", SystemNameKey))
	}
	return model, nil
}

func nvramExtract(input []byte, opts RunOptions, result *Result) error {
	if opts.Force {
		logger.LogDebug("Skipping magic and CRC8 checks", nil)
	}

	text, h, err := nvram.Extract(input, opts.Force)
	if err != nil {
		return err
	}
	logger.LogDebug("NVRAM header", map[string]interface{}{
		"magic":  fmt.Sprintf("%08x", h.Magic),
		"length": h.Length,
		"crc8":   fmt.Sprintf("%02x", h.CRC),
	})

	result.NVRAMHeader = h
	result.Output = []byte(text)
	return nil
}

func nvramWrap(input []byte, result *Result) error {
	image, err := nvram.Wrap(string(input))
	if err != nil {
		return err
	}
	h, err := nvram.ReadHeader(image)
	if err != nil {
		return err
	}
	logger.LogDebug("NVRAM image built", map[string]interface{}{
		"length": h.Length,
		"crc8":   fmt.Sprintf("%02x", h.CRC),
	})

	result.NVRAMHeader = h
	result.Output = image
	return nil
}

func digestOutput(algorithm string, result *Result) error {
	if algorithm == "" {
		algorithm = string(cryptoutil.SHA256)
	}
	hasher, err := cryptoutil.NewHasher(cryptoutil.HashAlgorithm(algorithm))
	if err != nil {
		return err
	}
	sum, err := hasher.Hash(result.Output)
	if err != nil {
		return err
	}
	result.Digest = sum
	logger.LogInfo("Output digest", map[string]interface{}{
		"algorithm": string(hasher.Algorithm()),
		"digest":    sum,
		"bytes":     len(result.Output),
	})
	return nil
}
