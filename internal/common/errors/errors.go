package errors

import (
	"errors"
)

var (
	// General Errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupportedFile = errors.New("unsupported file format")

	// Compression Errors
	ErrUnsupportedCompression = errors.New("unsupported compression format")
	ErrCompressionFailed      = errors.New("compression failed")
	ErrDecompressionFailed    = errors.New("decompression failed")

	// Terminal Errors
	ErrBinaryToTerminal = errors.New("refusing to write binary data to a terminal")

	// Hash Errors
	ErrInvalidHasher = errors.New("invalid hasher")

	// Encoding Errors
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrEncodeFailed      = errors.New("error encoding document")

	// Configuration Errors
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrConfigParseError = errors.New("error parsing configuration")
)
