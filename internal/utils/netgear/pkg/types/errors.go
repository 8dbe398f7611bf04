package types

import (
	"errors"
	"fmt"
)

// Errors that can occur while decoding or building Netgear images
var (
	// Cipher errors
	ErrInvalidLength = errors.New("input length is not a multiple of the 8-byte block size")

	// Configuration backup errors
	ErrChecksumMismatch = errors.New("checksum verify failed")
	ErrLengthMismatch   = errors.New("length does not match the declared length")
	ErrTooLarge         = errors.New("image is too big")
	ErrTruncated        = errors.New("data too short for header")
	ErrMissingOption    = errors.New("missing required wrap option")

	// NVRAM errors
	ErrBadMagic = errors.New("magic check failed")
	ErrBadCRC   = errors.New("CRC8 check failed")

	// External collaborator errors
	ErrIOFailure = errors.New("I/O failure")
)

// NetgearError represents an error with additional codec context
type NetgearError struct {
	Err       error  // The underlying error
	Operation string // The operation that caused the error
	Object    string // The image or field involved
	Detail    string // Additional details about the error
}

// Error implements the error interface
func (e *NetgearError) Error() string {
	if e.Object != "" && e.Detail != "" {
		return fmt.Sprintf("%s: %s [%s]: %v", e.Operation, e.Object, e.Detail, e.Err)
	} else if e.Object != "" {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Object, e.Err)
	} else if e.Detail != "" {
		return fmt.Sprintf("%s: %v [%s]", e.Operation, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *NetgearError) Unwrap() error {
	return e.Err
}

// NewNetgearError creates a new NetgearError with the given details
func NewNetgearError(err error, operation string, object string, detail string) error {
	return &NetgearError{
		Err:       err,
		Operation: operation,
		Object:    object,
		Detail:    detail,
	}
}

// IsIntegrityError returns true if the error reports a failed integrity check.
// These are the failures the force flag skips.
func IsIntegrityError(err error) bool {
	return errors.Is(err, ErrChecksumMismatch) || errors.Is(err, ErrBadMagic) || errors.Is(err, ErrBadCRC)
}

// IsSizeError returns true if the error reports a size violation.
// With force these become truncation.
func IsSizeError(err error) bool {
	return errors.Is(err, ErrLengthMismatch) || errors.Is(err, ErrTooLarge)
}
