package file_system_objects

import (
	"errors"
	"fmt"
)

// Sentinel errors for format violations. Returned errors wrap one of these,
// so callers match with errors.Is and read details with errors.As.
var (
	ErrUnknownBitsSet          = errors.New("unknown bits set")
	ErrConflictingPinState     = errors.New("inode pinned to both main and tier2")
	ErrReservedBitSet          = errors.New("reserved bit set")
	ErrConflictingXattrStorage = errors.New("xattr marked both stream and embedded")
	ErrMissingXattrStorage     = errors.New("xattr marked neither stream nor embedded")
	ErrUnknownEntryType        = errors.New("unknown directory entry type")
	ErrKeyTooLarge             = errors.New("record key too large")
	ErrValueTooLarge           = errors.New("record value too large")
	ErrEmbeddedXattrTooLarge   = errors.New("embedded xattr data too large")
)

// FlagError describes a flags field that violates the format.
type FlagError struct {
	// Field names the flags field, e.g. "internal_flags".
	Field string
	// Bits is the raw value that was checked.
	Bits uint64
	// Offending holds the bits responsible for the violation.
	Offending uint64
	// Err is the sentinel describing the violation.
	Err error
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("%s 0x%x: %v (0x%x)", e.Field, e.Bits, e.Err, e.Offending)
}

func (e *FlagError) Unwrap() error {
	return e.Err
}

func newFlagError(field string, bits, offending uint64, err error) *FlagError {
	return &FlagError{Field: field, Bits: bits, Offending: offending, Err: err}
}

// SizeError describes a length that exceeds a fixed format maximum.
type SizeError struct {
	Field string
	Size  uint64
	Limit uint64
	Err   error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %v (%d > %d)", e.Field, e.Err, e.Size, e.Limit)
}

func (e *SizeError) Unwrap() error {
	return e.Err
}
