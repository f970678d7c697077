package file_system_objects

import (
	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

const drecFlagsField = "drec flags"

// DirectoryRecordFlags is the decoded flags field of a directory record
type DirectoryRecordFlags struct {
	EntryType types.DirEntryType
	Reserved  bool
}

// DecodeDrecFlags splits a directory record's flags into its sub-fields.
// It never fails; bits above Reserved10 are ignored.
func DecodeDrecFlags(bits uint16) DirectoryRecordFlags {
	flags := types.DirRecFlags(bits)
	return DirectoryRecordFlags{
		EntryType: flags.EntryType(),
		Reserved:  flags.IsReservedSet(),
	}
}

// EncodeDrecFlags packs the sub-fields back into a flags field.
// Only the low nibble of the entry type is kept.
func EncodeDrecFlags(f DirectoryRecordFlags) types.DirRecFlags {
	flags := types.DirRecFlags(f.EntryType) & types.DrecTypeMask
	if f.Reserved {
		flags |= types.Reserved10
	}
	return flags
}

// ValidateDrecFlags decodes bits and rejects undefined bits, a set
// Reserved10 bit and entry type nibbles that aren't a DT_* value.
func ValidateDrecFlags(bits uint16) (DirectoryRecordFlags, error) {
	flags := types.DirRecFlags(bits)

	if unknown := flags &^ types.DrecKnownFlags; unknown != 0 {
		return DirectoryRecordFlags{}, newFlagError(drecFlagsField, uint64(bits), uint64(unknown), ErrUnknownBitsSet)
	}
	if flags.IsReservedSet() {
		return DirectoryRecordFlags{}, newFlagError(drecFlagsField, uint64(bits), uint64(types.Reserved10), ErrReservedBitSet)
	}

	decoded := DecodeDrecFlags(bits)
	if !IsDefinedEntryType(decoded.EntryType) {
		return DirectoryRecordFlags{}, newFlagError(drecFlagsField, uint64(bits), uint64(flags&types.DrecTypeMask), ErrUnknownEntryType)
	}
	return decoded, nil
}
