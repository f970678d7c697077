package file_system_objects

import (
	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

const xattrFlagsField = "xattr flags"

// ValidateXattrFlags checks the flags of an extended attribute record.
// The record must name exactly one storage location, leave XattrReserved8
// clear and set no bit the format doesn't define, bits 16 to 31 included.
func ValidateXattrFlags(bits uint32) (types.JXattrFlags, error) {
	flags := types.JXattrFlags(bits)

	if unknown := flags &^ types.XattrKnownFlags; unknown != 0 {
		return 0, newFlagError(xattrFlagsField, uint64(bits), uint64(unknown), ErrUnknownBitsSet)
	}
	if flags&types.XattrReserved8 != 0 {
		return 0, newFlagError(xattrFlagsField, uint64(bits), uint64(types.XattrReserved8), ErrReservedBitSet)
	}

	switch flags & types.XattrStorageMask {
	case types.XattrStorageMask:
		return 0, newFlagError(xattrFlagsField, uint64(bits), uint64(types.XattrStorageMask), ErrConflictingXattrStorage)
	case 0:
		return 0, newFlagError(xattrFlagsField, uint64(bits), 0, ErrMissingXattrStorage)
	}
	return flags, nil
}
