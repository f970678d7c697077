package file_system_objects

import (
	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

// IsReservedInode reports whether id is one of the fixed system inode numbers:
// invalid, root parent, root, private, snapshot and purgeable directories.
func IsReservedInode(id uint64) bool {
	switch id {
	case types.InvalidInoNum,
		types.RootDirParent,
		types.RootDirInoNum,
		types.PrivDirInoNum,
		types.SnapDirInoNum,
		types.PurgeableDirInoNum:
		return true
	}
	return false
}

// IsUserInode reports whether id may be assigned to user content
func IsUserInode(id uint64) bool {
	return id >= types.MinUserInoNum
}

// UsesUnifiedIDSpace reports whether id carries the unified ID space mark
func UsesUnifiedIDSpace(id uint64) bool {
	return id&types.UnifiedIDSpaceMark != 0
}

// FitsEmbeddedXattr reports whether n bytes can be stored inline in an xattr record
func FitsEmbeddedXattr(n uint64) bool {
	return n <= types.XattrMaxEmbeddedSize
}

// FitsKeySize reports whether n bytes fit in a file-system record key
func FitsKeySize(n uint64) bool {
	return n <= types.JObjMaxKeySize
}

// FitsValueSize reports whether n bytes fit in a file-system record value
func FitsValueSize(n uint64) bool {
	return n <= types.JObjMaxValueSize
}

// CheckRecordSize is the check a writer runs before committing a record.
// Exceeding either limit is a format violation, not a recoverable condition.
func CheckRecordSize(keyLen, valueLen uint64) error {
	if !FitsKeySize(keyLen) {
		return &SizeError{Field: "key", Size: keyLen, Limit: types.JObjMaxKeySize, Err: ErrKeyTooLarge}
	}
	if !FitsValueSize(valueLen) {
		return &SizeError{Field: "value", Size: valueLen, Limit: types.JObjMaxValueSize, Err: ErrValueTooLarge}
	}
	return nil
}

// CheckEmbeddedXattr checks that an attribute stored inline fits the inline limit.
// Attributes stored in a data stream have no inline limit.
func CheckEmbeddedXattr(flags types.JXattrFlags, dataLen uint64) error {
	if flags.IsDataEmbedded() && !FitsEmbeddedXattr(dataLen) {
		return &SizeError{Field: "xdata", Size: dataLen, Limit: types.XattrMaxEmbeddedSize, Err: ErrEmbeddedXattrTooLarge}
	}
	return nil
}
