package file_system_objects

import (
	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

// modeEntryTypes is the fixed mapping between S_IF* patterns and DT_* tags.
var modeEntryTypes = map[types.ModeT]types.DirEntryType{
	types.SIfifo:  types.DtFifo,
	types.SIfchr:  types.DtChr,
	types.SIfdir:  types.DtDir,
	types.SIfblk:  types.DtBlk,
	types.SIfreg:  types.DtReg,
	types.SIflnk:  types.DtLnk,
	types.SIfsock: types.DtSock,
	types.SIfwht:  types.DtWht,
}

// ModeToEntryType returns the directory entry type for a file mode.
// Permission bits are ignored; an unmapped type pattern yields DtUnknown.
func ModeToEntryType(mode types.ModeT) types.DirEntryType {
	if t, ok := modeEntryTypes[mode.Type()]; ok {
		return t
	}
	return types.DtUnknown
}

// EntryTypeToModeBits returns the S_IF* pattern for a directory entry type.
// DtUnknown has no mode pattern, nor does any undefined tag.
func EntryTypeToModeBits(t types.DirEntryType) (types.ModeT, bool) {
	if t == types.DtUnknown {
		return 0, false
	}
	mode := types.ModeT(t) << types.DirEntryTypeShift
	if modeEntryTypes[mode] != t {
		return 0, false
	}
	return mode, true
}

// IsDefinedEntryType reports whether t is one of the DT_* tags, DtUnknown included
func IsDefinedEntryType(t types.DirEntryType) bool {
	if t == types.DtUnknown {
		return true
	}
	_, ok := EntryTypeToModeBits(t)
	return ok
}

// DefinedEntryTypes lists the DT_* tags that have a mode pattern
func DefinedEntryTypes() []types.DirEntryType {
	return []types.DirEntryType{
		types.DtFifo,
		types.DtChr,
		types.DtDir,
		types.DtBlk,
		types.DtReg,
		types.DtLnk,
		types.DtSock,
		types.DtWht,
	}
}
