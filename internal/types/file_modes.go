package types

import "fmt"

// File Modes
// The values used by the mode field of j_inode_val_t.
// These follow the POSIX file type layout, plus a whiteout type.

// ModeT is the mode of a file-system object.
type ModeT uint16

const (
	// SIfmt is the mask for the file type bits.
	SIfmt ModeT = 0o170000

	// SIfifo is a named pipe.
	SIfifo ModeT = 0o010000

	// SIfchr is a character-special device.
	SIfchr ModeT = 0o020000

	// SIfdir is a directory.
	SIfdir ModeT = 0o040000

	// SIfblk is a block-special device.
	SIfblk ModeT = 0o060000

	// SIfreg is a regular file.
	SIfreg ModeT = 0o100000

	// SIflnk is a symbolic link.
	SIflnk ModeT = 0o120000

	// SIfsock is a socket.
	SIfsock ModeT = 0o140000

	// SIfwht is a whiteout, marking a deleted file in a union mount.
	SIfwht ModeT = 0o160000

	// ModePerm is the mask for the permission bits, including setuid, setgid and sticky.
	ModePerm ModeT = 0o007777
)

// Type returns only the file type bits of the mode.
func (m ModeT) Type() ModeT {
	return m & SIfmt
}

// Perm returns the permission bits of the mode.
func (m ModeT) Perm() ModeT {
	return m & ModePerm
}

func (m ModeT) String() string {
	return fmt.Sprintf("0o%06o", uint16(m))
}

// Directory Entry File Types
// The values stored in the low nibble of a directory record's flags.
// Each one equals the matching S_IF* value shifted right by 12.

// DirEntryType is the file type of a directory entry.
type DirEntryType uint8

const (
	DtUnknown DirEntryType = 0
	DtFifo    DirEntryType = 1
	DtChr     DirEntryType = 2
	DtDir     DirEntryType = 4
	DtBlk     DirEntryType = 6
	DtReg     DirEntryType = 8
	DtLnk     DirEntryType = 10
	DtSock    DirEntryType = 12
	DtWht     DirEntryType = 14
)

// DirEntryTypeShift converts between S_IF* values and DT_* values.
const DirEntryTypeShift = 12

func (t DirEntryType) String() string {
	switch t {
	case DtUnknown:
		return "DT_UNKNOWN"
	case DtFifo:
		return "DT_FIFO"
	case DtChr:
		return "DT_CHR"
	case DtDir:
		return "DT_DIR"
	case DtBlk:
		return "DT_BLK"
	case DtReg:
		return "DT_REG"
	case DtLnk:
		return "DT_LNK"
	case DtSock:
		return "DT_SOCK"
	case DtWht:
		return "DT_WHT"
	default:
		return fmt.Sprintf("DT_%d", uint8(t))
	}
}
