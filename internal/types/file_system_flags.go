package types

import (
	"fmt"
	"strings"
)

// JInodeFlags represents the internal flags of an inode.
// It has the width of j_inode_val_t.internal_flags; every published bit
// lives in the low 32 bits.
// Reference: j_inode_flags
type JInodeFlags uint64

const (
	// InodeIsApfsPrivate marks an inode used internally by the file system.
	InodeIsApfsPrivate JInodeFlags = 0x00000001

	// InodeMaintainDirStats means the directory keeps statistics for itself
	// and its descendants.
	InodeMaintainDirStats JInodeFlags = 0x00000002

	// InodeDirStatsOrigin means statistics are tracked starting at this directory.
	InodeDirStatsOrigin JInodeFlags = 0x00000004

	// InodeProtClassExplicit means the protection class was set explicitly.
	InodeProtClassExplicit JInodeFlags = 0x00000008

	// InodeWasCloned means the inode was created by cloning another inode.
	InodeWasCloned JInodeFlags = 0x00000010

	// InodeFlagUnused is reserved. It is named but not part of the validity mask.
	InodeFlagUnused JInodeFlags = 0x00000020

	// InodeHasSecurityEa means the inode has an access control list.
	InodeHasSecurityEa JInodeFlags = 0x00000040

	// InodeBeingTruncated means the inode was truncated and the truncation
	// may not have completed.
	InodeBeingTruncated JInodeFlags = 0x00000080

	// InodeHasFinderInfo means the inode has a Finder info extended field.
	InodeHasFinderInfo JInodeFlags = 0x00000100

	// InodeIsSparse means the inode has a sparse byte count extended field.
	InodeIsSparse JInodeFlags = 0x00000200

	// InodeWasEverCloned means the inode has been cloned at least once.
	InodeWasEverCloned JInodeFlags = 0x00000400

	// InodeActiveFileTrimmed means the inode is an overprovisioning file that was trimmed.
	InodeActiveFileTrimmed JInodeFlags = 0x00000800

	// InodePinnedToMain means the file's data is pinned to the main storage device.
	InodePinnedToMain JInodeFlags = 0x00001000

	// InodePinnedToTier2 means the file's data is pinned to the secondary tier.
	InodePinnedToTier2 JInodeFlags = 0x00002000

	// InodeHasRsrcFork means the inode has a resource fork.
	InodeHasRsrcFork JInodeFlags = 0x00004000

	// InodeNoRsrcFork means the inode has no resource fork.
	InodeNoRsrcFork JInodeFlags = 0x00008000

	// InodeAllocationSpilledover means the file's data spilled over from the
	// main device to the secondary tier.
	InodeAllocationSpilledover JInodeFlags = 0x00010000

	// InodeFastPromote means the inode is scheduled for promotion to the fast tier.
	InodeFastPromote JInodeFlags = 0x00020000

	// InodeHasUncompressedSize means uncompressed_size of the inode value is populated.
	InodeHasUncompressedSize JInodeFlags = 0x00040000

	// InodeIsPurgeable means the inode will be deleted at the next purge.
	InodeIsPurgeable JInodeFlags = 0x00080000

	// InodeWantsToBePurgeable means the inode should become purgeable once closed.
	InodeWantsToBePurgeable JInodeFlags = 0x00100000

	// InodeIsSyncRoot means the inode is the root of a sync hierarchy.
	InodeIsSyncRoot JInodeFlags = 0x00200000

	// InodeSnapshotCowExemption means the inode is exempt from copy-on-write
	// while snapshots exist.
	InodeSnapshotCowExemption JInodeFlags = 0x00400000

	// InodeInheritedInternalFlags are the only flags a new child copies from
	// its parent directory.
	InodeInheritedInternalFlags JInodeFlags = InodeMaintainDirStats | InodeSnapshotCowExemption

	// InodeClonedInternalFlags are the only flags carried over to a clone.
	InodeClonedInternalFlags JInodeFlags = InodeHasRsrcFork |
		InodeNoRsrcFork |
		InodeHasFinderInfo |
		InodeSnapshotCowExemption
)

// ApfsValidInternalInodeFlags is every inode flag the format currently recognizes.
const ApfsValidInternalInodeFlags JInodeFlags = InodeIsApfsPrivate |
	InodeMaintainDirStats |
	InodeDirStatsOrigin |
	InodeProtClassExplicit |
	InodeWasCloned |
	InodeHasSecurityEa |
	InodeBeingTruncated |
	InodeHasFinderInfo |
	InodeIsSparse |
	InodeWasEverCloned |
	InodeActiveFileTrimmed |
	InodePinnedToMain |
	InodePinnedToTier2 |
	InodeHasRsrcFork |
	InodeNoRsrcFork |
	InodeAllocationSpilledover |
	InodeFastPromote |
	InodeHasUncompressedSize |
	InodeIsPurgeable |
	InodeWantsToBePurgeable |
	InodeIsSyncRoot |
	InodeSnapshotCowExemption

// ApfsInodePinnedMask covers the two tiering bits.
const ApfsInodePinnedMask JInodeFlags = InodePinnedToMain | InodePinnedToTier2

var inodeFlagNames = []struct {
	flag JInodeFlags
	name string
}{
	{InodeIsApfsPrivate, "INODE_IS_APFS_PRIVATE"},
	{InodeMaintainDirStats, "INODE_MAINTAIN_DIR_STATS"},
	{InodeDirStatsOrigin, "INODE_DIR_STATS_ORIGIN"},
	{InodeProtClassExplicit, "INODE_PROT_CLASS_EXPLICIT"},
	{InodeWasCloned, "INODE_WAS_CLONED"},
	{InodeFlagUnused, "INODE_FLAG_UNUSED"},
	{InodeHasSecurityEa, "INODE_HAS_SECURITY_EA"},
	{InodeBeingTruncated, "INODE_BEING_TRUNCATED"},
	{InodeHasFinderInfo, "INODE_HAS_FINDER_INFO"},
	{InodeIsSparse, "INODE_IS_SPARSE"},
	{InodeWasEverCloned, "INODE_WAS_EVER_CLONED"},
	{InodeActiveFileTrimmed, "INODE_ACTIVE_FILE_TRIMMED"},
	{InodePinnedToMain, "INODE_PINNED_TO_MAIN"},
	{InodePinnedToTier2, "INODE_PINNED_TO_TIER2"},
	{InodeHasRsrcFork, "INODE_HAS_RSRC_FORK"},
	{InodeNoRsrcFork, "INODE_NO_RSRC_FORK"},
	{InodeAllocationSpilledover, "INODE_ALLOCATION_SPILLEDOVER"},
	{InodeFastPromote, "INODE_FAST_PROMOTE"},
	{InodeHasUncompressedSize, "INODE_HAS_UNCOMPRESSED_SIZE"},
	{InodeIsPurgeable, "INODE_IS_PURGEABLE"},
	{InodeWantsToBePurgeable, "INODE_WANTS_TO_BE_PURGEABLE"},
	{InodeIsSyncRoot, "INODE_IS_SYNC_ROOT"},
	{InodeSnapshotCowExemption, "INODE_SNAPSHOT_COW_EXEMPTION"},
}

// Has reports whether every bit of mask is set.
func (f JInodeFlags) Has(mask JInodeFlags) bool {
	return f&mask == mask
}

// Unknown returns the bits outside ApfsValidInternalInodeFlags.
func (f JInodeFlags) Unknown() JInodeFlags {
	return f &^ ApfsValidInternalInodeFlags
}

// IsApfsPrivate reports whether the inode is used internally by the file system
func (f JInodeFlags) IsApfsPrivate() bool {
	return f&InodeIsApfsPrivate != 0
}

// MaintainsDirStats reports whether the directory keeps statistics
func (f JInodeFlags) MaintainsDirStats() bool {
	return f&InodeMaintainDirStats != 0
}

// IsDirStatsOrigin reports whether statistics tracking starts at this directory
func (f JInodeFlags) IsDirStatsOrigin() bool {
	return f&InodeDirStatsOrigin != 0
}

// HasExplicitProtClass reports whether the protection class was set explicitly
func (f JInodeFlags) HasExplicitProtClass() bool {
	return f&InodeProtClassExplicit != 0
}

// WasCloned reports whether the inode was created by cloning
func (f JInodeFlags) WasCloned() bool {
	return f&InodeWasCloned != 0
}

// HasSecurityEa reports whether the inode has an access control list
func (f JInodeFlags) HasSecurityEa() bool {
	return f&InodeHasSecurityEa != 0
}

// IsBeingTruncated reports whether a truncation may be incomplete
func (f JInodeFlags) IsBeingTruncated() bool {
	return f&InodeBeingTruncated != 0
}

// HasFinderInfo reports whether the inode has a Finder info extended field
func (f JInodeFlags) HasFinderInfo() bool {
	return f&InodeHasFinderInfo != 0
}

// IsSparse reports whether the inode has a sparse byte count
func (f JInodeFlags) IsSparse() bool {
	return f&InodeIsSparse != 0
}

// WasEverCloned reports whether the inode has been cloned at least once
func (f JInodeFlags) WasEverCloned() bool {
	return f&InodeWasEverCloned != 0
}

// IsActiveFileTrimmed reports whether the overprovisioning file was trimmed
func (f JInodeFlags) IsActiveFileTrimmed() bool {
	return f&InodeActiveFileTrimmed != 0
}

// IsPinnedToMain reports whether the data is pinned to the main device
func (f JInodeFlags) IsPinnedToMain() bool {
	return f&InodePinnedToMain != 0
}

// IsPinnedToTier2 reports whether the data is pinned to the secondary tier
func (f JInodeFlags) IsPinnedToTier2() bool {
	return f&InodePinnedToTier2 != 0
}

// HasRsrcFork reports whether the inode has a resource fork
func (f JInodeFlags) HasRsrcFork() bool {
	return f&InodeHasRsrcFork != 0
}

// HasNoRsrcFork reports whether the inode is marked as having no resource fork
func (f JInodeFlags) HasNoRsrcFork() bool {
	return f&InodeNoRsrcFork != 0
}

// AllocationSpilledOver reports whether the data spilled over to the secondary tier
func (f JInodeFlags) AllocationSpilledOver() bool {
	return f&InodeAllocationSpilledover != 0
}

// IsFastPromote reports whether the inode is scheduled for fast promotion
func (f JInodeFlags) IsFastPromote() bool {
	return f&InodeFastPromote != 0
}

// HasUncompressedSize reports whether uncompressed_size is populated
func (f JInodeFlags) HasUncompressedSize() bool {
	return f&InodeHasUncompressedSize != 0
}

// IsPurgeable reports whether the inode is deleted at the next purge
func (f JInodeFlags) IsPurgeable() bool {
	return f&InodeIsPurgeable != 0
}

// WantsToBePurgeable reports whether the inode becomes purgeable once closed
func (f JInodeFlags) WantsToBePurgeable() bool {
	return f&InodeWantsToBePurgeable != 0
}

// IsSyncRoot reports whether the inode is the root of a sync hierarchy
func (f JInodeFlags) IsSyncRoot() bool {
	return f&InodeIsSyncRoot != 0
}

// IsSnapshotCowExempt reports whether the inode is exempt from snapshot copy-on-write
func (f JInodeFlags) IsSnapshotCowExempt() bool {
	return f&InodeSnapshotCowExemption != 0
}

// Names returns the names of the set bits in ascending bit order.
// Bits without a name are reported as hex.
func (f JInodeFlags) Names() []string {
	var names []string
	rest := f
	for _, n := range inodeFlagNames {
		if f&n.flag != 0 {
			names = append(names, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint64(rest)))
	}
	return names
}

func (f JInodeFlags) String() string {
	if f == 0 {
		return "0"
	}
	return strings.Join(f.Names(), "|")
}

// JXattrFlags represents the flags of an extended attribute record.
// The on-disk field is 32 bits wide; only the low four bits are named.
// Reference: j_xattr_flags
type JXattrFlags uint32

const (
	// XattrDataStream means the attribute data lives in a data stream.
	// XattrDataEmbedded must not also be set.
	XattrDataStream JXattrFlags = 0x0001

	// XattrDataEmbedded means the attribute data is stored inline in the record,
	// and must be no larger than XattrMaxEmbeddedSize.
	XattrDataEmbedded JXattrFlags = 0x0002

	// XattrFileSystemOwned means the attribute is owned by the file system,
	// such as the SymlinkEAName attribute of a symbolic link.
	XattrFileSystemOwned JXattrFlags = 0x0004

	// XattrReserved8 is reserved. Don't set it, but preserve it if present.
	XattrReserved8 JXattrFlags = 0x0008

	// XattrStorageMask covers the two storage bits, exactly one of which is set
	// on a well-formed record.
	XattrStorageMask JXattrFlags = XattrDataStream | XattrDataEmbedded

	// XattrKnownFlags is every bit the format names for an extended attribute.
	XattrKnownFlags JXattrFlags = XattrDataStream | XattrDataEmbedded | XattrFileSystemOwned | XattrReserved8
)

// IsDataStream reports whether the attribute data lives in a data stream
func (f JXattrFlags) IsDataStream() bool {
	return f&XattrDataStream != 0
}

// IsDataEmbedded reports whether the attribute data is stored inline
func (f JXattrFlags) IsDataEmbedded() bool {
	return f&XattrDataEmbedded != 0
}

// IsFileSystemOwned reports whether the attribute is owned by the file system
func (f JXattrFlags) IsFileSystemOwned() bool {
	return f&XattrFileSystemOwned != 0
}

func (f JXattrFlags) String() string {
	var names []string
	if f.IsDataStream() {
		names = append(names, "XATTR_DATA_STREAM")
	}
	if f.IsDataEmbedded() {
		names = append(names, "XATTR_DATA_EMBEDDED")
	}
	if f.IsFileSystemOwned() {
		names = append(names, "XATTR_FILE_SYSTEM_OWNED")
	}
	if f&XattrReserved8 != 0 {
		names = append(names, "XATTR_RESERVED_8")
	}
	if rest := f &^ XattrKnownFlags; rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// DirRecFlags represents the flags field of a directory record value.
// The low nibble is a DirEntryType; the next bit is reserved.
// Reference: dir_rec_flags
type DirRecFlags uint16

const (
	// DrecTypeMask selects the directory entry type.
	DrecTypeMask DirRecFlags = 0x000f

	// Reserved10 is reserved. A record with this bit set in production
	// indicates a bug in the writer.
	Reserved10 DirRecFlags = 0x0010

	// DrecKnownFlags is every bit the format defines for a directory record.
	DrecKnownFlags DirRecFlags = DrecTypeMask | Reserved10
)

// EntryType returns the directory entry type held in the low nibble.
func (f DirRecFlags) EntryType() DirEntryType {
	return DirEntryType(f & DrecTypeMask)
}

// IsReservedSet reports whether Reserved10 is set.
func (f DirRecFlags) IsReservedSet() bool {
	return f&Reserved10 != 0
}
