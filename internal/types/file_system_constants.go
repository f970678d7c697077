package types

// File-System Constants
// Reference: Apple File System Reference, "File-System Constants"
//
// Every value in this file is part of the on-disk format and must stay bit-exact.

// JObjTypes represents the type of a file-system record.
// It occupies the top four bits of obj_id_and_type in every record key.
// Reference: j_obj_types
type JObjTypes uint8

const (
	// ApfsTypeAny is a record of any type.
	// Only meaningful as a search wildcard; never stored as the type of a record.
	ApfsTypeAny JObjTypes = 0

	// ApfsTypeSnapMetadata is metadata about a snapshot.
	ApfsTypeSnapMetadata JObjTypes = 1

	// ApfsTypeExtent is a physical extent record.
	ApfsTypeExtent JObjTypes = 2

	// ApfsTypeInode is an inode.
	ApfsTypeInode JObjTypes = 3

	// ApfsTypeXattr is an extended attribute.
	ApfsTypeXattr JObjTypes = 4

	// ApfsTypeSiblingLink is a mapping from an inode to its hard links.
	ApfsTypeSiblingLink JObjTypes = 5

	// ApfsTypeDstreamId is a data stream.
	ApfsTypeDstreamId JObjTypes = 6

	// ApfsTypeCryptoState is a per-file encryption state.
	ApfsTypeCryptoState JObjTypes = 7

	// ApfsTypeFileExtent is a physical extent for a file.
	ApfsTypeFileExtent JObjTypes = 8

	// ApfsTypeDirRec is a directory entry.
	ApfsTypeDirRec JObjTypes = 9

	// ApfsTypeDirStats holds directory statistics.
	// The value of this record is j_dir_stats_val_t, not j_drec_val_t.
	ApfsTypeDirStats JObjTypes = 10

	// ApfsTypeSnapName is the name of a snapshot.
	ApfsTypeSnapName JObjTypes = 11

	// ApfsTypeSiblingMap is a mapping from a hard link to its target inode.
	ApfsTypeSiblingMap JObjTypes = 12

	// ApfsTypeFileInfo is additional information about file data, such as a hash.
	ApfsTypeFileInfo JObjTypes = 13

	// ApfsTypeReserved14 is not defined by the format.
	// Readers classify it separately from Invalid so it can be reported as
	// "reserved" and skipped.
	ApfsTypeReserved14 JObjTypes = 14

	// ApfsTypeMaxValid is the largest value that names a real record type.
	ApfsTypeMaxValid JObjTypes = 13

	// ApfsTypeMax is the largest value that fits in the four-bit type field.
	// It deliberately shares its slot with ApfsTypeInvalid.
	ApfsTypeMax JObjTypes = 15

	// ApfsTypeInvalid is an invalid record type.
	ApfsTypeInvalid JObjTypes = 15
)

// JObjKinds represents the lifecycle state of a record within a transaction.
// Reference: j_obj_kinds
type JObjKinds uint8

const (
	// ApfsKindAny is a record of any kind.
	ApfsKindAny JObjKinds = 0

	// ApfsKindNew is a newly created record.
	ApfsKindNew JObjKinds = 1

	// ApfsKindUpdate is a record that updates an existing one.
	ApfsKindUpdate JObjKinds = 2

	// ApfsKindDead is a record that is pending deletion.
	ApfsKindDead JObjKinds = 3

	// ApfsKindUpdateRecent is an update to a recently updated record.
	ApfsKindUpdateRecent JObjKinds = 4

	// ApfsKindInvalid is an invalid kind. It never collides with a lifecycle value.
	ApfsKindInvalid JObjKinds = 255
)

// Inode Numbers
// Inodes whose number is always the same.

// InvalidInoNum is an invalid inode number.
const InvalidInoNum uint64 = 0

// RootDirParent is the inode number of the root directory's parent.
// This is a sentinel value; no inode on disk has this number.
const RootDirParent uint64 = 1

// RootDirInoNum is the inode number of the volume's root directory.
const RootDirInoNum uint64 = 2

// PrivDirInoNum is the inode number of the private directory ("private-dir").
const PrivDirInoNum uint64 = 3

// SnapDirInoNum is the inode number of the directory holding snapshot metadata.
const SnapDirInoNum uint64 = 6

// PurgeableDirInoNum is the inode number used for references to purgeable files.
// There is no actual directory with this number.
const PurgeableDirInoNum uint64 = 7

// MinUserInoNum is the smallest inode number available for user content.
// Every number below it is reserved.
const MinUserInoNum uint64 = 16

// UnifiedIDSpaceMark marks identifiers drawn from the unified ID space.
const UnifiedIDSpaceMark uint64 = 0x0800000000000000

// Extended Attribute Constants

// XattrMaxEmbeddedSize is the largest payload an extended attribute can store inline.
const XattrMaxEmbeddedSize uint64 = 3804 // 3 KiB + 732

// SymlinkEAName is the name of the attribute holding a symbolic link's target.
const SymlinkEAName = "com.apple.fs.symlink"

// FirmlinkEAName is the name of the attribute holding a firmlink's target.
const FirmlinkEAName = "com.apple.fs.firmlink"

// ApfsCowExemptCountName is the name of the attribute counting files with
// InodeSnapshotCowExemption set.
const ApfsCowExemptCountName = "com.apple.fs.cow-exempt-file-count"

// File-System Object Constants

// OwningObjIdInvalid is an invalid owning object identifier.
const OwningObjIdInvalid uint64 = ^uint64(0)

// OwningObjIdUnknown is an owning object identifier that hasn't been determined.
const OwningObjIdUnknown uint64 = ^uint64(1)

// JObjMaxKeySize is the largest size, in bytes, of a file-system record key.
const JObjMaxKeySize uint64 = 832

// JObjMaxValueSize is the largest size, in bytes, of a file-system record value.
const JObjMaxValueSize uint64 = 3808 // 3 KiB + 736

// MinDocId is the smallest valid document identifier.
const MinDocId uint32 = 3

// File Extent Constants

// FextCryptoIdIsTweak means the crypto_id field of a file extent holds the
// encryption tweak value.
const FextCryptoIdIsTweak uint64 = 0x01
