package file_system_objects

import (
	"github.com/deploymenttheory/go-apfs-format/internal/interfaces"
	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

// fileSystemObjectTypeResolver implements the FileSystemObjectTypeResolver interface
type fileSystemObjectTypeResolver struct{}

var _ interfaces.FileSystemObjectTypeResolver = (*fileSystemObjectTypeResolver)(nil)

// NewFileSystemObjectTypeResolver creates a new file system object type resolver
func NewFileSystemObjectTypeResolver() interfaces.FileSystemObjectTypeResolver {
	return &fileSystemObjectTypeResolver{}
}

// ClassifyObjectType maps a raw tag to a record type.
// Values 0 through 13 map to their named type and 14 maps to
// ApfsTypeReserved14. Everything else, including 15, is ApfsTypeInvalid.
func ClassifyObjectType(tag uint64) types.JObjTypes {
	switch {
	case tag <= uint64(types.ApfsTypeMaxValid):
		return types.JObjTypes(tag)
	case tag == uint64(types.ApfsTypeReserved14):
		return types.ApfsTypeReserved14
	default:
		return types.ApfsTypeInvalid
	}
}

// ClassifyObjectKind maps a raw tag to a record kind.
// Only 0 through 4 are lifecycle values; anything else is ApfsKindInvalid.
func ClassifyObjectKind(tag uint64) types.JObjKinds {
	if tag <= uint64(types.ApfsKindUpdateRecent) {
		return types.JObjKinds(tag)
	}
	return types.ApfsKindInvalid
}

// IsValidObjectType reports whether t names a real record type.
// ApfsTypeAny is excluded because no record is stored with it.
func IsValidObjectType(t types.JObjTypes) bool {
	return t > types.ApfsTypeAny && t <= types.ApfsTypeMaxValid
}

func (fstr *fileSystemObjectTypeResolver) ClassifyObjectType(tag uint64) types.JObjTypes {
	return ClassifyObjectType(tag)
}

func (fstr *fileSystemObjectTypeResolver) ClassifyObjectKind(tag uint64) types.JObjKinds {
	return ClassifyObjectKind(tag)
}

// ResolveObjectType converts a record type to a human-readable description
func (fstr *fileSystemObjectTypeResolver) ResolveObjectType(objType types.JObjTypes) string {
	switch objType {
	case types.ApfsTypeAny:
		return "Any"
	case types.ApfsTypeSnapMetadata:
		return "Snapshot Metadata"
	case types.ApfsTypeExtent:
		return "Physical Extent"
	case types.ApfsTypeInode:
		return "Inode"
	case types.ApfsTypeXattr:
		return "Extended Attribute"
	case types.ApfsTypeSiblingLink:
		return "Sibling Link"
	case types.ApfsTypeDstreamId:
		return "Data Stream"
	case types.ApfsTypeCryptoState:
		return "Crypto State"
	case types.ApfsTypeFileExtent:
		return "File Extent"
	case types.ApfsTypeDirRec:
		return "Directory Entry"
	case types.ApfsTypeDirStats:
		return "Directory Statistics"
	case types.ApfsTypeSnapName:
		return "Snapshot Name"
	case types.ApfsTypeSiblingMap:
		return "Sibling Map"
	case types.ApfsTypeFileInfo:
		return "File Info"
	case types.ApfsTypeReserved14:
		return "Reserved"
	case types.ApfsTypeInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// ResolveObjectKind converts a record kind to a human-readable description
func (fstr *fileSystemObjectTypeResolver) ResolveObjectKind(objKind types.JObjKinds) string {
	switch objKind {
	case types.ApfsKindAny:
		return "Any"
	case types.ApfsKindNew:
		return "New"
	case types.ApfsKindUpdate:
		return "Update"
	case types.ApfsKindDead:
		return "Dead"
	case types.ApfsKindUpdateRecent:
		return "Update Recent"
	case types.ApfsKindInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// ListSupportedObjectTypes returns all supported object types
func (fstr *fileSystemObjectTypeResolver) ListSupportedObjectTypes() []types.JObjTypes {
	supported := make([]types.JObjTypes, 0, types.ApfsTypeMaxValid)
	for t := types.ApfsTypeSnapMetadata; t <= types.ApfsTypeMaxValid; t++ {
		supported = append(supported, t)
	}
	return supported
}
