package interfaces

import (
	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

// FileSystemObjectTypeResolver provides methods for classifying and naming
// the type and kind tags of file-system records
type FileSystemObjectTypeResolver interface {
	// ClassifyObjectType maps a raw tag to a record type, degrading to a sentinel
	ClassifyObjectType(tag uint64) types.JObjTypes

	// ClassifyObjectKind maps a raw tag to a record kind, degrading to ApfsKindInvalid
	ClassifyObjectKind(tag uint64) types.JObjKinds

	// ResolveObjectType converts a record type to a human-readable description
	ResolveObjectType(objType types.JObjTypes) string

	// ResolveObjectKind converts a record kind to a human-readable description
	ResolveObjectKind(objKind types.JObjKinds) string

	// ListSupportedObjectTypes returns every type that names a real record
	ListSupportedObjectTypes() []types.JObjTypes
}

// JKeyReader provides access to the header shared by all file-system keys
type JKeyReader interface {
	// ObjectIdentifier returns the object's identifier
	ObjectIdentifier() uint64

	// ObjectType returns the classified record type
	ObjectType() types.JObjTypes

	// RawObjIdAndType returns the packed header field
	RawObjIdAndType() uint64

	// IsReservedObject reports whether the identifier is a fixed system inode number
	IsReservedObject() bool

	// UsesUnifiedIDSpace reports whether the identifier carries the unified ID space mark
	UsesUnifiedIDSpace() bool
}
