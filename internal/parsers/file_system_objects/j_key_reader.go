package file_system_objects

import (
	"encoding/binary"
	"fmt"

	"github.com/deploymenttheory/go-apfs-format/internal/interfaces"
	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

// jKeyReader implements the JKeyReader interface
type jKeyReader struct {
	key *types.JKeyT
}

var _ interfaces.JKeyReader = (*jKeyReader)(nil)

// NewJKeyReader creates a new file system key reader
func NewJKeyReader(data []byte, endian binary.ByteOrder) (interfaces.JKeyReader, error) {
	key, err := parseJKey(data, endian)
	if err != nil {
		return nil, fmt.Errorf("failed to parse J-key: %w", err)
	}

	return &jKeyReader{
		key: key,
	}, nil
}

// NewJKeyReaderFromValue wraps an already decoded obj_id_and_type field
func NewJKeyReaderFromValue(objIdAndType uint64) interfaces.JKeyReader {
	return &jKeyReader{
		key: &types.JKeyT{ObjIdAndType: objIdAndType},
	}
}

// parseJKey parses raw bytes into a JKeyT structure
func parseJKey(data []byte, endian binary.ByteOrder) (*types.JKeyT, error) {
	if len(data) < types.JKeySize {
		return nil, fmt.Errorf("data too small for J-key: %d bytes", len(data))
	}

	return &types.JKeyT{
		ObjIdAndType: endian.Uint64(data[0:types.JKeySize]),
	}, nil
}

// EncodeJKey packs an identifier and a type into an obj_id_and_type field.
// Identifier bits outside ObjIdMask are dropped.
func EncodeJKey(objID uint64, objType types.JObjTypes) uint64 {
	return (objID & types.ObjIdMask) | (uint64(objType)<<types.ObjTypeShift)&types.ObjTypeMask
}

// ObjectIdentifier returns the object's unique identifier
func (jr *jKeyReader) ObjectIdentifier() uint64 {
	return jr.key.ObjIdAndType & types.ObjIdMask
}

// ObjectType returns the type of the file system object
func (jr *jKeyReader) ObjectType() types.JObjTypes {
	return ClassifyObjectType((jr.key.ObjIdAndType & types.ObjTypeMask) >> types.ObjTypeShift)
}

// RawObjIdAndType returns the raw combined field
func (jr *jKeyReader) RawObjIdAndType() uint64 {
	return jr.key.ObjIdAndType
}

func (jr *jKeyReader) IsReservedObject() bool {
	return IsReservedInode(jr.ObjectIdentifier())
}

func (jr *jKeyReader) UsesUnifiedIDSpace() bool {
	return UsesUnifiedIDSpace(jr.ObjectIdentifier())
}
