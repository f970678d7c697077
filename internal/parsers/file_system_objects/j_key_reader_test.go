package file_system_objects

import (
	"encoding/binary"
	"testing"

	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

func TestNewJKeyReader(t *testing.T) {
	tests := []struct {
		name       string
		objectID   uint64
		objectType types.JObjTypes
		reserved   bool
	}{
		{name: "root directory inode", objectID: types.RootDirInoNum, objectType: types.ApfsTypeInode, reserved: true},
		{name: "user directory entry", objectID: 456, objectType: types.ApfsTypeDirRec},
		{name: "user xattr", objectID: 789, objectType: types.ApfsTypeXattr},
		{name: "dir stats", objectID: 101112, objectType: types.ApfsTypeDirStats},
		{name: "maximum object ID", objectID: types.ObjIdMask, objectType: types.ApfsTypeInode},
		{name: "purgeable dir", objectID: types.PurgeableDirInoNum, objectType: types.ApfsTypeFileExtent, reserved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := createJKeyTestData(tt.objectID, tt.objectType)

			reader, err := NewJKeyReader(data, binary.LittleEndian)
			if err != nil {
				t.Fatalf("NewJKeyReader failed: %v", err)
			}

			if reader.ObjectIdentifier() != tt.objectID {
				t.Errorf("Expected object identifier %d, got %d", tt.objectID, reader.ObjectIdentifier())
			}
			if reader.ObjectType() != tt.objectType {
				t.Errorf("Expected object type %d, got %d", tt.objectType, reader.ObjectType())
			}
			if reader.IsReservedObject() != tt.reserved {
				t.Errorf("Expected reserved %v, got %v", tt.reserved, reader.IsReservedObject())
			}

			expectedRaw := (uint64(tt.objectType) << types.ObjTypeShift) | tt.objectID
			if reader.RawObjIdAndType() != expectedRaw {
				t.Errorf("Expected raw obj_id_and_type 0x%x, got 0x%x", expectedRaw, reader.RawObjIdAndType())
			}
		})
	}
}

func TestJKeyReaderErrorCases(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "insufficient data", data: make([]byte, 4)},
		{name: "empty data", data: make([]byte, 0)},
		{name: "nil data", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewJKeyReader(tt.data, binary.LittleEndian); err == nil {
				t.Error("Expected error but got none")
			}
		})
	}
}

func TestJKeyReaderClassifiesUnknownTypes(t *testing.T) {
	tests := []struct {
		name     string
		rawType  uint64
		expected types.JObjTypes
	}{
		{"reserved 14", 14, types.ApfsTypeReserved14},
		{"invalid 15", 15, types.ApfsTypeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewJKeyReaderFromValue(tt.rawType<<types.ObjTypeShift | 42)
			if reader.ObjectType() != tt.expected {
				t.Errorf("Expected object type %d, got %d", tt.expected, reader.ObjectType())
			}
			if reader.ObjectIdentifier() != 42 {
				t.Errorf("Expected object identifier 42, got %d", reader.ObjectIdentifier())
			}
		})
	}
}

func TestJKeyReaderEndianness(t *testing.T) {
	objectID := uint64(0x123456789ABCDEF)
	objectType := types.ApfsTypeInode

	for _, endian := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		t.Run(endian.String(), func(t *testing.T) {
			data := make([]byte, 8)
			endian.PutUint64(data, EncodeJKey(objectID, objectType))

			reader, err := NewJKeyReader(data, endian)
			if err != nil {
				t.Fatalf("NewJKeyReader failed: %v", err)
			}
			if reader.ObjectIdentifier() != objectID&types.ObjIdMask {
				t.Errorf("Expected object identifier %d, got %d", objectID&types.ObjIdMask, reader.ObjectIdentifier())
			}
			if reader.ObjectType() != objectType {
				t.Errorf("Expected object type %d, got %d", objectType, reader.ObjectType())
			}
		})
	}
}

func TestEncodeJKey(t *testing.T) {
	raw := EncodeJKey(0xf000000000000010, types.ApfsTypeXattr)
	if raw != 0x4000000000000010 {
		t.Errorf("Expected identifier high bits to be masked, got 0x%x", raw)
	}

	reader := NewJKeyReaderFromValue(EncodeJKey(types.UnifiedIDSpaceMark|20, types.ApfsTypeInode))
	if !reader.UsesUnifiedIDSpace() {
		t.Error("Expected unified ID space mark to survive encoding")
	}
	if reader.IsReservedObject() {
		t.Error("Unified ID should not be reserved")
	}
}

func createJKeyTestData(objectID uint64, objectType types.JObjTypes) []byte {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, EncodeJKey(objectID, objectType))
	return data
}
