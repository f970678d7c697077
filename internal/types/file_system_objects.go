package types

// File-System Objects
// Every file-system record key starts with a JKeyT header.

// JKeyT is the header at the beginning of all file-system keys.
type JKeyT struct {
	// The object's identifier and its type, packed together.
	// The identifier is obj_id_and_type & ObjIdMask.
	// The type is (obj_id_and_type & ObjTypeMask) >> ObjTypeShift.
	ObjIdAndType uint64
}

// JKeySize is the encoded size of JKeyT in bytes.
const JKeySize = 8

// ObjIdMask is the bit mask used to access the object identifier.
const ObjIdMask uint64 = 0x0fffffffffffffff

// ObjTypeMask is the bit mask used to access the object type.
const ObjTypeMask uint64 = 0xf000000000000000

// ObjTypeShift is the bit shift used to access the object type.
const ObjTypeShift uint64 = 60

// SystemObjIdMark is the smallest object identifier used by the system volume.
const SystemObjIdMark uint64 = 0x0fffffff00000000
