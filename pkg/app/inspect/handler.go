package inspect

import (
	"fmt"
	"strings"

	fso "github.com/deploymenttheory/go-apfs-format/internal/parsers/file_system_objects"
	"github.com/deploymenttheory/go-apfs-format/internal/types"
	"github.com/deploymenttheory/go-apfs-format/pkg/app"
)

var resolver = fso.NewFileSystemObjectTypeResolver()

var reservedInodeNames = map[uint64]string{
	types.InvalidInoNum:      "INVALID_INO_NUM",
	types.RootDirParent:      "ROOT_DIR_PARENT",
	types.RootDirInoNum:      "ROOT_DIR_INO_NUM",
	types.PrivDirInoNum:      "PRIV_DIR_INO_NUM",
	types.SnapDirInoNum:      "SNAP_DIR_INO_NUM",
	types.PurgeableDirInoNum: "PURGEABLE_DIR_INO_NUM",
}

// Handle processes an inspection request. Format violations are reported in
// the response rather than as an error; the error is reserved for requests
// that can't be decoded at all.
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	values, err := req.parse()
	if err != nil {
		return nil, err
	}

	n := values[0]
	resp := &Response{
		What:  req.What,
		Input: strings.Join(req.Values, " "),
		Valid: true,
	}

	ctx.Log(fmt.Sprintf("Inspecting %s value %s", req.What, resp.Input))

	switch req.What {
	case WhatObjectType:
		inspectObjectType(resp, n)
	case WhatObjectKind:
		inspectObjectKind(resp, n)
	case WhatInodeFlags:
		inspectInodeFlags(ctx, resp, n)
	case WhatXattrFlags:
		inspectXattrFlags(resp, uint32(n))
	case WhatDrecFlags:
		inspectDrecFlags(resp, uint16(n))
	case WhatMode:
		inspectMode(resp, types.ModeT(n))
	case WhatInode:
		inspectInode(resp, n)
	case WhatJKey:
		inspectJKey(resp, n)
	case WhatSize:
		inspectSize(resp, n, values[1], values[2:])
	}

	if !resp.Valid {
		ctx.Log(fmt.Sprintf("Format violation: %s", resp.Violation))
	}
	return resp, nil
}

func inspectObjectType(resp *Response, tag uint64) {
	objType := fso.ClassifyObjectType(tag)
	resp.Summary = resolver.ResolveObjectType(objType)
	resp.add("tag", "%d", tag)
	resp.add("type", "%d", objType)
	resp.add("recognized", "%t", fso.IsValidObjectType(objType) || objType == types.ApfsTypeAny)
}

func inspectObjectKind(resp *Response, tag uint64) {
	objKind := fso.ClassifyObjectKind(tag)
	resp.Summary = resolver.ResolveObjectKind(objKind)
	resp.add("tag", "%d", tag)
	resp.add("kind", "%d", objKind)
	resp.add("recognized", "%t", objKind != types.ApfsKindInvalid)
}

func inspectInodeFlags(ctx *app.Context, resp *Response, bits uint64) {
	raw := types.JInodeFlags(bits)
	resp.Summary = raw.String()
	resp.add("bits", "0x%08x", bits)
	if unknown := raw.Unknown(); unknown != 0 {
		resp.add("unknown", "0x%x", uint64(unknown))
	}

	flags, err := ctx.InodeFlagValidator().Validate(bits)
	if err != nil {
		resp.violate(err)
		return
	}

	resp.add("validated", "%s", flags)
	resp.add("inherited", "%s", fso.InheritedFlags(flags))
	resp.add("cloned", "%s", fso.ClonedFlags(flags))
	if err := fso.CheckPinExclusivity(flags); err != nil {
		resp.add("pin_state", "conflict")
	} else {
		resp.add("pin_state", "ok")
	}
}

func inspectXattrFlags(resp *Response, bits uint32) {
	raw := types.JXattrFlags(bits)
	resp.Summary = raw.String()
	resp.add("bits", "0x%08x", bits)

	if _, err := fso.ValidateXattrFlags(bits); err != nil {
		resp.violate(err)
	}
}

func inspectDrecFlags(resp *Response, bits uint16) {
	decoded := fso.DecodeDrecFlags(bits)
	resp.Summary = decoded.EntryType.String()
	resp.add("bits", "0x%04x", bits)
	resp.add("entry_type", "%s", decoded.EntryType)
	resp.add("reserved", "%t", decoded.Reserved)

	if _, err := fso.ValidateDrecFlags(bits); err != nil {
		resp.violate(err)
	}
}

func inspectMode(resp *Response, mode types.ModeT) {
	entryType := fso.ModeToEntryType(mode)
	resp.Summary = entryType.String()
	resp.add("mode", "%s", mode)
	resp.add("type_bits", "%s", mode.Type())
	resp.add("perm", "0o%04o", uint16(mode.Perm()))
	resp.add("entry_type", "%d", entryType)
}

func inspectInode(resp *Response, id uint64) {
	switch name, reserved := reservedInodeNames[id]; {
	case reserved:
		resp.Summary = name
	case fso.IsUserInode(id):
		resp.Summary = "user inode"
	default:
		resp.Summary = "reserved range"
	}
	resp.add("id", "%d", id)
	resp.add("reserved", "%t", fso.IsReservedInode(id))
	resp.add("user", "%t", fso.IsUserInode(id))
	resp.add("unified_id_space", "%t", fso.UsesUnifiedIDSpace(id))
}

func inspectJKey(resp *Response, raw uint64) {
	key := fso.NewJKeyReaderFromValue(raw)
	resp.Summary = fmt.Sprintf("%s %d", resolver.ResolveObjectType(key.ObjectType()), key.ObjectIdentifier())
	resp.add("obj_id_and_type", "0x%016x", key.RawObjIdAndType())
	resp.add("obj_id", "%d", key.ObjectIdentifier())
	resp.add("type", "%d", key.ObjectType())
	resp.add("reserved", "%t", key.IsReservedObject())
	resp.add("unified_id_space", "%t", key.UsesUnifiedIDSpace())
}

// inspectSize checks record key and value lengths, and the inline xattr
// data length when one is given
func inspectSize(resp *Response, keyLen, valueLen uint64, xdataLen []uint64) {
	resp.Summary = fmt.Sprintf("key %d bytes, value %d bytes", keyLen, valueLen)
	resp.add("fits_key", "%t", fso.FitsKeySize(keyLen))
	resp.add("fits_value", "%t", fso.FitsValueSize(valueLen))

	if err := fso.CheckRecordSize(keyLen, valueLen); err != nil {
		resp.violate(err)
		return
	}

	if len(xdataLen) == 0 {
		return
	}
	resp.Summary += fmt.Sprintf(", xdata %d bytes", xdataLen[0])
	resp.add("fits_embedded_xattr", "%t", fso.FitsEmbeddedXattr(xdataLen[0]))
	if err := fso.CheckEmbeddedXattr(types.XattrDataEmbedded, xdataLen[0]); err != nil {
		resp.violate(err)
	}
}
