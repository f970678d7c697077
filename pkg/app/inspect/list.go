package inspect

import (
	"fmt"

	fso "github.com/deploymenttheory/go-apfs-format/internal/parsers/file_system_objects"
	"github.com/deploymenttheory/go-apfs-format/internal/types"
	"github.com/deploymenttheory/go-apfs-format/pkg/app"
)

// Table selects one of the format's value tables
type Table string

const (
	TableObjectTypes Table = "types"
	TableObjectKinds Table = "kinds"
	TableInodeFlags  Table = "inode-flags"
	TableEntryTypes  Table = "entry-types"
	TableLimits      Table = "limits"
)

// AllTables lists every table List can produce
var AllTables = []Table{TableObjectTypes, TableObjectKinds, TableInodeFlags, TableEntryTypes, TableLimits}

// List returns a table of the format's named values as a Response, one field per row
func List(table Table) (*Response, error) {
	resp := &Response{What: What("list " + table), Input: string(table), Valid: true}

	switch table {
	case TableObjectTypes:
		resp.add(resolver.ResolveObjectType(types.ApfsTypeAny), "%d", types.ApfsTypeAny)
		for _, t := range resolver.ListSupportedObjectTypes() {
			resp.add(resolver.ResolveObjectType(t), "%d", t)
		}
		resp.add(resolver.ResolveObjectType(types.ApfsTypeReserved14), "%d", types.ApfsTypeReserved14)
		resp.add(resolver.ResolveObjectType(types.ApfsTypeInvalid), "%d (also max)", types.ApfsTypeInvalid)
	case TableObjectKinds:
		for _, k := range []types.JObjKinds{
			types.ApfsKindAny,
			types.ApfsKindNew,
			types.ApfsKindUpdate,
			types.ApfsKindDead,
			types.ApfsKindUpdateRecent,
			types.ApfsKindInvalid,
		} {
			resp.add(resolver.ResolveObjectKind(k), "%d", k)
		}
	case TableInodeFlags:
		for bit := 0; bit < 32; bit++ {
			flag := types.JInodeFlags(1) << bit
			if flag&(types.ApfsValidInternalInodeFlags|types.InodeFlagUnused) == 0 {
				continue
			}
			resp.add(flag.String(), "0x%08x", uint64(flag))
		}
		resp.add("valid mask", "0x%08x", uint64(types.ApfsValidInternalInodeFlags))
		resp.add("inherited mask", "0x%08x", uint64(types.InodeInheritedInternalFlags))
		resp.add("cloned mask", "0x%08x", uint64(types.InodeClonedInternalFlags))
		resp.add("pinned mask", "0x%08x", uint64(types.ApfsInodePinnedMask))
	case TableEntryTypes:
		resp.add(types.DtUnknown.String(), "%d", types.DtUnknown)
		for _, t := range fso.DefinedEntryTypes() {
			mode, _ := fso.EntryTypeToModeBits(t)
			resp.add(t.String(), "%d (mode %s)", t, mode)
		}
	case TableLimits:
		resp.add("MIN_USER_INO_NUM", "%d", types.MinUserInoNum)
		resp.add("UNIFIED_ID_SPACE_MARK", "0x%016x", types.UnifiedIDSpaceMark)
		resp.add("XATTR_MAX_EMBEDDED_SIZE", "%d", types.XattrMaxEmbeddedSize)
		resp.add("JOBJ_MAX_KEY_SIZE", "%d", types.JObjMaxKeySize)
		resp.add("JOBJ_MAX_VALUE_SIZE", "%d", types.JObjMaxValueSize)
		resp.add("MIN_DOC_ID", "%d", types.MinDocId)
	default:
		return nil, app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("unknown table %q", table), nil)
	}

	resp.Summary = fmt.Sprintf("%d entries", len(resp.Fields))
	return resp, nil
}
