package file_system_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

func TestDecodeDrecFlags(t *testing.T) {
	tests := []struct {
		name     string
		bits     uint16
		expected DirectoryRecordFlags
	}{
		{"regular file", 0x0008, DirectoryRecordFlags{EntryType: types.DtReg}},
		{"directory", 0x0004, DirectoryRecordFlags{EntryType: types.DtDir}},
		{"reserved with symlink", 0x001a, DirectoryRecordFlags{EntryType: types.DtLnk, Reserved: true}},
		{"reserved only", 0x0010, DirectoryRecordFlags{EntryType: types.DtUnknown, Reserved: true}},
		{"high bits ignored", 0xff0e, DirectoryRecordFlags{EntryType: types.DtWht}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeDrecFlags(tt.bits))
		})
	}
}

func TestEncodeDrecFlags(t *testing.T) {
	for bits := uint16(0); bits <= 0x1f; bits++ {
		assert.Equal(t, types.DirRecFlags(bits), EncodeDrecFlags(DecodeDrecFlags(bits)), "bits 0x%x", bits)
	}

	assert.Equal(t, types.DirRecFlags(0x14), EncodeDrecFlags(DirectoryRecordFlags{EntryType: types.DtDir, Reserved: true}))
	assert.Equal(t, types.DirRecFlags(0x02), EncodeDrecFlags(DirectoryRecordFlags{EntryType: types.DirEntryType(0x12)}))
}

func TestValidateDrecFlags(t *testing.T) {
	tests := []struct {
		name    string
		bits    uint16
		want    types.DirEntryType
		wantErr error
	}{
		{name: "unknown entry type", bits: 0x0, want: types.DtUnknown},
		{name: "fifo", bits: 0x1, want: types.DtFifo},
		{name: "socket", bits: 0xc, want: types.DtSock},
		{name: "whiteout", bits: 0xe, want: types.DtWht},
		{name: "undefined nibble", bits: 0x3, wantErr: ErrUnknownEntryType},
		{name: "nibble 15", bits: 0xf, wantErr: ErrUnknownEntryType},
		{name: "reserved bit", bits: 0x18, wantErr: ErrReservedBitSet},
		{name: "bit above reserved", bits: 0x28, wantErr: ErrUnknownBitsSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := ValidateDrecFlags(tt.bits)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, flags.EntryType)
			assert.False(t, flags.Reserved)
		})
	}
}
