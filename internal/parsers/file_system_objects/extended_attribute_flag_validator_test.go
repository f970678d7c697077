package file_system_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

func TestValidateXattrFlags(t *testing.T) {
	tests := []struct {
		name    string
		bits    uint32
		wantErr error
	}{
		{name: "stream", bits: 0x1},
		{name: "embedded", bits: 0x2},
		{name: "embedded file system owned", bits: 0x6},
		{name: "stream file system owned", bits: 0x5},
		{name: "neither storage bit", bits: 0x0, wantErr: ErrMissingXattrStorage},
		{name: "owned without storage", bits: 0x4, wantErr: ErrMissingXattrStorage},
		{name: "both storage bits", bits: 0x3, wantErr: ErrConflictingXattrStorage},
		{name: "reserved bit", bits: 0xa, wantErr: ErrReservedBitSet},
		{name: "undefined bit", bits: 0x12, wantErr: ErrUnknownBitsSet},
		{name: "high bit", bits: 0x8001, wantErr: ErrUnknownBitsSet},
		{name: "bit above 16", bits: 0x10001, wantErr: ErrUnknownBitsSet},
		{name: "top bit", bits: 0x80000002, wantErr: ErrUnknownBitsSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := ValidateXattrFlags(tt.bits)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.JXattrFlags(tt.bits), flags)
			assert.NotEqual(t, flags.IsDataStream(), flags.IsDataEmbedded())
		})
	}
}

func TestValidateXattrFlags_ReportsWideBits(t *testing.T) {
	_, err := ValidateXattrFlags(0x10001)
	require.Error(t, err)

	var flagErr *FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Equal(t, uint64(0x10001), flagErr.Bits)
	assert.Equal(t, uint64(0x10000), flagErr.Offending)
}

func TestJXattrFlags_String(t *testing.T) {
	assert.Equal(t, "0", types.JXattrFlags(0).String())
	assert.Equal(t, "XATTR_DATA_EMBEDDED|XATTR_FILE_SYSTEM_OWNED", types.JXattrFlags(0x6).String())
	assert.Equal(t, "XATTR_DATA_STREAM|XATTR_RESERVED_8|0x10", types.JXattrFlags(0x19).String())
	assert.Equal(t, "XATTR_DATA_EMBEDDED|0x10000", types.JXattrFlags(0x10002).String())
}
