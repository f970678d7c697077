package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	tests := []struct {
		table    Table
		expected int
		field    string
		value    string
	}{
		{TableObjectTypes, 16, "Inode", "3"},
		{TableObjectKinds, 6, "Invalid", "255"},
		{TableInodeFlags, 27, "inherited mask", "0x00400002"},
		{TableEntryTypes, 9, "DT_WHT", "14 (mode 0o160000)"},
		{TableLimits, 6, "XATTR_MAX_EMBEDDED_SIZE", "3804"},
	}

	for _, tt := range tests {
		t.Run(string(tt.table), func(t *testing.T) {
			resp, err := List(tt.table)
			require.NoError(t, err)

			assert.Len(t, resp.Fields, tt.expected)
			value, ok := resp.Field(tt.field)
			require.True(t, ok, "missing field %s", tt.field)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestList_Unknown(t *testing.T) {
	_, err := List("extents")
	assert.Error(t, err)
}
