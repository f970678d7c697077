package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-apfs-format/pkg/app"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		wantErr bool
	}{
		{"decimal", Request{What: WhatObjectType, Values: []string{"3"}}, false},
		{"hex", Request{What: WhatInodeFlags, Values: []string{"0x3000"}}, false},
		{"octal prefix", Request{What: WhatMode, Values: []string{"0o100644"}}, false},
		{"leading zero octal", Request{What: WhatMode, Values: []string{"0100644"}}, false},
		{"binary", Request{What: WhatDrecFlags, Values: []string{"0b1000"}}, false},
		{"size takes two values", Request{What: WhatSize, Values: []string{"10", "20"}}, false},
		{"size takes xdata length", Request{What: WhatSize, Values: []string{"10", "20", "8"}}, false},
		{"xattr flags use 32 bits", Request{What: WhatXattrFlags, Values: []string{"0x10001"}}, false},
		{"unsupported kind", Request{What: "extent", Values: []string{"1"}}, true},
		{"missing value", Request{What: WhatObjectKind}, true},
		{"too many values", Request{What: WhatInode, Values: []string{"1", "2"}}, true},
		{"size needs two values", Request{What: WhatSize, Values: []string{"10"}}, true},
		{"not a number", Request{What: WhatJKey, Values: []string{"root"}}, true},
		{"negative", Request{What: WhatInode, Values: []string{"-1"}}, true},
		{"mode wider than 16 bits", Request{What: WhatMode, Values: []string{"0x10000"}}, true},
		{"xattr flags wider than 32 bits", Request{What: WhatXattrFlags, Values: []string{"0x100000001"}}, true},
		{"size takes at most three values", Request{What: WhatSize, Values: []string{"1", "2", "3", "4"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
		})
	}
}

func TestRequestParse(t *testing.T) {
	req := Request{What: WhatSize, Values: []string{"0x10", "3808", "3804"}}
	values, err := req.parse()
	require.NoError(t, err)
	assert.Equal(t, []uint64{16, 3808, 3804}, values)

	_, err = (&Request{What: WhatInode, Values: []string{"x"}}).parse()
	assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
}

func TestParseNumber(t *testing.T) {
	n, err := parseNumber("0x0800000000000000")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0800000000000000), n)

	n, err = parseNumber("0o170000")
	require.NoError(t, err)
	assert.Equal(t, uint64(0o170000), n)

	_, err = parseNumber("")
	assert.Error(t, err)
}
