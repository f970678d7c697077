package inspect

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResponse() *Response {
	return &Response{
		What:      WhatXattrFlags,
		Input:     "3",
		Summary:   "XATTR_DATA_STREAM|XATTR_DATA_EMBEDDED",
		Fields:    []Field{{Name: "bits", Value: "0x0003"}},
		Valid:     false,
		Violation: "xattr flags 0x3: xattr marked both stream and embedded (0x3)",
	}
}

func TestFormatOutput_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, sampleResponse(), "table"))

	out := buf.String()
	assert.Contains(t, out, "xattr-flags 3: XATTR_DATA_STREAM|XATTR_DATA_EMBEDDED")
	assert.Contains(t, out, "bits")
	assert.Contains(t, out, "0x0003")
	assert.Contains(t, out, "INVALID: xattr flags 0x3")
}

func TestFormatOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, sampleResponse(), "json"))

	var decoded Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleResponse(), decoded)
}

func TestFormatOutput_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, sampleResponse(), "yaml"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "xattr-flags", decoded["what"])
	assert.Equal(t, false, decoded["valid"])
}

func TestFormatOutput_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, FormatOutput(&buf, sampleResponse(), "xml"))
}
