package inspect

import "fmt"

// What selects the kind of raw value to decode
type What string

const (
	WhatObjectType What = "type"
	WhatObjectKind What = "kind"
	WhatInodeFlags What = "inode-flags"
	WhatXattrFlags What = "xattr-flags"
	WhatDrecFlags  What = "drec-flags"
	WhatMode       What = "mode"
	WhatInode      What = "ino"
	WhatJKey       What = "jkey"
	WhatSize       What = "size"
)

// AllWhats lists every supported value kind in display order
var AllWhats = []What{
	WhatObjectType,
	WhatObjectKind,
	WhatInodeFlags,
	WhatXattrFlags,
	WhatDrecFlags,
	WhatMode,
	WhatInode,
	WhatJKey,
	WhatSize,
}

// Request represents an inspection request
type Request struct {
	What What
	// Values holds the raw arguments. Every kind takes one value except
	// WhatSize, which takes a key length, a value length and an optional
	// inline xattr data length.
	Values []string
}

// Response represents the decoded value
type Response struct {
	What  What   `json:"what" yaml:"what"`
	Input string `json:"input" yaml:"input"`

	// Summary is a one-line description of the value
	Summary string  `json:"summary" yaml:"summary"`
	Fields  []Field `json:"fields" yaml:"fields"`

	// Valid is false when the value violates the format
	Valid     bool   `json:"valid" yaml:"valid"`
	Violation string `json:"violation,omitempty" yaml:"violation,omitempty"`
}

// Field is one decoded attribute of the value
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

func (r *Response) add(name string, format string, args ...any) {
	r.Fields = append(r.Fields, Field{Name: name, Value: fmt.Sprintf(format, args...)})
}

func (r *Response) violate(err error) {
	r.Valid = false
	r.Violation = err.Error()
}

// Field returns the value of the named field, if present
func (r *Response) Field(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
