package inspect

import (
	"fmt"
	"math"
	"strconv"

	"github.com/deploymenttheory/go-apfs-format/pkg/app"
)

// Validate validates an inspection request
func (r *Request) Validate() error {
	_, err := r.parse()
	return err
}

// parse validates the request and returns its values as numbers
func (r *Request) parse() ([]uint64, error) {
	if !isSupported(r.What) {
		return nil, app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("unsupported value kind %q", r.What), nil)
	}

	lo, hi := valueCount(r.What)
	if len(r.Values) < lo || len(r.Values) > hi {
		want := fmt.Sprintf("%d", lo)
		if hi != lo {
			want = fmt.Sprintf("%d to %d", lo, hi)
		}
		return nil, app.NewError(app.ErrCodeInvalidInput,
			fmt.Sprintf("%s takes %s value(s), got %d", r.What, want, len(r.Values)), nil)
	}

	values := make([]uint64, len(r.Values))
	for i := range r.Values {
		n, err := r.value(i)
		if err != nil {
			return nil, err
		}
		values[i] = n
	}
	return values, nil
}

// valueCount returns how many values a kind takes. WhatSize takes a key
// length, a value length and optionally an inline xattr data length.
func valueCount(what What) (int, int) {
	if what == WhatSize {
		return 2, 3
	}
	return 1, 1
}

// value parses the i-th raw value and checks it fits the field width of r.What
func (r *Request) value(i int) (uint64, error) {
	raw := r.Values[i]
	n, err := parseNumber(raw)
	if err != nil {
		return 0, app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("invalid number %q", raw), err)
	}
	if limit := fieldLimit(r.What); n > limit {
		return 0, app.NewError(app.ErrCodeInvalidInput,
			fmt.Sprintf("%s value %s does not fit in its field (max 0x%x)", r.What, raw, limit), nil)
	}
	return n, nil
}

// parseNumber accepts decimal, 0x hex, 0o or leading-zero octal and 0b binary
func parseNumber(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

func fieldLimit(what What) uint64 {
	switch what {
	case WhatDrecFlags, WhatMode:
		return math.MaxUint16
	case WhatXattrFlags:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}

func isSupported(what What) bool {
	for _, w := range AllWhats {
		if w == what {
			return true
		}
	}
	return false
}
