package ast

import "github.com/wolimst/secs2-hsms-core/pkg/secserr"

// JIS8Item is an 8-bit JIS character array (SML tag "J", format code
// 0o21). It shares ASCII's canonical rendering (see
// original_source/secsgem_simulator/secs_data_j.py), but unlike
// ASCIIItem, constructing one from a Go string requires the string to
// be 7-bit ASCII: the full JIS-8 repertoire (the high half-width
// katakana range) isn't representable in a Go source literal, so those
// bytes may only be supplied via NewJIS8FromBytes.
type JIS8Item struct {
	values []byte
}

// NewJIS8 builds a JIS8Item from a 7-bit ASCII Go string.
func NewJIS8(s string) (*JIS8Item, error) {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return nil, secserr.NewPlain(secserr.InvalidType, "JIS8 string literal byte %d (0x%x) is not 7-bit ASCII; use NewJIS8FromBytes", i, s[i])
		}
	}
	return NewJIS8FromBytes([]byte(s))
}

// NewJIS8FromBytes builds a JIS8Item from raw bytes, with no repertoire
// restriction: any byte 0..255 round-trips.
func NewJIS8FromBytes(values []byte) (*JIS8Item, error) {
	if payloadTooLarge(KindJIS8.ElementSize(), len(values)) {
		return nil, sizeOverflowErr(KindJIS8.Tag(), len(values))
	}
	cp := make([]byte, len(values))
	copy(cp, values)
	return &JIS8Item{values: cp}, nil
}

func (j *JIS8Item) Kind() Kind     { return KindJIS8 }
func (j *JIS8Item) Size() int      { return len(j.values) }
func (j *JIS8Item) Values() []byte { return j.values }

func (j *JIS8Item) Equal(other Item) bool {
	o, ok := other.(*JIS8Item)
	if !ok || len(j.values) != len(o.values) {
		return false
	}
	for i, v := range j.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}

func (j *JIS8Item) ToSML(indent int) string {
	return renderByteString(indent, KindJIS8.Tag(), j.values)
}
