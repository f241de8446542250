package ast

import "github.com/wolimst/secs2-hsms-core/pkg/secserr"

// BooleanItem is a fixed-width array of boolean flags (SML tag
// "BOOLEAN", format code 0o11), rendered canonically as "0x1"/"0x0".
type BooleanItem struct {
	values []bool
}

// NewBoolean builds a BooleanItem, copying values.
func NewBoolean(values ...bool) (*BooleanItem, error) {
	if payloadTooLarge(KindBoolean.ElementSize(), len(values)) {
		return nil, sizeOverflowErr(KindBoolean.Tag(), len(values))
	}
	cp := make([]bool, len(values))
	copy(cp, values)
	return &BooleanItem{values: cp}, nil
}

// NewBooleanFromInts builds a BooleanItem from host integers, each of
// which must be 0 or 1 - the same bound the source's
// _verify_value_in_bounds enforces for its boolean variant.
func NewBooleanFromInts(values ...int) (*BooleanItem, error) {
	bs := make([]bool, len(values))
	for i, v := range values {
		if v < 0 || v > 1 {
			return nil, secserr.NewPlain(secserr.ValueOutOfRange, "%s value %d out of range [0, 1]", KindBoolean.Tag(), v)
		}
		bs[i] = v == 1
	}
	return NewBoolean(bs...)
}

func (b *BooleanItem) Kind() Kind    { return KindBoolean }
func (b *BooleanItem) Size() int     { return len(b.values) }
func (b *BooleanItem) Values() []bool { return b.values }

func (b *BooleanItem) Equal(other Item) bool {
	o, ok := other.(*BooleanItem)
	if !ok || len(b.values) != len(o.values) {
		return false
	}
	for i, v := range b.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}

func (b *BooleanItem) ToSML(indent int) string {
	rendered := make([]string, len(b.values))
	for i, v := range b.values {
		if v {
			rendered[i] = "0x1"
		} else {
			rendered[i] = "0x0"
		}
	}
	return renderNumeric(indent, KindBoolean.Tag(), rendered)
}
