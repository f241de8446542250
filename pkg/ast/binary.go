package ast

import (
	"strconv"

	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

// BinaryItem is a fixed-width array of raw bytes (SML tag "B", format
// code 0o10).
type BinaryItem struct {
	values []byte
}

// NewBinary builds a BinaryItem, copying values.
func NewBinary(values ...byte) (*BinaryItem, error) {
	if payloadTooLarge(KindBinary.ElementSize(), len(values)) {
		return nil, sizeOverflowErr(KindBinary.Tag(), len(values))
	}
	cp := make([]byte, len(values))
	copy(cp, values)
	return &BinaryItem{values: cp}, nil
}

// NewBinaryFromInts builds a BinaryItem from host integers, each of
// which must fit in a byte (0..255).
func NewBinaryFromInts(values ...int) (*BinaryItem, error) {
	bs := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 0xFF {
			return nil, secserr.NewPlain(secserr.ValueOutOfRange, "%s value %d out of range [0, 255]", KindBinary.Tag(), v)
		}
		bs[i] = byte(v)
	}
	return NewBinary(bs...)
}

func (b *BinaryItem) Kind() Kind    { return KindBinary }
func (b *BinaryItem) Size() int     { return len(b.values) }
func (b *BinaryItem) Values() []byte { return b.values }

func (b *BinaryItem) Equal(other Item) bool {
	o, ok := other.(*BinaryItem)
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

func (b *BinaryItem) ToSML(indent int) string {
	rendered := make([]string, len(b.values))
	for i, v := range b.values {
		rendered[i] = "0x" + strconv.FormatUint(uint64(v), 16)
	}
	return renderNumeric(indent, KindBinary.Tag(), rendered)
}
