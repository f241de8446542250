package ast

import (
	"strconv"

	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

// UintItem is a fixed-width array of unsigned integers: SML tags U1,
// U2, U4, U8 with byte widths 1, 2, 4, 8 respectively.
type UintItem struct {
	kind   Kind
	values []uint64
}

var uintBounds = map[Kind]uint64{
	KindUint1: 1<<8 - 1,
	KindUint2: 1<<16 - 1,
	KindUint4: 1<<32 - 1,
	KindUint8: 1<<64 - 1, // the full uint64 range, so newUint skips the check for U8
}

func newUint(kind Kind, values []uint64) (*UintItem, error) {
	if payloadTooLarge(kind.ElementSize(), len(values)) {
		return nil, sizeOverflowErr(kind.Tag(), len(values))
	}
	cp := make([]uint64, len(values))
	for i, v := range values {
		if kind != KindUint8 && v > uintBounds[kind] {
			return nil, secserr.NewPlain(secserr.ValueOutOfRange, "%s value %d out of range [0, %d]", kind.Tag(), v, uintBounds[kind])
		}
		cp[i] = v
	}
	return &UintItem{kind: kind, values: cp}, nil
}

// NewUint1 builds a U1 item (1-byte unsigned integers, 0..255).
func NewUint1(values ...uint64) (*UintItem, error) { return newUint(KindUint1, values) }

// NewUint2 builds a U2 item (2-byte unsigned integers).
func NewUint2(values ...uint64) (*UintItem, error) { return newUint(KindUint2, values) }

// NewUint4 builds a U4 item (4-byte unsigned integers).
func NewUint4(values ...uint64) (*UintItem, error) { return newUint(KindUint4, values) }

// NewUint8 builds a U8 item (8-byte unsigned integers, the full uint64
// range).
func NewUint8(values ...uint64) (*UintItem, error) { return newUint(KindUint8, values) }

func (n *UintItem) Kind() Kind      { return n.kind }
func (n *UintItem) Size() int       { return len(n.values) }
func (n *UintItem) Values() []uint64 { return n.values }

func (n *UintItem) Equal(other Item) bool {
	o, ok := other.(*UintItem)
	if !ok || n.kind != o.kind || len(n.values) != len(o.values) {
		return false
	}
	for i, v := range n.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}

func (n *UintItem) ToSML(indent int) string {
	rendered := make([]string, len(n.values))
	for i, v := range n.values {
		rendered[i] = strconv.FormatUint(v, 10)
	}
	return renderNumeric(indent, n.kind.Tag(), rendered)
}
