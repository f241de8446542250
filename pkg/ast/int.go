package ast

import (
	"strconv"

	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

// IntItem is a fixed-width array of signed integers: SML tags I1, I2,
// I4, I8 with byte widths 1, 2, 4, 8 respectively.
type IntItem struct {
	kind   Kind
	values []int64
}

var intBounds = map[Kind][2]int64{
	KindInt1: {-1 << 7, 1<<7 - 1},
	KindInt2: {-1 << 15, 1<<15 - 1},
	KindInt4: {-1 << 31, 1<<31 - 1},
	KindInt8: {-1 << 63, 1<<63 - 1},
}

func newInt(kind Kind, values []int64) (*IntItem, error) {
	bounds := intBounds[kind]
	if payloadTooLarge(kind.ElementSize(), len(values)) {
		return nil, sizeOverflowErr(kind.Tag(), len(values))
	}
	cp := make([]int64, len(values))
	for i, v := range values {
		if v < bounds[0] || v > bounds[1] {
			return nil, secserr.NewPlain(secserr.ValueOutOfRange, "%s value %d out of range [%d, %d]", kind.Tag(), v, bounds[0], bounds[1])
		}
		cp[i] = v
	}
	return &IntItem{kind: kind, values: cp}, nil
}

// NewInt1 builds an I1 item (1-byte signed integers, -128..127).
func NewInt1(values ...int64) (*IntItem, error) { return newInt(KindInt1, values) }

// NewInt2 builds an I2 item (2-byte signed integers).
func NewInt2(values ...int64) (*IntItem, error) { return newInt(KindInt2, values) }

// NewInt4 builds an I4 item (4-byte signed integers).
func NewInt4(values ...int64) (*IntItem, error) { return newInt(KindInt4, values) }

// NewInt8 builds an I8 item (8-byte signed integers).
func NewInt8(values ...int64) (*IntItem, error) { return newInt(KindInt8, values) }

func (n *IntItem) Kind() Kind     { return n.kind }
func (n *IntItem) Size() int      { return len(n.values) }
func (n *IntItem) Values() []int64 { return n.values }

func (n *IntItem) Equal(other Item) bool {
	o, ok := other.(*IntItem)
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

func (n *IntItem) ToSML(indent int) string {
	rendered := make([]string, len(n.values))
	for i, v := range n.values {
		rendered[i] = strconv.FormatInt(v, 10)
	}
	return renderNumeric(indent, n.kind.Tag(), rendered)
}
