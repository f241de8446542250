package ast

import (
	"math"
	"strconv"

	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

// FloatItem is a fixed-width array of IEEE-754 floats: SML tags F4, F8
// with byte widths 4 and 8 respectively.
type FloatItem struct {
	kind   Kind
	values []float64
}

func newFloat(kind Kind, values []float64) (*FloatItem, error) {
	if payloadTooLarge(kind.ElementSize(), len(values)) {
		return nil, sizeOverflowErr(kind.Tag(), len(values))
	}
	cp := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, secserr.NewPlain(secserr.ValueOutOfRange, "%s value %v is not finite", kind.Tag(), v)
		}
		if kind == KindFloat4 {
			f32 := float32(v)
			if math.IsInf(float64(f32), 0) {
				return nil, secserr.NewPlain(secserr.ValueOutOfRange, "%s value %v overflows float32", kind.Tag(), v)
			}
		}
		cp[i] = v
	}
	return &FloatItem{kind: kind, values: cp}, nil
}

// NewFloat4 builds an F4 item (4-byte floats); values are stored at
// float64 precision but must fit in the float32 range, since that's
// what the wire encoding preserves.
func NewFloat4(values ...float64) (*FloatItem, error) { return newFloat(KindFloat4, values) }

// NewFloat8 builds an F8 item (8-byte floats).
func NewFloat8(values ...float64) (*FloatItem, error) { return newFloat(KindFloat8, values) }

func (n *FloatItem) Kind() Kind       { return n.kind }
func (n *FloatItem) Size() int        { return len(n.values) }
func (n *FloatItem) Values() []float64 { return n.values }

func (n *FloatItem) Equal(other Item) bool {
	o, ok := other.(*FloatItem)
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

func (n *FloatItem) ToSML(indent int) string {
	bitSize := 64
	if n.kind == KindFloat4 {
		bitSize = 32
	}
	rendered := make([]string, len(n.values))
	for i, v := range n.values {
		rendered[i] = strconv.FormatFloat(v, 'g', -1, bitSize)
	}
	return renderNumeric(indent, n.kind.Tag(), rendered)
}
