package ast

import (
	"fmt"

	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

// MaxPayloadBytes is the largest payload length (in bytes) an item's
// 3-byte length field can address: 2^24 - 1.
const MaxPayloadBytes = 1<<24 - 1

// Item is an immutable SECS-II data element: either a list of child
// Items, or a typed array of scalar leaf values.
//
// Item is a closed union - the only implementations live in this
// package - so a type switch over Kind() covers every case. An Item owns
// its payload exclusively; constructors always copy their input slices.
type Item interface {
	// Kind reports the variant this item belongs to.
	Kind() Kind
	// Size returns the number of elements (list children, or leaf
	// values) the item holds.
	Size() int
	// Equal reports whether other is structurally identical to this
	// item.
	Equal(other Item) bool
	// ToSML renders the item as canonical SML, indented by indent
	// spaces for a top-level call.
	ToSML(indent int) string
}

func payloadTooLarge(elementSize, count int) bool {
	return elementSize*count > MaxPayloadBytes
}

func sizeOverflowErr(tag string, count int) error {
	return secserr.NewPlain(secserr.SizeOverflow, "%s item with %d elements exceeds the %d byte payload limit", tag, count, MaxPayloadBytes)
}

// renderEmpty renders the canonical empty-payload form "< TAG >".
func renderEmpty(indent int, tag string) string {
	return fmt.Sprintf("%s< %s >", spaces(indent), tag)
}

// renderNumeric renders "< TAG v1 v2 ... vn >" for a non-empty numeric
// leaf, given already-formatted value strings.
func renderNumeric(indent int, tag string, values []string) string {
	if len(values) == 0 {
		return renderEmpty(indent, tag)
	}
	out := spaces(indent) + "< " + tag
	for _, v := range values {
		out += " " + v
	}
	out += " >"
	return out
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
