package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

// Testing Strategy:
//
// Partitions:
// - empty vs. nonempty
// - construction from bytes vs. from ints (bounds check)
// - equality
// - canonical rendering

func TestBinary_Empty(t *testing.T) {
	b, err := NewBinary()
	assert.NoError(t, err)
	assert.Equal(t, "< B >", b.ToSML(0))
}

func TestBinary_Render(t *testing.T) {
	b, err := NewBinary(0x01, 0xFF)
	assert.NoError(t, err)
	assert.Equal(t, "< B 0x1 0xff >", b.ToSML(0))
}

func TestBinary_FromInts(t *testing.T) {
	b, err := NewBinaryFromInts(1, 255)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 255}, b.Values())

	_, err = NewBinaryFromInts(256)
	assert.Error(t, err)
	kind, ok := secserr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, secserr.ValueOutOfRange, kind)

	_, err = NewBinaryFromInts(-1)
	assert.Error(t, err)
}

func TestBinary_Equal(t *testing.T) {
	a, _ := NewBinary(1, 2)
	b, _ := NewBinary(1, 2)
	c, _ := NewBinary(1, 3)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
