package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wolimst/secs2-hsms-core/pkg/ast"
	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

// Testing Strategy:
//
// Partitions:
// - every leaf kind round-trips Encode -> Decode
// - nested lists round-trip, including an empty list
// - minimal length-byte-width selection (1 and 2 bytes)
// - TruncatedPayload: buffer shorter than declared length, and a
//   fixed-width payload not a multiple of its element size
// - UnknownType: unrecognized format code

func TestCodec_RoundTripLeaves(t *testing.T) {
	u1, _ := ast.NewUint1(1, 2, 3)
	i2, _ := ast.NewInt2(-5, 100)
	f4, _ := ast.NewFloat4(1.5)
	boolItem, _ := ast.NewBoolean(true, false)
	asciiItem, _ := ast.NewASCII("hi")
	jisItem, _ := ast.NewJIS8FromBytes([]byte{0xA1})
	binItem, _ := ast.NewBinary(0x00, 0xFF)

	items := []ast.Item{u1, i2, f4, boolItem, asciiItem, jisItem, binItem}
	for i, item := range items {
		t.Logf("Test #%d: %s", i, item.Kind())
		wire, err := Encode(item)
		assert.NoError(t, err)

		decoded, n, err := Decode(wire)
		assert.NoError(t, err)
		assert.Equal(t, len(wire), n)
		assert.True(t, item.Equal(decoded), "round trip mismatch for %s", item.Kind())
	}
}

func TestCodec_RoundTripNestedList(t *testing.T) {
	leaf, _ := ast.NewUint2(7)
	empty, _ := ast.NewList()
	outer, _ := ast.NewList(leaf, empty)

	wire, err := Encode(outer)
	assert.NoError(t, err)

	decoded, n, err := Decode(wire)
	assert.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.True(t, outer.Equal(decoded))
}

func TestCodec_LengthByteWidthSelection(t *testing.T) {
	small, _ := ast.NewASCII("x")
	wire, _ := Encode(small)
	assert.Equal(t, 1, int(wire[0]&0b11))

	big := make([]byte, 1<<9)
	item, _ := ast.NewASCIIFromBytes(big)
	wire, _ = Encode(item)
	assert.Equal(t, 2, int(wire[0]&0b11))
}

func TestCodec_TruncatedPayload(t *testing.T) {
	// format byte: ASCII (0o20) with 1 length byte, declared length 5,
	// but only 2 payload bytes supplied.
	formatByte := byte(ast.KindASCII.FormatCode()<<2 | 1)
	wire := []byte{formatByte, 5, 'a', 'b'}

	_, _, err := Decode(wire)
	assert.Error(t, err)
	kind, ok := secserr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, secserr.TruncatedPayload, kind)
}

func TestCodec_TruncatedPayload_NotMultipleOfElementSize(t *testing.T) {
	formatByte := byte(ast.KindUint2.FormatCode()<<2 | 1)
	wire := []byte{formatByte, 3, 0x00, 0x01, 0x02} // 3 bytes, not a multiple of 2

	_, _, err := Decode(wire)
	assert.Error(t, err)
	kind, ok := secserr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, secserr.TruncatedPayload, kind)
}

func TestCodec_UnknownFormatCode(t *testing.T) {
	wire := []byte{byte(0b111111<<2 | 1), 0}
	_, _, err := Decode(wire)
	assert.Error(t, err)
	kind, ok := secserr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, secserr.UnknownType, kind)
}
