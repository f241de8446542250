// Package codec implements the binary wire encoding of an ast.Item: a
// one-byte format code (the item's 6-bit type tag and its 2-bit
// length-byte count) followed by 1-3 big-endian length bytes and the
// element payload.
//
// Decoding uses an immutable cursor over the input buffer rather than
// the mutating slice-reslicing the source binary parser uses, so a
// decode never aliases or consumes its caller's buffer.
package codec

import (
	"encoding/binary"
	"math"

	"github.com/wolimst/secs2-hsms-core/pkg/ast"
	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

// cursor is an immutable view into a byte buffer: advancing it returns
// a new cursor rather than mutating the one passed in.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) cursor {
	return cursor{buf: buf, pos: 0}
}

func (c cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c cursor) take(n int) (cursor, []byte, error) {
	if n > c.remaining() {
		return c, nil, secserr.NewAtOffset(secserr.TruncatedPayload, c.pos, "need %d bytes, only %d remain", n, c.remaining())
	}
	return cursor{buf: c.buf, pos: c.pos + n}, c.buf[c.pos : c.pos+n], nil
}

// Encode renders item as its HSMS wire bytes.
func Encode(item ast.Item) ([]byte, error) {
	header, payload, err := encodeOne(item)
	if err != nil {
		return nil, err
	}
	return append(header, payload...), nil
}

func encodeOne(item ast.Item) (header []byte, payload []byte, err error) {
	switch v := item.(type) {
	case *ast.ListItem:
		payload, err = encodeList(v)
	case *ast.BinaryItem:
		payload = append([]byte(nil), v.Values()...)
	case *ast.BooleanItem:
		payload = encodeBools(v.Values())
	case *ast.ASCIIItem:
		payload = append([]byte(nil), v.Values()...)
	case *ast.JIS8Item:
		payload = append([]byte(nil), v.Values()...)
	case *ast.IntItem:
		payload = encodeInts(v)
	case *ast.UintItem:
		payload = encodeUints(v)
	case *ast.FloatItem:
		payload = encodeFloats(v)
	default:
		return nil, nil, secserr.NewPlain(secserr.UnknownType, "unrecognized item implementation %T", item)
	}
	if err != nil {
		return nil, nil, err
	}

	length := len(payload)
	if item.Kind() == ast.KindList {
		length = item.Size()
	}
	header, err = encodeHeader(item.Kind(), length)
	if err != nil {
		return nil, nil, err
	}
	return header, payload, nil
}

// encodeHeader builds the format byte plus minimal-width length bytes
// for a kind/length pair. Length means element count for a list, byte
// count otherwise.
func encodeHeader(kind ast.Kind, length int) ([]byte, error) {
	if length < 0 || length > ast.MaxPayloadBytes {
		return nil, secserr.NewPlain(secserr.SizeOverflow, "%s length %d exceeds %d", kind.Tag(), length, ast.MaxPayloadBytes)
	}

	var lenBytes []byte
	switch {
	case length <= 0xFF:
		lenBytes = []byte{byte(length)}
	case length <= 0xFFFF:
		lenBytes = []byte{byte(length >> 8), byte(length)}
	default:
		lenBytes = []byte{byte(length >> 16), byte(length >> 8), byte(length)}
	}

	formatByte := kind.FormatCode()<<2 | byte(len(lenBytes))
	return append([]byte{formatByte}, lenBytes...), nil
}

func encodeList(l *ast.ListItem) ([]byte, error) {
	var out []byte
	for _, child := range l.Children() {
		h, p, err := encodeOne(child)
		if err != nil {
			return nil, err
		}
		out = append(out, h...)
		out = append(out, p...)
	}
	return out, nil
}

func encodeBools(values []bool) []byte {
	out := make([]byte, len(values))
	for i, v := range values {
		if v {
			out[i] = 1
		}
	}
	return out
}

func encodeInts(item *ast.IntItem) []byte {
	size := item.Kind().ElementSize()
	out := make([]byte, 0, size*len(item.Values()))
	for _, v := range item.Values() {
		buf := make([]byte, size)
		switch size {
		case 1:
			buf[0] = byte(v)
		case 2:
			binary.BigEndian.PutUint16(buf, uint16(v))
		case 4:
			binary.BigEndian.PutUint32(buf, uint32(v))
		case 8:
			binary.BigEndian.PutUint64(buf, uint64(v))
		}
		out = append(out, buf...)
	}
	return out
}

func encodeUints(item *ast.UintItem) []byte {
	size := item.Kind().ElementSize()
	out := make([]byte, 0, size*len(item.Values()))
	for _, v := range item.Values() {
		buf := make([]byte, size)
		switch size {
		case 1:
			buf[0] = byte(v)
		case 2:
			binary.BigEndian.PutUint16(buf, uint16(v))
		case 4:
			binary.BigEndian.PutUint32(buf, uint32(v))
		case 8:
			binary.BigEndian.PutUint64(buf, v)
		}
		out = append(out, buf...)
	}
	return out
}

func encodeFloats(item *ast.FloatItem) []byte {
	size := item.Kind().ElementSize()
	out := make([]byte, 0, size*len(item.Values()))
	for _, v := range item.Values() {
		buf := make([]byte, size)
		if size == 4 {
			binary.BigEndian.PutUint32(buf, math.Float32bits(float32(v)))
		} else {
			binary.BigEndian.PutUint64(buf, math.Float64bits(v))
		}
		out = append(out, buf...)
	}
	return out
}

// Decode parses a single item from data, returning the item and the
// number of bytes consumed.
func Decode(data []byte) (ast.Item, int, error) {
	item, c, err := decodeOne(newCursor(data))
	if err != nil {
		return nil, 0, err
	}
	return item, c.pos, nil
}

func decodeOne(c cursor) (ast.Item, cursor, error) {
	c, headerByte, err := c.take(1)
	if err != nil {
		return nil, c, err
	}
	formatByte := headerByte[0]
	lenByteCount := int(formatByte & 0b11)
	if lenByteCount == 0 {
		return nil, c, secserr.NewAtOffset(secserr.TruncatedPayload, c.pos-1, "length byte count field is zero")
	}

	kind, ok := ast.KindFromFormatCode(formatByte >> 2)
	if !ok {
		return nil, c, secserr.NewAtOffset(secserr.UnknownType, c.pos-1, "unrecognized format code 0o%o", formatByte>>2)
	}

	c, lenBytes, err := c.take(lenByteCount)
	if err != nil {
		return nil, c, err
	}
	length := 0
	for _, b := range lenBytes {
		length = length<<8 | int(b)
	}

	if kind == ast.KindList {
		return decodeList(c, length)
	}
	return decodeLeaf(c, kind, length)
}

func decodeList(c cursor, count int) (ast.Item, cursor, error) {
	children := make([]ast.Item, 0, count)
	for i := 0; i < count; i++ {
		var child ast.Item
		var err error
		child, c, err = decodeOne(c)
		if err != nil {
			return nil, c, err
		}
		children = append(children, child)
	}
	item, err := ast.NewList(children...)
	if err != nil {
		return nil, c, err
	}
	return item, c, nil
}

func decodeLeaf(c cursor, kind ast.Kind, byteLen int) (ast.Item, cursor, error) {
	c, payload, err := c.take(byteLen)
	if err != nil {
		return nil, c, err
	}

	elemSize := kind.ElementSize()
	if elemSize > 1 && byteLen%elemSize != 0 {
		return nil, c, secserr.NewAtOffset(secserr.TruncatedPayload, c.pos-byteLen, "%s payload length %d is not a multiple of element size %d", kind.Tag(), byteLen, elemSize)
	}

	var item ast.Item
	switch kind {
	case ast.KindBinary:
		item, err = ast.NewBinary(payload...)
	case ast.KindBoolean:
		vals := make([]bool, len(payload))
		for i, b := range payload {
			vals[i] = b != 0
		}
		item, err = ast.NewBoolean(vals...)
	case ast.KindASCII:
		item, err = ast.NewASCIIFromBytes(payload)
	case ast.KindJIS8:
		item, err = ast.NewJIS8FromBytes(payload)
	case ast.KindInt1, ast.KindInt2, ast.KindInt4, ast.KindInt8:
		item, err = decodeInts(kind, payload)
	case ast.KindUint1, ast.KindUint2, ast.KindUint4, ast.KindUint8:
		item, err = decodeUints(kind, payload)
	case ast.KindFloat4, ast.KindFloat8:
		item, err = decodeFloats(kind, payload)
	default:
		err = secserr.NewPlain(secserr.UnknownType, "unrecognized kind %s", kind)
	}
	if err != nil {
		return nil, c, err
	}
	return item, c, nil
}

func decodeInts(kind ast.Kind, payload []byte) (ast.Item, error) {
	size := kind.ElementSize()
	values := make([]int64, len(payload)/size)
	for i := range values {
		chunk := payload[i*size : (i+1)*size]
		switch size {
		case 1:
			values[i] = int64(int8(chunk[0]))
		case 2:
			values[i] = int64(int16(binary.BigEndian.Uint16(chunk)))
		case 4:
			values[i] = int64(int32(binary.BigEndian.Uint32(chunk)))
		case 8:
			values[i] = int64(binary.BigEndian.Uint64(chunk))
		}
	}
	switch kind {
	case ast.KindInt1:
		return ast.NewInt1(values...)
	case ast.KindInt2:
		return ast.NewInt2(values...)
	case ast.KindInt4:
		return ast.NewInt4(values...)
	default:
		return ast.NewInt8(values...)
	}
}

func decodeUints(kind ast.Kind, payload []byte) (ast.Item, error) {
	size := kind.ElementSize()
	values := make([]uint64, len(payload)/size)
	for i := range values {
		chunk := payload[i*size : (i+1)*size]
		switch size {
		case 1:
			values[i] = uint64(chunk[0])
		case 2:
			values[i] = uint64(binary.BigEndian.Uint16(chunk))
		case 4:
			values[i] = uint64(binary.BigEndian.Uint32(chunk))
		case 8:
			values[i] = binary.BigEndian.Uint64(chunk)
		}
	}
	switch kind {
	case ast.KindUint1:
		return ast.NewUint1(values...)
	case ast.KindUint2:
		return ast.NewUint2(values...)
	case ast.KindUint4:
		return ast.NewUint4(values...)
	default:
		return ast.NewUint8(values...)
	}
}

func decodeFloats(kind ast.Kind, payload []byte) (ast.Item, error) {
	size := kind.ElementSize()
	values := make([]float64, len(payload)/size)
	for i := range values {
		chunk := payload[i*size : (i+1)*size]
		if size == 4 {
			values[i] = float64(math.Float32frombits(binary.BigEndian.Uint32(chunk)))
		} else {
			values[i] = math.Float64frombits(binary.BigEndian.Uint64(chunk))
		}
	}
	if kind == ast.KindFloat4 {
		return ast.NewFloat4(values...)
	}
	return ast.NewFloat8(values...)
}
