// Package envelope wraps a data tree root in the stream/function/wait-bit
// header that turns an ast.Item into a complete SECS-II message, and
// bridges that message to and from HSMS wire bytes.
//
// The HSMS connection state machine and its 10-byte session header
// (session ID, system bytes, P-type/S-type) are out of scope here; this
// package only carries the stream, function and wait-bit fields a
// higher-level transport would fold into that header.
package envelope

import (
	"strconv"

	"github.com/wolimst/secs2-hsms-core/pkg/ast"
	"github.com/wolimst/secs2-hsms-core/pkg/codec"
	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

// StreamFunction is a single SECS-II message: a stream/function code,
// its wait bit, and an optional data tree root (nil for a header-only
// message such as S1F1).
type StreamFunction struct {
	Stream   int
	Function int
	WaitBit  bool
	Root     ast.Item
}

// New builds a StreamFunction, validating stream and function are in
// range. Stream is bounded to 0..127: the high bit of the wire stream
// byte is reserved for the reply bit in SEMI E37, so 128..255 is never
// a valid stream number. Function has the full one-byte range, 0..255.
func New(stream, function int, waitBit bool, root ast.Item) (*StreamFunction, error) {
	if stream < 0 || stream > 127 {
		return nil, secserr.NewPlain(secserr.ValueOutOfRange, "stream %d out of range [0, 127]", stream)
	}
	if function < 0 || function > 255 {
		return nil, secserr.NewPlain(secserr.ValueOutOfRange, "function %d out of range [0, 255]", function)
	}
	return &StreamFunction{Stream: stream, Function: function, WaitBit: waitBit, Root: root}, nil
}

// String renders the canonical textual form:
//
//	SxFy [W]
//	    <item>
//	.
//
// matching the header + body + terminator layout the message language
// uses for a complete message.
func (sf *StreamFunction) String() string {
	out := "S" + strconv.Itoa(sf.Stream) + "F" + strconv.Itoa(sf.Function)
	if sf.WaitBit {
		out += " W"
	}
	out += "\n"
	if sf.Root != nil {
		out += sf.Root.ToSML(4) + "\n"
	}
	out += "."
	return out
}

// Bytes encodes the message body (the data tree only; the transport
// header is the caller's responsibility) as HSMS wire bytes. A
// header-only message with a nil Root encodes to an empty body.
func (sf *StreamFunction) Bytes() ([]byte, error) {
	if sf.Root == nil {
		return nil, nil
	}
	return codec.Encode(sf.Root)
}

// FromBytes decodes a message body into a StreamFunction with the given
// stream/function/wait-bit, the fields a transport header would supply
// out of band. An empty body produces a nil Root.
func FromBytes(stream, function int, waitBit bool, body []byte) (*StreamFunction, error) {
	if len(body) == 0 {
		return New(stream, function, waitBit, nil)
	}
	item, n, err := codec.Decode(body)
	if err != nil {
		return nil, err
	}
	if n != len(body) {
		return nil, secserr.NewAtOffset(secserr.TruncatedPayload, n, "message body has %d trailing bytes after the decoded item", len(body)-n)
	}
	return New(stream, function, waitBit, item)
}
