// Package secserr defines the structured error kinds raised by the SML
// lexer, parser and binary codec, as enumerated in the error handling
// design of the SECS-II data subsystem.
//
// Errors are kept structured (kind + location + message) and are only
// rendered to a human-readable, multi-line diagnostic at the caller
// boundary, via Error() or Render().
package secserr

import "fmt"

// Kind identifies which invariant a SECSError violates.
type Kind int

const (
	// SyntaxError is raised when an unexpected token is found where the
	// grammar demands a specific one.
	SyntaxError Kind = iota
	// UnknownType is raised when a SML tag or HSMS format code isn't in
	// the variant table.
	UnknownType
	// ValueOutOfRange is raised when a numeric literal or constructor
	// argument falls outside a variant's declared bounds.
	ValueOutOfRange
	// CountMismatch is raised when an explicit "[N]" count disagrees
	// with the number of parsed elements.
	CountMismatch
	// TruncatedPayload is raised when a declared item length runs past
	// the end of the buffer, or a fixed-width payload isn't a multiple
	// of its element size.
	TruncatedPayload
	// SizeOverflow is raised when an item's payload would need more
	// than 3 length bytes to encode.
	SizeOverflow
	// InvalidType is raised when a host value handed to a constructor
	// has a disallowed shape for the target variant.
	InvalidType
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UnknownType:
		return "UnknownType"
	case ValueOutOfRange:
		return "ValueOutOfRange"
	case CountMismatch:
		return "CountMismatch"
	case TruncatedPayload:
		return "TruncatedPayload"
	case SizeOverflow:
		return "SizeOverflow"
	case InvalidType:
		return "InvalidType"
	default:
		return "UnknownKind"
	}
}

// Pos is the 1-based source position of the token an error is anchored
// to, together with the source line text for diagnostic rendering.
type Pos struct {
	Line       int
	Col        int
	SourceLine string
	has        bool
}

// NewPos builds a Pos for a lexer/parser error.
func NewPos(line, col int, sourceLine string) Pos {
	return Pos{Line: line, Col: col, SourceLine: sourceLine, has: true}
}

// SECSError is the structured error type returned across the lexer,
// parser and codec package boundaries.
type SECSError struct {
	Kind    Kind
	Pos     Pos    // zero value when not applicable (e.g. codec errors use Offset)
	Offset  int    // byte offset for codec errors; -1 when not applicable
	Message string
}

func (e *SECSError) Error() string {
	if e.Pos.has {
		return e.Render()
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at byte offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Render produces the three-line diagnostic named in the error handling
// design: the offending source line, a caret at the fault column, then
// the message.
func (e *SECSError) Render() string {
	if !e.Pos.has {
		return e.Error()
	}
	caret := ""
	for i := 1; i < e.Pos.Col; i++ {
		caret += " "
	}
	caret += "^"
	return fmt.Sprintf("%s\n%s\n%s (%s)", e.Pos.SourceLine, caret, e.Message, e.Kind)
}

// Is reports whether target is a *SECSError of the same Kind, so
// errors.Is(err, &secserr.SECSError{Kind: secserr.ValueOutOfRange})
// matches any ValueOutOfRange error; KindOf recovers the Kind directly.
func (e *SECSError) Is(target error) bool {
	other, ok := target.(*SECSError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds a positioned error (lexer/parser).
func New(kind Kind, pos Pos, format string, args ...interface{}) *SECSError {
	return &SECSError{Kind: kind, Pos: pos, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

// NewAtOffset builds a byte-offset error (codec).
func NewAtOffset(kind Kind, offset int, format string, args ...interface{}) *SECSError {
	return &SECSError{Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// NewPlain builds an error with neither a source position nor an offset
// (e.g. construction-time bounds errors raised directly by pkg/ast).
func NewPlain(kind Kind, format string, args ...interface{}) *SECSError {
	return &SECSError{Kind: kind, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err if it is a *SECSError, and ok == false
// otherwise.
func KindOf(err error) (kind Kind, ok bool) {
	se, ok := err.(*SECSError)
	if !ok {
		return 0, false
	}
	return se.Kind, true
}
