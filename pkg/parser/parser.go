// Package parser implements the recursive-descent SML message parser:
// it consumes the token stream produced by pkg/lexer and the item
// constructors in pkg/ast to build an envelope.StreamFunction, the way
// the teacher library's own parser package walks its lexer's token
// channel into an ast.DataMessage.
//
// Errors are reported as *secserr.SECSError values. Syntax errors,
// unknown tags, unparsable literals and "[N]" count mismatches (anchored
// at the count token) are positioned at the offending token, so a caller
// can render the three-line diagnostic (source line, caret, message)
// without re-scanning the input. Bounds errors raised by the pkg/ast
// constructors (for example a U1 value of 300) and by the stream/function
// range check carry no source position.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wolimst/secs2-hsms-core/pkg/ast"
	"github.com/wolimst/secs2-hsms-core/pkg/envelope"
	"github.com/wolimst/secs2-hsms-core/pkg/lexer"
	"github.com/wolimst/secs2-hsms-core/pkg/secserr"
)

var streamFunctionRE = regexp.MustCompile(`(?i)^S(\d+)F(\d+)$`)

// Parse parses a complete SML message: a stream/function header,
// an optional wait bit, an optional data item, and an optional "."
// terminator.
func Parse(input string) (*envelope.StreamFunction, error) {
	p := &parser{tokens: lexer.Lex(input), pos: 0}
	return p.parseMessage()
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) next() lexer.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errAt(tok lexer.Token, format string, args ...interface{}) error {
	return secserr.New(secserr.SyntaxError, secserr.NewPos(tok.Line, tok.Col, tok.SourceLine()), format, args...)
}

func (p *parser) parseMessage() (*envelope.StreamFunction, error) {
	header := p.next()
	if header.Type != lexer.TokenWord {
		return nil, p.errAt(header, "expected a stream/function header such as S1F1, got %q", header.Value)
	}
	m := streamFunctionRE.FindStringSubmatch(header.Value)
	if m == nil {
		return nil, p.errAt(header, "malformed stream/function header %q", header.Value)
	}
	stream, _ := strconv.Atoi(m[1])
	function, _ := strconv.Atoi(m[2])

	waitBit := false
	if p.peek().Type == lexer.TokenWord && strings.EqualFold(p.peek().Value, "W") {
		p.next()
		waitBit = true
	}

	var root ast.Item
	if p.peek().Type == lexer.TokenOperator && p.peek().Value == "<" {
		var err error
		root, err = p.parseItem()
		if err != nil {
			return nil, err
		}
	}

	if p.peek().Type == lexer.TokenWord && p.peek().Value == "." {
		p.next()
	}

	return envelope.New(stream, function, waitBit, root)
}

// parseItem parses a single "< TAG [N] ... >" data item, recursively
// for nested lists.
func (p *parser) parseItem() (ast.Item, error) {
	open := p.next()
	if !(open.Type == lexer.TokenOperator && open.Value == "<") {
		return nil, p.errAt(open, "expected '<', got %q", open.Value)
	}

	tagTok := p.next()
	if tagTok.Type != lexer.TokenWord {
		return nil, p.errAt(tagTok, "expected a type tag, got %q", tagTok.Value)
	}
	kind, ok := ast.KindFromTag(tagTok.Value)
	if !ok {
		return nil, secserr.New(secserr.UnknownType, secserr.NewPos(tagTok.Line, tagTok.Col, tagTok.SourceLine()), "unrecognized type tag %q", tagTok.Value)
	}

	explicitCount := -1
	var countTok lexer.Token
	if p.peek().Type == lexer.TokenOperator && p.peek().Value == "[" {
		p.next()
		countTok = p.next()
		n, err := strconv.Atoi(countTok.Value)
		if err != nil {
			return nil, p.errAt(countTok, "expected an integer count, got %q", countTok.Value)
		}
		explicitCount = n
		closeBracket := p.next()
		if !(closeBracket.Type == lexer.TokenOperator && closeBracket.Value == "]") {
			return nil, p.errAt(closeBracket, "expected ']', got %q", closeBracket.Value)
		}
	}

	var item ast.Item
	var err error
	if kind == ast.KindList {
		item, err = p.parseListBody(explicitCount)
	} else {
		item, err = p.parseLeafBody(kind, explicitCount, tagTok)
	}
	if err != nil {
		// Anchor this item's own count mismatch at its "[N]" count token;
		// a nested child's error already carries its own position.
		if se, ok := err.(*secserr.SECSError); ok && se.Kind == secserr.CountMismatch && se.Pos == (secserr.Pos{}) {
			se.Pos = secserr.NewPos(countTok.Line, countTok.Col, countTok.SourceLine())
		}
		return nil, err
	}

	closeTok := p.next()
	if !(closeTok.Type == lexer.TokenOperator && closeTok.Value == ">") {
		return nil, p.errAt(closeTok, "expected '>', got %q", closeTok.Value)
	}
	return item, nil
}

func (p *parser) parseListBody(explicitCount int) (ast.Item, error) {
	var children []ast.Item
	for p.peek().Type == lexer.TokenOperator && p.peek().Value == "<" {
		child, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if explicitCount >= 0 && explicitCount != len(children) {
		return nil, secserr.NewPlain(secserr.CountMismatch, "list declares [%d] elements but has %d", explicitCount, len(children))
	}
	return ast.NewList(children...)
}

func (p *parser) parseLeafBody(kind ast.Kind, explicitCount int, tagTok lexer.Token) (ast.Item, error) {
	var values []lexer.Token
	for !(p.peek().Type == lexer.TokenOperator && p.peek().Value == ">") {
		if p.peek().Type == lexer.TokenEOF {
			return nil, p.errAt(p.peek(), "unterminated %s item: expected '>'", kind.Tag())
		}
		values = append(values, p.next())
	}

	if explicitCount >= 0 {
		if err := checkExplicitCount(kind, explicitCount, values); err != nil {
			return nil, err
		}
	}

	switch kind {
	case ast.KindASCII, ast.KindJIS8:
		item, err := parseByteString(kind, values)
		if err == nil && explicitCount >= 0 && explicitCount != item.Size() {
			return nil, secserr.NewPlain(secserr.CountMismatch, "%s declares [%d] bytes but has %d", kind.Tag(), explicitCount, item.Size())
		}
		return item, err
	case ast.KindBinary:
		return parseBinary(values)
	case ast.KindBoolean:
		return parseBoolean(values)
	case ast.KindInt1, ast.KindInt2, ast.KindInt4, ast.KindInt8:
		return parseInts(kind, values)
	case ast.KindUint1, ast.KindUint2, ast.KindUint4, ast.KindUint8:
		return parseUints(kind, values)
	case ast.KindFloat4, ast.KindFloat8:
		return parseFloats(kind, values)
	default:
		return nil, secserr.NewPlain(secserr.UnknownType, "unhandled leaf kind %s", kind)
	}
}

// checkExplicitCount validates a "[N]" count against the parsed value
// tokens. For byte-string kinds (A, J), N counts decoded bytes, not
// tokens, so the check is deferred to after decoding in that case.
func checkExplicitCount(kind ast.Kind, explicitCount int, values []lexer.Token) error {
	switch kind {
	case ast.KindASCII, ast.KindJIS8:
		return nil
	default:
		if explicitCount != len(values) {
			return secserr.NewPlain(secserr.CountMismatch, "%s declares [%d] elements but has %d", kind.Tag(), explicitCount, len(values))
		}
		return nil
	}
}

func parseByteString(kind ast.Kind, values []lexer.Token) (ast.Item, error) {
	var out []byte
	for _, tok := range values {
		if tok.Type == lexer.TokenLiteral {
			out = append(out, []byte(lexer.LiteralInner(tok.Value))...)
			continue
		}
		b, err := parseByteToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if kind == ast.KindJIS8 {
		return ast.NewJIS8FromBytes(out)
	}
	return ast.NewASCIIFromBytes(out)
}

func parseByteToken(tok lexer.Token) (byte, error) {
	n, err := strconv.ParseUint(tok.Value, 0, 16)
	if err != nil || n > 0xFF {
		return 0, secserr.New(secserr.ValueOutOfRange, secserr.NewPos(tok.Line, tok.Col, tok.SourceLine()), "expected a byte value 0..255, got %q", tok.Value)
	}
	return byte(n), nil
}

func parseBinary(values []lexer.Token) (ast.Item, error) {
	bytes := make([]byte, len(values))
	for i, tok := range values {
		b, err := parseByteToken(tok)
		if err != nil {
			return nil, err
		}
		bytes[i] = b
	}
	return ast.NewBinary(bytes...)
}

func parseBoolean(values []lexer.Token) (ast.Item, error) {
	bools := make([]bool, len(values))
	for i, tok := range values {
		n, err := strconv.ParseInt(tok.Value, 0, 64)
		if err != nil || n < 0 || n > 1 {
			return nil, secserr.New(secserr.ValueOutOfRange, secserr.NewPos(tok.Line, tok.Col, tok.SourceLine()), "expected a boolean value (0 or 1), got %q", tok.Value)
		}
		bools[i] = n == 1
	}
	return ast.NewBoolean(bools...)
}

func parseInts(kind ast.Kind, values []lexer.Token) (ast.Item, error) {
	out := make([]int64, len(values))
	for i, tok := range values {
		v, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, secserr.New(secserr.ValueOutOfRange, secserr.NewPos(tok.Line, tok.Col, tok.SourceLine()), "expected an integer, got %q", tok.Value)
		}
		out[i] = v
	}
	switch kind {
	case ast.KindInt1:
		return ast.NewInt1(out...)
	case ast.KindInt2:
		return ast.NewInt2(out...)
	case ast.KindInt4:
		return ast.NewInt4(out...)
	default:
		return ast.NewInt8(out...)
	}
}

func parseUints(kind ast.Kind, values []lexer.Token) (ast.Item, error) {
	out := make([]uint64, len(values))
	for i, tok := range values {
		v, err := strconv.ParseUint(tok.Value, 10, 64)
		if err != nil {
			return nil, secserr.New(secserr.ValueOutOfRange, secserr.NewPos(tok.Line, tok.Col, tok.SourceLine()), "expected an unsigned integer, got %q", tok.Value)
		}
		out[i] = v
	}
	switch kind {
	case ast.KindUint1:
		return ast.NewUint1(out...)
	case ast.KindUint2:
		return ast.NewUint2(out...)
	case ast.KindUint4:
		return ast.NewUint4(out...)
	default:
		return ast.NewUint8(out...)
	}
}

func parseFloats(kind ast.Kind, values []lexer.Token) (ast.Item, error) {
	out := make([]float64, len(values))
	for i, tok := range values {
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, secserr.New(secserr.ValueOutOfRange, secserr.NewPos(tok.Line, tok.Col, tok.SourceLine()), "expected a float, got %q", tok.Value)
		}
		out[i] = v
	}
	if kind == ast.KindFloat4 {
		return ast.NewFloat4(out...)
	}
	return ast.NewFloat8(out...)
}
