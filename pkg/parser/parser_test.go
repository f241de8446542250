package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wolimst/secs2-hsms-core/internal/fixture"
	"github.com/wolimst/secs2-hsms-core/pkg/ast"
)

// Testing Strategy:
//
// Partitions:
// - header-only message, with and without the wait bit
// - message with a scalar leaf body, and with a nested list body
// - explicit "[N]" count: matching and mismatched
// - every leaf kind parses its canonical rendering back losslessly
// - malformed input: bad header, unknown tag, unterminated item,
//   missing '>' all produce a SyntaxError/UnknownType/CountMismatch

func TestParse_HeaderOnly(t *testing.T) {
	sf, err := Parse("S1F1")
	assert.NoError(t, err)
	assert.Equal(t, 1, sf.Stream)
	assert.Equal(t, 1, sf.Function)
	assert.False(t, sf.WaitBit)
	assert.Nil(t, sf.Root)
}

func TestParse_WaitBit(t *testing.T) {
	sf, err := Parse("S1F1 W")
	assert.NoError(t, err)
	assert.True(t, sf.WaitBit)
}

func TestParse_ScalarBody(t *testing.T) {
	sf, err := Parse("S1F3\n< U1 7 8 >\n.")
	assert.NoError(t, err)
	want, _ := ast.NewUint1(7, 8)
	assert.True(t, want.Equal(sf.Root))
}

func TestParse_NestedList(t *testing.T) {
	sf, err := Parse("S6F11\n<L [2]\n  <A \"ok\">\n  <U1 0>\n>\n.")
	assert.NoError(t, err)
	assert.Equal(t, ast.KindList, sf.Root.Kind())
	assert.Equal(t, 2, sf.Root.Size())
}

func TestParse_ExplicitCountMismatch(t *testing.T) {
	_, err := Parse("S1F3\n< U1 [3] 7 8 >\n.")
	assert.Error(t, err)
}

func TestParse_ExplicitCountMatches(t *testing.T) {
	sf, err := Parse("S1F3\n< U1 [2] 7 8 >\n.")
	assert.NoError(t, err)
	assert.Equal(t, 2, sf.Root.Size())
}

func TestParse_AllLeafKindsRoundTrip(t *testing.T) {
	var tests = []struct {
		description string
		sml         string
	}{
		{"list", "< L >"},
		{"binary", "< B 0x1 0xff >"},
		{"boolean", "< BOOLEAN 0x1 0x0 >"},
		{"ascii", `< A "hi" 0x0 >`},
		{"jis8", `< J "ok" >`},
		{"int1", "< I1 -1 2 >"},
		{"int2", "< I2 -5 10 >"},
		{"int4", "< I4 -5 10 >"},
		{"int8", "< I8 -5 10 >"},
		{"uint1", "< U1 0 255 >"},
		{"uint2", "< U2 0 65535 >"},
		{"uint4", "< U4 0 4294967295 >"},
		{"uint8", "< U8 0 9 >"},
		{"float4", "< F4 1.5 >"},
		{"float8", "< F8 1.5 -2 >"},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		sf, err := Parse("S1F1\n" + test.sml + "\n.")
		assert.NoError(t, err)
		assert.Equal(t, test.sml, sf.Root.ToSML(0))
	}
}

func TestParse_MalformedHeader(t *testing.T) {
	_, err := Parse("not-a-header")
	assert.Error(t, err)
}

func TestParse_UnknownTag(t *testing.T) {
	_, err := Parse("S1F1\n< Q 1 >\n.")
	assert.Error(t, err)
}

func TestParse_UnterminatedItem(t *testing.T) {
	_, err := Parse("S1F1\n< U1 1")
	assert.Error(t, err)
}

func TestParse_DiagnosticRendersSourceLineAndCaret(t *testing.T) {
	_, err := Parse("S1F1\n< Q 1 >\n.")
	assert.Contains(t, err.Error(), "< Q 1 >")
	assert.Contains(t, err.Error(), "^")
}

func TestParse_FixtureMessages(t *testing.T) {
	for i, f := range fixture.Messages {
		t.Logf("Test #%d: %s", i, f.Label)
		_, err := Parse(f.SML)
		assert.NoError(t, err, f.Label)
	}
}

func TestParse_FixtureMalformedMessages(t *testing.T) {
	for i, f := range fixture.MalformedMessages {
		t.Logf("Test #%d: %s", i, f.Label)
		_, err := Parse(f.SML)
		assert.Error(t, err, f.Label)
	}
}
