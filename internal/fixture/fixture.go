// Package fixture holds small SML/byte-pair fixtures shared across the
// test suite, the way the teacher library keeps a handful of canonical
// messages next to its parser and codec tests rather than duplicating
// literals in every _test.go file.
package fixture

// Messages pairs a canonical SML message with a human label, covering
// the scenarios the error handling design calls out by name: a
// header-only message, a scalar leaf, and a nested list.
var Messages = []struct {
	Label string
	SML   string
}{
	{"header only", "S1F1\n."},
	{"wait bit", "S1F1 W\n."},
	{"scalar uint", "S1F3\n< U1 7 8 >\n."},
	{"nested list", "S6F11 W\n<L [2]\n  <A \"LOT001\">\n  <U4 12345>\n>\n."},
	{"mixed ascii", "S10F3\n< A \"hello\" 0x0 \"world\" >\n."},
}

// MalformedMessages pairs malformed SML with the defect it exercises,
// used by parser tests asserting that Parse rejects each one.
var MalformedMessages = []struct {
	Label string
	SML   string
}{
	{"bad header", "not-a-header"},
	{"unknown tag", "S1F1\n< Q 1 >\n."},
	{"unterminated item", "S1F1\n< U1 1"},
	{"count mismatch", "S1F1\n< U1 [3] 1 2 >\n."},
}
