package ast

// ASCIIItem is a Latin-1 (single-byte) character array (SML tag "A",
// format code 0o20). Unlike JIS8, ASCIIItem places no restriction on
// the byte values it carries - every byte 0..255 round-trips.
type ASCIIItem struct {
	values []byte
}

// NewASCII builds an ASCIIItem from a string, taken byte-for-byte as
// Latin-1.
func NewASCII(s string) (*ASCIIItem, error) {
	return NewASCIIFromBytes([]byte(s))
}

// NewASCIIFromBytes builds an ASCIIItem from raw bytes.
func NewASCIIFromBytes(values []byte) (*ASCIIItem, error) {
	if payloadTooLarge(KindASCII.ElementSize(), len(values)) {
		return nil, sizeOverflowErr(KindASCII.Tag(), len(values))
	}
	cp := make([]byte, len(values))
	copy(cp, values)
	return &ASCIIItem{values: cp}, nil
}

func (a *ASCIIItem) Kind() Kind     { return KindASCII }
func (a *ASCIIItem) Size() int      { return len(a.values) }
func (a *ASCIIItem) Values() []byte { return a.values }
func (a *ASCIIItem) String() string { return string(a.values) }

func (a *ASCIIItem) Equal(other Item) bool {
	o, ok := other.(*ASCIIItem)
	if !ok || len(a.values) != len(o.values) {
		return false
	}
	for i, v := range a.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}

func (a *ASCIIItem) ToSML(indent int) string {
	return renderByteString(indent, KindASCII.Tag(), a.values)
}
