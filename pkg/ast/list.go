package ast

// ListItem is an ordered, possibly empty, sequence of child Items.
type ListItem struct {
	children []Item
}

// NewList builds a ListItem from children, copying the slice so later
// mutation of the caller's slice cannot affect the item.
func NewList(children ...Item) (*ListItem, error) {
	if len(children) > MaxPayloadBytes {
		return nil, sizeOverflowErr(KindList.Tag(), len(children))
	}
	cp := make([]Item, len(children))
	copy(cp, children)
	return &ListItem{children: cp}, nil
}

func (l *ListItem) Kind() Kind { return KindList }
func (l *ListItem) Size() int  { return len(l.children) }

// Children returns the list's children. The returned slice must not be
// mutated by the caller.
func (l *ListItem) Children() []Item { return l.children }

func (l *ListItem) Equal(other Item) bool {
	o, ok := other.(*ListItem)
	if !ok || len(l.children) != len(o.children) {
		return false
	}
	for i, c := range l.children {
		if !c.Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (l *ListItem) ToSML(indent int) string {
	if len(l.children) == 0 {
		return renderEmpty(indent, KindList.Tag())
	}
	out := spaces(indent) + "< L [" + itoa(len(l.children)) + "]"
	for _, c := range l.children {
		out += "\n" + c.ToSML(indent+4)
	}
	out += "\n" + spaces(indent) + ">"
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
