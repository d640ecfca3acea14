package etfnav

import (
	"strconv"
	"strings"
)

// Cell is a node of the holdings tree: either a text leaf or an element
// holding an ordered list of children (the "c" array of the source objects).
type Cell struct {
	Text     string
	Children []Cell
	leaf     bool
}

// TextCell returns a text leaf.
func TextCell(s string) Cell { return Cell{Text: s, leaf: true} }

// ElementCell returns an element with the given children.
func ElementCell(children ...Cell) Cell { return Cell{Children: children} }

// newCell converts a generic JSON value into a Cell tree.
// Strings and numbers are leaves, objects are elements whose children are
// read from their "c" array. Anything else is an empty element.
func newCell(v any) Cell {
	switch x := v.(type) {
	case string:
		return TextCell(x)
	case float64:
		return TextCell(strconv.FormatFloat(x, 'f', -1, 64))
	case map[string]any:
		list, _ := x["c"].([]any)
		children := make([]Cell, 0, len(list))
		for _, c := range list {
			children = append(children, newCell(c))
		}
		return ElementCell(children...)
	}
	return Cell{}
}

// IsText reports whether c is a text leaf.
func (c Cell) IsText() bool { return c.leaf }

// Child returns the i-th child of an element.
func (c Cell) Child(i int) (Cell, bool) {
	if c.leaf || i < 0 || i >= len(c.Children) {
		return Cell{}, false
	}
	return c.Children[i], true
}

// Display returns the text shown for a table cell: its first child. When the
// first child is itself markup, its text leaves are joined with a space.
func (c Cell) Display() (string, bool) {
	first, ok := c.Child(0)
	if !ok {
		return "", false
	}
	if first.leaf {
		return first.Text, true
	}
	return strings.Join(first.texts(nil), " "), true
}

// texts appends all the text leaves under c, depth first.
func (c Cell) texts(dst []string) []string {
	if c.leaf {
		return append(dst, c.Text)
	}
	for _, child := range c.Children {
		dst = child.texts(dst)
	}
	return dst
}
