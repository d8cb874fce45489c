package fixedstr

import "github.com/mattn/go-runewidth"

// Width returns the number of terminal columns the content occupies.
// East Asian wide characters count as two, combining marks as zero.
func (s *String) Width() int {
	return runewidth.StringWidth(string(s.Bytes()))
}

// TruncateWidth shortens the content so it occupies at most cols columns,
// ending it with tail (for example "...") when something was cut. A tail
// wider than cols is dropped. Multi-byte characters are never split. Content
// that already fits is left Unchanged.
func (s *String) TruncateWidth(cols int, tail string) Outcome {
	cols = max(cols, 0)
	cur := string(s.Bytes())
	if runewidth.StringWidth(cur) <= cols {
		return Unchanged
	}
	if runewidth.StringWidth(tail) > cols {
		tail = ""
	}
	s.Assign(runewidth.Truncate(cur, cols, tail))
	return Truncated
}
