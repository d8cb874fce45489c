package fixedstr

import "fmt"

const digits = "0123456789abcdef"

// Cursor is a bounded write position inside a caller-owned byte slice.
//
// The last byte of the slice is the terminator slot: content is written to the
// bytes before it, and after every [Cursor.Printf] a [Terminator] sits at the
// current position. Nothing outside the slice is ever touched.
type Cursor struct {
	buf       []byte
	end       int // terminator slot, the last index of buf
	pos       int
	truncated bool
	dry       bool // measure only, write nothing
}

// NewCursor returns a cursor positioned at the start of dst and writes a
// terminator there. dst must hold at least the terminator byte.
func NewCursor(dst []byte) (Cursor, error) {
	if len(dst) == 0 {
		return Cursor{}, fmt.Errorf("%w: destination has no room for a terminator", ErrInvalidInput)
	}
	c := Cursor{buf: dst, end: len(dst) - 1}
	c.terminate()
	return c, nil
}

// Len returns the number of content bytes written so far.
func (c *Cursor) Len() int { return c.pos }

// Remaining returns the number of content bytes that still fit.
func (c *Cursor) Remaining() int { return c.end - c.pos }

// Truncated reports whether output was cut because the destination filled up
// before a format string was consumed.
func (c *Cursor) Truncated() bool { return c.truncated }

// Bytes returns the content written so far, without the terminator.
// The slice aliases the destination.
func (c *Cursor) Bytes() []byte { return c.buf[:c.pos:c.pos] }

func (c *Cursor) terminate() {
	if !c.dry {
		c.buf[c.pos] = Terminator
	}
}

func (c *Cursor) writeByte(b byte) bool {
	if c.pos >= c.end {
		c.truncated = true
		return false
	}
	if !c.dry {
		c.buf[c.pos] = b
	}
	c.pos++
	return true
}

// writeString copies s up to its first terminator, keeping whatever prefix fits.
func (c *Cursor) writeString(s string) bool {
	n := cstrlen(s, len(s))
	fits := n <= c.end-c.pos
	if !fits {
		n = c.end - c.pos
		c.truncated = true
	}
	if !c.dry {
		copy(c.buf[c.pos:c.end], s[:n])
	}
	c.pos += n
	return fits
}

func (c *Cursor) writeBytes(b []byte) bool {
	n := cstrlen(b, len(b))
	fits := n <= c.end-c.pos
	if !fits {
		n = c.end - c.pos
		c.truncated = true
	}
	if !c.dry {
		copy(c.buf[c.pos:c.end], b[:n])
	}
	c.pos += n
	return fits
}

// writeUint emits v in the given radix, most significant digit first, with no
// leading zeros. Zero is the single digit "0".
func (c *Cursor) writeUint(v, radix uint64) bool {
	for place := topPlace(v, radix); place > 0; place /= radix {
		if !c.writeByte(digits[v/place]) {
			return false
		}
		v %= place
	}
	return true
}

// writeInt emits a '-' for negative values followed by the decimal magnitude.
func (c *Cursor) writeInt(mag uint64, neg bool) bool {
	if neg && !c.writeByte('-') {
		return false
	}
	return c.writeUint(mag, 10)
}

// topPlace returns the place value of the most significant digit of v,
// that is the largest power of radix not greater than v (1 for zero).
func topPlace(v, radix uint64) uint64 {
	place := uint64(1)
	for v/place >= radix {
		place *= radix
	}
	return place
}
