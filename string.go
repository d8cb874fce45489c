package fixedstr

import (
	"fmt"
	"io"
	"unsafe"
)

// String is a terminated byte string with a capacity fixed at construction.
//
// The capacity counts the terminator, so a String of capacity n holds at most
// n-1 content bytes. Storage is never grown or reallocated; operations that
// would overflow it truncate or do nothing, and say which through an [Outcome].
//
// Do not copy a String after its first mutation: the copy would share the
// storage. Mutating through a copy panics. Reading a copy is fine. A String is
// not safe for concurrent mutation.
type String struct {
	addr *String // of the receiver that first mutated it, to detect copies
	buf  []byte
	n    int
}

// noescape hides a pointer from escape analysis, so that recording the
// receiver's own address does not move it, or a wrapped stack array, to the heap.
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}

func (s *String) copyCheck() {
	if s.addr == nil {
		s.addr = (*String)(noescape(unsafe.Pointer(s)))
	} else if s.addr != s {
		panic("fixedstr: illegal use of copied String")
	}
}

// Make returns an empty String with its own storage of the given capacity.
// It panics if capacity is below 2, the room for one byte and the terminator.
func Make(capacity int) String {
	if capacity < 2 {
		panic(fmt.Sprintf("fixedstr: capacity %d is below 2", capacity))
	}
	return Wrap(make([]byte, capacity))
}

// Wrap returns an empty String that uses buf as its storage, so a stack or
// package-level array can back it without allocation. The capacity is
// len(buf). It panics if len(buf) is below 2.
func Wrap(buf []byte) String {
	if len(buf) < 2 {
		panic(fmt.Sprintf("fixedstr: capacity %d is below 2", len(buf)))
	}
	buf = buf[:len(buf):len(buf)]
	buf[0] = Terminator
	return String{buf: buf}
}

// Len returns the number of content bytes.
func (s *String) Len() int { return s.n }

// Cap returns the capacity, including the terminator slot.
func (s *String) Cap() int { return len(s.buf) }

// Free returns how many more content bytes fit.
func (s *String) Free() int {
	if s.buf == nil {
		return 0
	}
	return len(s.buf) - 1 - s.n
}

// Clear empties the string.
func (s *String) Clear() Outcome {
	s.copyCheck()
	if s.buf == nil {
		return Unchanged
	}
	s.n = 0
	s.buf[0] = Terminator
	return Written
}

// AssignByte replaces the content with the single byte c.
func (s *String) AssignByte(c byte) Outcome {
	s.copyCheck()
	if s.buf == nil {
		return Unchanged
	}
	s.buf[0] = c
	s.n = 1
	s.buf[1] = Terminator
	return Written
}

// Assign replaces the content with src up to its first terminator, keeping
// the first Cap()-1 bytes if it is longer.
func (s *String) Assign(src string) Outcome {
	s.copyCheck()
	if s.buf == nil {
		return Unchanged
	}
	full := cstrlen(src, len(src))
	s.n = copy(s.buf[:len(s.buf)-1], src[:full])
	s.buf[s.n] = Terminator
	if s.n < full {
		return Truncated
	}
	return Written
}

// AssignBytes is like [String.Assign]. A nil src leaves the string unchanged.
func (s *String) AssignBytes(src []byte) Outcome {
	s.copyCheck()
	if s.buf == nil || src == nil {
		return Unchanged
	}
	full := cstrlen(src, len(src))
	s.n = copy(s.buf[:len(s.buf)-1], src[:full])
	s.buf[s.n] = Terminator
	if s.n < full {
		return Truncated
	}
	return Written
}

// AppendByte appends c if a content slot is free, and does nothing otherwise.
func (s *String) AppendByte(c byte) Outcome {
	s.copyCheck()
	if s.Free() < 1 {
		return Unchanged
	}
	s.buf[s.n] = c
	s.n++
	s.buf[s.n] = Terminator
	return Written
}

// AppendSpace appends a single space.
func (s *String) AppendSpace() Outcome { return s.AppendByte(' ') }

// AppendString appends src up to its first terminator. The input is first
// capped at Cap()-1 bytes; the capped input is then appended whole or not at
// all. Unlike [String.AppendByte], nothing is appended when it does not fit.
func (s *String) AppendString(src string) Outcome {
	s.copyCheck()
	if s.buf == nil {
		return Unchanged
	}
	full := cstrlen(src, len(src))
	k := min(full, len(s.buf)-1)
	if k > s.Free() {
		return Unchanged
	}
	s.n += copy(s.buf[s.n:], src[:k])
	s.buf[s.n] = Terminator
	if k < full {
		return Truncated
	}
	return Written
}

// AppendBytes is like [String.AppendString]. A nil src leaves the string
// unchanged.
func (s *String) AppendBytes(src []byte) Outcome {
	s.copyCheck()
	if s.buf == nil || src == nil {
		return Unchanged
	}
	full := cstrlen(src, len(src))
	k := min(full, len(s.buf)-1)
	if k > s.Free() {
		return Unchanged
	}
	s.n += copy(s.buf[s.n:], src[:k])
	s.buf[s.n] = Terminator
	if k < full {
		return Truncated
	}
	return Written
}

// AppendFormat expands format with args, as [Format] does, into the free
// space. The result is committed only if it fits whole: on truncation or
// error the content and the spare storage are left as they were and
// Unchanged is returned.
func (s *String) AppendFormat(format string, args ...any) (Outcome, error) {
	s.copyCheck()
	if s.buf == nil {
		return Unchanged, fmt.Errorf("%w: cannot format into a zero String", ErrNoStorage)
	}
	// Measure first, so refused output never reaches the spare storage.
	dry := Cursor{buf: s.buf[s.n:], end: len(s.buf) - 1 - s.n, dry: true}
	if err := dry.Printf(format, args...); err != nil || dry.Truncated() {
		return Unchanged, err
	}
	c, err := NewCursor(s.buf[s.n:])
	if err != nil {
		return Unchanged, err
	}
	if err := c.Printf(format, args...); err != nil {
		s.buf[s.n] = Terminator
		return Unchanged, err
	}
	s.n += c.Len()
	return Written, nil
}

// At returns the content byte at index i.
func (s *String) At(i int) (byte, error) {
	if i < 0 || i >= s.n {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, s.n)
	}
	return s.buf[i], nil
}

// Bytes returns the content without the terminator. The slice aliases the
// storage and is only valid until the next mutation.
func (s *String) Bytes() []byte { return s.buf[:s.n:s.n] }

// CString returns the content followed by its terminator, aliasing the
// storage like [String.Bytes]. It is nil for a zero String.
func (s *String) CString() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf[: s.n+1 : s.n+1]
}

// String returns a copy of the content.
func (s *String) String() string { return string(s.Bytes()) }

// WriteTo writes the content, without the terminator, to w.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}
