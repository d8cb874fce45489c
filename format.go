package fixedstr

import "fmt"

// Format writes format, expanded with args, into dst and returns the content
// length, which is also the index of the terminator it leaves in dst.
//
// dst[len(dst)-1] is reserved for the terminator, so at most len(dst)-1
// content bytes are written. Output that does not fit is cut at that boundary
// without error. On error the bytes written before the failing directive stay
// in place, still terminated, and their count is returned.
//
// Recognized directives:
//
//	%%  literal percent
//	%c  low byte of an integer
//	%d  signed decimal
//	%u  unsigned decimal
//	%x  0x-prefixed lowercase hexadecimal
//	%b  0b-prefixed binary
//	%s  string, []byte, *string or *String, up to its first terminator
//
// Width, precision, flags and floating point are not supported.
func Format(dst []byte, format string, args ...any) (int, error) {
	c, err := NewCursor(dst)
	if err != nil {
		return 0, err
	}
	err = c.Printf(format, args...)
	return c.Len(), err
}

// Printf appends format, expanded with args, at the cursor. The format ends at
// its first terminator byte, if it has one. Formatting stops quietly once the
// destination is full; [Cursor.Truncated] reports whether that happened. An
// unknown directive or a bad argument aborts with an error.
func (c *Cursor) Printf(format string, args ...any) error {
	if c.buf == nil {
		return fmt.Errorf("%w: cursor has no destination", ErrInvalidInput)
	}
	defer c.terminate()
	format = format[:cstrlen(format, len(format))]

	next := 0
	for i := 0; i < len(format); i++ {
		if c.pos >= c.end {
			c.truncated = true
			return nil
		}
		if format[i] != '%' {
			c.writeByte(format[i])
			continue
		}
		i++
		if i == len(format) {
			return fmt.Errorf("%w: trailing %q", ErrUnknownDirective, "%")
		}
		verb := format[i]
		switch verb {
		case '%':
			c.writeByte('%')
			continue
		case 'c', 'd', 'u', 'x', 'b', 's':
		default:
			return fmt.Errorf("%w: %q at offset %d", ErrUnknownDirective, format[i-1:i+1], i-1)
		}
		if next >= len(args) {
			return fmt.Errorf("%w: %q at offset %d", ErrMissingArgument, format[i-1:i+1], i-1)
		}
		ok, err := c.directive(verb, args[next])
		if err != nil {
			return err
		}
		next++
		if !ok {
			return nil
		}
	}
	return nil
}

// directive writes one argument. It reports false once output was cut.
func (c *Cursor) directive(verb byte, arg any) (bool, error) {
	switch verb {
	case 'c':
		u, ok := unsignedArg(arg)
		if !ok {
			return false, argTypeError(verb, arg)
		}
		return c.writeByte(byte(u)), nil
	case 'd':
		mag, neg, ok := signedArg(arg)
		if !ok {
			return false, argTypeError(verb, arg)
		}
		return c.writeInt(mag, neg), nil
	case 'u':
		u, ok := unsignedArg(arg)
		if !ok {
			return false, argTypeError(verb, arg)
		}
		return c.writeUint(u, 10), nil
	case 'x':
		u, ok := unsignedArg(arg)
		if !ok {
			return false, argTypeError(verb, arg)
		}
		return c.writeString("0x") && c.writeUint(u, 16), nil
	case 'b':
		u, ok := unsignedArg(arg)
		if !ok {
			return false, argTypeError(verb, arg)
		}
		return c.writeString("0b") && c.writeUint(u, 2), nil
	default:
		return c.stringArg(arg)
	}
}

func (c *Cursor) stringArg(arg any) (bool, error) {
	switch s := arg.(type) {
	case nil:
		return false, fmt.Errorf("%w: %%s given nil", ErrNullString)
	case string:
		return c.writeString(s), nil
	case []byte:
		if s == nil {
			return false, fmt.Errorf("%w: %%s given nil []byte", ErrNullString)
		}
		return c.writeBytes(s), nil
	case *string:
		if s == nil {
			return false, fmt.Errorf("%w: %%s given nil *string", ErrNullString)
		}
		return c.writeString(*s), nil
	case *String:
		if s == nil {
			return false, fmt.Errorf("%w: %%s given nil *String", ErrNullString)
		}
		return c.writeBytes(s.Bytes()), nil
	case String:
		return c.writeBytes(s.Bytes()), nil
	default:
		return false, argTypeError('s', arg)
	}
}

func argTypeError(verb byte, arg any) error {
	return fmt.Errorf("%w: %%%c given %T", ErrArgumentType, verb, arg)
}

// signedArg returns the magnitude and sign of an integer argument.
func signedArg(arg any) (mag uint64, neg bool, ok bool) {
	var v int64
	switch a := arg.(type) {
	case int:
		v = int64(a)
	case int8:
		v = int64(a)
	case int16:
		v = int64(a)
	case int32:
		v = int64(a)
	case int64:
		v = a
	default:
		u, ok := unsignedArg(arg)
		return u, false, ok
	}
	if v < 0 {
		// -(v+1) cannot overflow, even for the most negative value.
		return uint64(-(v + 1)) + 1, true, true
	}
	return uint64(v), false, true
}

// unsignedArg returns an integer argument as an unsigned value. Signed values
// are reinterpreted at their own width, so int8(-1) becomes 0xff.
func unsignedArg(arg any) (uint64, bool) {
	switch a := arg.(type) {
	case uint:
		return uint64(a), true
	case uint8:
		return uint64(a), true
	case uint16:
		return uint64(a), true
	case uint32:
		return uint64(a), true
	case uint64:
		return a, true
	case uintptr:
		return uint64(a), true
	case int:
		return uint64(uint(a)), true
	case int8:
		return uint64(uint8(a)), true
	case int16:
		return uint64(uint16(a)), true
	case int32:
		return uint64(uint32(a)), true
	case int64:
		return uint64(a), true
	default:
		return 0, false
	}
}
