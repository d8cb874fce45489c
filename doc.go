// Package fixedstr provides a fixed-capacity string and a bounded
// printf-style formatter that never writes past the end of the buffer it is
// given.
//
// Both are meant for code that must not allocate on the hot path and must not
// overrun memory however malformed its format strings or oversized its
// arguments. Malformed input degrades to truncated but valid output.
//
// # Bounded Formatting
//
// [Format] writes into a caller-supplied slice. The last byte of the slice is
// reserved for a [Terminator], which always follows the content:
//
//	var buf [16]byte
//	n, err := fixedstr.Format(buf[:], "id=%x", 255) // buf[:n] == "id=0xff"
//
// The directive set is deliberately small: %%, %c, %d, %u, %x (0x prefix),
// %b (0b prefix) and %s. Output that does not fit is cut without error. Use a
// [Cursor] to format in several steps and to learn whether anything was cut:
//
//	c, _ := fixedstr.NewCursor(buf[:])
//	_ = c.Printf("%s:", name)
//	_ = c.Printf("%d", port)
//	if c.Truncated() { ... }
//
// # Fixed-Capacity Strings
//
// A [String] owns a byte array whose size is fixed when it is made, with
// [Make], or adopted from the caller, with [Wrap]. Capacity counts the
// terminator. Mutators never fail on overflow; they return an [Outcome]:
//
//   - [Written] - the content was updated in full
//   - [Truncated] - a prefix of the input was kept
//   - [Unchanged] - nothing was written
//
// Single bytes append while room remains. Strings append all or nothing.
// [String.AppendFormat] formats into the free space and commits only output
// that fits whole.
//
//	s := fixedstr.Make(8)
//	s.Assign("ab")
//	s.AppendByte('c')
//	s.AppendFormat("%d", 12)      // "abc12"
//	s.AppendFormat("%d", 1234567) // Unchanged, still "abc12"
//
// # Encoding
//
// String implements [encoding.TextMarshaler] and the yaml.v3 marshaler
// interfaces, so it can sit in configuration structs. Decoding truncates to
// the existing capacity and fails with [ErrNoStorage] on a zero String.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidInput] - destination with no room for a terminator
//   - [ErrUnknownDirective] - % followed by an unsupported character
//   - [ErrNullString] - nil argument to %s
//   - [ErrMissingArgument] - fewer arguments than directives
//   - [ErrArgumentType] - argument of the wrong kind for its directive
//   - [ErrIndexOutOfRange] - [String.At] outside the content
//   - [ErrNoStorage] - formatting or decoding into a zero String
package fixedstr
