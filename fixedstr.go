package fixedstr

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownDirective = errors.New("unknown directive")
	ErrNullString       = errors.New("null string argument")
	ErrMissingArgument  = errors.New("missing argument")
	ErrArgumentType     = errors.New("unsupported argument type")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrNoStorage        = errors.New("string has no storage")
)

// Terminator is the byte written immediately after the content of every
// buffer this package fills.
const Terminator byte = 0

// Outcome reports what a mutating [String] operation did to the content.
//
// Capacity overflow is never an error. Callers that do not care can discard
// the outcome; callers that do can tell a clean write from a cut or refused one.
type Outcome int

const (
	Written   Outcome = iota // content updated in full
	Truncated                // content updated with a prefix of the input
	Unchanged                // content left as it was
)

var outcomeNames = [...]string{
	Written:   "written",
	Truncated: "truncated",
	Unchanged: "unchanged",
}

// String returns the outcome name.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// cstrlen returns the length of s up to its first terminator, capped at limit.
func cstrlen[T string | []byte](s T, limit int) int {
	n := min(len(s), limit)
	for i := 0; i < n; i++ {
		if s[i] == Terminator {
			return i
		}
	}
	return n
}
