// Package errs defines the closed set of error kinds returned by the
// bitstream, codec and header packages, and the constructors used to build
// them.
//
// Every error the core returns is final: callers do not retry a decode, they
// abandon it or skip ahead at a frame boundary they already know about.
package errs

import "fmt"

// Kind identifies one of the closed set of error conditions the core can
// return. The set is closed: new kinds are never introduced by callers, only
// by this package.
type Kind int

// Recognized error kinds.
const (
	// UnexpectedEOF means the reader ran out of bytes or bits mid-item.
	UnexpectedEOF Kind = iota
	// Corrupted means a structural constraint was violated, e.g. an
	// oversized variable-byte integer or an out-of-range Elias length.
	Corrupted
	// HeaderInvalidUTF8 means a header line contained invalid UTF-8.
	HeaderInvalidUTF8
	// HeaderMissingColon means a header line had no ':' separator.
	HeaderMissingColon
	// InvalidHeader means a recognized header had an unparseable value.
	InvalidHeader
	// UnknownHeader means a `Field ...` header named an unrecognized frame
	// kind or property.
	UnknownHeader
	// MissingHeader means required metadata was absent at finalization.
	MissingHeader
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEOF:
		return "unexpected EOF"
	case Corrupted:
		return "corrupted"
	case HeaderInvalidUTF8:
		return "invalid UTF-8 in header"
	case HeaderMissingColon:
		return "header missing colon"
	case InvalidHeader:
		return "invalid header value"
	case UnknownHeader:
		return "unknown header"
	case MissingHeader:
		return "missing header"
	default:
		return "unknown error kind"
	}
}

// Error is the concrete error type returned by this module. Op names the
// function that detected the problem, in the "pkg.Func" style used
// throughout this codebase. Name and Value hold the header name/value pair
// when the error concerns a specific header line; either may be empty. For
// Corrupted errors built by CorruptedErr, Value holds a free-form detail
// message instead.
type Error struct {
	Kind  Kind
	Op    string
	Name  string
	Value string
	// Cause is the underlying error, if any, wrapped via pkg/errors.
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidHeader:
		if e.Cause != nil {
			return fmt.Sprintf("%s: invalid header %q: %q: %v", e.Op, e.Name, e.Value, e.Cause)
		}
		return fmt.Sprintf("%s: invalid header %q: %q", e.Op, e.Name, e.Value)
	case UnknownHeader:
		return fmt.Sprintf("%s: unknown header %q", e.Op, e.Name)
	case MissingHeader:
		return fmt.Sprintf("%s: missing required header %q", e.Op, e.Name)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Cause)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind, so that callers
// can write `errors.Is(err, errs.New(errs.Corrupted, ""))`-style checks. Op,
// Name, Value and Cause are not compared.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an *Error of the given kind with no extra detail.
func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// Wrap builds an *Error of the given kind, wrapping a lower-level cause.
func Wrap(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Cause: cause}
}

// UnexpectedEOFErr builds an UnexpectedEOF error.
func UnexpectedEOFErr(op string) *Error {
	return New(UnexpectedEOF, op)
}

// CorruptedErr builds a Corrupted error with a free-form detail message
// carried as Value.
func CorruptedErr(op, detail string) *Error {
	return &Error{Kind: Corrupted, Op: op, Value: detail}
}

// InvalidHeaderErr builds an InvalidHeader error for a specific name/value
// pair.
func InvalidHeaderErr(op, name, value string) *Error {
	return &Error{Kind: InvalidHeader, Op: op, Name: name, Value: value}
}

// InvalidHeaderErrCause builds an InvalidHeader error wrapping the
// lower-level parse error that caused it.
func InvalidHeaderErrCause(op, name, value string, cause error) *Error {
	return &Error{Kind: InvalidHeader, Op: op, Name: name, Value: value, Cause: cause}
}

// UnknownHeaderErr builds an UnknownHeader error for a specific name.
func UnknownHeaderErr(op, name string) *Error {
	return &Error{Kind: UnknownHeader, Op: op, Name: name}
}

// MissingHeaderErr builds a MissingHeader error for a specific name.
func MissingHeaderErr(op, name string) *Error {
	return &Error{Kind: MissingHeader, Op: op, Name: name}
}
