package types

import "fmt"

type ErrorKind int

const (
	KindParse ErrorKind = iota
	KindInvalidKey
	KindSymbolNotFound
	KindIndexOutOfBounds
	KindType
	KindArity
	KindArithmetic
)

var kindNames = map[ErrorKind]string{
	KindParse:            "EOF/Parse error",
	KindInvalidKey:       "Invalid key",
	KindSymbolNotFound:   "Symbol not found",
	KindIndexOutOfBounds: "Index out of bounds",
	KindType:             "Type error",
	KindArity:            "Arity error",
	KindArithmetic:       "Arithmetic error",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a host-level failure. It carries a kind and a message, never a
// mal value; thrown values travel separately.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrParse            = &Error{Kind: KindParse}
	ErrInvalidKey       = &Error{Kind: KindInvalidKey}
	ErrSymbolNotFound   = &Error{Kind: KindSymbolNotFound}
	ErrIndexOutOfBounds = &Error{Kind: KindIndexOutOfBounds}
	ErrType             = &Error{Kind: KindType}
	ErrArity            = &Error{Kind: KindArity}
	ErrArithmetic       = &Error{Kind: KindArithmetic}
)

func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
