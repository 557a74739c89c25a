package types

// Data is any mal value. The set of implementations is closed: every variant
// lives in this package.
type Data interface {
	isData()
}

type DNumber struct {
	Num int64
}

type DString struct {
	Str string
}

type DSymbol struct {
	Name string
}

// DKeyword is stored without its leading ':'.
type DKeyword struct {
	Name string
}

// DSpecial covers the three singleton values.
type DSpecial int

const (
	Nil DSpecial = iota
	True
	False
)

type DList struct {
	Members []Data
}

type DVector struct {
	Members []Data
}

// DAtom is the only value whose referent changes after construction.
type DAtom struct {
	Ref Data
}

// Closure is a user-defined function. Params may contain "&" followed by a
// single rest binding.
type Closure struct {
	Env     *Env
	Params  []string
	Body    Data
	IsMacro bool
}

type NativeFunc func(args []Data) (Data, error)

type Native struct {
	Name string
	Fn   NativeFunc
}

func (DNumber) isData()   {}
func (DString) isData()   {}
func (DSymbol) isData()   {}
func (DKeyword) isData()  {}
func (DSpecial) isData()  {}
func (*DList) isData()    {}
func (*DVector) isData()  {}
func (*DHashMap) isData() {}
func (*DAtom) isData()    {}
func (*Closure) isData()  {}
func (*Native) isData()   {}

func Num(n int64) Data      { return DNumber{n} }
func Str(s string) Data     { return DString{s} }
func Sym(s string) Data     { return DSymbol{s} }
func Kw(s string) Data      { return DKeyword{s} }
func List(m ...Data) Data   { return &DList{m} }
func Vector(m ...Data) Data { return &DVector{m} }

func Bool(b bool) Data {
	if b {
		return True
	}
	return False
}

// Truthy reports whether d counts as true in a conditional: everything but
// nil and false.
func Truthy(d Data) bool {
	return d != Nil && d != False
}

// Seq returns the members of a List or Vector.
func Seq(d Data) ([]Data, bool) {
	switch s := d.(type) {
	case *DList:
		return s.Members, true
	case *DVector:
		return s.Members, true
	}
	return nil, false
}

// IsSymbol reports whether d is the symbol called name.
func IsSymbol(d Data, name string) bool {
	s, ok := d.(DSymbol)
	return ok && s.Name == name
}

// TypeName names the variant of d for error messages.
func TypeName(d Data) string {
	switch v := d.(type) {
	case DNumber:
		return "number"
	case DString:
		return "string"
	case DSymbol:
		return "symbol"
	case DKeyword:
		return "keyword"
	case DSpecial:
		switch v {
		case Nil:
			return "nil"
		default:
			return "boolean"
		}
	case *DList:
		return "list"
	case *DVector:
		return "vector"
	case *DHashMap:
		return "hash-map"
	case *DAtom:
		return "atom"
	case *Closure:
		if v.IsMacro {
			return "macro"
		}
		return "function"
	case *Native:
		return "function"
	}
	return "unknown"
}
