package interp

import (
	"fmt"
	"os"
	"strings"

	"github.com/bshepherdson/mal/printer"
	"github.com/bshepherdson/mal/reader"
	. "github.com/bshepherdson/mal/types"
)

// ns holds the builtins that need no interpreter state. The rest are added
// by (*Interpreter).namespace.
var ns = map[string]NativeFunc{
	"+": plus,
	"-": minus,
	"*": times,
	"/": div,

	// Atoms
	"atom":   atom,
	"atom?":  atomQ,
	"deref":  deref,
	"reset!": atomReset,
	"swap!":  atomSwap,

	// Input
	"read-string": readString,
	"slurp":       slurp,

	// Output
	"pr-str": prStr,
	"str":    fStr,

	// Lists
	"list":        mkList,
	"list?":       listQ,
	"vector":      mkVector,
	"vector?":     vectorQ,
	"sequential?": sequentialQ,
	"empty?":      emptyQ,
	"count":       count,
	"cons":        cons,
	"concat":      concat,
	"vec":         vec,
	"nth":         nth,
	"first":       first,
	"rest":        rest,
	"apply":       fApply,
	"map":         fMap,

	// Hash maps
	"hash-map":  mkHashMap,
	"map?":      mapQ,
	"assoc":     assoc,
	"dissoc":    dissoc,
	"get":       get,
	"contains?": containsQ,
	"keys":      keys,
	"vals":      vals,

	// Scalars
	"nil?":     nilQ,
	"true?":    trueQ,
	"false?":   falseQ,
	"symbol":   symbol,
	"symbol?":  symbolQ,
	"keyword":  keyword,
	"keyword?": keywordQ,
	"string?":  stringQ,
	"number?":  numberQ,
	"fn?":      fnQ,
	"macro?":   macroQ,

	// Exceptions
	"throw": throw,

	// Comparisons
	"=":  equal,
	"<":  lt,
	"<=": lte,
	">":  gt,
	">=": gte,
}

func argc(name string, args []Data, n int) error {
	if len(args) != n {
		return Errorf(KindArity, "%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// Expects two Number arguments; fails otherwise.
func prepNumbers(args []Data, op string) (int64, int64, error) {
	if err := argc(op, args, 2); err != nil {
		return 0, 0, err
	}

	x, ok1 := args[0].(DNumber)
	y, ok2 := args[1].(DNumber)
	if !ok1 || !ok2 {
		return 0, 0, Errorf(KindType, "arguments to %s must be numbers", op)
	}
	return x.Num, y.Num, nil
}

func plus(args []Data) (Data, error) {
	x, y, err := prepNumbers(args, "+")
	if err != nil {
		return nil, err
	}
	return Num(x + y), nil
}

func minus(args []Data) (Data, error) {
	x, y, err := prepNumbers(args, "-")
	if err != nil {
		return nil, err
	}
	return Num(x - y), nil
}

func times(args []Data) (Data, error) {
	x, y, err := prepNumbers(args, "*")
	if err != nil {
		return nil, err
	}
	return Num(x * y), nil
}

func div(args []Data) (Data, error) {
	x, y, err := prepNumbers(args, "/")
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, Errorf(KindArithmetic, "division by zero")
	}
	return Num(x / y), nil
}

func lt(args []Data) (Data, error) {
	x, y, err := prepNumbers(args, "<")
	if err != nil {
		return nil, err
	}
	return Bool(x < y), nil
}

func lte(args []Data) (Data, error) {
	x, y, err := prepNumbers(args, "<=")
	if err != nil {
		return nil, err
	}
	return Bool(x <= y), nil
}

func gt(args []Data) (Data, error) {
	x, y, err := prepNumbers(args, ">")
	if err != nil {
		return nil, err
	}
	return Bool(x > y), nil
}

func gte(args []Data) (Data, error) {
	x, y, err := prepNumbers(args, ">=")
	if err != nil {
		return nil, err
	}
	return Bool(x >= y), nil
}

func equal(args []Data) (Data, error) {
	if err := argc("=", args, 2); err != nil {
		return nil, err
	}
	return Bool(Equal(args[0], args[1])), nil
}

// Output
func printList(args []Data, readable bool, sep string) string {
	strs := make([]string, 0, len(args))
	for _, expr := range args {
		strs = append(strs, printer.PrintStr(expr, readable))
	}
	return strings.Join(strs, sep)
}

func prStr(args []Data) (Data, error) {
	return Str(printList(args, true, " ")), nil
}

func fStr(args []Data) (Data, error) {
	return Str(printList(args, false, "")), nil
}

// Input
func readString(args []Data) (Data, error) {
	if err := argc("read-string", args, 1); err != nil {
		return nil, err
	}
	s, ok := args[0].(DString)
	if !ok {
		return nil, Errorf(KindType, "read-string expects a single string arg")
	}
	form, err := reader.ReadStr(s.Str)
	if err == reader.ErrNoForm {
		return Nil, nil
	}
	return form, err
}

func slurp(args []Data) (Data, error) {
	if err := argc("slurp", args, 1); err != nil {
		return nil, err
	}
	s, ok := args[0].(DString)
	if !ok {
		return nil, Errorf(KindType, "slurp expects a single filename as a string")
	}

	contents, err := os.ReadFile(s.Str)
	if err != nil {
		return nil, fmt.Errorf("slurp failed to read the file: %w", err)
	}
	return Str(string(contents)), nil
}

// Atoms
func asAtom(name string, d Data) (*DAtom, error) {
	a, ok := d.(*DAtom)
	if !ok {
		return nil, Errorf(KindType, "%s expects an atom, got %s", name, TypeName(d))
	}
	return a, nil
}

func atom(args []Data) (Data, error) {
	if err := argc("atom", args, 1); err != nil {
		return nil, err
	}
	return &DAtom{Ref: args[0]}, nil
}

func atomQ(args []Data) (Data, error) {
	if err := argc("atom?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*DAtom)
	return Bool(ok), nil
}

func deref(args []Data) (Data, error) {
	if err := argc("deref", args, 1); err != nil {
		return nil, err
	}
	a, err := asAtom("deref", args[0])
	if err != nil {
		return nil, err
	}
	return a.Ref, nil
}

func atomReset(args []Data) (Data, error) {
	if err := argc("reset!", args, 2); err != nil {
		return nil, err
	}
	a, err := asAtom("reset!", args[0])
	if err != nil {
		return nil, err
	}
	a.Ref = args[1]
	return args[1], nil
}

func atomSwap(args []Data) (Data, error) {
	if len(args) < 2 {
		return nil, Errorf(KindArity, "swap! requires at least two values")
	}
	a, err := asAtom("swap!", args[0])
	if err != nil {
		return nil, err
	}

	fargs := append([]Data{a.Ref}, args[2:]...)
	val, err := apply(args[1], fargs)
	if err != nil {
		return nil, err
	}
	a.Ref = val
	return val, nil
}

// Lists
func mkList(args []Data) (Data, error) {
	return &DList{Members: append([]Data{}, args...)}, nil
}

func mkVector(args []Data) (Data, error) {
	return &DVector{Members: append([]Data{}, args...)}, nil
}

func typeQ(name string, args []Data, pred func(Data) bool) (Data, error) {
	if err := argc(name, args, 1); err != nil {
		return nil, err
	}
	return Bool(pred(args[0])), nil
}

func listQ(args []Data) (Data, error) {
	return typeQ("list?", args, func(d Data) bool {
		_, ok := d.(*DList)
		return ok
	})
}

func vectorQ(args []Data) (Data, error) {
	return typeQ("vector?", args, func(d Data) bool {
		_, ok := d.(*DVector)
		return ok
	})
}

func sequentialQ(args []Data) (Data, error) {
	return typeQ("sequential?", args, func(d Data) bool {
		_, ok := Seq(d)
		return ok
	})
}

func mapQ(args []Data) (Data, error) {
	return typeQ("map?", args, func(d Data) bool {
		_, ok := d.(*DHashMap)
		return ok
	})
}

func nilQ(args []Data) (Data, error) {
	return typeQ("nil?", args, func(d Data) bool { return d == Nil })
}

func trueQ(args []Data) (Data, error) {
	return typeQ("true?", args, func(d Data) bool { return d == True })
}

func falseQ(args []Data) (Data, error) {
	return typeQ("false?", args, func(d Data) bool { return d == False })
}

func symbolQ(args []Data) (Data, error) {
	return typeQ("symbol?", args, func(d Data) bool {
		_, ok := d.(DSymbol)
		return ok
	})
}

func keywordQ(args []Data) (Data, error) {
	return typeQ("keyword?", args, func(d Data) bool {
		_, ok := d.(DKeyword)
		return ok
	})
}

func stringQ(args []Data) (Data, error) {
	return typeQ("string?", args, func(d Data) bool {
		_, ok := d.(DString)
		return ok
	})
}

func numberQ(args []Data) (Data, error) {
	return typeQ("number?", args, func(d Data) bool {
		_, ok := d.(DNumber)
		return ok
	})
}

func fnQ(args []Data) (Data, error) {
	return typeQ("fn?", args, func(d Data) bool {
		switch f := d.(type) {
		case *Native:
			return true
		case *Closure:
			return !f.IsMacro
		}
		return false
	})
}

func macroQ(args []Data) (Data, error) {
	return typeQ("macro?", args, func(d Data) bool {
		c, ok := d.(*Closure)
		return ok && c.IsMacro
	})
}

func emptyQ(args []Data) (Data, error) {
	if err := argc("empty?", args, 1); err != nil {
		return nil, err
	}
	if args[0] == Nil {
		return True, nil
	}
	if m, ok := args[0].(*DHashMap); ok {
		return Bool(m.Len() == 0), nil
	}
	list, ok := Seq(args[0])
	if !ok {
		return nil, Errorf(KindType, "empty? expects a list, got %s", TypeName(args[0]))
	}
	return Bool(len(list) == 0), nil
}

// count is 0 for anything that is not a list or vector.
func count(args []Data) (Data, error) {
	if err := argc("count", args, 1); err != nil {
		return nil, err
	}
	list, _ := Seq(args[0])
	return Num(int64(len(list))), nil
}

// seqOrNil treats nil as the empty sequence.
func seqOrNil(name string, d Data) ([]Data, error) {
	if d == Nil {
		return nil, nil
	}
	list, ok := Seq(d)
	if !ok {
		return nil, Errorf(KindType, "%s expects a list, got %s", name, TypeName(d))
	}
	return list, nil
}

func cons(args []Data) (Data, error) {
	if err := argc("cons", args, 2); err != nil {
		return nil, err
	}
	tail, err := seqOrNil("cons", args[1])
	if err != nil {
		return nil, err
	}

	list := make([]Data, 0, len(tail)+1)
	list = append(list, args[0])
	list = append(list, tail...)
	return &DList{Members: list}, nil
}

func concat(args []Data) (Data, error) {
	out := []Data{}
	for _, a := range args {
		list, err := seqOrNil("concat", a)
		if err != nil {
			return nil, err
		}
		out = append(out, list...)
	}
	return &DList{Members: out}, nil
}

func vec(args []Data) (Data, error) {
	if err := argc("vec", args, 1); err != nil {
		return nil, err
	}
	if v, ok := args[0].(*DVector); ok {
		return v, nil
	}
	list, err := seqOrNil("vec", args[0])
	if err != nil {
		return nil, err
	}
	return &DVector{Members: append([]Data{}, list...)}, nil
}

func nth(args []Data) (Data, error) {
	if err := argc("nth", args, 2); err != nil {
		return nil, err
	}
	list, ok := Seq(args[0])
	idx, ok2 := args[1].(DNumber)
	if !ok || !ok2 {
		return nil, Errorf(KindType, "nth expects a list and number")
	}
	if idx.Num < 0 || idx.Num >= int64(len(list)) {
		return nil, Errorf(KindIndexOutOfBounds, "nth: index %d out of bounds for length %d", idx.Num, len(list))
	}
	return list[idx.Num], nil
}

func first(args []Data) (Data, error) {
	if err := argc("first", args, 1); err != nil {
		return nil, err
	}
	list, err := seqOrNil("first", args[0])
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return Nil, nil
	}
	return list[0], nil
}

func rest(args []Data) (Data, error) {
	if err := argc("rest", args, 1); err != nil {
		return nil, err
	}
	list, err := seqOrNil("rest", args[0])
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return List(), nil
	}
	return &DList{Members: append([]Data{}, list[1:]...)}, nil
}

// (apply f a b [c d]) calls (f a b c d).
func fApply(args []Data) (Data, error) {
	if len(args) < 2 {
		return nil, Errorf(KindArity, "apply expects a function and a list")
	}
	last, err := seqOrNil("apply", args[len(args)-1])
	if err != nil {
		return nil, err
	}

	fargs := append([]Data{}, args[1:len(args)-1]...)
	fargs = append(fargs, last...)
	return apply(args[0], fargs)
}

func fMap(args []Data) (Data, error) {
	if err := argc("map", args, 2); err != nil {
		return nil, err
	}
	list, err := seqOrNil("map", args[1])
	if err != nil {
		return nil, err
	}

	out := make([]Data, 0, len(list))
	for _, x := range list {
		r, err := apply(args[0], []Data{x})
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return &DList{Members: out}, nil
}

// Hash maps
func mkHashMap(args []Data) (Data, error) {
	return NewHashMap(args...)
}

func asHashMap(name string, d Data) (*DHashMap, error) {
	m, ok := d.(*DHashMap)
	if !ok {
		return nil, Errorf(KindType, "%s expects a hash-map, got %s", name, TypeName(d))
	}
	return m, nil
}

func assoc(args []Data) (Data, error) {
	if len(args) < 1 {
		return nil, Errorf(KindArity, "assoc expects a hash-map")
	}
	m, err := asHashMap("assoc", args[0])
	if err != nil {
		return nil, err
	}
	return m.Assoc(args[1:]...)
}

func dissoc(args []Data) (Data, error) {
	if len(args) < 1 {
		return nil, Errorf(KindArity, "dissoc expects a hash-map")
	}
	m, err := asHashMap("dissoc", args[0])
	if err != nil {
		return nil, err
	}
	return m.Dissoc(args[1:]...)
}

func get(args []Data) (Data, error) {
	if err := argc("get", args, 2); err != nil {
		return nil, err
	}
	if args[0] == Nil {
		return Nil, nil
	}
	m, err := asHashMap("get", args[0])
	if err != nil {
		return nil, err
	}
	v, ok, err := m.Get(args[1])
	if err != nil {
		return nil, err
	}
	if !ok {
		return Nil, nil
	}
	return v, nil
}

func containsQ(args []Data) (Data, error) {
	if err := argc("contains?", args, 2); err != nil {
		return nil, err
	}
	if args[0] == Nil {
		return False, nil
	}
	m, err := asHashMap("contains?", args[0])
	if err != nil {
		return nil, err
	}
	_, ok, err := m.Get(args[1])
	if err != nil {
		return nil, err
	}
	return Bool(ok), nil
}

func keys(args []Data) (Data, error) {
	if err := argc("keys", args, 1); err != nil {
		return nil, err
	}
	m, err := asHashMap("keys", args[0])
	if err != nil {
		return nil, err
	}
	return &DList{Members: m.Keys()}, nil
}

func vals(args []Data) (Data, error) {
	if err := argc("vals", args, 1); err != nil {
		return nil, err
	}
	m, err := asHashMap("vals", args[0])
	if err != nil {
		return nil, err
	}
	return &DList{Members: m.Vals()}, nil
}

// Scalars
func symbol(args []Data) (Data, error) {
	if err := argc("symbol", args, 1); err != nil {
		return nil, err
	}
	s, ok := args[0].(DString)
	if !ok {
		return nil, Errorf(KindType, "symbol expects a string, got %s", TypeName(args[0]))
	}
	return Sym(s.Str), nil
}

func keyword(args []Data) (Data, error) {
	if err := argc("keyword", args, 1); err != nil {
		return nil, err
	}
	switch k := args[0].(type) {
	case DKeyword:
		return k, nil
	case DString:
		return Kw(k.Str), nil
	}
	return nil, Errorf(KindType, "keyword expects a string, got %s", TypeName(args[0]))
}

func throw(args []Data) (Data, error) {
	if err := argc("throw", args, 1); err != nil {
		return nil, err
	}
	return nil, &Thrown{args[0]}
}
