package interp

import . "github.com/bshepherdson/mal/types"

// quasiquote rewrites a template into the cons/concat calls that build it.
// Nothing is evaluated here.
func quasiquote(ast Data) Data {
	if l, ok := ast.(*DList); ok && len(l.Members) > 0 && IsSymbol(l.Members[0], "unquote") {
		if len(l.Members) < 2 {
			return Nil
		}
		return l.Members[1]
	}

	switch a := ast.(type) {
	case *DList:
		return qqFold(a.Members)
	case *DVector:
		return List(Sym("vec"), qqFold(a.Members))
	case DSymbol, *DHashMap:
		return List(Sym("quote"), ast)
	}
	return ast
}

func qqFold(members []Data) Data {
	ret := List()
	for i := len(members) - 1; i >= 0; i-- {
		elt := members[i]
		if l, ok := elt.(*DList); ok && len(l.Members) > 1 && IsSymbol(l.Members[0], "splice-unquote") {
			ret = List(Sym("concat"), l.Members[1], ret)
		} else {
			ret = List(Sym("cons"), quasiquote(elt), ret)
		}
	}
	return ret
}
