package interp

import (
	"errors"

	. "github.com/bshepherdson/mal/types"
)

var specialForms map[string]func(list []Data, env *Env) (Data, error)

// Assigned in init rather than at declaration: the handlers call Eval, which
// reads this map.
func init() {
	specialForms = map[string]func(list []Data, env *Env) (Data, error){
		"def!":             sfDef,
		"defmacro!":        sfDefmacro,
		"fn*":              sfFn,
		"quote":            sfQuote,
		"quasiquoteexpand": sfQuasiquoteExpand,
		"macroexpand":      sfMacroexpand,
		"try*":             sfTry,
	}
}

// Eval evaluates ast in env. Forms in tail position (let*, do, if,
// quasiquote and closure application) loop instead of recursing, so
// self-recursive mal functions run in constant Go stack.
func Eval(ast Data, env *Env) (Data, error) {
	for {
		list, ok := ast.(*DList)
		if !ok {
			return evalAst(ast, env)
		}
		if len(list.Members) == 0 {
			return ast, nil
		}

		var err error
		ast, err = macroexpand(ast, env)
		if err != nil {
			return nil, err
		}
		if list, ok = ast.(*DList); !ok {
			return evalAst(ast, env)
		}
		members := list.Members
		if len(members) == 0 {
			return ast, nil
		}

		// Some special forms are implemented in place, since they support TCO.
		if sym, ok := members[0].(DSymbol); ok {
			switch sym.Name {
			case "let*":
				if err := checkArgs("let*", members, 2); err != nil {
					return nil, err
				}
				bindings, ok := Seq(members[1])
				if !ok {
					return nil, Errorf(KindType, "First parameter of let* must be a list")
				}
				if len(bindings)%2 != 0 {
					return nil, Errorf(KindArity, "let* bindings must come in pairs; found %d", len(bindings))
				}

				letEnv := NewEnv(env, nil, nil)
				for i := 0; i < len(bindings); i += 2 {
					sym, ok := bindings[i].(DSymbol)
					if !ok {
						return nil, Errorf(KindType, "left-hand binding must be a symbol")
					}

					evald, err := Eval(bindings[i+1], letEnv)
					if err != nil {
						return nil, err
					}
					letEnv.Set(sym.Name, evald)
				}

				if len(members) < 3 {
					return Nil, nil
				}
				ast = members[2]
				env = letEnv
				continue

			case "do":
				if len(members) == 1 {
					return Nil, nil
				}
				parts := members[1 : len(members)-1] // Strip off the "do" and last value.
				if _, err := evalList(parts, env); err != nil {
					return nil, err
				}
				ast = members[len(members)-1]
				continue

			case "if":
				if err := checkArgs("if", members, 2); err != nil {
					return nil, err
				}
				cond, err := Eval(members[1], env)
				if err != nil {
					return nil, err
				}
				if !Truthy(cond) {
					if len(members) <= 3 {
						return Nil, nil
					}
					ast = members[3]
					continue
				}

				if len(members) <= 2 {
					return Nil, nil
				}
				ast = members[2]
				continue

			case "quasiquote":
				if err := checkArgs("quasiquote", members, 2); err != nil {
					return nil, err
				}
				ast = quasiquote(members[1])
				continue
			}

			// If we're still here, try the special forms map.
			if sf, ok := specialForms[sym.Name]; ok {
				return sf(members, env)
			}
		}

		evald, err := evalList(members, env)
		if err != nil {
			return nil, err
		}

		switch f := evald[0].(type) {
		case *Closure:
			body, newEnv, err := callHelper(f, evald[1:])
			if err != nil {
				return nil, err
			}
			ast = body
			env = newEnv
			continue // TCO

		case *Native:
			return f.Fn(evald[1:])
		}
		return nil, Errorf(KindType, "cannot call non-function %s", TypeName(evald[0]))
	}
}

// evalAst evaluates a form without treating a list as a call.
func evalAst(ast Data, env *Env) (Data, error) {
	switch a := ast.(type) {
	case DSymbol:
		return env.Get(a.Name)

	case *DList:
		evald, err := evalList(a.Members, env)
		if err != nil {
			return nil, err
		}
		return &DList{Members: evald}, nil

	case *DVector:
		evald, err := evalList(a.Members, env)
		if err != nil {
			return nil, err
		}
		return &DVector{Members: evald}, nil

	case *DHashMap:
		var kvs []Data
		err := a.Each(func(k, v Data) error {
			evald, err := Eval(v, env)
			if err != nil {
				return err
			}
			kvs = append(kvs, k, evald)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return NewHashMap(kvs...)
	}

	return ast, nil
}

func evalList(list []Data, env *Env) ([]Data, error) {
	ret := make([]Data, 0, len(list))
	for _, expr := range list {
		evald, err := Eval(expr, env)
		if err != nil {
			return nil, err
		}
		ret = append(ret, evald)
	}
	return ret, nil
}

func checkArgs(form string, list []Data, min int) error {
	if len(list) < min {
		return Errorf(KindArity, "%s expects at least %d argument(s), got %d", form, min-1, len(list)-1)
	}
	return nil
}

// macroFor returns the macro named by the head of ast, if there is one.
func macroFor(ast Data, env *Env) *Closure {
	list, ok := ast.(*DList)
	if !ok || len(list.Members) == 0 {
		return nil
	}

	sym, ok := list.Members[0].(DSymbol)
	if !ok {
		return nil
	}

	if c, ok := env.Find(sym.Name).(*Closure); ok && c.IsMacro {
		return c
	}
	return nil
}

func macroexpand(ast Data, env *Env) (Data, error) {
	for mac := macroFor(ast, env); mac != nil; mac = macroFor(ast, env) {
		var err error
		ast, err = apply(mac, ast.(*DList).Members[1:])
		if err != nil {
			return nil, err
		}
	}
	return ast, nil
}

// Given the arguments for a closure (or macro) call, builds the new
// environment with everything bound properly for evaluating the body.
func callHelper(f *Closure, args []Data) (Data, *Env, error) {
	expected := len(f.Params)
	variadic := false
	for i, p := range f.Params {
		if p == "&" {
			expected = i
			variadic = true
			break
		}
	}

	found := len(args)
	if found < expected || (!variadic && found > expected) {
		return nil, nil, Errorf(KindArity, "wrong number of arguments: expected %d, got %d", expected, found)
	}

	return f.Body, NewEnv(f.Env, f.Params, args), nil
}

// apply calls any callable value with already-evaluated arguments.
func apply(fn Data, args []Data) (Data, error) {
	switch f := fn.(type) {
	case *Closure:
		body, env, err := callHelper(f, args)
		if err != nil {
			return nil, err
		}
		return Eval(body, env)
	case *Native:
		return f.Fn(args)
	}
	return nil, Errorf(KindType, "cannot call non-function %s", TypeName(fn))
}

// Implementations of the special forms.
func doDef(list []Data, env *Env, fun string) (DSymbol, Data, error) {
	if err := checkArgs(fun, list, 3); err != nil {
		return DSymbol{}, nil, err
	}
	name, ok := list[1].(DSymbol)
	if !ok {
		return DSymbol{}, nil, Errorf(KindType, "First parameter for %s must be a symbol", fun)
	}

	evald, err := Eval(list[2], env)
	if err != nil {
		return DSymbol{}, nil, err
	}
	return name, evald, nil
}

func sfDef(list []Data, env *Env) (Data, error) {
	name, evald, err := doDef(list, env, "def!")
	if err != nil {
		return nil, err
	}
	return env.Set(name.Name, evald), nil
}

func sfDefmacro(list []Data, env *Env) (Data, error) {
	name, evald, err := doDef(list, env, "defmacro!")
	if err != nil {
		return nil, err
	}

	c, ok := evald.(*Closure)
	if !ok {
		return nil, Errorf(KindType, "defmacro! expects a function, got %s", TypeName(evald))
	}
	c.IsMacro = true
	return env.Set(name.Name, c), nil
}

func sfFn(list []Data, env *Env) (Data, error) {
	if err := checkArgs("fn*", list, 3); err != nil {
		return nil, err
	}
	params, ok := Seq(list[1])
	if !ok {
		return nil, Errorf(KindType, "Function parameters must be a list.")
	}

	// Builds a new function closure.
	c := &Closure{Env: env, Body: list[2]}
	for i, p := range params {
		sym, ok := p.(DSymbol)
		if !ok {
			return nil, Errorf(KindType, "Function parameter must be a symbol.")
		}
		if sym.Name == "&" && i != len(params)-2 {
			return nil, Errorf(KindArity, "Exactly 1 value must follow a & in arg list; found %d", len(params)-i-1)
		}
		c.Params = append(c.Params, sym.Name)
	}
	return c, nil
}

func sfQuote(list []Data, env *Env) (Data, error) {
	if err := checkArgs("quote", list, 2); err != nil {
		return nil, err
	}
	return list[1], nil
}

func sfQuasiquoteExpand(list []Data, env *Env) (Data, error) {
	if err := checkArgs("quasiquoteexpand", list, 2); err != nil {
		return nil, err
	}
	return quasiquote(list[1]), nil
}

func sfMacroexpand(list []Data, env *Env) (Data, error) {
	if err := checkArgs("macroexpand", list, 2); err != nil {
		return nil, err
	}
	return macroexpand(list[1], env)
}

// sfTry handles (try* expr (catch* sym body)). Thrown values are bound as
// they are; host errors are bound as their message string.
func sfTry(list []Data, env *Env) (Data, error) {
	if err := checkArgs("try*", list, 2); err != nil {
		return nil, err
	}

	res, err := Eval(list[1], env)
	if err == nil || len(list) < 3 {
		return res, err
	}

	clause, ok := list[2].(*DList)
	if !ok || len(clause.Members) < 3 || !IsSymbol(clause.Members[0], "catch*") {
		return nil, Errorf(KindType, "try* expects (catch* symbol body) as its second argument")
	}
	sym, ok := clause.Members[1].(DSymbol)
	if !ok {
		return nil, Errorf(KindType, "catch* binding must be a symbol")
	}

	var caught Data
	var thrown *Thrown
	if errors.As(err, &thrown) {
		caught = thrown.Value
	} else {
		caught = Str(err.Error())
	}

	catchEnv := NewEnv(env, []string{sym.Name}, []Data{caught})
	return Eval(clause.Members[2], catchEnv)
}
