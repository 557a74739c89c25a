package types

type Env struct {
	data  map[string]Data
	outer *Env
}

// NewEnv binds binds[i] to exprs[i]. A bind of "&" takes the next name and
// binds it to a list of every remaining expression. Callers are responsible
// for passing enough expressions.
func NewEnv(outer *Env, binds []string, exprs []Data) *Env {
	env := &Env{map[string]Data{}, outer}
	for i, b := range binds {
		if b == "&" {
			if i+1 < len(binds) {
				rest := make([]Data, len(exprs)-i)
				copy(rest, exprs[i:])
				env.Set(binds[i+1], &DList{rest})
			}
			break
		}
		env.Set(b, exprs[i])
	}

	return env
}

func (e *Env) Set(key string, value Data) Data {
	e.data[key] = value
	return value
}

func (e *Env) Find(key string) Data {
	for env := e; env != nil; env = env.outer {
		if value, ok := env.data[key]; ok {
			return value
		}
	}
	return nil
}

func (e *Env) Get(key string) (Data, error) {
	value := e.Find(key)
	if value == nil {
		return nil, Errorf(KindSymbolNotFound, "'%s' not found", key)
	}
	return value, nil
}

// Outer returns the enclosing scope, or nil at the top level.
func (e *Env) Outer() *Env {
	return e.outer
}
